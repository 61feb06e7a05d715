// internal/words/files.go
//
// Source backed by word files on disk.
//
// Path behavior:
//   1. AnswersPath and AllowedPath both set:
//      answers come from the first, extra guesses from the second.
//   2. Only AllowedPath set:
//      that file is used for both answers and allowed guesses.
//   3. Only AnswersPath set:
//      answers are also the only allowed guesses.
//
// Files hold one word per line; blank lines and # comments are skipped.
// Each file is read once per Files value.

package words

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/robalobadob/wordle/apps/go-term/assets"
)

// Files reads lists from the local filesystem.
type Files struct {
	AnswersPath string
	AllowedPath string

	once    sync.Once
	answers []string
	allowed []string
	err     error
}

// NewFiles returns a file source, or an error when no path is given.
func NewFiles(answersPath, allowedPath string) (*Files, error) {
	if answersPath == "" && allowedPath == "" {
		return nil, errors.New("words: no word files configured")
	}
	return &Files{AnswersPath: answersPath, AllowedPath: allowedPath}, nil
}

func (f *Files) load() {
	f.once.Do(func() {
		switch {
		case f.AnswersPath != "" && f.AllowedPath != "":
			if f.answers, f.err = readWordFile(f.AnswersPath); f.err != nil {
				return
			}
			f.allowed, f.err = readWordFile(f.AllowedPath)
		case f.AllowedPath != "":
			f.allowed, f.err = readWordFile(f.AllowedPath)
			f.answers = f.allowed
		default:
			f.answers, f.err = readWordFile(f.AnswersPath)
			f.allowed = f.answers
		}
	})
}

func (f *Files) Answers(_ context.Context, length int) ([]string, error) {
	f.load()
	if f.err != nil {
		return nil, f.err
	}
	return normalize(f.answers, length), nil
}

func (f *Files) Allowed(_ context.Context, length int) (Set, error) {
	f.load()
	if f.err != nil {
		return nil, f.err
	}
	return toSet(normalize(f.answers, length), normalize(f.allowed, length)), nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer fh.Close()
	out, err := assets.ReadLines(fh)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}
