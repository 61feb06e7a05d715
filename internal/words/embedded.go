// internal/words/embedded.go
//
// Source backed by the lists embedded in package assets.
//
// Notes:
//   • Data is lazily initialized once via sync.Once.
//   • Lists are stored raw and filtered per requested length.

package words

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/go-term/assets"
)

var (
	embeddedOnce    sync.Once
	embeddedAnswers []string
	embeddedAllowed []string
	embeddedErr     error
)

// initEmbedded loads answer and allowed word lists into memory.
// Called once on first access.
func initEmbedded() {
	ans, err := assets.AnswersList()
	if err != nil {
		embeddedErr = err
		return
	}
	all, err := assets.AllowedList()
	if err != nil {
		embeddedErr = err
		return
	}
	embeddedAnswers, embeddedAllowed = ans, all
}

// Embedded serves the built-in lists.
type Embedded struct{}

func (Embedded) Answers(_ context.Context, length int) ([]string, error) {
	embeddedOnce.Do(initEmbedded)
	if embeddedErr != nil {
		return nil, embeddedErr
	}
	return normalize(embeddedAnswers, length), nil
}

func (Embedded) Allowed(_ context.Context, length int) (Set, error) {
	embeddedOnce.Do(initEmbedded)
	if embeddedErr != nil {
		return nil, embeddedErr
	}
	return toSet(normalize(embeddedAnswers, length), normalize(embeddedAllowed, length)), nil
}
