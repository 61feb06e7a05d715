// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Define the Source contract the game uses to pick secrets and check guesses.
//   - Normalize raw lists (uppercase, exact length, A–Z only, de-duplicated).
//   - Supply helpers like Random, Stats and the Set membership type.
//
// Word Lists:
//   - "answers": words that may be chosen as the secret.
//   - "allowed": valid guesses (always includes answers).
//
// Implementations:
//   - Embedded: lists compiled into the binary (package assets).
//   - Files:    lists read from disk (WORDS_ANSWERS_FILE / WORDS_ALLOWED_FILE).
//   - Remote:   a list fetched over HTTP.

package words

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrNoWords is returned when a source has no answers of the requested length.
var ErrNoWords = errors.New("words: no words of requested length")

// Source supplies answer and allowed lists for a word length.
type Source interface {
	// Answers returns the candidate secrets of the given length.
	Answers(ctx context.Context, length int) ([]string, error)
	// Allowed returns every valid guess of the given length, answers included.
	Allowed(ctx context.Context, length int) (Set, error)
}

// Set is a lookup set of uppercase words.
type Set map[string]struct{}

// Contains reports whether w is in the set. Lookups are case-insensitive.
func (s Set) Contains(w string) bool {
	_, ok := s[strings.ToUpper(w)]
	return ok
}

// toSet converts a list of strings into a lookup set.
func toSet(lists ...[]string) Set {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	m := make(Set, n)
	for _, l := range lists {
		for _, w := range l {
			m[w] = struct{}{}
		}
	}
	return m
}

// normalize keeps the words of exactly length A–Z letters, uppercased,
// dropping duplicates but preserving first-seen order.
func normalize(list []string, length int) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Random returns a cryptographically random answer of the given length.
func Random(ctx context.Context, src Source, length int) (string, error) {
	answers, err := src.Answers(ctx, length)
	if err != nil {
		return "", err
	}
	if len(answers) == 0 {
		return "", fmt.Errorf("%w: %d", ErrNoWords, length)
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	if err != nil {
		return "", fmt.Errorf("words: pick random answer: %w", err)
	}
	return answers[nBig.Int64()], nil
}

// Stats returns counts of loaded words of the given length: (answers, allowed).
func Stats(ctx context.Context, src Source, length int) (answersCount int, allowedCount int, err error) {
	answers, err := src.Answers(ctx, length)
	if err != nil {
		return 0, 0, err
	}
	allowed, err := src.Allowed(ctx, length)
	if err != nil {
		return 0, 0, err
	}
	return len(answers), len(allowed), nil
}
