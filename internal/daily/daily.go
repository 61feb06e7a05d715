// Package daily picks a deterministic secret word for a calendar day.
package daily

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// DefaultSalt is used when no salt is configured.
const DefaultSalt = "local_dev_salt"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using a blake2b MAC
// keyed by salt over YYYY-MM-DD, modulo answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	// blake2b keys are capped at 64 bytes; hashing the salt keeps any length usable.
	key := blake2b.Sum256([]byte(salt))
	h, err := blake2b.New256(key[:])
	if err != nil {
		// Unreachable: a 32-byte key is always valid.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Word returns the day's secret of the given length from src.
func Word(ctx context.Context, src words.Source, length int, date time.Time, salt string) (string, error) {
	answers, err := src.Answers(ctx, length)
	if err != nil {
		return "", err
	}
	if len(answers) == 0 {
		return "", fmt.Errorf("%w: %d", words.ErrNoWords, length)
	}
	return answers[WordIndex(date, salt, len(answers))], nil
}
