// internal/game/types.go
//
// Core type definitions for the word game engine.
// Defines:
//   - Clue:   per-letter verdict of a guess (absent/present/exact).
//   - Record: one accepted guess together with its clues.
//   - Config: immutable session settings.
//   - State:  in progress / won / lost.
//   - Reason: why a candidate guess was rejected.

package game

import (
	"errors"
	"fmt"
)

// Clue represents the evaluation result for a single letter in a guess.
// Clue carries no presentation; renderers map it to colors and share tokens.
type Clue uint8

const (
	Absent  Clue = iota // letter does not occur in the remaining secret letters
	Present             // letter occurs in the secret at another position
	Exact               // letter is correct and in the correct position
)

func (c Clue) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("clue(%d)", uint8(c))
	}
}

// Record is one accepted guess and its clue sequence, in play order.
type Record struct {
	Word  string // uppercase guessed word
	Clues []Clue // one clue per letter of Word
}

// Solved reports whether every clue is Exact.
func (r Record) Solved() bool {
	if len(r.Clues) == 0 {
		return false
	}
	for _, c := range r.Clues {
		if c != Exact {
			return false
		}
	}
	return true
}

func (r Record) clone() Record {
	return Record{Word: r.Word, Clues: append([]Clue(nil), r.Clues...)}
}

const (
	DefaultLength = 5
	DefaultLimit  = 6
)

// Config holds the settings of a session. It is fixed at construction.
type Config struct {
	Length     int  // letters per word
	Limit      int  // maximum number of guesses
	Hard       bool // every guess must reuse the clues of the previous one
	CheckValid bool // guesses must be members of the dictionary
	Share      bool // print a shareable summary at the end (renderer only)
}

// DefaultConfig returns the classic 5-letter, 6-guess game.
func DefaultConfig() Config {
	return Config{Length: DefaultLength, Limit: DefaultLimit}
}

var (
	// ErrInvalidConfig is returned by New for a malformed configuration or secret.
	ErrInvalidConfig = errors.New("invalid game configuration")
	// ErrSecretNotInDictionary is returned by New when dictionary enforcement
	// is on and the secret itself is not a valid word.
	ErrSecretNotInDictionary = errors.New("secret word is not in the dictionary")
)

// Validate checks the numeric settings.
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidConfig, c.Length)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Limit)
	}
	return nil
}

// State is the coarse lifecycle of a session.
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Reason explains why a candidate guess was rejected.
// Rejections are ordinary values, never errors: the player just tries again.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonWrongLength
	ReasonNotInDictionary
	ReasonHardMode
	ReasonFinished
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWrongLength:
		return "wrong_length"
	case ReasonNotInDictionary:
		return "not_in_dictionary"
	case ReasonHardMode:
		return "hard_mode_violation"
	case ReasonFinished:
		return "finished"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Message is the text shown next to the prompt.
// An incomplete word is not worth complaining about, so WrongLength is silent.
func (r Reason) Message() string {
	switch r {
	case ReasonNotInDictionary:
		return "Invalid word"
	case ReasonHardMode:
		return "All clues must be used"
	case ReasonFinished:
		return "Game over"
	default:
		return ""
	}
}

// Dictionary is a read-only set of valid uppercase words.
type Dictionary interface {
	Contains(word string) bool
}
