// internal/game/engine.go
//
// Guess evaluation for the word game.
// Responsibilities:
//   - Score a guess against the secret with the two-pass algorithm.
//   - Validate a candidate guess (length → dictionary → hard mode).
//
// Both functions are pure: they only read their arguments and allocate
// their own scratch buffers.

package game

import "bytes"

// consumed replaces a letter in a scratch buffer once it has been claimed.
const consumed byte = 0

// Score implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches and consume that letter of the secret.
//
// Pass 2:
//   - For each non-exact guess letter: if it still occurs in the secret,
//     mark Present and consume the first remaining occurrence; otherwise
//     mark Absent.
//
// Consuming letters keeps duplicates honest: one L in the secret can
// never earn clues for two L's in the guess.
//
// Callers must pass words of equal length; on mismatch every position of
// the secret is reported Absent.
func Score(secret, guess string) []Clue {
	n := len(secret)
	res := make([]Clue, n)
	if len(guess) != n {
		return res
	}

	work := []byte(secret)

	// First pass: exact matches.
	for i := 0; i < n; i++ {
		if guess[i] == work[i] {
			res[i] = Exact
			work[i] = consumed
		}
	}

	// Second pass: present/absent for everything else.
	for i := 0; i < n; i++ {
		if res[i] == Exact {
			continue
		}
		c := guess[i]
		if c == consumed {
			continue
		}
		if j := bytes.IndexByte(work, c); j >= 0 {
			res[i] = Present
			work[j] = consumed
		}
	}
	return res
}

// Rules are the checks a candidate guess must pass.
type Rules struct {
	Length     int
	Dictionary Dictionary // nil disables dictionary enforcement
	Hard       bool
}

// Validate reports why candidate would be rejected, or ReasonNone.
//
// Checks run in a fixed order and the first failure wins:
//   - length must equal rules.Length
//   - candidate must be in rules.Dictionary (when set)
//   - in hard mode, the clues of the last record must be reused
func Validate(candidate string, rules Rules, history []Record) Reason {
	if len(candidate) != rules.Length {
		return ReasonWrongLength
	}
	if rules.Dictionary != nil && !rules.Dictionary.Contains(candidate) {
		return ReasonNotInDictionary
	}
	if rules.Hard && len(history) > 0 && !reusesClues(candidate, history[len(history)-1]) {
		return ReasonHardMode
	}
	return ReasonNone
}

// reusesClues checks candidate against the clues of last.
//
// Every Exact letter must be repeated in place. Every Present letter must
// appear among the candidate letters not already claimed, and claims the
// first one it finds, so a single letter cannot satisfy two clues.
func reusesClues(candidate string, last Record) bool {
	if len(last.Word) != len(candidate) || len(last.Clues) != len(candidate) {
		return false
	}
	work := []byte(candidate)
	for i, c := range last.Clues {
		if c != Exact {
			continue
		}
		if work[i] != last.Word[i] {
			return false
		}
		work[i] = consumed
	}
	for i, c := range last.Clues {
		if c != Present {
			continue
		}
		j := bytes.IndexByte(work, last.Word[i])
		if j < 0 {
			return false
		}
		work[j] = consumed
	}
	return true
}
