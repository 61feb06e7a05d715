package input

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Outcome is how a collection ended.
type Outcome int

const (
	// Submitted means a valid candidate was returned.
	Submitted Outcome = iota
	// Cancelled means the player asked to quit the whole program. Hosts
	// are expected to exit immediately on it, without finishing the game.
	Cancelled
)

func (o Outcome) String() string {
	if o == Cancelled {
		return "cancelled"
	}
	return "submitted"
}

// ErrClosed is returned when the key stream ends before the game does.
var ErrClosed = errors.New("input closed")

// Collector assembles keystrokes into a candidate guess, one key at a
// time. The zero value is ready to use.
//
// Editing rules:
//   - a letter is appended only while the buffer is shorter than the word length
//   - erase drops the last letter
//   - submit hands over the buffer only when the session would accept it
//   - cancel ends collection at once with Cancelled
type Collector struct {
	buf []byte
}

// Buffer returns the letters typed so far.
func (c *Collector) Buffer() string { return string(c.buf) }

// Reason is what s would say about the current buffer if it were
// submitted now.
func (c *Collector) Reason(s *game.Session) game.Reason {
	return s.Check(string(c.buf))
}

// Step applies k. done reports whether collection ended: either with a
// word s accepts and Submitted, or with Cancelled. A submitted word clears
// the buffer for the next turn. Step never returns an invalid word.
func (c *Collector) Step(s *game.Session, k Key) (word string, outcome Outcome, done bool) {
	switch k.Kind {
	case KeyCancel:
		return "", Cancelled, true
	case KeySubmit:
		if c.Reason(s) == game.ReasonNone {
			word = string(c.buf)
			c.buf = c.buf[:0]
			return word, Submitted, true
		}
	case KeyErase:
		if len(c.buf) > 0 {
			c.buf = c.buf[:len(c.buf)-1]
		}
	case KeyLetter:
		if len(c.buf) < s.Config().Length {
			c.buf = append(c.buf, k.Letter)
		}
	}
	return "", Submitted, false
}
