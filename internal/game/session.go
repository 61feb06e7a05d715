// internal/game/session.go
//
// A single game session: the secret, the play history and the
// playing → won/lost state machine.
//
// State transitions (evaluated after every accepted guess):
//   - all clues Exact                      → Won
//   - else number of guesses reaches Limit → Lost
//   - else                                 → stays InProgress
//
// Won and Lost are terminal; further submissions are rejected.

package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Session holds the state of one game. It is not safe for concurrent use;
// a single turn loop drives it.
type Session struct {
	cfg     Config
	secret  string
	dict    Dictionary
	history []Record
	state   State
	log     zerolog.Logger
}

// Option customizes a Session at construction.
type Option func(*Session)

// WithDictionary supplies the valid-word set used when Config.CheckValid is on.
func WithDictionary(d Dictionary) Option {
	return func(s *Session) { s.dict = d }
}

// WithLogger routes session events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New constructs a session around secret.
// A malformed configuration or secret fails here rather than during play.
func New(cfg Config, secret string, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg,
		secret: strings.ToUpper(strings.TrimSpace(secret)),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if len(s.secret) != cfg.Length {
		return nil, fmt.Errorf("%w: secret has %d letters, want %d", ErrInvalidConfig, len(s.secret), cfg.Length)
	}
	if !isUpperAlpha(s.secret) {
		return nil, fmt.Errorf("%w: secret must be letters A-Z", ErrInvalidConfig)
	}
	if cfg.CheckValid {
		if s.dict == nil {
			return nil, fmt.Errorf("%w: dictionary enforcement requires a dictionary", ErrInvalidConfig)
		}
		if !s.dict.Contains(s.secret) {
			return nil, ErrSecretNotInDictionary
		}
	}
	return s, nil
}

// Submit validates raw and, if acceptable, scores it and appends it to the
// history. It reports whether the guess was accepted and, if not, why.
// A finished session rejects everything and stays unchanged.
func (s *Session) Submit(raw string) (bool, Reason) {
	if s.Finished() {
		return false, ReasonFinished
	}
	guess := strings.ToUpper(strings.TrimSpace(raw))
	if reason := s.Check(guess); reason != ReasonNone {
		s.log.Debug().Str("guess", guess).Stringer("reason", reason).Msg("guess rejected")
		return false, reason
	}

	rec := Record{Word: guess, Clues: Score(s.secret, guess)}
	s.history = append(s.history, rec)

	switch {
	case rec.Solved():
		s.state = Won
	case len(s.history) >= s.cfg.Limit:
		s.state = Lost
	}
	s.log.Debug().
		Str("guess", guess).
		Int("attempt", len(s.history)).
		Stringer("state", s.state).
		Msg("guess accepted")
	return true, ReasonNone
}

// Check validates candidate against the current history without changing
// anything. The candidate is compared as given; callers uppercase it.
func (s *Session) Check(candidate string) Reason {
	if s.Finished() {
		return ReasonFinished
	}
	return Validate(candidate, s.rules(), s.history)
}

func (s *Session) rules() Rules {
	r := Rules{Length: s.cfg.Length, Hard: s.cfg.Hard}
	if s.cfg.CheckValid {
		r.Dictionary = s.dict
	}
	return r
}

// Finished reports whether the session is won or lost.
func (s *Session) Finished() bool { return s.state != InProgress }

// Won reports whether the secret has been guessed.
func (s *Session) Won() bool { return s.state == Won }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Attempt returns the number of accepted guesses so far, which is also the
// 0-based index of the next row.
func (s *Session) Attempt() int { return len(s.history) }

// Config returns the session settings.
func (s *Session) Config() Config { return s.cfg }

// Secret returns the uppercase secret word.
func (s *Session) Secret() string { return s.secret }

// History returns a copy of the accepted guesses in play order.
func (s *Session) History() []Record {
	out := make([]Record, len(s.history))
	for i, r := range s.history {
		out[i] = r.clone()
	}
	return out
}

// Row returns the record for row i, or false if that row has no guess yet.
func (s *Session) Row(i int) (Record, bool) {
	if i < 0 || i >= len(s.history) {
		return Record{}, false
	}
	return s.history[i].clone(), true
}

// isUpperAlpha reports whether w consists only of A–Z.
func isUpperAlpha(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
