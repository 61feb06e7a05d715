// Package play drives a game session as a bubbletea program.
package play

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/input"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
)

// Outcome is how a game run ended.
type Outcome int

const (
	// Finished means the session reached Won or Lost.
	Finished Outcome = iota
	// Cancelled means the player quit mid-game. The caller should exit the
	// program immediately.
	Cancelled
)

func (o Outcome) String() string {
	if o == Cancelled {
		return "cancelled"
	}
	return "finished"
}

// Options configures Run.
type Options struct {
	// In is the key stream: a raw-mode terminal or a pipe.
	In  io.Reader
	Out io.Writer
	// Board draws the view.
	Board *render.Board
	// Interactive repaints Out after every key. Otherwise nothing is drawn
	// while playing and the caller prints the final board.
	Interactive bool
	// EscWait bounds how long a trailing ESC waits for the rest of its
	// sequence. Zero means input.DefaultEscWait.
	EscWait time.Duration
	Log     zerolog.Logger
}

// Run plays s until it is finished or the player cancels. Running out of
// input first returns input.ErrClosed.
func Run(ctx context.Context, s *game.Session, opts Options) (Outcome, error) {
	if s.Finished() {
		return Finished, nil
	}
	wait := opts.EscWait
	if wait <= 0 {
		wait = input.DefaultEscWait
	}
	in := input.NewReader(opts.In, wait)

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(opts.Out),
	}
	if !opts.Interactive {
		programOpts = append(programOpts, tea.WithoutRenderer())
	}

	final, err := tea.NewProgram(newModel(s, opts.Board, in.Closed(), opts.Log), programOpts...).Run()
	if err != nil {
		return Finished, fmt.Errorf("run game: %w", err)
	}
	m := final.(model)
	if m.err != nil {
		return Finished, m.err
	}
	return m.outcome, nil
}
