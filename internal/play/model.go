package play

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/input"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
)

// inputClosedMsg reports that the key stream hit EOF.
type inputClosedMsg struct{}

type model struct {
	sess   *game.Session
	board  *render.Board
	keys   *input.Collector
	closed <-chan struct{}
	log    zerolog.Logger

	outcome Outcome
	err     error
}

func newModel(s *game.Session, board *render.Board, closed <-chan struct{}, log zerolog.Logger) model {
	return model{
		sess:   s,
		board:  board,
		keys:   &input.Collector{},
		closed: closed,
		log:    log,
	}
}

func (m model) Init() tea.Cmd {
	return waitClosed(m.closed)
}

func waitClosed(closed <-chan struct{}) tea.Cmd {
	if closed == nil {
		return nil
	}
	return func() tea.Msg {
		<-closed
		return inputClosedMsg{}
	}
}

// over reports whether the model has stopped taking keys. Messages can
// still arrive between returning tea.Quit and the program exiting.
func (m model) over() bool {
	return m.outcome == Cancelled || m.err != nil || m.sess.Finished()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.over() {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case inputClosedMsg:
		m.err = input.ErrClosed
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, k := range input.KeysFrom(msg) {
		word, outcome, done := m.keys.Step(m.sess, k)
		if !done {
			continue
		}
		if outcome == input.Cancelled {
			m.log.Debug().Int("attempt", m.sess.Attempt()).Msg("cancelled by player")
			m.outcome = Cancelled
			return m, tea.Quit
		}
		if ok, reason := m.sess.Submit(word); !ok {
			// The collector only hands over words the session accepts.
			m.log.Warn().Str("guess", word).Stringer("reason", reason).Msg("collector returned a rejected guess")
		}
		if m.sess.Finished() {
			m.log.Info().Stringer("state", m.sess.State()).Int("attempts", m.sess.Attempt()).Msg("game over")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.outcome == Cancelled {
		return m.board.Frame(m.sess)
	}
	return m.board.View(m.sess, m.keys.Buffer(), m.keys.Reason(m.sess))
}
