package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Palette maps clues to tile styles. It is injected into a Board so the
// game types stay free of presentation.
type Palette struct {
	Tiles   map[game.Clue]lipgloss.Style
	Empty   lipgloss.Style // row without a guess yet
	Typing  lipgloss.Style // letters being typed at the prompt
	Invalid lipgloss.Style // a full prompt word that would be rejected
	Muted   lipgloss.Style // rejection message
}

// DefaultPalette is gray/yellow/green tiles with bold white letters.
func DefaultPalette(r *lipgloss.Renderer) Palette {
	tile := r.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	return Palette{
		Tiles: map[game.Clue]lipgloss.Style{
			game.Absent:  tile.Background(lipgloss.Color("8")),
			game.Present: tile.Background(lipgloss.Color("3")),
			game.Exact:   tile.Background(lipgloss.Color("2")),
		},
		Empty:   r.NewStyle().Background(lipgloss.Color("8")),
		Typing:  r.NewStyle().Bold(true),
		Invalid: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// ShareTokens maps clues to the characters of the share summary.
type ShareTokens map[game.Clue]string

// DefaultShareTokens are the usual colored squares.
func DefaultShareTokens() ShareTokens {
	return ShareTokens{
		game.Absent:  "⬛",
		game.Present: "🟨",
		game.Exact:   "🟩",
	}
}
