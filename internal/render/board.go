// Package render draws a game session on a terminal and builds the
// shareable result summary.
package render

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Board renders a session as text. Repainting is left to whoever shows
// the text.
type Board struct {
	palette Palette
}

// NewBoard returns a Board drawing tiles with palette.
func NewBoard(palette Palette) *Board {
	return &Board{palette: palette}
}

// Headline is "Guess <n>/<limit>" followed by '*' in hard mode or a space
// otherwise; n is "X" for a lost game.
func Headline(s *game.Session) string {
	cfg := s.Config()
	n := fmt.Sprint(s.Attempt())
	if s.State() == game.Lost {
		n = "X"
	}
	mark := " "
	if cfg.Hard {
		mark = "*"
	}
	return fmt.Sprintf("Guess %s/%d%s", n, cfg.Limit, mark)
}

// Frame is the header and one row per allowed guess.
func (b *Board) Frame(s *game.Session) string {
	var sb strings.Builder
	sb.WriteString("\n  " + Headline(s) + "\n\n")
	cfg := s.Config()
	for i := 0; i < cfg.Limit; i++ {
		sb.WriteString("  " + b.row(s, i, cfg.Length) + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// View is the Frame followed, while the game is in progress, by a prompt
// line echoing the letters typed so far and why they would be refused.
func (b *Board) View(s *game.Session, typing string, reason game.Reason) string {
	if s.Finished() {
		return b.Frame(s)
	}
	return b.Frame(s) + b.prompt(s, typing, reason) + "\n"
}

func (b *Board) row(s *game.Session, i, length int) string {
	rec, ok := s.Row(i)
	if !ok {
		return b.palette.Empty.Render(strings.Repeat("  ", length))
	}
	var sb strings.Builder
	for j := 0; j < len(rec.Word); j++ {
		sb.WriteString(b.palette.Tiles[rec.Clues[j]].Render(fullWidth(rec.Word[j])))
	}
	return sb.String()
}

func (b *Board) prompt(s *game.Session, typing string, reason game.Reason) string {
	letters := make([]string, len(typing))
	for i := 0; i < len(typing); i++ {
		letters[i] = fullWidth(typing[i])
	}
	style := b.palette.Typing
	if len(typing) == s.Config().Length && reason != game.ReasonNone {
		style = b.palette.Invalid
	}

	var sb strings.Builder
	sb.WriteString(" >")
	if len(letters) > 0 {
		sb.WriteString(style.Render(strings.Join(letters, "")))
	}
	if msg := reason.Message(); msg != "" {
		sb.WriteString("  " + b.palette.Muted.Render(msg))
	}
	return sb.String()
}

// fullWidth maps an ASCII uppercase letter to its full-width form so a
// tile is two cells wide. Anything else is returned unchanged.
func fullWidth(c byte) string {
	if c < 'A' || c > 'Z' {
		return string(rune(c))
	}
	return string(rune(c) + 0xfee0)
}
