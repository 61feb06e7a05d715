// Package input turns terminal key events into validated guesses.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyKind classifies a keystroke.
type KeyKind int

const (
	KeyLetter KeyKind = iota
	KeySubmit
	KeyErase
	KeyCancel
)

func (k KeyKind) String() string {
	switch k {
	case KeyLetter:
		return "letter"
	case KeySubmit:
		return "submit"
	case KeyErase:
		return "erase"
	case KeyCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Key is one keystroke. Letter is set (uppercase A–Z) only for KeyLetter.
type Key struct {
	Kind   KeyKind
	Letter byte
}

// KeysFrom translates a bubbletea key message into game keys.
//
//   - a–z, A–Z             → letter (uppercased)
//   - enter, ctrl+j        → submit
//   - backspace, ctrl+h    → erase
//   - esc, ctrl+c, ctrl+d  → cancel
//
// A terminal sends Alt chords as ESC followed by the key, so those cancel
// as well. Every other key is ignored.
func KeysFrom(msg tea.KeyMsg) []Key {
	if msg.Alt {
		return []Key{{Kind: KeyCancel}}
	}
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch {
			case r >= 'a' && r <= 'z':
				keys = append(keys, Key{Kind: KeyLetter, Letter: byte(r - 'a' + 'A')})
			case r >= 'A' && r <= 'Z':
				keys = append(keys, Key{Kind: KeyLetter, Letter: byte(r)})
			}
		}
		return keys
	case tea.KeyEnter, tea.KeyCtrlJ:
		return []Key{{Kind: KeySubmit}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []Key{{Kind: KeyErase}}
	case tea.KeyEsc, tea.KeyCtrlC, tea.KeyCtrlD:
		return []Key{{Kind: KeyCancel}}
	}
	return nil
}
