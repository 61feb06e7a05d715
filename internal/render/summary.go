package render

import (
	"strings"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// SharePrompt precedes the summary when it is printed.
const SharePrompt = "Copy the following to share your results:"

// Summary returns the plain-text share block: the headline, a blank line,
// then one line of tokens per guess in play order. The output depends only
// on the session's configuration, state and history.
func Summary(s *game.Session, tokens ShareTokens) string {
	var sb strings.Builder
	sb.WriteString(Headline(s))
	sb.WriteString("\n\n")
	for _, rec := range s.History() {
		for _, c := range rec.Clues {
			sb.WriteString(tokens[c])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
