package phh

import (
	"strings"

	"github.com/lox/starshand/internal/deck"
)

// FormatCards joins cards into PHH notation, e.g. "Td4s3h".
func FormatCards(cards []deck.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.Token())
	}
	return b.String()
}

// FormatHoleCards returns a combo in PHH notation, or "????" when unknown.
func FormatHoleCards(c deck.Combo) string {
	if !c.Known() {
		return "????"
	}
	return FormatCards(c.Cards())
}
