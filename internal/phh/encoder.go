package phh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/starshand/internal/handhistory"
	"github.com/lox/starshand/internal/lookup"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeAll writes hands as a .phhs file: one numbered table per hand,
// starting at [1], separated by blank lines.
func EncodeAll(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d]\n", i+1); err != nil {
			return err
		}
		if err := Encode(w, hand); err != nil {
			return fmt.Errorf("phh: hand %s: %w", hand.HandID, err)
		}
	}
	return nil
}

// FormatAction converts a parsed action to a PHH action string for player
// index idx (0 based). It returns false for actions PHH records elsewhere:
// blinds and antes, uncalled returns, pot awards and mucks.
func FormatAction(idx int, a handhistory.Action) (string, bool) {
	player := fmt.Sprintf("p%d", idx+1)
	switch a.Kind {
	case lookup.Fold:
		return player + " f", true
	case lookup.Check, lookup.Call:
		return player + " cc", true
	case lookup.Bet:
		if !a.Amount.Valid {
			return "", false
		}
		return fmt.Sprintf("%s cbr %s", player, a.Amount.Decimal), true
	case lookup.Raise:
		if !a.To.Valid {
			return "", false
		}
		return fmt.Sprintf("%s cbr %s", player, a.To.Decimal), true
	case lookup.Show:
		if len(a.Cards) == 0 {
			return "", false
		}
		return fmt.Sprintf("%s sm %s", player, FormatCards(a.Cards)), true
	case lookup.Post, lookup.Return, lookup.Win, lookup.Muck:
		return "", false
	default:
		return fmt.Sprintf("# %s %s", player, a.Kind), true
	}
}
