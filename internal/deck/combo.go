package deck

import "fmt"

// Combo is a player's two hole cards. The zero value is an unknown combo.
type Combo [2]Card

// NewCombo builds a combo from two parsed tokens.
func NewCombo(first, second string) (Combo, error) {
	a, err := ParseCard(first)
	if err != nil {
		return Combo{}, err
	}
	b, err := ParseCard(second)
	if err != nil {
		return Combo{}, err
	}
	if a == b {
		return Combo{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidCard, a.Token())
	}
	return Combo{a, b}, nil
}

// Known reports whether both cards are set.
func (c Combo) Known() bool {
	return !c[0].IsZero() && !c[1].IsZero()
}

// Cards returns the combo as a slice, or nil when unknown.
func (c Combo) Cards() []Card {
	if !c.Known() {
		return nil
	}
	return []Card{c[0], c[1]}
}

// String renders the combo as "AcJh", or "????" when unknown.
func (c Combo) String() string {
	return c[0].Token() + c[1].Token()
}

// Shorthand returns the starting-hand class, e.g. "AKs", "72o" or "QQ".
func (c Combo) Shorthand() string {
	if !c.Known() {
		return ""
	}
	hi, lo := c[0], c[1]
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}
	if hi.Rank == lo.Rank {
		return hi.Rank.String() + lo.Rank.String()
	}
	suited := "o"
	if hi.Suit == lo.Suit {
		suited = "s"
	}
	return hi.Rank.String() + lo.Rank.String() + suited
}

// Percentile ranks the combo among the 169 starting hands (1.0 = best).
// Unknown combos rank 0.
func (c Combo) Percentile() float64 {
	return handRankings[c.Shorthand()]
}
