package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a token is not a two-character card.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota + 1
	Hearts
	Diamonds
	Clubs
)

// String returns the hand-history letter for the suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the string representation of a rank
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankChars[r-Two : r-Two+1]
}

// Card is a single playing card. The zero value is "no card".
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// ParseCard parses a two-character token such as "Ac" or "Td".
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}
	idx := strings.IndexByte(rankChars, upper(token[0]))
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: rank in %q", ErrInvalidCard, token)
	}
	var suit Suit
	switch token[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: suit in %q", ErrInvalidCard, token)
	}
	return Card{Rank: Two + Rank(idx), Suit: suit}, nil
}

// MustParseCard is ParseCard for literals; it panics on error.
func MustParseCard(token string) Card {
	c, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses concatenated tokens ("AsKs") or space separated ones ("As Ks").
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %q", ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards panics if s does not parse.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// IsZero reports whether c is the zero "no card" value.
func (c Card) IsZero() bool {
	return c.Rank == 0 && c.Suit == 0
}

// Token returns the hand-history notation, e.g. "Ac".
func (c Card) Token() string {
	if c.IsZero() {
		return "??"
	}
	return c.Rank.String() + c.Suit.String()
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// MarshalText encodes the card as its token.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.Token()), nil
}

// UnmarshalText decodes a card token. "??" decodes to the zero Card.
func (c *Card) UnmarshalText(b []byte) error {
	if string(b) == "??" {
		*c = Card{}
		return nil
	}
	parsed, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
