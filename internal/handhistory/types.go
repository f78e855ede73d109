// Package handhistory parses a single PokerStars tournament hand record into
// a typed HandHistory.
//
// A hand either parses completely or Parse returns an error and no value.
// Streets that were never dealt (a hand folded out before the flop) are nil,
// which is a normal outcome and not an error.
package handhistory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lox/starshand/internal/deck"
	"github.com/lox/starshand/internal/lookup"
)

// HandHistory is one parsed hand. Values returned by Parse are not shared with
// any other hand and must be treated as read-only.
type HandHistory struct {
	ID           string          `json:"id"`
	TournamentID string          `json:"tournament_id"`
	Level        string          `json:"level"`
	GameType     lookup.GameType `json:"game_type"`
	Game         lookup.Game     `json:"game"`
	Limit        lookup.Limit    `json:"limit"`
	Currency     lookup.Currency `json:"currency"`
	BuyIn        decimal.Decimal `json:"buyin"`
	Rake         decimal.Decimal `json:"rake"`
	SmallBlind   decimal.Decimal `json:"sb"`
	BigBlind     decimal.Decimal `json:"bb"`
	Date         time.Time       `json:"date"`

	TableName  string   `json:"table_name"`
	MaxSeats   int      `json:"max_seats"`
	ButtonSeat int      `json:"button_seat"`
	HeroSeat   int      `json:"hero_seat"`
	Seats      []Player `json:"seats"`

	// Posts are the blinds and antes posted before the hole cards.
	Posts           []Action `json:"posts,omitempty"`
	Preflop         Street   `json:"preflop"`
	Flop            *Street  `json:"flop,omitempty"`
	Turn            *Street  `json:"turn,omitempty"`
	River           *Street  `json:"river,omitempty"`
	ShowdownActions []Action `json:"showdown_actions,omitempty"`
	// Results are the tournament finish lines written at showdown, e.g.
	// "blak_douglas finished the tournament in 5th place".
	Results []string `json:"results,omitempty"`

	Board    Board    `json:"board"`
	TotalPot int      `json:"total_pot"`
	PotRake  int      `json:"pot_rake"`
	ShowDown bool     `json:"show_down"`
	Winners  []string `json:"winners"`
}

// Player is one seat's occupant. The zero value is an empty seat.
type Player struct {
	Seat       int        `json:"seat"`
	Name       string     `json:"name"`
	Stack      int        `json:"stack"`
	Combo      deck.Combo `json:"combo"`
	SittingOut bool       `json:"sitting_out,omitempty"`
}

// Occupied reports whether a seat line was parsed for this seat.
func (p Player) Occupied() bool {
	return p.Seat > 0
}

// PostKind says what a Post action paid for.
type PostKind int

const (
	PostNone PostKind = iota
	PostSmallBlind
	PostBigBlind
	PostAnte
	PostDeadBlinds
)

func (k PostKind) String() string {
	switch k {
	case PostSmallBlind:
		return "small blind"
	case PostBigBlind:
		return "big blind"
	case PostAnte:
		return "ante"
	case PostDeadBlinds:
		return "small & big blinds"
	default:
		return ""
	}
}

// MarshalText lets the post kind serialise by name.
func (k PostKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Action is one classified action line.
type Action struct {
	Kind   lookup.ActionKind   `json:"kind"`
	Player string              `json:"player"`
	Amount decimal.NullDecimal `json:"amount"`
	// To is the raise-to total; only set for raises.
	To     decimal.NullDecimal `json:"to"`
	AllIn  bool                `json:"all_in,omitempty"`
	Posted PostKind            `json:"posted,omitempty"`
	Cards  []deck.Card         `json:"cards,omitempty"`
}

// Street is one betting round.
type Street struct {
	Name string `json:"name"`
	// Cards is only set for the flop; turn and river cards live on Board.
	Cards   []deck.Card `json:"cards,omitempty"`
	Actions []Action    `json:"actions"`
	// Pot is the pot at the end of the street, uncalled bets excluded. It
	// counts chips wagered, not the sum of "collected" lines; the two differ
	// only when rake is taken, which tournaments do not do. See Collected.
	Pot decimal.Decimal `json:"pot"`
	// Collected is the sum of Win amounts on the street.
	Collected decimal.Decimal `json:"collected"`
}

// Board holds the community cards. Unset cards are the zero Card.
type Board struct {
	Flop  []deck.Card `json:"flop,omitempty"`
	Turn  deck.Card   `json:"turn"`
	River deck.Card   `json:"river"`
}

// Cards returns the dealt community cards in order.
func (b Board) Cards() []deck.Card {
	cards := make([]deck.Card, 0, 5)
	cards = append(cards, b.Flop...)
	if !b.Turn.IsZero() {
		cards = append(cards, b.Turn)
	}
	if !b.River.IsZero() {
		cards = append(cards, b.River)
	}
	return cards
}

// Players returns the occupied seats in seat order.
func (h *HandHistory) Players() []Player {
	players := make([]Player, 0, len(h.Seats))
	for _, p := range h.Seats {
		if p.Occupied() {
			players = append(players, p)
		}
	}
	return players
}

// Button returns the player on the button.
func (h *HandHistory) Button() Player {
	return h.seat(h.ButtonSeat)
}

// Hero returns the player whose hole cards were dealt face up to us.
func (h *HandHistory) Hero() Player {
	return h.seat(h.HeroSeat)
}

// Player finds a seated player by name.
func (h *HandHistory) Player(name string) (Player, bool) {
	for _, p := range h.Seats {
		if p.Occupied() && p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// IsWinner reports whether name won any part of the pot.
func (h *HandHistory) IsWinner(name string) bool {
	for _, w := range h.Winners {
		if w == name {
			return true
		}
	}
	return false
}

// Streets returns the dealt streets, preflop first.
func (h *HandHistory) Streets() []Street {
	streets := []Street{h.Preflop}
	for _, s := range []*Street{h.Flop, h.Turn, h.River} {
		if s == nil {
			break
		}
		streets = append(streets, *s)
	}
	return streets
}

func (h *HandHistory) seat(n int) Player {
	if n < 1 || n > len(h.Seats) {
		return Player{}
	}
	return h.Seats[n-1]
}
