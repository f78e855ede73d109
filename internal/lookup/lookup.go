// Package lookup holds the closed enumerations a hand history refers to by
// keyword: game types, games, bet limits, currencies and action verbs.
//
// Every lookup is by exact key. A key that is not in the table is an error;
// the tables never grow at parse time.
package lookup

import (
	"errors"
	"fmt"
)

// ErrUnknownEnumValue is returned for a key missing from a table.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// GameType distinguishes tournaments from ring games.
type GameType int

const (
	Tournament GameType = iota + 1
	CashGame
)

func (g GameType) String() string {
	switch g {
	case Tournament:
		return "Tournament"
	case CashGame:
		return "Cash Game"
	default:
		return "unknown"
	}
}

// Game is the poker variant.
type Game int

const (
	Holdem Game = iota + 1
	Omaha
	OmahaHiLo
	Razz
	Stud
	StudHiLo
	FiveCardDraw
	TripleDraw
)

func (g Game) String() string {
	switch g {
	case Holdem:
		return "Hold'em"
	case Omaha:
		return "Omaha"
	case OmahaHiLo:
		return "Omaha Hi/Lo"
	case Razz:
		return "Razz"
	case Stud:
		return "7 Card Stud"
	case StudHiLo:
		return "7 Card Stud Hi/Lo"
	case FiveCardDraw:
		return "5 Card Draw"
	case TripleDraw:
		return "2-7 Triple Draw"
	default:
		return "unknown"
	}
}

// Limit is the betting structure.
type Limit int

const (
	NoLimit Limit = iota + 1
	PotLimit
	FixedLimit
)

func (l Limit) String() string {
	switch l {
	case NoLimit:
		return "No Limit"
	case PotLimit:
		return "Pot Limit"
	case FixedLimit:
		return "Limit"
	default:
		return "unknown"
	}
}

// Currency of a buy-in or stake.
type Currency int

const (
	USD Currency = iota + 1
	EUR
	GBP
)

func (c Currency) String() string {
	switch c {
	case USD:
		return "USD"
	case EUR:
		return "EUR"
	case GBP:
		return "GBP"
	default:
		return "unknown"
	}
}

// ActionKind tags a parsed action.
type ActionKind int

const (
	Bet ActionKind = iota + 1
	Raise
	Call
	Check
	Fold
	Return
	Win
	Muck
	Post
	Show
)

func (a ActionKind) String() string {
	switch a {
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case Call:
		return "call"
	case Check:
		return "check"
	case Fold:
		return "fold"
	case Return:
		return "return"
	case Win:
		return "win"
	case Muck:
		return "muck"
	case Post:
		return "post"
	case Show:
		return "show"
	default:
		return "unknown"
	}
}

// MarshalText lets the kinds serialise by name.
func (a ActionKind) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// MarshalText lets the game type serialise by name.
func (g GameType) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// MarshalText lets the game serialise by name.
func (g Game) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// MarshalText lets the limit serialise by name.
func (l Limit) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// MarshalText lets the currency serialise by code.
func (c Currency) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Tables is an immutable set of keyword tables. It is safe for concurrent use.
type Tables struct {
	name      string
	gameTypes map[string]GameType
	games     map[string]Game
	limits    map[string]Limit
	currency  map[string]Currency
	verbs     map[string]ActionKind
}

var pokerStars = &Tables{
	name: "pokerstars",
	gameTypes: map[string]GameType{
		"Tournament": Tournament,
		"Cash Game":  CashGame,
	},
	games: map[string]Game{
		"Hold'em":           Holdem,
		"HOLDEM":            Holdem,
		"Omaha":             Omaha,
		"Omaha Hi/Lo":       OmahaHiLo,
		"Razz":              Razz,
		"7 Card Stud":       Stud,
		"7 Card Stud Hi/Lo": StudHiLo,
		"5 Card Draw":       FiveCardDraw,
		"2-7 Triple Draw":   TripleDraw,
	},
	limits: map[string]Limit{
		"No Limit":    NoLimit,
		"NL":          NoLimit,
		"Pot Limit":   PotLimit,
		"PL":          PotLimit,
		"Limit":       FixedLimit,
		"Fixed Limit": FixedLimit,
		"FL":          FixedLimit,
	},
	currency: map[string]Currency{
		"USD": USD,
		"EUR": EUR,
		"GBP": GBP,
	},
	verbs: map[string]ActionKind{
		"bets":      Bet,
		"raises":    Raise,
		"calls":     Call,
		"checks":    Check,
		"folds":     Fold,
		"mucks":     Muck,
		"posts":     Post,
		"shows":     Show,
		"collected": Win,
		"returned":  Return,
	},
}

// Default returns the PokerStars keyword tables.
func Default() *Tables {
	return pokerStars
}

// Name identifies the room the tables belong to.
func (t *Tables) Name() string { return t.name }

// GameType looks up a game type keyword such as "Tournament".
func (t *Tables) GameType(key string) (GameType, error) {
	return find(t.gameTypes, "game type", key)
}

// Game looks up a game name such as "Hold'em".
func (t *Tables) Game(key string) (Game, error) {
	return find(t.games, "game", key)
}

// Limit looks up a limit keyword such as "No Limit".
func (t *Tables) Limit(key string) (Limit, error) {
	return find(t.limits, "limit", key)
}

// Currency looks up an ISO currency code.
func (t *Tables) Currency(key string) (Currency, error) {
	return find(t.currency, "currency", key)
}

// ActionVerb looks up the verb of a "name: verb ..." action line.
func (t *Tables) ActionVerb(key string) (ActionKind, error) {
	return find(t.verbs, "action", key)
}

func find[T any](table map[string]T, kind, key string) (T, error) {
	v, ok := table[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, kind, key)
	}
	return v, nil
}
