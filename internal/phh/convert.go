package phh

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lox/starshand/internal/handhistory"
	"github.com/lox/starshand/internal/lookup"
)

// ErrUnsupportedVariant is returned for games PHH has no variant code for.
var ErrUnsupportedVariant = errors.New("phh: unsupported variant")

// variantCode maps game and limit to the PHH variant code.
func variantCode(game lookup.Game, limit lookup.Limit) (string, error) {
	switch {
	case game == lookup.Holdem && limit == lookup.NoLimit:
		return "NT", nil
	case game == lookup.Holdem && limit == lookup.FixedLimit:
		return "FT", nil
	case game == lookup.Omaha && limit == lookup.PotLimit:
		return "PO", nil
	}
	return "", fmt.Errorf("%w: %s %s", ErrUnsupportedVariant, game, limit)
}

// FromHand converts a parsed hand to PHH. Players are ordered from the small
// blind round to the button. Only the hero's hole cards are dealt face up;
// everyone else is dealt "????".
func FromHand(h *handhistory.HandHistory) (*HandHistory, error) {
	variant, err := variantCode(h.Game, h.Limit)
	if err != nil {
		return nil, err
	}

	order := positionOrder(h)
	index := make(map[string]int, len(order))
	for i, p := range order {
		index[p.Name] = i
	}

	hist := &HandHistory{
		Variant:           variant,
		Table:             h.TableName,
		SeatCount:         h.MaxSeats,
		Seats:             make([]int, len(order)),
		Antes:             make([]int, len(order)),
		BlindsOrStraddles: make([]int, len(order)),
		MinBet:            chips(h.BigBlind),
		StartingStacks:    make([]int, len(order)),
		FinishingStacks:   make([]int, len(order)),
		Winnings:          make([]int, len(order)),
		Actions:           make([]string, 0, len(order)+16),
		Players:           make([]string, len(order)),
		HandID:            h.ID,
		Casino:            "PokerStars",
		Event:             "Tournament #" + h.TournamentID,
		Currency:          h.Currency.String(),
		Timestamp:         h.Date,
	}
	for i, p := range order {
		hist.Seats[i] = p.Seat
		hist.StartingStacks[i] = p.Stack
		hist.Players[i] = p.Name
		hist.Actions = append(hist.Actions, fmt.Sprintf("d dh p%d %s", i+1, FormatHoleCards(p.Combo)))
	}

	ledger := newLedger()
	for _, post := range h.Posts {
		i, ok := index[post.Player]
		if !ok {
			return nil, fmt.Errorf("phh: post by unseated player %q", post.Player)
		}
		amount := chips(post.Amount.Decimal)
		switch post.Posted {
		case handhistory.PostAnte:
			hist.Antes[i] += amount
		default:
			hist.BlindsOrStraddles[i] += amount
		}
		ledger.apply(post, h.BigBlind)
	}

	for _, street := range h.Streets() {
		if board := boardDeal(h, street.Name); board != "" {
			hist.Actions = append(hist.Actions, board)
			ledger.nextStreet()
		}
		if err := appendActions(hist, index, ledger, street.Actions, h.BigBlind); err != nil {
			return nil, err
		}
	}
	if err := appendActions(hist, index, ledger, h.ShowdownActions, h.BigBlind); err != nil {
		return nil, err
	}

	for i, p := range order {
		won := chips(ledger.won[p.Name])
		hist.Winnings[i] = won
		hist.FinishingStacks[i] = p.Stack - chips(ledger.paid[p.Name]) + won
	}

	populateTimeFields(hist)
	return hist, nil
}

func appendActions(hist *HandHistory, index map[string]int, l *ledger, actions []handhistory.Action, bigBlind decimal.Decimal) error {
	for _, a := range actions {
		i, ok := index[a.Player]
		if !ok {
			return fmt.Errorf("phh: action by unseated player %q", a.Player)
		}
		l.apply(a, bigBlind)
		if formatted, ok := FormatAction(i, a); ok {
			hist.Actions = append(hist.Actions, formatted)
		}
	}
	return nil
}

func boardDeal(h *handhistory.HandHistory, street string) string {
	switch street {
	case "flop":
		return "d db " + FormatCards(h.Board.Flop)
	case "turn":
		return "d db " + h.Board.Turn.Token()
	case "river":
		return "d db " + h.Board.River.Token()
	}
	return ""
}

// positionOrder lists the occupied seats starting with the small blind: the
// button itself heads-up, otherwise the first seat after it.
func positionOrder(h *handhistory.HandHistory) []handhistory.Player {
	players := h.Players()
	start := 0
	for i, p := range players {
		if p.Seat == h.ButtonSeat {
			start = i
			if len(players) > 2 {
				start = (i + 1) % len(players)
			}
			break
		}
	}
	order := make([]handhistory.Player, 0, len(players))
	for i := range players {
		order = append(order, players[(start+i)%len(players)])
	}
	return order
}

// ledger follows each player's chips into and out of the pot.
type ledger struct {
	paid   map[string]decimal.Decimal
	won    map[string]decimal.Decimal
	street map[string]decimal.Decimal
}

func newLedger() *ledger {
	return &ledger{
		paid:   make(map[string]decimal.Decimal),
		won:    make(map[string]decimal.Decimal),
		street: make(map[string]decimal.Decimal),
	}
}

func (l *ledger) nextStreet() {
	l.street = make(map[string]decimal.Decimal)
}

func (l *ledger) put(player string, amount, live decimal.Decimal) {
	l.paid[player] = l.paid[player].Add(amount)
	l.street[player] = l.street[player].Add(live)
}

func (l *ledger) apply(a handhistory.Action, bigBlind decimal.Decimal) {
	amount := a.Amount.Decimal
	switch a.Kind {
	case lookup.Bet, lookup.Call:
		l.put(a.Player, amount, amount)
	case lookup.Raise:
		delta := a.To.Decimal.Sub(l.street[a.Player])
		l.put(a.Player, delta, delta)
	case lookup.Post:
		switch a.Posted {
		case handhistory.PostAnte:
			l.put(a.Player, amount, decimal.Zero)
		case handhistory.PostDeadBlinds:
			l.put(a.Player, amount, decimal.Min(amount, bigBlind))
		default:
			l.put(a.Player, amount, amount)
		}
	case lookup.Return:
		l.put(a.Player, amount.Neg(), amount.Neg())
	case lookup.Win:
		l.won[a.Player] = l.won[a.Player].Add(amount)
	}
}

func chips(d decimal.Decimal) int {
	return int(d.IntPart())
}

func populateTimeFields(hist *HandHistory) {
	t := hist.Timestamp
	if t.IsZero() {
		return
	}
	utc := t.UTC()
	hist.Time = utc.Format("15:04:05")
	hist.TimeZone = "UTC"
	hist.Day = utc.Day()
	hist.Month = int(utc.Month())
	hist.Year = utc.Year()
}
