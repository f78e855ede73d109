package handhistory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lox/starshand/internal/deck"
	"github.com/lox/starshand/internal/lookup"
)

// lineKind is the shape of an action line. Shapes are tested in declaration
// order and the first match wins.
type lineKind int

const (
	lineUnrecognized lineKind = iota
	lineUncalled              // Uncalled bet (80) returned to W2lkm2n
	lineCollected             // W2lkm2n collected 150 from pot
	lineNoShow                // W2lkm2n: doesn't show hand
	linePlayerAction          // W2lkm2n: raises 40 to 60
)

const allInSuffix = " and is all-in"

func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "Uncalled bet"):
		return lineUncalled
	case strings.Contains(line, "collected"):
		return lineCollected
	case strings.Contains(line, "doesn't show hand"):
		return lineNoShow
	case strings.Contains(line, ":"):
		return linePlayerAction
	default:
		return lineUnrecognized
	}
}

func (p *Parser) parseAction(line string) (Action, error) {
	switch classifyLine(line) {
	case lineUncalled:
		return parseUncalled(line)
	case lineCollected:
		return parseCollected(line)
	case lineNoShow:
		return parseNoShow(line)
	case linePlayerAction:
		return p.parsePlayerAction(line)
	case lineUnrecognized:
		return Action{}, ErrUnrecognizedActionLine
	}
	return Action{}, ErrUnrecognizedActionLine
}

func parseUncalled(line string) (Action, error) {
	open := strings.IndexByte(line, '(')
	end := strings.IndexByte(line, ')')
	if open < 0 || end < open {
		return Action{}, ErrUnrecognizedActionLine
	}
	amount, err := parseAmount(line[open+1 : end])
	if err != nil {
		return Action{}, err
	}
	_, name, ok := strings.Cut(line[end+1:], " returned to ")
	if !ok || name == "" {
		return Action{}, ErrUnrecognizedActionLine
	}
	return Action{Kind: lookup.Return, Player: name, Amount: decimal.NewNullDecimal(amount)}, nil
}

func parseCollected(line string) (Action, error) {
	// Split on the last occurrence; names may contain the word.
	i := strings.LastIndex(line, " collected ")
	if i <= 0 {
		return Action{}, ErrUnrecognizedActionLine
	}
	name := line[:i]
	fields := strings.Fields(line[i+len(" collected "):])
	if len(fields) == 0 {
		return Action{}, ErrUnrecognizedActionLine
	}
	amount, err := parseAmount(fields[0])
	if err != nil {
		return Action{}, err
	}
	return Action{Kind: lookup.Win, Player: name, Amount: decimal.NewNullDecimal(amount)}, nil
}

func parseNoShow(line string) (Action, error) {
	name, _, ok := strings.Cut(line, ": doesn't show hand")
	if !ok || name == "" {
		return Action{}, ErrUnrecognizedActionLine
	}
	return Action{Kind: lookup.Muck, Player: name}, nil
}

// parsePlayerAction handles "name: verb [rest]".
func (p *Parser) parsePlayerAction(line string) (Action, error) {
	name, rest, ok := strings.Cut(line, ": ")
	if !ok || name == "" {
		return Action{}, ErrUnrecognizedActionLine
	}
	verb, rest, _ := strings.Cut(rest, " ")
	kind, err := p.lookup.ActionVerb(verb)
	if err != nil {
		return Action{}, err
	}

	a := Action{Kind: kind, Player: name}
	if trimmed, found := strings.CutSuffix(rest, allInSuffix); found {
		rest, a.AllIn = trimmed, true
	} else if rest == strings.TrimSpace(allInSuffix) {
		rest, a.AllIn = "", true
	}

	switch kind {
	case lookup.Bet, lookup.Call, lookup.Win, lookup.Return:
		amount, err := singleAmount(rest)
		if err != nil {
			return Action{}, err
		}
		a.Amount = decimal.NewNullDecimal(amount)
	case lookup.Raise:
		// raises 40 to 60
		fields := strings.Fields(rest)
		if len(fields) != 3 || fields[1] != "to" {
			return Action{}, ErrUnrecognizedActionLine
		}
		by, err := parseAmount(fields[0])
		if err != nil {
			return Action{}, err
		}
		to, err := parseAmount(fields[2])
		if err != nil {
			return Action{}, err
		}
		a.Amount = decimal.NewNullDecimal(by)
		a.To = decimal.NewNullDecimal(to)
	case lookup.Post:
		kind, amount, err := parsePost(rest)
		if err != nil {
			return Action{}, err
		}
		a.Posted = kind
		a.Amount = decimal.NewNullDecimal(amount)
	case lookup.Show, lookup.Muck, lookup.Fold, lookup.Check:
		cards, err := bracketedCards(rest)
		if err != nil {
			return Action{}, err
		}
		a.Cards = cards
	}
	return a, nil
}

var postPrefixes = []struct {
	prefix string
	kind   PostKind
}{
	{"small & big blinds ", PostDeadBlinds},
	{"small blind ", PostSmallBlind},
	{"big blind ", PostBigBlind},
	{"the ante ", PostAnte},
}

func parsePost(rest string) (PostKind, decimal.Decimal, error) {
	for _, pp := range postPrefixes {
		if amount, ok := strings.CutPrefix(rest, pp.prefix); ok {
			d, err := singleAmount(amount)
			return pp.kind, d, err
		}
	}
	return PostNone, decimal.Zero, ErrUnrecognizedActionLine
}

func singleAmount(s string) (decimal.Decimal, error) {
	fields := strings.Fields(s)
	if len(fields) != 1 {
		return decimal.Zero, ErrUnrecognizedActionLine
	}
	return parseAmount(fields[0])
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "$"))
	if err != nil || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount %q", ErrUnrecognizedActionLine, s)
	}
	return d, nil
}

// bracketedCards returns the cards in the first [..] group of s, if any.
func bracketedCards(s string) ([]deck.Card, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return nil, nil
	}
	end := strings.IndexByte(s[open:], ']')
	if end < 0 {
		return nil, ErrUnrecognizedActionLine
	}
	var cards []deck.Card
	for _, token := range strings.Fields(s[open+1 : open+end]) {
		c, err := deck.ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// betting tracks the running pot and what each player has put in on the
// current street, so that "raises X to Y" can be turned into chips added.
type betting struct {
	bigBlind  decimal.Decimal
	pot       decimal.Decimal
	collected decimal.Decimal
	street    map[string]decimal.Decimal
}

func newBetting(bigBlind decimal.Decimal) *betting {
	return &betting{
		bigBlind: bigBlind,
		pot:      decimal.Zero,
		street:   make(map[string]decimal.Decimal),
	}
}

// nextStreet carries the pot forward and clears street contributions.
func (b *betting) nextStreet() {
	b.collected = decimal.Zero
	b.street = make(map[string]decimal.Decimal)
}

func (b *betting) add(player string, amount decimal.Decimal) {
	b.street[player] = b.street[player].Add(amount)
	b.pot = b.pot.Add(amount)
}

func (b *betting) apply(a Action) {
	switch a.Kind {
	case lookup.Bet, lookup.Call:
		b.add(a.Player, a.Amount.Decimal)
	case lookup.Raise:
		b.add(a.Player, a.To.Decimal.Sub(b.street[a.Player]))
	case lookup.Post:
		switch a.Posted {
		case PostAnte:
			b.pot = b.pot.Add(a.Amount.Decimal)
		case PostDeadBlinds:
			// Only the big blind part is live; the small blind is dead money.
			live := decimal.Min(a.Amount.Decimal, b.bigBlind)
			b.add(a.Player, live)
			b.pot = b.pot.Add(a.Amount.Decimal.Sub(live))
		default:
			b.add(a.Player, a.Amount.Decimal)
		}
	case lookup.Return:
		b.add(a.Player, a.Amount.Decimal.Neg())
	case lookup.Win:
		b.collected = b.collected.Add(a.Amount.Decimal)
	}
}
