package handhistory

import (
	"fmt"
	"regexp"

	"github.com/lox/starshand/internal/deck"
)

var tournamentResultRe = regexp.MustCompile(`^.+ (finished the tournament in \d+\S* place|wins the tournament)`)

// parseActions classifies every line from 'from' up to the next section
// marker and feeds the result into b.
func (p *Parser) parseActions(s *sections, from int, b *betting) ([]Action, error) {
	lines := s.span(from)
	actions := make([]Action, 0, len(lines))
	for i, line := range lines {
		a, err := p.parseAction(line)
		if err != nil {
			return nil, lineError(s, from+i, err)
		}
		b.apply(a)
		actions = append(actions, a)
	}
	return actions, nil
}

func (p *Parser) parseStreet(s *sections, name string, from int, b *betting) (*Street, error) {
	actions, err := p.parseActions(s, from, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Street{
		Name:      name,
		Actions:   actions,
		Pot:       b.pot,
		Collected: b.collected,
	}, nil
}

// parseStreets reads the blinds posted after the seat block, then preflop,
// flop, turn, river and the showdown. A missing street ends the walk: a hand
// without a FLOP section has no turn or river either.
func (p *Parser) parseStreets(s *sections, h *HandHistory, postsFrom int) error {
	b := newBetting(h.BigBlind)

	posts, err := p.parseActions(s, postsFrom, b)
	if err != nil {
		return fmt.Errorf("posts: %w", err)
	}
	h.Posts = posts

	holeCards, _ := s.find(SectionHoleCards)
	preflop, err := p.parseStreet(s, "preflop", holeCards+2, b)
	if err != nil {
		return err
	}
	h.Preflop = *preflop

	if h.Flop, err = p.parseFlop(s, b); err != nil {
		return err
	}
	if h.Flop != nil {
		if h.Turn, err = p.parseLaterStreet(s, SectionTurn, "turn", b); err != nil {
			return err
		}
	}
	if h.Turn != nil {
		if h.River, err = p.parseLaterStreet(s, SectionRiver, "river", b); err != nil {
			return err
		}
	}
	return p.parseShowdown(s, h, b)
}

// parseFlop reads the board line that follows FLOP, then the flop actions.
func (p *Parser) parseFlop(s *sections, b *betting) (*Street, error) {
	kw, ok := s.find(SectionFlop)
	if !ok {
		return nil, nil
	}
	cards, err := parseFlopCards(s.line(kw + 1))
	if err != nil {
		return nil, lineError(s, kw+1, err)
	}
	b.nextStreet()
	street, err := p.parseStreet(s, "flop", kw+2, b)
	if err != nil {
		return nil, err
	}
	street.Cards = cards
	return street, nil
}

// parseLaterStreet handles turn and river, whose cards come from the summary.
func (p *Parser) parseLaterStreet(s *sections, sec Section, name string, b *betting) (*Street, error) {
	kw, ok := s.find(sec)
	if !ok {
		return nil, nil
	}
	b.nextStreet()
	return p.parseStreet(s, name, kw+2, b)
}

func (p *Parser) parseShowdown(s *sections, h *HandHistory, b *betting) error {
	kw, ok := s.find(SectionShowDown)
	if !ok {
		return nil
	}
	b.nextStreet()
	from := kw + 1
	lines := s.span(from)
	actions := make([]Action, 0, len(lines))
	for i, line := range lines {
		// Eliminations and the tournament win are announced here without a
		// colon; they carry no chips.
		if classifyLine(line) == lineUnrecognized && tournamentResultRe.MatchString(line) {
			h.Results = append(h.Results, line)
			continue
		}
		a, err := p.parseAction(line)
		if err != nil {
			return fmt.Errorf("showdown: %w", lineError(s, from+i, err))
		}
		b.apply(a)
		actions = append(actions, a)
	}
	h.ShowdownActions = actions
	return nil
}

// parseFlopCards reads "[2s 6d 6h]" by fixed offsets.
func parseFlopCards(line string) ([]deck.Card, error) {
	if len(line) < 10 || line[0] != '[' || line[3] != ' ' || line[6] != ' ' || line[9] != ']' {
		return nil, fmt.Errorf("%w: flop board", ErrUnrecognizedActionLine)
	}
	cards := make([]deck.Card, 0, 3)
	for _, token := range []string{line[1:3], line[4:6], line[7:9]} {
		c, err := deck.ParseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
