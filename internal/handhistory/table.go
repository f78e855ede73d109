package handhistory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lox/starshand/internal/deck"
)

var (
	tableRe = regexp.MustCompile(`^Table '(?P<name>.*)' (?P<max>\d+)-max Seat #(?P<button>\d+) is the button$`)
	seatRe  = regexp.MustCompile(`^Seat (?P<seat>\d+): (?P<name>.+) \((?P<stack>\d+) in chips(?:, \$[\d.]+ bounty)?\)(?P<out> is sitting out| out of hand.*)?$`)
	heroRe  = regexp.MustCompile(`^Dealt to (?P<name>.+) \[(?P<first>..) (?P<second>..)\]$`)
)

// parseTable reads the table line and the seat block that follows it. It
// returns the index of the first line after the seat block.
func (p *Parser) parseTable(s *sections, h *HandHistory) (int, error) {
	m := tableRe.FindStringSubmatch(s.line(1))
	if m == nil {
		return 0, lineError(s, 1, fmt.Errorf("%w: table line", ErrMissingSeatGrammar))
	}
	h.TableName = m[1]
	h.MaxSeats, _ = strconv.Atoi(m[2])
	button, _ := strconv.Atoi(m[3])
	if h.MaxSeats < 2 || h.MaxSeats > 10 {
		return 0, lineError(s, 1, fmt.Errorf("%w: %d-max table", ErrMissingSeatGrammar, h.MaxSeats))
	}

	h.Seats = make([]Player, h.MaxSeats)
	idx := 2
	for ; idx < len(s.lines); idx++ {
		line := s.lines[idx]
		m := seatRe.FindStringSubmatch(line)
		if m == nil {
			// A seat line we cannot read is an error; anything else ends
			// the block.
			if strings.HasPrefix(line, "Seat ") {
				return 0, lineError(s, idx, ErrMissingSeatGrammar)
			}
			break
		}
		seat, _ := strconv.Atoi(m[1])
		stack, _ := strconv.Atoi(m[3])
		if seat < 1 || seat > h.MaxSeats {
			return 0, lineError(s, idx, fmt.Errorf("%w: seat %d outside 1..%d", ErrMissingSeatGrammar, seat, h.MaxSeats))
		}
		if h.Seats[seat-1].Occupied() {
			return 0, lineError(s, idx, fmt.Errorf("%w: seat %d listed twice", ErrMissingSeatGrammar, seat))
		}
		h.Seats[seat-1] = Player{
			Seat:       seat,
			Name:       m[2],
			Stack:      stack,
			SittingOut: m[4] != "",
		}
	}
	if idx == 2 {
		return 0, lineError(s, idx, fmt.Errorf("%w: no seats", ErrMissingSeatGrammar))
	}

	if button < 1 || button > h.MaxSeats || !h.Seats[button-1].Occupied() {
		return 0, lineError(s, 1, fmt.Errorf("%w: button seat %d is empty", ErrMissingSeatGrammar, button))
	}
	h.ButtonSeat = button
	return idx, nil
}

// parseHero merges the hero's hole cards into their seat. The seat is
// rewritten with a new Player value; Button and Hero both resolve through
// Seats, so neither can observe the record from before the merge.
func (p *Parser) parseHero(s *sections, h *HandHistory) error {
	kw, ok := s.find(SectionHoleCards)
	if !ok {
		return fmt.Errorf("%w: no HOLE CARDS section", ErrMissingHero)
	}
	idx := kw + 1
	m := heroRe.FindStringSubmatch(s.line(idx))
	if m == nil {
		return lineError(s, idx, ErrMissingHero)
	}

	hero, found := h.Player(m[1])
	if !found {
		return lineError(s, idx, fmt.Errorf("%w: %q is not seated", ErrMissingHero, m[1]))
	}
	combo, err := deck.NewCombo(m[2], m[3])
	if err != nil {
		return lineError(s, idx, err)
	}
	hero.Combo = combo
	h.Seats[hero.Seat-1] = hero
	h.HeroSeat = hero.Seat
	return nil
}
