package handhistory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lox/starshand/internal/deck"
	"github.com/lox/starshand/internal/lookup"
)

const position = `(?: \((?:button|small blind|big blind)\))*`

var (
	potRe      = regexp.MustCompile(`^Total pot (\d+) .*\| Rake (\d+)$`)
	boardRe    = regexp.MustCompile(`\[([^\]]*)\]`)
	winnerRe   = regexp.MustCompile(`^Seat (\d{1,2}): (.+?)` + position + ` collected \((\d+(?:\.\d+)?)\)$`)
	showdownRe = regexp.MustCompile(`^Seat (\d{1,2}): (.+?)` + position + ` showed \[[^\]]*\] and won \((\d+(?:\.\d+)?)\)`)
)

// parseSummary reads the pot and board lines and resolves the winners.
func (p *Parser) parseSummary(s *sections, h *HandHistory) error {
	kw, ok := s.find(SectionSummary)
	if !ok {
		return fmt.Errorf("%w: no SUMMARY section", ErrMalformedSummary)
	}

	idx := kw + 1
	m := potRe.FindStringSubmatch(s.line(idx))
	if m == nil {
		return lineError(s, idx, fmt.Errorf("%w: pot line", ErrMalformedSummary))
	}
	h.TotalPot, _ = strconv.Atoi(m[1])
	h.PotRake, _ = strconv.Atoi(m[2])
	idx++

	if strings.HasPrefix(s.line(idx), "Board") {
		if err := p.parseBoard(s.line(idx), h); err != nil {
			return lineError(s, idx, err)
		}
		idx++
	}
	if err := checkBoard(h); err != nil {
		return err
	}

	_, h.ShowDown = s.find(SectionShowDown)
	return p.parseWinners(s, h, idx)
}

// parseBoard takes the turn and river from the summary board line. The first
// three cards repeat the flop, which was already read from the FLOP section.
func (p *Parser) parseBoard(line string, h *HandHistory) error {
	m := boardRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: board line", ErrMalformedSummary)
	}
	tokens := strings.Fields(m[1])
	if len(tokens) > 5 {
		return fmt.Errorf("%w: %d board cards", ErrMalformedSummary, len(tokens))
	}
	cards := make([]deck.Card, len(tokens))
	for i, token := range tokens {
		c, err := deck.ParseCard(token)
		if err != nil {
			return err
		}
		cards[i] = c
	}
	if len(cards) > 3 {
		h.Board.Turn = cards[3]
	}
	if len(cards) > 4 {
		h.Board.River = cards[4]
	}
	return nil
}

// checkBoard enforces flop before turn before river, and that every dealt
// street has its card.
func checkBoard(h *HandHistory) error {
	if h.Flop != nil {
		h.Board.Flop = h.Flop.Cards
	}
	switch {
	case h.Flop == nil && !h.Board.Turn.IsZero():
		return fmt.Errorf("%w: turn card without a flop", ErrMalformedSummary)
	case h.Board.Turn.IsZero() && !h.Board.River.IsZero():
		return fmt.Errorf("%w: river card without a turn", ErrMalformedSummary)
	case (h.Turn != nil) != !h.Board.Turn.IsZero():
		return fmt.Errorf("%w: turn section and board disagree", ErrMalformedSummary)
	case (h.River != nil) != !h.Board.River.IsZero():
		return fmt.Errorf("%w: river section and board disagree", ErrMalformedSummary)
	}
	return nil
}

// parseWinners scans the seat summary lines. Without a showdown the winners
// are the seats that "collected"; with one, the seats that "showed ... and won".
func (p *Parser) parseWinners(s *sections, h *HandHistory, from int) error {
	seen := make(map[string]bool)
	for idx := from; idx < len(s.lines); idx++ {
		line := s.lines[idx]
		var m []string
		if h.ShowDown {
			if !strings.Contains(line, "won") {
				continue
			}
			m = showdownRe.FindStringSubmatch(line)
			if m == nil {
				if strings.Contains(line, " and won ") {
					return lineError(s, idx, fmt.Errorf("%w: showdown winner", ErrMalformedSummary))
				}
				// "won" inside a player name
				continue
			}
		} else {
			if !strings.Contains(line, " collected (") {
				continue
			}
			m = winnerRe.FindStringSubmatch(line)
			if m == nil {
				return lineError(s, idx, fmt.Errorf("%w: collected line", ErrMalformedSummary))
			}
		}

		name := m[2]
		if strings.ContainsAny(name, "()|") {
			return lineError(s, idx, fmt.Errorf("%w: player name %q contains a delimiter", lookup.ErrUnknownEnumValue, name))
		}
		seat, _ := strconv.Atoi(m[1])
		player, ok := h.Player(name)
		if !ok || player.Seat != seat {
			return lineError(s, idx, fmt.Errorf("%w: winner %q is not in seat %d", ErrMalformedSummary, name, seat))
		}
		seen[name] = true
	}
	if len(seen) == 0 {
		return ErrNoWinners
	}

	// Seat order, so output is stable.
	winners := make([]string, 0, len(seen))
	for _, player := range h.Players() {
		if seen[player.Name] {
			winners = append(winners, player.Name)
		}
	}
	h.Winners = winners
	return nil
}
