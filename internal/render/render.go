// Package render prints a parsed hand as a compact, optionally coloured,
// text summary for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/starshand/internal/deck"
	"github.com/lox/starshand/internal/handhistory"
	"github.com/lox/starshand/internal/lookup"
)

// Options controls rendering.
type Options struct {
	// Color enables ANSI styling. When false the output is plain text.
	Color bool
}

// Hand writes a readable view of h to w.
func Hand(w io.Writer, h *handhistory.HandHistory, opts Options) error {
	p := printer{s: newStyles(w, opts.Color)}
	p.header(h)
	p.seats(h)
	p.actions(h)
	p.summary(h)
	_, err := io.WriteString(w, p.b.String())
	return err
}

type printer struct {
	b strings.Builder
	s styles
}

func (p *printer) line(parts ...string) {
	p.b.WriteString(strings.Join(parts, " "))
	p.b.WriteByte('\n')
}

func (p *printer) header(h *handhistory.HandHistory) {
	p.line(
		p.s.header.Render("Hand #"+h.ID),
		p.s.info.Render(fmt.Sprintf("Tournament #%s, Level %s (%s/%s)", h.TournamentID, h.Level, h.SmallBlind, h.BigBlind)),
	)
	p.line(p.s.muted.Render(fmt.Sprintf("%s %s, $%s+$%s %s, %s",
		h.Game, h.Limit,
		h.BuyIn.StringFixed(2), h.Rake.StringFixed(2), h.Currency,
		h.Date.Format("2006-01-02 15:04:05 MST"))))
	p.line(p.s.muted.Render(fmt.Sprintf("Table '%s' %d-max", h.TableName, h.MaxSeats)))
	p.line()
}

func (p *printer) seats(h *handhistory.HandHistory) {
	for _, pl := range h.Players() {
		parts := []string{fmt.Sprintf("Seat %d: %s (%d)", pl.Seat, pl.Name, pl.Stack)}
		if pl.Seat == h.ButtonSeat {
			parts = append(parts, p.s.button.Render("[button]"))
		}
		if pl.SittingOut {
			parts = append(parts, p.s.muted.Render("[sitting out]"))
		}
		if pl.Seat == h.HeroSeat {
			parts[0] = p.s.hero.Render(parts[0])
			parts = append(parts, p.cards(pl.Combo.Cards()),
				p.s.muted.Render(fmt.Sprintf("%s %.0f%%", pl.Combo.Shorthand(), pl.Combo.Percentile()*100)))
		}
		p.line(parts...)
	}
	p.line()
}

func (p *printer) actions(h *handhistory.HandHistory) {
	if len(h.Posts) > 0 {
		p.line(p.s.street.Render("POSTS"))
		for _, a := range h.Posts {
			p.line(" ", p.describe(a))
		}
	}
	for _, street := range h.Streets() {
		title := []string{p.s.street.Render(strings.ToUpper(street.Name))}
		if cards := streetCards(h, street.Name); len(cards) > 0 {
			title = append(title, p.cards(cards))
		}
		title = append(title, p.s.muted.Render("pot "+street.Pot.String()))
		p.line(title...)
		for _, a := range street.Actions {
			p.line(" ", p.describe(a))
		}
	}
	if h.ShowDown {
		p.line(p.s.street.Render("SHOW DOWN"))
		for _, a := range h.ShowdownActions {
			p.line(" ", p.describe(a))
		}
		for _, r := range h.Results {
			p.line(" ", p.s.muted.Render(r))
		}
	}
	p.line()
}

func (p *printer) summary(h *handhistory.HandHistory) {
	if board := h.Board.Cards(); len(board) > 0 {
		p.line("Board", p.cards(board))
	}
	p.line(fmt.Sprintf("Total pot %d | Rake %d", h.TotalPot, h.PotRake))
	p.line("Winners:", p.s.winner.Render(strings.Join(h.Winners, ", ")))
}

func (p *printer) describe(a handhistory.Action) string {
	var text string
	switch a.Kind {
	case lookup.Bet:
		text = fmt.Sprintf("%s bets %s", a.Player, a.Amount.Decimal)
	case lookup.Raise:
		text = fmt.Sprintf("%s raises to %s", a.Player, a.To.Decimal)
	case lookup.Call:
		text = fmt.Sprintf("%s calls %s", a.Player, a.Amount.Decimal)
	case lookup.Check:
		text = a.Player + " checks"
	case lookup.Fold:
		text = a.Player + " folds"
	case lookup.Post:
		text = fmt.Sprintf("%s posts %s %s", a.Player, a.Posted, a.Amount.Decimal)
	case lookup.Return:
		text = fmt.Sprintf("%s takes back %s", a.Player, a.Amount.Decimal)
	case lookup.Win:
		return p.s.positive.Render(fmt.Sprintf("%s collects %s", a.Player, a.Amount.Decimal))
	case lookup.Muck:
		text = a.Player + " mucks"
	case lookup.Show:
		return p.s.action.Render(a.Player+" shows") + " " + p.cards(a.Cards)
	default:
		text = fmt.Sprintf("%s %s", a.Player, a.Kind)
	}
	if a.AllIn {
		text += " (all-in)"
	}
	return p.s.action.Render(text)
}

func (p *printer) cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = p.s.redCard.Render(c.Token())
		} else {
			parts[i] = p.s.card.Render(c.Token())
		}
	}
	return strings.Join(parts, " ")
}

func streetCards(h *handhistory.HandHistory, street string) []deck.Card {
	switch street {
	case "flop":
		return h.Board.Flop
	case "turn":
		return []deck.Card{h.Board.Turn}
	case "river":
		return []deck.Card{h.Board.River}
	}
	return nil
}
