package handhistory

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Example:
// PokerStars Hand #105024000105: Tournament #797469411, $3.19+$0.31 USD Hold'em No Limit - Level I (10/20) - 2013/10/04 13:53:27 CET [2013/10/04 7:53:27 ET]
var headerRe = regexp.MustCompile(strings.Join([]string{
	`^PokerStars Hand #(?P<ident>\d+): `,
	`(?P<game_type>Tournament) `,
	`#(?P<tournament_ident>\d+), `,
	`\$(?P<buyin>\d+\.\d{2})\+`,
	`\$(?P<rake>\d+\.\d{2}) `,
	`(?P<currency>[A-Z]{3}) `,
	`(?P<game>.+?) `,
	`(?P<limit>No Limit|Pot Limit|Limit) `,
	`- Level (?P<level>[^ ]+) `,
	`\((?P<sb>\d+(?:\.\d{2})?)/(?P<bb>\d+(?:\.\d{2})?)\) `,
	`- .* `,
	`\[(?P<date>\d{4}/\d{2}/\d{2} \d{1,2}:\d{2}:\d{2}) ET\]$`,
}, ""))

const dateLayout = "2006/01/02 15:04:05"

func (p *Parser) parseHeader(s *sections, h *HandHistory) error {
	line := s.line(0)
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	group := func(name string) string {
		return m[headerRe.SubexpIndex(name)]
	}

	var err error
	if h.GameType, err = p.lookup.GameType(group("game_type")); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if h.Game, err = p.lookup.Game(group("game")); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if h.Limit, err = p.lookup.Limit(group("limit")); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if h.Currency, err = p.lookup.Currency(group("currency")); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	// The grammar only admits well-formed numbers, so these cannot fail.
	h.BuyIn = decimal.RequireFromString(group("buyin"))
	h.Rake = decimal.RequireFromString(group("rake"))
	h.SmallBlind = decimal.RequireFromString(group("sb"))
	h.BigBlind = decimal.RequireFromString(group("bb"))

	date, err := time.ParseInLocation(dateLayout, group("date"), p.location)
	if err != nil {
		return fmt.Errorf("%w: date %q: %v", ErrMalformedHeader, group("date"), err)
	}
	h.Date = date.UTC()

	h.ID = group("ident")
	h.TournamentID = group("tournament_ident")
	h.Level = group("level")
	return nil
}
