package handhistory

import (
	"regexp"
	"strings"
	"time"
	_ "time/tzdata" // America/New_York on hosts without zoneinfo

	"github.com/rs/zerolog"

	"github.com/lox/starshand/internal/lookup"
)

// DefaultTimeZone is the zone PokerStars writes its bracketed "ET" timestamps in.
const DefaultTimeZone = "America/New_York"

// Lookup supplies the keyword tables the parser resolves enums through.
type Lookup interface {
	GameType(key string) (lookup.GameType, error)
	Game(key string) (lookup.Game, error)
	Limit(key string) (lookup.Limit, error)
	Currency(key string) (lookup.Currency, error)
	ActionVerb(key string) (lookup.ActionKind, error)
}

// Config controls a Parser. Zero fields take defaults.
type Config struct {
	// Location is the zone header timestamps are interpreted in.
	Location *time.Location
	// Lookup resolves keywords to enums. Defaults to lookup.Default().
	Lookup Lookup
}

// Parser turns hand text into a HandHistory. It holds no per-hand state and
// is safe for concurrent use.
type Parser struct {
	location *time.Location
	lookup   Lookup
	logger   zerolog.Logger
}

var eastern = mustLoadLocation(DefaultTimeZone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// NewParser creates a parser that logs stage progress at debug level.
func NewParser(logger zerolog.Logger, cfg Config) *Parser {
	if cfg.Location == nil {
		cfg.Location = eastern
	}
	if cfg.Lookup == nil {
		cfg.Lookup = lookup.Default()
	}
	return &Parser{
		location: cfg.Location,
		lookup:   cfg.Lookup,
		logger:   logger,
	}
}

var defaultParser = NewParser(zerolog.Nop(), Config{})

// Parse parses one hand with the default configuration.
func Parse(text string) (*HandHistory, error) {
	return defaultParser.Parse(text)
}

// Parse runs the full pipeline over one hand's text. On any error it returns
// nil; a partially built hand is never returned.
func (p *Parser) Parse(text string) (*HandHistory, error) {
	s, err := splitSections(text)
	if err != nil {
		return nil, err
	}

	h := &HandHistory{}
	if err := p.parseHeader(s, h); err != nil {
		return nil, err
	}
	logger := p.logger.With().Str("hand_id", h.ID).Logger()

	postsFrom, err := p.parseTable(s, h)
	if err != nil {
		return nil, err
	}
	if err := p.parseHero(s, h); err != nil {
		return nil, err
	}
	logger.Debug().
		Str("table", h.TableName).
		Int("players", len(h.Players())).
		Str("hero", h.Hero().Name).
		Msg("Parsed seats")

	if err := p.parseStreets(s, h, postsFrom); err != nil {
		return nil, err
	}
	if err := p.parseSummary(s, h); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("total_pot", h.TotalPot).
		Bool("show_down", h.ShowDown).
		Strs("winners", h.Winners).
		Msg("Parsed hand")
	return h, nil
}

var handBreakRe = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// SplitHands splits an export file holding several hands separated by blank
// lines into one text per hand.
func SplitHands(text string) []string {
	text = normalize(text)
	if text == "" {
		return nil
	}
	var hands []string
	for _, chunk := range handBreakRe.Split(text, -1) {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			hands = append(hands, chunk)
		}
	}
	return hands
}
