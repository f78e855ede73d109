package handhistory

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/starshand/internal/deck"
	"github.com/lox/starshand/internal/lookup"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustParse(t *testing.T, text string) *HandHistory {
	t.Helper()
	h, err := Parse(text)
	require.NoError(t, err)
	require.NotNil(t, h)
	return h
}

func TestParseFoldedPreflop(t *testing.T) {
	h := mustParse(t, handFoldPreflop)

	assert.Equal(t, "105026771696", h.ID)
	assert.Equal(t, "797535243", h.TournamentID)
	assert.Equal(t, "I", h.Level)
	assert.Equal(t, time.Date(2013, 10, 4, 15, 22, 20, 0, time.UTC), h.Date)

	assert.Equal(t, "797535243 1", h.TableName)
	assert.Equal(t, 2, h.MaxSeats)
	require.Len(t, h.Players(), 2)

	// The hero is on the button; the button must see the merged combo.
	assert.Equal(t, "Alice", h.Hero().Name)
	assert.Equal(t, h.Hero(), h.Button())
	assert.True(t, h.Button().Combo.Known())
	assert.Equal(t, "QsQh", h.Button().Combo.String())

	assert.Nil(t, h.Flop)
	assert.Nil(t, h.Turn)
	assert.Nil(t, h.River)
	assert.Empty(t, h.Board.Cards())
	assert.False(t, h.ShowDown)
	assert.Equal(t, []string{"Alice"}, h.Winners)

	require.Len(t, h.Posts, 2)
	assert.Equal(t, PostSmallBlind, h.Posts[0].Posted)
	assert.Equal(t, PostBigBlind, h.Posts[1].Posted)

	require.Len(t, h.Preflop.Actions, 5)
	raise := h.Preflop.Actions[0]
	assert.Equal(t, lookup.Raise, raise.Kind)
	assert.True(t, raise.Amount.Decimal.Equal(dec("40")))
	assert.True(t, raise.To.Decimal.Equal(dec("60")))
	assert.Equal(t, lookup.Fold, h.Preflop.Actions[1].Kind)
	assert.False(t, h.Preflop.Actions[1].Amount.Valid)
	assert.Equal(t, lookup.Return, h.Preflop.Actions[2].Kind)
	assert.Equal(t, lookup.Win, h.Preflop.Actions[3].Kind)
	assert.Equal(t, lookup.Muck, h.Preflop.Actions[4].Kind)

	assert.True(t, h.Preflop.Pot.Equal(dec("40")), "pot %s", h.Preflop.Pot)
	assert.True(t, h.Preflop.Collected.Equal(dec("40")))
	assert.Equal(t, 40, h.TotalPot)
}

func TestParseSplitShowdown(t *testing.T) {
	h := mustParse(t, handSplitShowdown)

	assert.True(t, h.ShowDown)
	assert.ElementsMatch(t, []string{"santy312", "W2lkm2n"}, h.Winners)
	assert.True(t, h.IsWinner("santy312"))
	assert.False(t, h.IsWinner("flettl2"))

	require.NotNil(t, h.Flop)
	require.NotNil(t, h.Turn)
	require.NotNil(t, h.River)
	assert.Equal(t, deck.MustParseCards("2s6dAhKc7d"), h.Board.Cards())
	assert.Equal(t, deck.MustParseCards("2s6dAh"), h.Flop.Cards)
	assert.Nil(t, h.Turn.Cards)

	// 6-max with seat 4 empty.
	require.Len(t, h.Seats, 6)
	assert.False(t, h.Seats[3].Occupied())
	assert.Len(t, h.Players(), 5)
	assert.Equal(t, 3, h.Button().Seat)
	assert.Equal(t, "W2lkm2n", h.Button().Name)

	pots := []string{"105", "225", "225", "425"}
	for i, street := range h.Streets() {
		assert.True(t, street.Pot.Equal(dec(pots[i])), "%s pot %s", street.Name, street.Pot)
	}

	require.Len(t, h.ShowdownActions, 4)
	shows := h.ShowdownActions[0]
	assert.Equal(t, lookup.Show, shows.Kind)
	assert.Equal(t, deck.MustParseCards("AdJc"), shows.Cards)
	// Shown cards stay on the action; only the hero carries a combo.
	santy, ok := h.Player("santy312")
	require.True(t, ok)
	assert.False(t, santy.Combo.Known())
}

func TestParseKnockoutKeepsTournamentResults(t *testing.T) {
	h := mustParse(t, handKnockout)

	assert.True(t, h.ShowDown)
	assert.Equal(t, []string{"Alice"}, h.Winners)
	assert.Equal(t, []string{
		"Bob finished the tournament in 2nd place",
		"Alice wins the tournament and receives $6.38 - congratulations!",
	}, h.Results)

	require.Len(t, h.ShowdownActions, 3)
	assert.Equal(t, lookup.Win, h.ShowdownActions[2].Kind)
	assert.True(t, h.River.Pot.Equal(dec("1000")), "river pot %s", h.River.Pot)
}

func TestParseRejectsUnknownLineInShowdown(t *testing.T) {
	text := strings.Replace(handKnockout,
		"Bob finished the tournament in 2nd place",
		"Bob finished second, probably", 1)
	_, err := Parse(text)
	assert.ErrorIs(t, err, ErrUnrecognizedActionLine)
}

func TestBoardJSONRoundTripWithUnsetCards(t *testing.T) {
	h := mustParse(t, handFoldPreflop)

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	data, err := json.Marshal(h.Board)
	require.NoError(t, err)
	var board Board
	require.NoError(t, json.Unmarshal(data, &board))
	assert.Equal(t, h.Board, board)
	assert.True(t, board.Turn.IsZero())
}

func TestParseUncalledBetOnFlop(t *testing.T) {
	h := mustParse(t, handUncalledFlop)

	assert.True(t, h.BuyIn.Equal(dec("10.00")))
	assert.True(t, h.Rake.Equal(dec("1.00")))
	assert.Equal(t, lookup.USD, h.Currency)
	assert.Equal(t, lookup.Tournament, h.GameType)
	assert.Equal(t, lookup.Holdem, h.Game)
	assert.Equal(t, lookup.NoLimit, h.Limit)
	assert.True(t, h.SmallBlind.Equal(dec("50")))
	assert.True(t, h.BigBlind.Equal(dec("100")))

	require.Len(t, h.Seats, 9)
	assert.Len(t, h.Players(), 5)
	flettl2, ok := h.Player("flettl2")
	require.True(t, ok)
	assert.True(t, flettl2.SittingOut)

	returns := 0
	for _, s := range h.Streets() {
		for _, a := range s.Actions {
			if a.Kind == lookup.Return {
				returns++
				assert.Equal(t, "W2lkm2n", a.Player)
				assert.True(t, a.Amount.Decimal.Equal(dec("400")))
			}
		}
	}
	assert.Equal(t, 1, returns)

	assert.False(t, h.ShowDown)
	assert.Equal(t, []string{"W2lkm2n"}, h.Winners)
	require.NotNil(t, h.Flop)
	assert.Nil(t, h.Turn)
	assert.Nil(t, h.River)
	assert.True(t, h.Board.Turn.IsZero())
	assert.True(t, h.Preflop.Pot.Equal(dec("800")), "preflop pot %s", h.Preflop.Pot)
	assert.True(t, h.Flop.Pot.Equal(dec("800")), "flop pot %s", h.Flop.Pot)
}

func TestParseTurnAllIn(t *testing.T) {
	h := mustParse(t, handTurnAllIn)

	assert.Equal(t, lookup.EUR, h.Currency)
	assert.Equal(t, "Hero42", h.Hero().Name)
	assert.Equal(t, "Kabuki_13", h.Button().Name)
	assert.False(t, h.Button().Combo.Known())

	require.NotNil(t, h.Turn)
	assert.Nil(t, h.River)
	assert.Equal(t, deck.MustParseCard("2h"), h.Board.Turn)
	assert.True(t, h.Board.River.IsZero())

	bet := h.Turn.Actions[0]
	assert.Equal(t, lookup.Bet, bet.Kind)
	assert.True(t, bet.AllIn)
	assert.True(t, bet.Amount.Decimal.Equal(dec("820")))
	assert.True(t, h.Turn.Pot.Equal(dec("750")))
	assert.Equal(t, []string{"Hero42"}, h.Winners)
}

func TestParsedHandsAreConsistent(t *testing.T) {
	for name, text := range allHands {
		t.Run(name, func(t *testing.T) {
			h := mustParse(t, text)

			// Exactly one hero with a known combo.
			known := 0
			for _, p := range h.Players() {
				if p.Combo.Known() {
					known++
					assert.Equal(t, h.HeroSeat, p.Seat)
				}
			}
			assert.Equal(t, 1, known)

			assert.True(t, h.Button().Occupied())
			assert.NotEmpty(t, h.Winners)

			// Pots never shrink from one street to the next, and the last one
			// matches the summary.
			streets := h.Streets()
			for i := 1; i < len(streets); i++ {
				assert.True(t, streets[i].Pot.GreaterThanOrEqual(streets[i-1].Pot))
				assert.True(t, streets[i].Pot.GreaterThanOrEqual(streets[i-1].Collected))
			}
			last := streets[len(streets)-1]
			assert.True(t, last.Pot.Equal(decimal.NewFromInt(int64(h.TotalPot))), "last pot %s total %d", last.Pot, h.TotalPot)

			marker := " collected ("
			if h.ShowDown {
				marker = " and won ("
			}
			for _, w := range h.Winners {
				assert.True(t, hasSummaryLine(text, w, marker), "%s has no %q line", w, marker)
			}
		})
	}
}

func hasSummaryLine(text, name, marker string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Seat ") && strings.Contains(line, " "+name+" ") && strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func TestParseIsSafeForConcurrentUse(t *testing.T) {
	parser := NewParser(zerolog.Nop(), Config{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, text := range allHands {
			wg.Add(1)
			go func(text string) {
				defer wg.Done()
				_, err := parser.Parse(text)
				assert.NoError(t, err)
			}(text)
		}
	}
	wg.Wait()
}

func TestParseWithLocation(t *testing.T) {
	parser := NewParser(zerolog.Nop(), Config{Location: time.UTC})
	h, err := parser.Parse(handFoldPreflop)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2013, 10, 4, 11, 22, 20, 0, time.UTC), h.Date)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "empty",
			text:    " \n\n",
			wantErr: ErrEmptyInput,
		},
		{
			name:    "header drift",
			text:    strings.Replace(handFoldPreflop, "PokerStars Hand", "PokerStars Game", 1),
			wantErr: ErrMalformedHeader,
		},
		{
			name:    "unknown currency",
			text:    strings.Replace(handFoldPreflop, "USD", "JPY", 1),
			wantErr: ErrUnknownEnumValue,
		},
		{
			name:    "unknown game",
			text:    strings.Replace(handFoldPreflop, "Hold'em", "Courchevel", 1),
			wantErr: ErrUnknownEnumValue,
		},
		{
			name:    "bad table line",
			text:    strings.Replace(handFoldPreflop, "2-max", "two-max", 1),
			wantErr: ErrMissingSeatGrammar,
		},
		{
			name:    "seat outside table",
			text:    strings.Replace(handFoldPreflop, "Seat 2: Bob (1500 in chips)", "Seat 7: Bob (1500 in chips)", 1),
			wantErr: ErrMissingSeatGrammar,
		},
		{
			name:    "garbled seat",
			text:    strings.Replace(handFoldPreflop, "Seat 2: Bob (1500 in chips)", "Seat 2: Bob (lots in chips)", 1),
			wantErr: ErrMissingSeatGrammar,
		},
		{
			name:    "empty button seat",
			text:    strings.Replace(handSplitShowdown, "Seat #3 is the button", "Seat #4 is the button", 1),
			wantErr: ErrMissingSeatGrammar,
		},
		{
			name:    "hero not seated",
			text:    strings.Replace(handFoldPreflop, "Dealt to Alice", "Dealt to Carol", 1),
			wantErr: ErrMissingHero,
		},
		{
			name:    "unknown verb",
			text:    strings.Replace(handFoldPreflop, "Bob: folds", "Bob: sings", 1),
			wantErr: ErrUnknownEnumValue,
		},
		{
			name:    "unrecognized line",
			text:    strings.Replace(handFoldPreflop, "Bob: folds", "Bob has timed out", 1),
			wantErr: ErrUnrecognizedActionLine,
		},
		{
			name:    "bet without amount",
			text:    strings.Replace(handSplitShowdown, "santy312: bets 60", "santy312: bets sixty", 1),
			wantErr: ErrUnrecognizedActionLine,
		},
		{
			name:    "bad flop card",
			text:    strings.Replace(handSplitShowdown, "*** FLOP *** [2s 6d Ah]", "*** FLOP *** [2s 6d Ax]", 1),
			wantErr: deck.ErrInvalidCard,
		},
		{
			name:    "pot line",
			text:    strings.Replace(handFoldPreflop, "Total pot 40 | Rake 0", "Total pot forty", 1),
			wantErr: ErrMalformedSummary,
		},
		{
			name:    "turn card without turn section",
			text:    strings.Replace(handUncalledFlop, "Board [Td 4s 3h]", "Board [Td 4s 3h 2c]", 1),
			wantErr: ErrMalformedSummary,
		},
		{
			name:    "no winners",
			text:    strings.Replace(handFoldPreflop, "Seat 1: Alice (button) (small blind) collected (40)", "Seat 1: Alice (button) (small blind) folded before Flop", 1),
			wantErr: ErrNoWinners,
		},
		{
			name:    "winner name with delimiter",
			text:    strings.ReplaceAll(handFoldPreflop, "Alice", "Al|ce"),
			wantErr: ErrUnknownEnumValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Parse(tt.text)
			require.Error(t, err)
			assert.Nil(t, h, "no partial hand on error")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLineErrorCarriesOffendingText(t *testing.T) {
	text := strings.Replace(handFoldPreflop, "Bob: folds", "Bob has timed out", 1)
	_, err := Parse(text)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, "Bob has timed out", lineErr.Text)
	assert.Contains(t, err.Error(), "Bob has timed out")
}

func TestSplitHands(t *testing.T) {
	file := "\ufeff" + handFoldPreflop + "\n\n\n" + strings.ReplaceAll(handSplitShowdown, "\n", "\r\n") + "\n\n"
	hands := SplitHands(file)
	require.Len(t, hands, 2)

	for _, text := range hands {
		_, err := Parse(text)
		require.NoError(t, err)
	}
	assert.Empty(t, SplitHands("  \n\n "))
}
