package handhistory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections(t *testing.T) {
	s, err := splitSections(handSplitShowdown)
	require.NoError(t, err)

	holeCards, ok := s.find(SectionHoleCards)
	require.True(t, ok)
	assert.Equal(t, "", s.line(holeCards-1))
	assert.Equal(t, "Dealt to W2lkm2n [Ac Jh]", s.line(holeCards+1))

	flop, ok := s.find(SectionFlop)
	require.True(t, ok)
	assert.Equal(t, "[2s 6d Ah]", s.line(flop+1))

	turn, ok := s.find(SectionTurn)
	require.True(t, ok)
	assert.Equal(t, "[2s 6d Ah] [Kc]", s.line(turn+1))

	_, ok = s.find(SectionShowDown)
	assert.True(t, ok)

	summary, ok := s.find(SectionSummary)
	require.True(t, ok)
	assert.Equal(t, "Total pot 425 | Rake 0", s.line(summary+1))

	// One marker per section header.
	assert.Len(t, s.markers, 6)
	assert.Equal(t, []string{"blak_douglas: checks", "santy312: bets 60", "W2lkm2n: calls 60", "blak_douglas: folds"}, s.span(flop+2))
}

func TestSplitSectionsWithoutFlop(t *testing.T) {
	s, err := splitSections(handFoldPreflop)
	require.NoError(t, err)

	for _, sec := range []Section{SectionFlop, SectionTurn, SectionRiver, SectionShowDown} {
		_, ok := s.find(sec)
		assert.False(t, ok, sec.String())
	}
	assert.Len(t, s.markers, 2)
}

func TestSplitSectionsEmpty(t *testing.T) {
	_, err := splitSections("\ufeff\r\n  ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}
