package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tables := Default()

	gt, err := tables.GameType("Tournament")
	require.NoError(t, err)
	assert.Equal(t, Tournament, gt)

	game, err := tables.Game("Hold'em")
	require.NoError(t, err)
	assert.Equal(t, Holdem, game)

	limit, err := tables.Limit("No Limit")
	require.NoError(t, err)
	assert.Equal(t, NoLimit, limit)

	cur, err := tables.Currency("EUR")
	require.NoError(t, err)
	assert.Equal(t, EUR, cur)

	verbs := map[string]ActionKind{
		"bets":   Bet,
		"raises": Raise,
		"calls":  Call,
		"checks": Check,
		"folds":  Fold,
		"mucks":  Muck,
		"posts":  Post,
		"shows":  Show,
	}
	for verb, want := range verbs {
		got, err := tables.ActionVerb(verb)
		require.NoError(t, err, verb)
		assert.Equal(t, want, got, verb)
	}
}

func TestUnknownKeys(t *testing.T) {
	tables := Default()

	_, err := tables.Currency("usd")
	require.ErrorIs(t, err, ErrUnknownEnumValue)
	assert.Contains(t, err.Error(), `currency "usd"`)

	_, err = tables.ActionVerb("sits")
	require.ErrorIs(t, err, ErrUnknownEnumValue)

	_, err = tables.Game("Hold em")
	require.ErrorIs(t, err, ErrUnknownEnumValue)

	_, err = tables.Limit("Spread Limit")
	require.ErrorIs(t, err, ErrUnknownEnumValue)

	_, err = tables.GameType("Sit & Go")
	require.ErrorIs(t, err, ErrUnknownEnumValue)
}

func TestKindNames(t *testing.T) {
	text, err := Raise.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "raise", string(text))
	assert.Equal(t, "No Limit", NoLimit.String())
	assert.Equal(t, "Hold'em", Holdem.String())
	assert.Equal(t, "unknown", ActionKind(0).String())
}
