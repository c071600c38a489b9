package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-advisor/internal/randutil"
	"github.com/lox/holdem-advisor/poker"
)

func TestStreetString(t *testing.T) {
	assert.Equal(t, "preflop", Preflop.String())
	assert.Equal(t, "river", River.String())
	assert.Equal(t, "showdown", Showdown.String())
	assert.Equal(t, "street(9)", Street(9).String())
}

func TestRoundWalksStreets(t *testing.T) {
	r, err := New(randutil.New(42))
	require.NoError(t, err)

	assert.Equal(t, Preflop, r.Street())
	assert.Empty(t, r.Board())
	assert.Equal(t, 50, r.CardsRemaining())

	want := []struct {
		street Street
		board  int
	}{
		{Flop, 3},
		{Turn, 4},
		{River, 5},
		{Showdown, 5},
	}
	for _, w := range want {
		street, err := r.Advance()
		require.NoError(t, err)
		assert.Equal(t, w.street, street)
		assert.Len(t, r.Board(), w.board)
		assert.Equal(t, 50-w.board, r.CardsRemaining())
	}

	assert.True(t, r.Over())
	assert.False(t, r.Folded())
	_, err = r.Advance()
	require.ErrorIs(t, err, ErrHandOver)
}

func TestRoundNeverDealsTwice(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		r, err := New(randutil.New(seed))
		require.NoError(t, err)
		for !r.Over() {
			_, err := r.Advance()
			require.NoError(t, err)
		}

		hole := r.Hole()
		_, err = poker.NewCardSet(append(hole[:], r.Board()...)...)
		require.NoError(t, err, "seed %d", seed)
	}
}

func TestRoundReproducible(t *testing.T) {
	a, err := New(randutil.New(7))
	require.NoError(t, err)
	b, err := New(randutil.New(7))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = a.Advance()
		require.NoError(t, err)
		_, err = b.Advance()
		require.NoError(t, err)
	}
	assert.Equal(t, a.Hole(), b.Hole())
	assert.Equal(t, a.Board(), b.Board())
}

func TestRoundFold(t *testing.T) {
	r, err := New(randutil.New(1))
	require.NoError(t, err)
	_, err = r.Advance()
	require.NoError(t, err)

	require.NoError(t, r.Fold())
	assert.True(t, r.Folded())
	assert.True(t, r.Over())
	assert.Equal(t, Flop, r.Street())

	require.ErrorIs(t, r.Fold(), ErrHandOver)
	_, err = r.Advance()
	require.ErrorIs(t, err, ErrHandOver)
}

func TestRoundBoardIsCopy(t *testing.T) {
	r, err := New(randutil.New(3))
	require.NoError(t, err)
	_, err = r.Advance()
	require.NoError(t, err)

	board := r.Board()
	board[0] = board[1]
	assert.NotEqual(t, r.Board()[0], r.Board()[1])
}
