package turn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sides(t *testing.T, notesPerTurn int, n int) []Side {
	a, err := New(notesPerTurn)
	require.NoError(t, err)

	var res []Side
	for i := 0; i < n; i++ {
		var s Side
		s, a = a.Next()
		res = append(res, s)
	}
	return res
}

func TestAlternatesInBlocks(t *testing.T) {
	got := sides(t, 2, 7)

	want := []Side{Enemy, Enemy, Player, Player, Enemy, Enemy, Player}
	assert.Equal(t, want, got)
}

func TestDefaultTurnLength(t *testing.T) {
	got := sides(t, 16, 40)

	assert := assert.New(t)
	for i, s := range got {
		if i < 16 || i >= 32 {
			assert.Equal(Enemy, s, "note %d", i)
		} else {
			assert.Equal(Player, s, "note %d", i)
		}
	}
}

func TestSingleNoteTurns(t *testing.T) {
	got := sides(t, 1, 4)

	assert.Equal(t, []Side{Enemy, Player, Enemy, Player}, got)
}

func TestRejectsNonPositiveTurnLength(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := New(n)
		assert.True(t, errors.Is(err, ErrInvalidTurnLength))
	}
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "enemy", Enemy.String())
	assert.Equal(t, "player", Player.String())
}
