package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartyOther(t *testing.T) {
	require.Equal(t, Opponent, Self.Other())
	require.Equal(t, Self, Opponent.Other())
}

func TestOutcomeFavors(t *testing.T) {
	t.Run("win favors self only", func(t *testing.T) {
		require.True(t, Win.Favors(Self))
		require.False(t, Win.Favors(Opponent))
	})

	t.Run("loss favors opponent only", func(t *testing.T) {
		require.False(t, Loss.Favors(Self))
		require.True(t, Loss.Favors(Opponent))
	})

	t.Run("draw favors nobody", func(t *testing.T) {
		require.False(t, Draw.Favors(Self))
		require.False(t, Draw.Favors(Opponent))
	})
}
