package coin

import (
	"testing"

	"mcts/game"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(DefaultRounds)

	require.Equal(t, 0, s.MyScore)
	require.Equal(t, 0, s.OpScore)
	require.Equal(t, 0, s.Round)
	require.Equal(t, 10, s.Rounds)
	require.Equal(t, []Action{Heads, Tails}, s.MyActions)
	require.Equal(t, []Action{Heads, Tails}, s.OpActions)
}

func TestTurn(t *testing.T) {
	r := Rules{}
	s := New(4)

	require.Equal(t, game.Self, r.Turn(s), "Self should open the game")
	s = r.Apply(s, Heads)
	require.Equal(t, game.Opponent, r.Turn(s), "Parties should alternate")
	s = r.Apply(s, Heads)
	require.Equal(t, game.Self, r.Turn(s), "Parties should alternate")
}

func TestApply(t *testing.T) {
	r := Rules{}

	t.Run("self scores with heads", func(t *testing.T) {
		got := r.Apply(New(10), Heads)

		require.Equal(t, 1, got.MyScore)
		require.Equal(t, 0, got.OpScore)
		require.Equal(t, 1, got.Round)
	})

	t.Run("self does not score with tails", func(t *testing.T) {
		got := r.Apply(New(10), Tails)

		require.Equal(t, 0, got.MyScore)
		require.Equal(t, 0, got.OpScore)
		require.Equal(t, 1, got.Round)
	})

	t.Run("opponent scores with tails", func(t *testing.T) {
		s := r.Apply(New(10), Tails)
		got := r.Apply(s, Tails)

		require.Equal(t, 0, got.MyScore)
		require.Equal(t, 1, got.OpScore)
		require.Equal(t, 2, got.Round)
	})

	t.Run("does not mutate the input state", func(t *testing.T) {
		s := New(10)
		before := New(10)

		next := r.Apply(s, Heads)
		next.MyActions[0] = Tails

		require.Equal(t, before, s, "Input state should be unchanged")
	})

	t.Run("is a pure function", func(t *testing.T) {
		s := r.Apply(New(10), Heads)

		require.Equal(t, r.Apply(s, Tails), r.Apply(s, Tails),
			"Same state and action should yield equal successors")
	})
}

func TestLegalActions(t *testing.T) {
	r := Rules{}
	s := New(10)

	got := r.LegalActions(s, game.Self)
	got[0] = Tails

	require.Equal(t, []Action{Heads, Tails}, s.MyActions, "Returned slice should not alias the state")
	require.Equal(t, []Action{Heads, Tails}, r.LegalActions(s, game.Opponent))
}

func TestTerminalAndScore(t *testing.T) {
	r := Rules{}

	t.Run("not terminal before the last round", func(t *testing.T) {
		require.False(t, r.IsTerminal(State{Round: 9, Rounds: 10}))
	})

	t.Run("terminal at the last round", func(t *testing.T) {
		require.True(t, r.IsTerminal(State{Round: 10, Rounds: 10}))
	})

	t.Run("scores", func(t *testing.T) {
		require.Equal(t, game.Win, r.Score(State{MyScore: 3, OpScore: 2}))
		require.Equal(t, game.Loss, r.Score(State{MyScore: 1, OpScore: 2}))
		require.Equal(t, game.Draw, r.Score(State{MyScore: 2, OpScore: 2}))
	})

	t.Run("full game", func(t *testing.T) {
		s := New(10)
		for !r.IsTerminal(s) {
			s = r.Apply(s, Winning(r.Turn(s)))
		}

		require.Equal(t, 5, s.MyScore)
		require.Equal(t, 5, s.OpScore)
		require.Equal(t, game.Draw, r.Score(s))
	})
}
