package agent

import (
	"context"
	"testing"

	"mcts/game/coin"
	"mcts/game/nim"
	"mcts/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEvaluationAgent(t *testing.T) {
	ctx := context.Background()

	t.Run("plays the most visited move", func(t *testing.T) {
		mcts := searcher.NewMCTS[coin.State, coin.Action](coin.Rules{}, searcher.WithSeed(1))
		a := NewEvaluationAgent(mcts, 500)

		move, err := a.FindMove(ctx, coin.New(coin.DefaultRounds))

		require.NoError(t, err)
		require.Equal(t, coin.Heads, move)
	})

	t.Run("exposes search metrics", func(t *testing.T) {
		mcts := searcher.NewMCTS[coin.State, coin.Action](coin.Rules{}, searcher.WithSeed(1), searcher.WithMetrics())
		a := NewEvaluationAgent(mcts, 100)

		_, err := a.FindMove(ctx, coin.New(coin.DefaultRounds))
		require.NoError(t, err)

		metered, ok := a.(Metered)
		require.True(t, ok, "Searching agents should be metered")
		require.Equal(t, 100, metered.Metrics().Iterations)
	})

	t.Run("fails on a terminal state", func(t *testing.T) {
		mcts := searcher.NewMCTS[coin.State, coin.Action](coin.Rules{}, searcher.WithSeed(1))

		_, err := NewEvaluationAgent(mcts, 10).FindMove(ctx, coin.New(0))

		require.ErrorIs(t, err, searcher.ErrNoMovesAvailable)
	})
}

func TestTrainingAgent(t *testing.T) {
	ctx := context.Background()

	t.Run("same seeds sample the same moves", func(t *testing.T) {
		play := func() []nim.Take {
			mcts := searcher.NewMCTS[nim.State, nim.Take](nim.Rules{}, searcher.WithSeed(2))
			a := NewTrainingAgent(mcts, 200, 1.0, rand.New(rand.NewSource(3)))
			var moves []nim.Take
			for i := 0; i < 5; i++ {
				move, err := a.FindMove(ctx, nim.New(10, nim.DefaultMaxTake))
				require.NoError(t, err)
				moves = append(moves, move)
			}
			return moves
		}

		require.Equal(t, play(), play())
	})

	t.Run("samples only legal moves", func(t *testing.T) {
		mcts := searcher.NewMCTS[nim.State, nim.Take](nim.Rules{}, searcher.WithSeed(4))
		a := NewTrainingAgent(mcts, 50, 2.0, rand.New(rand.NewSource(5)))

		for i := 0; i < 20; i++ {
			move, err := a.FindMove(ctx, nim.New(2, nim.DefaultMaxTake))
			require.NoError(t, err)
			require.Contains(t, []nim.Take{1, 2}, move)
		}
	})

	t.Run("zero temperature plays greedily", func(t *testing.T) {
		mcts := searcher.NewMCTS[coin.State, coin.Action](coin.Rules{}, searcher.WithSeed(1))
		a := NewTrainingAgent(mcts, 500, 0, rand.New(rand.NewSource(1)))

		move, err := a.FindMove(ctx, coin.New(coin.DefaultRounds))

		require.NoError(t, err)
		require.Equal(t, coin.Heads, move)
	})
}

func TestAdjustTemperature(t *testing.T) {
	children := []searcher.ChildStat[string]{
		{Action: "a", Visits: 1},
		{Action: "b", Visits: 3},
	}

	t.Run("temperature one is proportional to visits", func(t *testing.T) {
		got := adjustTemperature(children, 1.0)

		require.InDeltaSlice(t, []float64{0.25, 0.75}, got, 1e-9)
	})

	t.Run("low temperature sharpens the policy", func(t *testing.T) {
		got := adjustTemperature(children, 0.5)

		require.InDeltaSlice(t, []float64{0.1, 0.9}, got, 1e-9, "Should square the visit counts")
	})

	t.Run("unvisited children are uniform", func(t *testing.T) {
		got := adjustTemperature([]searcher.ChildStat[string]{{Action: "a"}, {Action: "b"}}, 1.0)

		require.InDeltaSlice(t, []float64{0.5, 0.5}, got, 1e-9)
	})

	t.Run("overflow falls back to the most visited child", func(t *testing.T) {
		got := adjustTemperature(children, 1e-6)

		require.Equal(t, []float64{0, 1}, got)
	})
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("never picks a zero probability", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			require.Equal(t, 1, sample([]float64{0, 1, 0}, rng))
		}
	})

	t.Run("follows the distribution", func(t *testing.T) {
		counts := make([]int, 2)
		for i := 0; i < 10000; i++ {
			counts[sample([]float64{0.2, 0.8}, rng)]++
		}
		require.InDelta(t, 0.8, float64(counts[1])/10000, 0.03)
	})
}

func TestRandomAgent(t *testing.T) {
	ctx := context.Background()

	t.Run("plays legal moves", func(t *testing.T) {
		a := NewRandomAgent[nim.State, nim.Take](nim.Rules{}, rand.New(rand.NewSource(1)))

		for i := 0; i < 50; i++ {
			move, err := a.FindMove(ctx, nim.New(2, nim.DefaultMaxTake))
			require.NoError(t, err)
			require.Contains(t, []nim.Take{1, 2}, move)
		}
	})

	t.Run("fails without legal moves", func(t *testing.T) {
		a := NewRandomAgent[nim.State, nim.Take](nim.Rules{}, rand.New(rand.NewSource(1)))

		_, err := a.FindMove(ctx, nim.New(0, nim.DefaultMaxTake))

		require.ErrorIs(t, err, searcher.ErrNoMovesAvailable)
	})

	t.Run("is not metered", func(t *testing.T) {
		var a any = NewRandomAgent[nim.State, nim.Take](nim.Rules{}, rand.New(rand.NewSource(1)))

		_, ok := a.(Metered)
		require.False(t, ok)
	})
}
