package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCB(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCB(math.Sqrt2, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCBEvaluate(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		policy := newUCB(math.Sqrt2, 100)
		got := policy.evaluate(5, 10)

		expected := 5.0/10 + math.Sqrt2*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute w/n + C*sqrt(ln(N)/n)")
	})

	t.Run("exploitation only with a single parent visit", func(t *testing.T) {
		policy := newUCB(math.Sqrt2, 1)

		require.InDelta(t, 0.5, policy.evaluate(1, 2), 0.0001,
			"ln(1) should cancel the exploration term")
	})

	t.Run("exploitation only with zero exploration", func(t *testing.T) {
		policy := newUCB(0, 100)

		require.InDelta(t, 0.25, policy.evaluate(1, 4), 0.0001)
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCB(math.Sqrt2, 100)

		require.Panics(t, func() {
			policy.evaluate(5, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		// More parent visits -> higher exploration
		policy1 := newUCB(math.Sqrt2, 100)
		policy2 := newUCB(math.Sqrt2, 1000)

		score1 := policy1.evaluate(5, 10)
		score2 := policy2.evaluate(5, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		// More child visits -> lower exploration
		policy := newUCB(math.Sqrt2, 100)

		score1 := policy.evaluate(5, 10)
		score2 := policy.evaluate(5, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with wins", func(t *testing.T) {
		policy := newUCB(math.Sqrt2, 100)

		score1 := policy.evaluate(5, 10)
		score2 := policy.evaluate(10, 10)

		require.Greater(t, score2, score1,
			"More wins should increase exploitation term")
	})
}
