package agent

import (
	"context"
	"fmt"
	"math"

	"mcts/searcher"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

type trainingAgent[S any, A comparable] struct {
	mcts        *searcher.MCTS[S, A]
	iterations  int
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. It samples
// its move from the root visit counts sharpened by temperature, so it keeps
// exploring moves the searcher ranks slightly lower. A non-positive temperature
// plays the most visited move.
func NewTrainingAgent[S any, A comparable](mcts *searcher.MCTS[S, A], iterations int, temperature float64, rng *rand.Rand) Agent[S, A] {
	return &trainingAgent[S, A]{mcts: mcts, iterations: iterations, temperature: temperature, rng: rng}
}

func (a *trainingAgent[S, A]) FindMove(ctx context.Context, state S) (A, error) {
	tree, err := a.mcts.Build(ctx, state, a.iterations)
	if err != nil {
		var none A
		return none, err
	}
	if a.temperature <= 0 {
		return tree.BestAction()
	}

	children := tree.Children()
	if len(children) == 0 {
		var none A
		return none, fmt.Errorf("%w: nothing to sample from", searcher.ErrNoMovesAvailable)
	}
	probs := adjustTemperature(children, a.temperature)
	return children[sample(probs, a.rng)].Action, nil
}

func (a *trainingAgent[S, A]) Metrics() searcher.SearchMetric {
	return a.mcts.Metrics()
}

// adjustTemperature turns visit counts into probabilities p_i ∝ visits_i^(1/T).
func adjustTemperature[A comparable](children []searcher.ChildStat[A], temperature float64) []float64 {
	exponent := 1.0 / temperature
	adjusted := lo.Map(children, func(c searcher.ChildStat[A], _ int) float64 {
		return math.Pow(float64(c.Visits), exponent)
	})
	sum := lo.Sum(adjusted)
	if sum == 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		// Uniform when nothing was visited, greedy when the powers overflow
		return greedy(children)
	}
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func greedy[A comparable](children []searcher.ChildStat[A]) []float64 {
	probs := make([]float64, len(children))
	best := lo.MaxBy(children, func(a, b searcher.ChildStat[A]) bool { return a.Visits > b.Visits })
	if best.Visits == 0 {
		for i := range probs {
			probs[i] = 1 / float64(len(probs))
		}
		return probs
	}
	for i, c := range children {
		if c.Visits == best.Visits {
			probs[i] = 1
			break
		}
	}
	return probs
}

// sample draws an index from a probability vector.
func sample(probs []float64, rng *rand.Rand) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}
