package agent

import (
	"context"

	"mcts/searcher"
)

type evaluationAgent[S any, A comparable] struct {
	mcts       *searcher.MCTS[S, A]
	iterations int
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
// It always plays the most visited move.
func NewEvaluationAgent[S any, A comparable](mcts *searcher.MCTS[S, A], iterations int) Agent[S, A] {
	return &evaluationAgent[S, A]{mcts: mcts, iterations: iterations}
}

func (a *evaluationAgent[S, A]) FindMove(ctx context.Context, state S) (A, error) {
	return a.mcts.Search(ctx, state, a.iterations)
}

func (a *evaluationAgent[S, A]) Metrics() searcher.SearchMetric {
	return a.mcts.Metrics()
}
