package agent

import (
	"context"

	"mcts/searcher"
)

type Agent[S any, A comparable] interface {
	// FindMove returns the move to play at state
	FindMove(ctx context.Context, state S) (A, error)
}

// Metered is implemented by agents that search, so a runner can record what
// the last FindMove cost.
type Metered interface {
	Metrics() searcher.SearchMetric
}
