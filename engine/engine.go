package engine

import (
	"context"
	"errors"

	"mcts/experiments/metrics"
	"mcts/meta"
)

const MaxMoves = meta.MAX_MOVES

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoAgent     = errors.New("no agent for party")
)

type Engine[S any] interface {
	// Run plays from state till the game ends or a max number of moves is reached
	Run(ctx context.Context, state S) (GameResult[S], error)
}

type GameResult[S any] struct {
	Final S
	Game  metrics.GameMetric
	Moves []metrics.MoveMetric
}
