package agent

import (
	"context"
	"fmt"

	"mcts/game"
	"mcts/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent[S any, A comparable] struct {
	model game.Model[S, A]
	rng   *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal move.
func NewRandomAgent[S any, A comparable](model game.Model[S, A], rng *rand.Rand) Agent[S, A] {
	return &randomAgent[S, A]{model: model, rng: rng}
}

func (a *randomAgent[S, A]) FindMove(ctx context.Context, state S) (A, error) {
	var none A
	if err := ctx.Err(); err != nil {
		return none, err
	}
	actions := game.Actions(a.model, state)
	if len(actions) == 0 {
		return none, fmt.Errorf("%w: random agent has nothing to play", searcher.ErrNoMovesAvailable)
	}
	return actions[a.rng.Intn(len(actions))], nil
}
