package engine

import (
	"context"
	"fmt"
	"time"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Local runs a game in-process, asking each party's agent for its move.
type Local[S any, A comparable] struct {
	Model    game.Model[S, A]
	Agents   map[game.Party]agent.Agent[S, A]
	MaxMoves int // Defaults to MaxMoves
}

var _ Engine[int] = (*Local[int, int])(nil)

func NewLocal[S any, A comparable](model game.Model[S, A], self, opponent agent.Agent[S, A]) *Local[S, A] {
	return &Local[S, A]{
		Model: model,
		Agents: map[game.Party]agent.Agent[S, A]{
			game.Self:     self,
			game.Opponent: opponent,
		},
		MaxMoves: MaxMoves,
	}
}

// Run executes the game loop until the game ends or the move cap is reached.
// A game stopped by the cap is recorded as an unfinished draw.
func (e *Local[S, A]) Run(ctx context.Context, state S) (GameResult[S], error) {
	maxMoves := e.MaxMoves
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}

	result := GameResult[S]{
		Game: metrics.GameMetric{
			StartingParty: e.Model.Turn(state),
			StartTime:     time.Now(),
		},
	}
	log.Debug().Msgf("%s is starting", result.Game.StartingParty)

	step := 0
	for !e.Model.IsTerminal(state) && step < maxMoves {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		step++
		party := e.Model.Turn(state)
		player, ok := e.Agents[party]
		if !ok {
			return result, fmt.Errorf("%w: %s", ErrNoAgent, party)
		}

		move, err := player.FindMove(ctx, state)
		if err != nil {
			return result, fmt.Errorf("move %d by %s: %w", step, party, err)
		}
		if !lo.Contains(e.Model.LegalActions(state, party), move) {
			return result, fmt.Errorf("%w: %s played %v at move %d", ErrIllegalMove, party, move, step)
		}

		moveMetric := metrics.MoveMetric{Step: step, Party: party, Move: fmt.Sprint(move)}
		if metered, ok := player.(agent.Metered); ok {
			moveMetric.SearchMetric = metered.Metrics()
		}
		result.Moves = append(result.Moves, moveMetric)
		log.Debug().Msgf("move %d: %s plays %v", step, party, move)

		state = e.Model.Apply(state, move)
	}

	result.Final = state
	result.Game.Finished = e.Model.IsTerminal(state)
	result.Game.Outcome = game.Draw
	if result.Game.Finished {
		result.Game.Outcome = e.Model.Score(state)
	} else {
		log.Debug().Msgf("stopped after %d moves without a result", maxMoves)
	}
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = step
	return result, nil
}
