package searcher

import (
	"errors"
	"math"
)

// Hyperparameters for MCTS

const DefaultExploration = math.Sqrt2 // Exploration constant C in UCB1

// Rollouts longer than this mean the game model never reaches a terminal state
const MaxRolloutDepth = 10000

// Search contract violations. They abort the search call and point at a bug in
// the searcher or the game model, not at bad input.
var (
	ErrInvariantViolation = errors.New("invariant violation")
	ErrNoMovesAvailable   = errors.New("no moves available")
	ErrNoLegalActions     = errors.New("no legal actions")
)
