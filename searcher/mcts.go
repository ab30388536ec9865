package searcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"mcts/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(s *settings)

type settings struct {
	exploration float64
	rng         *rand.Rand
	duration    time.Duration
	metrics     MetricsCollector
	logger      *zerolog.Logger
}

// WithExploration sets the exploration constant C used by UCB1.
func WithExploration(c float64) Option {
	return func(s *settings) {
		if c >= 0 {
			s.exploration = c
		}
	}
}

// WithSeed makes the search reproducible: the same seed, state and iteration
// count always produce the same tree.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares a caller-owned random source with the searcher.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithDuration stops a search once the time budget is spent, even if
// iterations remain. The budget is checked between iterations.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = NewMetricsCollector()
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = &logger
	}
}

// MCTS searches the game tree of a game.Model for the best next action.
// A searcher is not safe for concurrent use.
type MCTS[S any, A comparable] struct {
	model       game.Model[S, A]
	exploration float64
	rng         *rand.Rand
	duration    time.Duration
	metrics     MetricsCollector
	logger      zerolog.Logger
	last        SearchMetric
}

func NewMCTS[S any, A comparable](model game.Model[S, A], options ...Option) *MCTS[S, A] {
	s := &settings{ // Default values
		exploration: DefaultExploration,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(s)
	}

	logger := log.Logger
	if s.logger != nil {
		logger = *s.logger
	}
	if s.rng == nil {
		seed := frand.Uint64n(math.MaxUint64)
		logger.Debug().Uint64("seed", seed).Msg("no seed configured, drew a random one")
		s.rng = rand.New(rand.NewSource(seed))
	}

	return &MCTS[S, A]{
		model:       model,
		exploration: s.exploration,
		rng:         s.rng,
		duration:    s.duration,
		metrics:     s.metrics,
		logger:      logger,
	}
}

// Search runs up to iterations select/expand/simulate/backpropagate passes from
// state and returns the most visited action at the root.
func (m *MCTS[S, A]) Search(ctx context.Context, state S, iterations int) (A, error) {
	tree, err := m.Build(ctx, state, iterations)
	if err != nil {
		var none A
		return none, err
	}

	best, err := tree.BestAction()
	if err != nil {
		return best, err
	}
	m.logger.Debug().
		Interface("best", best).
		Int("iterations", tree.Visits()).
		Int("tree_size", tree.Size()).
		Msg("search complete")
	return best, nil
}

// Build runs the search like Search but returns the whole tree. The loop stops
// early, without error, when ctx is done or the time budget is spent.
func (m *MCTS[S, A]) Build(ctx context.Context, state S, iterations int) (*Tree[S, A], error) {
	if m.model == nil {
		return nil, fmt.Errorf("%w: nil game model", ErrInvariantViolation)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("iterations must not be negative, got %d", iterations)
	}

	tree := newTree(m.model, state, m.exploration)
	m.metrics.Start(m.exploration)

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}

	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			m.logger.Debug().Err(err).Int("completed", i).Msg("search interrupted")
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			m.logger.Debug().Dur("budget", m.duration).Int("completed", i).Msg("search time budget spent")
			break
		}
		if err := m.iterate(tree); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		m.metrics.AddIteration()
	}

	m.last = m.metrics.Complete(tree.Size())
	return tree, nil
}

// Metrics returns the metrics of the last search. They are zero unless the
// searcher was built WithMetrics.
func (m *MCTS[S, A]) Metrics() SearchMetric {
	return m.last
}

func (m *MCTS[S, A]) iterate(tree *Tree[S, A]) error {
	leaf, err := tree.selectNode()
	if err != nil {
		return err
	}

	var outcome game.Outcome
	if tree.nodes[leaf].terminal {
		outcome = m.model.Score(tree.nodes[leaf].state)
		m.metrics.AddTerminalEvaluation()
	} else {
		leaf, err = tree.expand(leaf, m.rng)
		if err != nil {
			return err
		}
		outcome, err = rollout(m.model, tree.nodes[leaf].state, m.rng)
		if err != nil {
			return err
		}
		m.metrics.AddRollout()
	}

	return tree.backpropagate(leaf, outcome)
}
