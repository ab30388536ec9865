package experiments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"mcts/engine"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/meta"
	"mcts/searcher"
	"mcts/searcher/agent"
	"mcts/stats"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownAgent      = errors.New("unknown agent kind")
	ErrUnknownExperiment = errors.New("unknown experiment")
)

// MatchUp pits two agents against each other; Self is the party the outcome
// is reported for.
type MatchUp struct {
	Self     metrics.AgentConfig
	Opponent metrics.AgentConfig
}

type Experiment[S any, A comparable] struct {
	Name        string
	Model       game.Model[S, A]
	Initial     S
	Configs     []metrics.AgentConfig
	MatchUps    []MatchUp
	Games       int // Per match up
	Parallelism int
	Seed        uint64
	MaxMoves    int
	Confidence  float64 // Percent
}

// Summary scores a matchup from self's perspective: a win counts 1, a draw 0.5.
type Summary struct {
	MatchUp    MatchUp
	Games      int
	Wins       int
	Draws      int
	Losses     int
	Unfinished int
	Score      float64
	Low        float64
	High       float64
}

type gameResult[S any] struct {
	seed uint64
	engine.GameResult[S]
}

// Run plays every matchup of the experiment and returns one summary per
// matchup. Games of a matchup run concurrently, each with its own agents and
// searchers. Records are written when writer is not nil.
func Run[S any, A comparable](ctx context.Context, exp Experiment[S, A], writer *metrics.Writer) ([]Summary, error) {
	if exp.Games <= 0 {
		return nil, fmt.Errorf("experiment %s needs at least one game per matchup, got %d", exp.Name, exp.Games)
	}
	parallelism := exp.Parallelism
	if parallelism <= 0 {
		parallelism = meta.PARALLELISM
	}
	confidence := exp.Confidence
	if confidence <= 0 {
		confidence = meta.CONFIDENCE
	}

	collector := metrics.NewCollector()
	summaries := make([]Summary, 0, len(exp.MatchUps))

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between self=%+v and opponent=%+v...",
			mi+1, len(exp.MatchUps), matchup.Self, matchup.Opponent)

		results := make([]gameResult[S], exp.Games)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(parallelism)
		for i := 0; i < exp.Games; i++ {
			g.Go(func() error {
				seed := deriveSeed(exp.Name, mi, i, exp.Seed)
				result, err := runGame(gctx, exp, matchup, seed)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[i] = gameResult[S]{seed: seed, GameResult: result}
				log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s",
					mi+1, len(exp.MatchUps), i+1, result.Game.Outcome)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, r := range results {
			collector.Add(metrics.GameRecord{
				MatchUp:    mi + 1,
				Self:       matchup.Self.ID,
				Opponent:   matchup.Opponent.ID,
				Seed:       r.seed,
				GameMetric: r.Game,
			}, r.Moves)
		}
		summary := summarize(matchup, results, confidence)
		summaries = append(summaries, summary)
		log.Info().Msgf("completed matchup %d of %d: score %.3f [%.3f, %.3f] over %d games (%d-%d-%d)",
			mi+1, len(exp.MatchUps), summary.Score, summary.Low, summary.High,
			summary.Games, summary.Wins, summary.Draws, summary.Losses)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	if writer == nil {
		return summaries, nil
	}
	if err := store(writer, exp.Configs, collector); err != nil {
		return summaries, err
	}
	return summaries, nil
}

func store(writer *metrics.Writer, configs []metrics.AgentConfig, collector *metrics.Collector) error {
	// Store experiment metadata
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	if err := writer.WriteGameRecords(collector.GameRecords()); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(collector.MoveRecords()); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two freshly built agents.
func runGame[S any, A comparable](ctx context.Context, exp Experiment[S, A], matchup MatchUp, seed uint64) (engine.GameResult[S], error) {
	self, err := newAgent(exp.Model, matchup.Self, deriveSeed(seed, game.Self))
	if err != nil {
		return engine.GameResult[S]{}, err
	}
	opponent, err := newAgent(exp.Model, matchup.Opponent, deriveSeed(seed, game.Opponent))
	if err != nil {
		return engine.GameResult[S]{}, err
	}

	e := engine.NewLocal(exp.Model, self, opponent)
	if exp.MaxMoves > 0 {
		e.MaxMoves = exp.MaxMoves
	}
	return e.Run(ctx, exp.Initial)
}

func newAgent[S any, A comparable](model game.Model[S, A], config metrics.AgentConfig, seed uint64) (agent.Agent[S, A], error) {
	switch config.Kind {
	case metrics.KindRandom:
		return agent.NewRandomAgent(model, rand.New(rand.NewSource(seed))), nil
	case metrics.KindMCTS, "":
		return agent.NewEvaluationAgent(createMCTS(model, config, seed), iterations(config)), nil
	case metrics.KindTraining:
		rng := rand.New(rand.NewSource(deriveSeed(seed, "sample")))
		return agent.NewTrainingAgent(createMCTS(model, config, seed), iterations(config), config.Temperature, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q (agent %d)", ErrUnknownAgent, config.Kind, config.ID)
	}
}

func createMCTS[S any, A comparable](model game.Model[S, A], config metrics.AgentConfig, seed uint64) *searcher.MCTS[S, A] {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(model, options...)
}

// iterations of a search; a time-limited agent searches until its budget is spent.
func iterations(config metrics.AgentConfig) int {
	switch {
	case config.Iterations > 0:
		return config.Iterations
	case config.Duration > 0:
		return math.MaxInt32
	default:
		return meta.ITERATIONS
	}
}

// deriveSeed hashes its parts into a seed, so every game and agent of an
// experiment can be replayed on its own.
func deriveSeed(parts ...any) uint64 {
	h := xxhash.New()
	for _, part := range parts {
		fmt.Fprintf(h, "%v/", part)
	}
	return h.Sum64()
}

func summarize[S any](matchup MatchUp, results []gameResult[S], confidence float64) Summary {
	summary := Summary{MatchUp: matchup, Games: len(results)}
	var score stats.Statistic
	for _, r := range results {
		if !r.Game.Finished {
			summary.Unfinished++
		}
		switch r.Game.Outcome {
		case game.Win:
			summary.Wins++
			score.Push(1)
		case game.Draw:
			summary.Draws++
			score.Push(0.5)
		case game.Loss:
			summary.Losses++
			score.Push(0)
		}
	}
	summary.Score = score.Mean()
	low, high := score.Interval(confidence)
	summary.Low = math.Max(0, low)
	summary.High = math.Min(1, high)
	return summary
}
