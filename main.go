package main

import (
	"context"
	"errors"
	"math"
	"os"
	"os/signal"

	"mcts/config"
	"mcts/experiments"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/game/coin"
	"mcts/game/nim"
	"mcts/searcher"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.Seed == 0 {
		cfg.Seed = frand.Uint64n(math.MaxUint64)
		log.Info().Msgf("no seed configured, using %d", cfg.Seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Game {
	case "nim":
		err = run[nim.State, nim.Take](ctx, cfg, nim.Rules{}, nim.New(cfg.Pile, nim.DefaultMaxTake))
	default:
		err = run[coin.State, coin.Action](ctx, cfg, coin.Rules{}, coin.New(cfg.Rounds))
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run[S any, A comparable](ctx context.Context, cfg config.Config, model game.Model[S, A], state S) error {
	if cfg.Experiment != "" {
		return runExperiment(ctx, cfg, model, state)
	}
	return runSearch(ctx, cfg, model, state)
}

// runSearch searches once from the initial state and logs the root statistics.
func runSearch[S any, A comparable](ctx context.Context, cfg config.Config, model game.Model[S, A], state S) error {
	mcts := searcher.NewMCTS(model,
		searcher.WithSeed(cfg.Seed),
		searcher.WithExploration(cfg.Exploration),
		searcher.WithDuration(cfg.Duration),
		searcher.WithMetrics(),
	)

	tree, err := mcts.Build(ctx, state, cfg.Iterations)
	if err != nil {
		return err
	}
	for _, child := range tree.Children() {
		log.Info().Msgf("%v: %d visits, %d wins (%.3f)", child.Action, child.Visits, child.Wins, child.WinRate())
	}
	best, err := tree.BestAction()
	if err != nil {
		return err
	}

	m := mcts.Metrics()
	log.Info().Msgf("best move %v after %d iterations in %s (tree size %d, %d rollouts)",
		best, m.Iterations, m.Duration, m.TreeSize, m.Rollouts)
	return nil
}

func runExperiment[S any, A comparable](ctx context.Context, cfg config.Config, model game.Model[S, A], state S) error {
	plan, err := experiments.NewPlan(cfg.Experiment, cfg.Iterations)
	if err != nil {
		return err
	}
	writer, err := metrics.NewWriter(cfg.OutDir, plan.Name)
	if err != nil {
		return err
	}

	summaries, err := experiments.Run(ctx, experiments.Experiment[S, A]{
		Name:        plan.Name,
		Model:       model,
		Initial:     state,
		Configs:     plan.Configs,
		MatchUps:    plan.MatchUps,
		Games:       cfg.Games,
		Parallelism: cfg.Parallelism,
		Seed:        cfg.Seed,
		MaxMoves:    cfg.MaxMoves,
		Confidence:  cfg.Confidence,
	}, writer)
	if err != nil {
		return err
	}

	for _, s := range summaries {
		log.Info().Msgf("agent %d vs agent %d: score %.3f [%.3f, %.3f] (%d-%d-%d)",
			s.MatchUp.Self.ID, s.MatchUp.Opponent.ID, s.Score, s.Low, s.High, s.Wins, s.Draws, s.Losses)
	}
	return nil
}
