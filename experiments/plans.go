package experiments

import (
	"fmt"
	"math"
	"sort"
	"time"

	"mcts/experiments/metrics"
	"mcts/meta"

	"github.com/samber/lo"
)

// Plan lists the agents of an experiment and who plays whom.
type Plan struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps []MatchUp
}

var plans = map[string]func(iterations int) Plan{
	"strength":    strengthPlan,
	"exploration": explorationPlan,
	"budget":      budgetPlan,
	"temperature": temperaturePlan,
}

// Plans returns the names of the predefined experiments.
func Plans() []string {
	names := lo.Keys(plans)
	sort.Strings(names)
	return names
}

// NewPlan builds a predefined experiment around a search budget of iterations.
func NewPlan(name string, iterations int) (Plan, error) {
	build, ok := plans[name]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %q, expected one of %v", ErrUnknownExperiment, name, Plans())
	}
	if iterations <= 0 {
		iterations = meta.ITERATIONS
	}
	return build(iterations), nil
}

// Each matchup pairs a searcher against the random baseline
func strengthPlan(iterations int) Plan {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.KindRandom}
	configs := lo.Map([]int{iterations / 100, iterations / 10, iterations}, func(n, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Kind: metrics.KindMCTS, Iterations: max(n, 1)}
	})
	return againstBaseline("strength", baseline, configs)
}

// Each matchup pairs an exploration constant against the default one
func explorationPlan(iterations int) Plan {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.KindMCTS, Iterations: iterations, Exploration: math.Sqrt2}
	configs := lo.Map([]float64{0.25, 0.5, 1, math.Sqrt2, 2, 4}, func(c float64, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Kind: metrics.KindMCTS, Iterations: iterations, Exploration: c}
	})
	return againstBaseline("exploration", baseline, configs)
}

// Each matchup pairs a time-limited searcher against a fixed iteration budget
func budgetPlan(iterations int) Plan {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.KindMCTS, Iterations: iterations}
	configs := lo.Map([]int{1, 5, 10}, func(k, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Kind: metrics.KindMCTS, Duration: time.Duration(k) * meta.TIME_BUDGET}
	})
	return againstBaseline("budget", baseline, configs)
}

// Each matchup pairs a sampling agent against the greedy one
func temperaturePlan(iterations int) Plan {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.KindMCTS, Iterations: iterations}
	configs := lo.Map([]float64{0.25, 0.5, 1, 2}, func(temp float64, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Kind: metrics.KindTraining, Iterations: iterations, Temperature: temp}
	})
	return againstBaseline("temperature", baseline, configs)
}

func againstBaseline(name string, baseline metrics.AgentConfig, configs []metrics.AgentConfig) Plan {
	matchUps := lo.Map(configs, func(config metrics.AgentConfig, _ int) MatchUp {
		return MatchUp{Self: config, Opponent: baseline}
	})
	return Plan{Name: name, Configs: append(configs, baseline), MatchUps: matchUps}
}
