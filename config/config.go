package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"mcts/meta"
	"mcts/searcher"

	"github.com/namsral/flag"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Game        string        `yaml:"game"` // coin or nim
	Iterations  int           `yaml:"iterations"`
	Rounds      int           `yaml:"rounds"`
	Pile        int           `yaml:"pile"`
	Exploration float64       `yaml:"exploration"`
	Seed        uint64        `yaml:"seed"` // 0 draws a fresh seed
	Duration    time.Duration `yaml:"duration"`
	Debug       bool          `yaml:"debug"`

	Experiment  string  `yaml:"experiment"`
	Games       int     `yaml:"games"`
	Parallelism int     `yaml:"parallelism"`
	MaxMoves    int     `yaml:"max_moves"`
	Confidence  float64 `yaml:"confidence"`
	OutDir      string  `yaml:"out"`
}

func Default() Config {
	return Config{
		Game:        "coin",
		Iterations:  meta.ITERATIONS,
		Rounds:      meta.ROUNDS,
		Pile:        meta.PILE,
		Exploration: searcher.DefaultExploration,
		Games:       meta.GAMES,
		Parallelism: meta.PARALLELISM,
		MaxMoves:    meta.MAX_MOVES,
		Confidence:  meta.CONFIDENCE,
		OutDir:      meta.OUT_DIR,
	}
}

// EnvPrefix namespaces the environment variables that override flag
// defaults, e.g. MCTS_ITERATIONS for -iterations.
const EnvPrefix = "MCTS"

// Load starts from the defaults, applies the YAML file named by -config-file if
// any, then environment variables, then command-line flags, and validates the
// result.
func Load(args []string) (Config, error) {
	c := Default()
	var path string
	if err := newFlagSet(&c, &path).Parse(args); err != nil {
		return c, err
	}
	if path == "" {
		return c, c.Validate()
	}

	c = Default()
	if err := c.loadFile(path); err != nil {
		return c, err
	}
	// Environment and flags win over the file
	if err := newFlagSet(&c, &path).Parse(args); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// newFlagSet binds every setting of c to a flag whose default is its current value.
// The file flag is not named "config", which the flag package reserves for its
// own key-value config files.
func newFlagSet(c *Config, path *string) *flag.FlagSet {
	fs := flag.NewFlagSetWithEnvPrefix("mcts", EnvPrefix, flag.ContinueOnError)
	fs.StringVar(path, "config-file", *path, "YAML config file, overridden by environment and flags")
	fs.StringVar(&c.Game, "game", c.Game, "game to play: coin or nim")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "MCTS iterations per move")
	fs.IntVar(&c.Rounds, "rounds", c.Rounds, "rounds of a coin game")
	fs.IntVar(&c.Pile, "pile", c.Pile, "starting pile of a nim game")
	fs.Float64Var(&c.Exploration, "exploration", c.Exploration, "UCB1 exploration constant")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a fresh one")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "time budget per search, 0 for none")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.StringVar(&c.Experiment, "experiment", c.Experiment, "run a predefined experiment instead of a single search")
	fs.IntVar(&c.Games, "games", c.Games, "games per matchup")
	fs.IntVar(&c.Parallelism, "parallelism", c.Parallelism, "games played at once")
	fs.IntVar(&c.MaxMoves, "max-moves", c.MaxMoves, "moves before a game is stopped as a draw")
	fs.Float64Var(&c.Confidence, "confidence", c.Confidence, "confidence level of win rates, in percent")
	fs.StringVar(&c.OutDir, "out", c.OutDir, "directory for experiment records")
	return fs
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Game != "coin" && c.Game != "nim":
		return fmt.Errorf("%w: unknown game %q", ErrInvalid, c.Game)
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalid, c.Iterations)
	case c.Rounds <= 0:
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalid, c.Rounds)
	case c.Pile <= 0:
		return fmt.Errorf("%w: pile must be positive, got %d", ErrInvalid, c.Pile)
	case c.Exploration < 0:
		return fmt.Errorf("%w: exploration must not be negative, got %g", ErrInvalid, c.Exploration)
	case c.Duration < 0:
		return fmt.Errorf("%w: duration must not be negative, got %s", ErrInvalid, c.Duration)
	case c.Games <= 0:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalid, c.Games)
	case c.Confidence <= 0 || c.Confidence >= 100:
		return fmt.Errorf("%w: confidence must be between 0 and 100, got %g", ErrInvalid, c.Confidence)
	}
	return nil
}
