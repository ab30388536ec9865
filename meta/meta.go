// meta/meta.go
package meta

import "time"

// ITERATIONS defines the number of MCTS iterations per move.
const ITERATIONS = 1000

// ROUNDS defines the length of a coin game.
const ROUNDS = 10

// PILE defines the starting pile of a nim game.
const PILE = 21

// MAX_MOVES caps a game; a game stopped there counts as a draw.
const MAX_MOVES = 300

// GAMES defines the number of games per matchup in an experiment.
const GAMES = 30

// PARALLELISM defines how many games of an experiment run at once.
const PARALLELISM = 8

// CONFIDENCE defines the confidence level, in percent, of reported win rates.
const CONFIDENCE = 95

// TIME_BUDGET bounds a single search in time-limited experiments.
const TIME_BUDGET = 10 * time.Millisecond

// OUT_DIR is where experiment records are written.
const OUT_DIR = "experiments"
