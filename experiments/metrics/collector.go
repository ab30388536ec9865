package metrics

import (
	"time"

	"mcts/game"
	"mcts/searcher"
)

type AgentKind string

const (
	KindMCTS     AgentKind = "mcts"     // Plays the most visited move
	KindTraining AgentKind = "training" // Samples from the temperature-adjusted visit policy
	KindRandom   AgentKind = "random"   // Uniform legal move
)

type AgentConfig struct {
	ID          int           `yaml:"id"`
	Kind        AgentKind     `yaml:"kind"`
	Iterations  int           `yaml:"iterations"`
	Exploration float64       `yaml:"exploration"`
	Duration    time.Duration `yaml:"duration"`
	Temperature float64       `yaml:"temperature"`
}

type MoveMetric struct {
	Step  int
	Party game.Party
	Move  string
	searcher.SearchMetric
}

type GameMetric struct {
	StartingParty game.Party
	Outcome       game.Outcome // From self's perspective
	Finished      bool         // False when the move cap stopped the game
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type GameRecord struct {
	ID       int
	MatchUp  int
	Self     int // AgentConfig.ID
	Opponent int // AgentConfig.ID
	Seed     uint64
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Collector numbers games in the order they are added and keeps their records.
type Collector struct {
	games []GameRecord
	moves []MoveRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(record GameRecord, moves []MoveMetric) {
	record.ID = len(c.games) + 1
	c.games = append(c.games, record)
	for _, m := range moves {
		c.moves = append(c.moves, MoveRecord{Game: record.ID, MoveMetric: m})
	}
}

func (c *Collector) GameRecords() []GameRecord {
	return c.games
}

func (c *Collector) MoveRecords() []MoveRecord {
	return c.moves
}
