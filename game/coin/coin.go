// Package coin implements the heads/tails accumulation game: the two parties
// alternate calling a coin face for a fixed number of rounds, and a party scores
// whenever it calls its own winning face.
package coin

import (
	"fmt"

	"mcts/game"
)

const DefaultRounds = 10

type Action int

const (
	Heads Action = iota
	Tails
)

func (a Action) String() string {
	switch a {
	case Heads:
		return "heads"
	case Tails:
		return "tails"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Winning returns the face that scores a point for party.
func Winning(party game.Party) Action {
	if party == game.Self {
		return Heads
	}
	return Tails
}

// State is a snapshot of a coin game. It is treated as a value: Apply copies
// it and never writes through the action slices.
type State struct {
	MyScore   int
	OpScore   int
	Round     int
	Rounds    int
	MyActions []Action
	OpActions []Action
}

// New returns the initial state of a game lasting the given number of rounds.
func New(rounds int) State {
	return State{
		Rounds:    rounds,
		MyActions: []Action{Heads, Tails},
		OpActions: []Action{Heads, Tails},
	}
}

func (s State) String() string {
	return fmt.Sprintf("round %d/%d, score %d-%d", s.Round, s.Rounds, s.MyScore, s.OpScore)
}

// Rules is the game.Model for coin games.
type Rules struct{}

var _ game.Model[State, Action] = Rules{}

// Self acts on even rounds, the opponent on odd rounds.
func (Rules) Turn(s State) game.Party {
	if s.Round%2 == 0 {
		return game.Self
	}
	return game.Opponent
}

func (Rules) LegalActions(s State, party game.Party) []Action {
	var actions []Action
	if party == game.Self {
		actions = s.MyActions
	} else {
		actions = s.OpActions
	}
	return append([]Action(nil), actions...)
}

func (r Rules) Apply(s State, action Action) State {
	party := r.Turn(s)
	next := State{
		MyScore:   s.MyScore,
		OpScore:   s.OpScore,
		Round:     s.Round + 1,
		Rounds:    s.Rounds,
		MyActions: append([]Action(nil), s.MyActions...),
		OpActions: append([]Action(nil), s.OpActions...),
	}
	if action == Winning(party) {
		if party == game.Self {
			next.MyScore++
		} else {
			next.OpScore++
		}
	}
	return next
}

func (Rules) IsTerminal(s State) bool {
	return s.Round >= s.Rounds
}

func (Rules) Score(s State) game.Outcome {
	switch {
	case s.MyScore > s.OpScore:
		return game.Win
	case s.MyScore < s.OpScore:
		return game.Loss
	default:
		return game.Draw
	}
}
