// Package nim implements a single-pile subtraction game. Each turn the party to
// act removes between one and MaxTake objects; whoever takes the last object wins.
package nim

import (
	"fmt"

	"mcts/game"
)

const DefaultMaxTake = 3

// Take removes that many objects from the pile.
type Take int

func (t Take) String() string {
	return fmt.Sprintf("take %d", int(t))
}

type State struct {
	Pile    int
	MaxTake int
	ToAct   game.Party
}

func New(pile, maxTake int) State {
	return State{Pile: pile, MaxTake: maxTake, ToAct: game.Self}
}

func (s State) String() string {
	return fmt.Sprintf("pile %d, %s to act", s.Pile, s.ToAct)
}

// Losing reports whether the party to act loses against perfect play.
func (s State) Losing() bool {
	return s.Pile%(s.MaxTake+1) == 0
}

type Rules struct{}

var _ game.Model[State, Take] = Rules{}

func (Rules) Turn(s State) game.Party {
	return s.ToAct
}

func (Rules) LegalActions(s State, party game.Party) []Take {
	if party != s.ToAct {
		return nil
	}
	n := min(s.MaxTake, s.Pile)
	actions := make([]Take, 0, n)
	for i := 1; i <= n; i++ {
		actions = append(actions, Take(i))
	}
	return actions
}

func (Rules) Apply(s State, action Take) State {
	return State{
		Pile:    s.Pile - int(action),
		MaxTake: s.MaxTake,
		ToAct:   s.ToAct.Other(),
	}
}

func (Rules) IsTerminal(s State) bool {
	return s.Pile <= 0
}

// The party that emptied the pile is the one that is no longer to act.
func (Rules) Score(s State) game.Outcome {
	if s.ToAct == game.Opponent {
		return game.Win
	}
	return game.Loss
}
