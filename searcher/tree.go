package searcher

import (
	"fmt"
	"math"

	"mcts/game"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// selectNode descends from the root through fully expanded nodes, following
// the child with the highest UCB1 score, and returns the node to expand or
// evaluate.
func (t *Tree[S, A]) selectNode() (nodeID, error) {
	id := rootID
	for {
		n := &t.nodes[id]
		if n.terminal || !t.isFullyExpanded(id) {
			return id, nil
		}
		if len(n.children) == 0 {
			return id, fmt.Errorf("%w: non-terminal node %d has nothing to play", ErrNoLegalActions, id)
		}
		id = t.bestChild(id)
	}
}

// bestChild returns the child with the highest UCB1 score. Ties go to the
// child expanded first.
func (t *Tree[S, A]) bestChild(id nodeID) nodeID {
	parent := &t.nodes[id]
	policy := newUCB(t.exploration, parent.visits)

	best := parent.children[0]
	maxScore := math.Inf(-1)
	for _, child := range parent.children {
		c := &t.nodes[child]
		if score := policy.evaluate(c.wins, c.visits); score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// expand adds a child for one untried action, picked uniformly at random, and
// returns it.
func (t *Tree[S, A]) expand(id nodeID, rng *rand.Rand) (nodeID, error) {
	n := &t.nodes[id]
	if n.terminal {
		return noParent, fmt.Errorf("%w: cannot expand terminal node %d", ErrInvariantViolation, id)
	}
	if t.isFullyExpanded(id) {
		return noParent, fmt.Errorf("%w: cannot expand fully expanded node %d", ErrInvariantViolation, id)
	}

	untried := lo.Filter(n.legal, func(action A, _ int) bool {
		return !t.hasChild(id, action)
	})
	if len(untried) == 0 {
		return noParent, fmt.Errorf("%w: node %d has %d of %d children but no untried action",
			ErrNoLegalActions, id, len(n.children), len(n.legal))
	}

	action := untried[rng.Intn(len(untried))]
	party := t.model.Turn(n.state)
	state := t.model.Apply(n.state, action)

	// addNode may grow the arena, so n must not be used past this point
	child := t.addNode(id, action, party, state)
	t.nodes[id].children = append(t.nodes[id].children, child)
	return child, nil
}

// backpropagate records outcome on every node from id up to the root.
func (t *Tree[S, A]) backpropagate(id nodeID, outcome game.Outcome) error {
	last := noParent
	for steps := 0; id != noParent; steps++ {
		if id < 0 || int(id) >= len(t.nodes) || steps >= len(t.nodes) {
			return fmt.Errorf("%w: broken parent chain at node %d", ErrInvariantViolation, id)
		}
		n := &t.nodes[id]
		n.visits++
		if outcome.Favors(n.party) {
			n.wins++
		}
		last = id
		id = n.parent
	}
	if last != rootID {
		return fmt.Errorf("%w: parent chain ended at node %d instead of the root", ErrInvariantViolation, last)
	}
	return nil
}

// BestAction returns the action of the most visited root child. Ties go to the
// child expanded first.
func (t *Tree[S, A]) BestAction() (A, error) {
	children := t.Children()
	if len(children) == 0 {
		var none A
		return none, fmt.Errorf("%w: root has no children after %d iterations", ErrNoMovesAvailable, t.Visits())
	}

	best := lo.MaxBy(children, func(a, b ChildStat[A]) bool {
		return a.Visits > b.Visits
	})
	return best.Action, nil
}

// rollout plays uniformly random legal actions from state until the game ends.
// It works on its own copy of the state and never touches the tree.
func rollout[S any, A comparable](model game.Model[S, A], state S, rng *rand.Rand) (game.Outcome, error) {
	for depth := 0; !model.IsTerminal(state); depth++ {
		if depth >= MaxRolloutDepth {
			return game.Draw, fmt.Errorf("%w: rollout did not end after %d moves", ErrInvariantViolation, depth)
		}
		actions := game.Actions(model, state)
		if len(actions) == 0 {
			return game.Draw, fmt.Errorf("%w: non-terminal state during rollout", ErrNoLegalActions)
		}
		state = model.Apply(state, actions[rng.Intn(len(actions))]) // Random rollout policy
	}
	return model.Score(state), nil
}
