package searcher

import (
	"mcts/game"

	"github.com/samber/lo"
)

// nodeID addresses a node in the tree's arena.
type nodeID int32

const (
	rootID   nodeID = 0
	noParent nodeID = -1
)

type node[S any, A comparable] struct {
	parent nodeID
	action A          // Action played at the parent, unset for the root
	party  game.Party // Party that played action; for the root, the party to act
	state  S

	terminal bool
	legal    []A      // Legal actions for the party to act at state, empty if terminal
	children []nodeID // In expansion order, at most one per legal action

	visits int
	wins   int // Outcomes that favored party
}

// Tree is a search tree stored as a flat arena. Nodes only refer to each other
// by index, so growing the arena never invalidates a link.
type Tree[S any, A comparable] struct {
	model       game.Model[S, A]
	exploration float64
	nodes       []node[S, A]
}

func newTree[S any, A comparable](model game.Model[S, A], state S, exploration float64) *Tree[S, A] {
	t := &Tree[S, A]{
		model:       model,
		exploration: exploration,
	}
	var none A
	t.addNode(noParent, none, model.Turn(state), state)
	return t
}

func (t *Tree[S, A]) addNode(parent nodeID, action A, party game.Party, state S) nodeID {
	terminal := t.model.IsTerminal(state)
	var legal []A
	if !terminal {
		legal = lo.Uniq(game.Actions(t.model, state))
	}

	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[S, A]{
		parent:   parent,
		action:   action,
		party:    party,
		state:    state,
		terminal: terminal,
		legal:    legal,
	})
	return id
}

func (t *Tree[S, A]) isFullyExpanded(id nodeID) bool {
	n := &t.nodes[id]
	return len(n.children) == len(n.legal)
}

func (t *Tree[S, A]) hasChild(id nodeID, action A) bool {
	return lo.ContainsBy(t.nodes[id].children, func(child nodeID) bool {
		return t.nodes[child].action == action
	})
}

// ChildStat summarizes one child of the root.
type ChildStat[A comparable] struct {
	Action A
	Visits int
	Wins   int
}

func (c ChildStat[A]) WinRate() float64 {
	if c.Visits == 0 {
		return 0
	}
	return float64(c.Wins) / float64(c.Visits)
}

// Children returns the statistics of the root's children in expansion order.
func (t *Tree[S, A]) Children() []ChildStat[A] {
	return lo.Map(t.nodes[rootID].children, func(id nodeID, _ int) ChildStat[A] {
		n := &t.nodes[id]
		return ChildStat[A]{Action: n.action, Visits: n.visits, Wins: n.wins}
	})
}

// Policy returns each root action's share of the root children's visits.
func (t *Tree[S, A]) Policy() map[A]float64 {
	children := t.Children()
	total := lo.SumBy(children, func(c ChildStat[A]) int { return c.Visits })
	policy := make(map[A]float64, len(children))
	for _, c := range children {
		if total > 0 {
			policy[c.Action] = float64(c.Visits) / float64(total)
		} else {
			policy[c.Action] = 0
		}
	}
	return policy
}

// Visits returns the number of passes that went through the root.
func (t *Tree[S, A]) Visits() int {
	return t.nodes[rootID].visits
}

// Size returns the number of nodes in the tree.
func (t *Tree[S, A]) Size() int {
	return len(t.nodes)
}
