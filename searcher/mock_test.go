package searcher

import (
	"mcts/game"
)

// mockModel is a game where every non-terminal state offers the same actions
// and the game ends after depth moves with a fixed outcome.
type mockModel struct {
	actions []string
	depth   int
	outcome game.Outcome
}

type mockState struct {
	played []string
}

func (m mockModel) Turn(s mockState) game.Party {
	if len(s.played)%2 == 0 {
		return game.Self
	}
	return game.Opponent
}

func (m mockModel) LegalActions(s mockState, party game.Party) []string {
	if party != m.Turn(s) {
		return nil
	}
	return m.actions
}

func (m mockModel) Apply(s mockState, action string) mockState {
	played := make([]string, 0, len(s.played)+1)
	played = append(played, s.played...)
	return mockState{played: append(played, action)}
}

func (m mockModel) IsTerminal(s mockState) bool {
	return len(s.played) >= m.depth
}

func (m mockModel) Score(mockState) game.Outcome {
	return m.outcome
}

// addChild attaches a child with the given statistics to parent.
func addChild(tree *Tree[mockState, string], parent nodeID, action string, visits, wins int) nodeID {
	p := tree.nodes[parent]
	child := tree.addNode(parent, action, tree.model.Turn(p.state), tree.model.Apply(p.state, action))
	tree.nodes[child].visits = visits
	tree.nodes[child].wins = wins
	tree.nodes[parent].children = append(tree.nodes[parent].children, child)
	return child
}
