package game

// Party identifies one side of an alternating two-party game.
type Party int

const (
	Self     Party = iota // The side the search is run for
	Opponent              // The other side
)

func (p Party) Other() Party {
	if p == Self {
		return Opponent
	}
	return Self
}

func (p Party) String() string {
	switch p {
	case Self:
		return "self"
	case Opponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Outcome is the result of a finished game, always from Self's perspective.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// Favors reports whether the outcome counts as a win for the given party.
// A draw favors nobody.
func (o Outcome) Favors(p Party) bool {
	switch o {
	case Win:
		return p == Self
	case Loss:
		return p == Opponent
	default:
		return false
	}
}

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Model supplies the rules of a game to the searcher. States are immutable:
// Apply always returns a new state and never modifies its input.
type Model[S any, A comparable] interface {
	// Turn returns the party to act at state
	Turn(state S) Party
	// LegalActions returns the actions available to party at state, without duplicates
	LegalActions(state S, party Party) []A
	// Apply plays action at state and returns the successor state
	Apply(state S, action A) S
	IsTerminal(state S) bool
	// Score is only defined for terminal states
	Score(state S) Outcome
}

// Actions is a shorthand for the legal actions of whoever is to act at state.
func Actions[S any, A comparable](m Model[S, A], state S) []A {
	return m.LegalActions(state, m.Turn(state))
}
