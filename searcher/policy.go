package searcher

import "math"

// ucb scores the children of one parent with UCB1:
// wins/visits + C*sqrt(ln(N)/visits), where N is the parent's visit count.
type ucb struct {
	numerator float64
}

func newUCB(c float64, N int) ucb {
	if N == 0 {
		panic("N cannot be 0")
	}
	return ucb{numerator: c * c * math.Log(float64(N))}
}

func (u ucb) evaluate(wins int, visits int) float64 {
	if visits == 0 {
		panic("visits cannot be 0")
	}
	n := float64(visits)
	// c*sqrt(ln(N)/n) == sqrt(c^2*ln(N)/n)
	return float64(wins)/n + math.Sqrt(u.numerator/n)
}
