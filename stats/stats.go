// Package stats summarizes repeated game outcomes.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Statistic keeps a running mean and variance of pushed samples (Welford).
type Statistic struct {
	n    int
	mean float64
	m2   float64 // Sum of squared distances from the mean
}

func (s *Statistic) Push(val float64) {
	s.n++
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

// Variance is the unbiased sample variance, zero with fewer than two samples.
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Iterations() int {
	return s.n
}

// Interval returns the bounds of the two-tailed confidence interval around the
// mean. confidence is a percentage, e.g. 95.
func (s *Statistic) Interval(confidence float64) (float64, float64) {
	margin := ZVal(confidence) * s.StandardError()
	return s.mean - margin, s.mean + margin
}

// ZVal returns the two-tailed z-value for a confidence level given in percent.
func ZVal(confidence float64) float64 {
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	return normal.Quantile((1 + confidence/100) / 2)
}
