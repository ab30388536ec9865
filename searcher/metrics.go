package searcher

import (
	"time"
)

type SearchMetric struct {
	StartTime           time.Time
	Duration            time.Duration
	Iterations          int
	Rollouts            int
	TerminalEvaluations int
	TreeSize            int
	Exploration         float64
}

type MetricsCollector interface {
	Start(exploration float64)
	AddIteration()
	AddRollout()
	AddTerminalEvaluation()
	Complete(treeSize int) SearchMetric
}

type metricsCollector struct {
	startTime           time.Time
	exploration         float64
	iterations          int
	rollouts            int
	terminalEvaluations int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(exploration float64) {
	*m = metricsCollector{startTime: time.Now(), exploration: exploration}
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddRollout() {
	m.rollouts++
}

func (m *metricsCollector) AddTerminalEvaluation() {
	m.terminalEvaluations++
}

func (m *metricsCollector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		StartTime:           m.startTime,
		Duration:            time.Since(m.startTime),
		Iterations:          m.iterations,
		Rollouts:            m.rollouts,
		TerminalEvaluations: m.terminalEvaluations,
		TreeSize:            treeSize,
		Exploration:         m.exploration,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(float64)             {}
func (m *noMetricsCollector) AddIteration()             {}
func (m *noMetricsCollector) AddRollout()               {}
func (m *noMetricsCollector) AddTerminalEvaluation()    {}
func (m *noMetricsCollector) Complete(int) SearchMetric { return SearchMetric{} }
