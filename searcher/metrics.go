package searcher

import (
	"time"

	"github.com/coder/quartz"
)

type SearchMetrics struct {
	Strategy string
	Depth    int
	Duration time.Duration
	Nodes    int64
	Cutoffs  int64
}

type MetricsCollector interface {
	Start(strategy string, depth int)
	AddNode()
	AddCutoff()
	Complete() SearchMetrics
}

type metricsCollector struct {
	clock     quartz.Clock
	startTime time.Time
	strategy  string
	depth     int
	nodes     int64
	cutoffs   int64
}

// NewMetricsCollector returns a collector for a single goroutine.
func NewMetricsCollector(clock quartz.Clock) MetricsCollector {
	return &metricsCollector{clock: clock}
}

func (m *metricsCollector) Start(strategy string, depth int) {
	m.startTime = m.clock.Now()
	m.strategy = strategy
	m.depth = depth
	m.nodes = 0
	m.cutoffs = 0
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		Strategy: m.strategy,
		Depth:    m.depth,
		Duration: m.clock.Since(m.startTime),
		Nodes:    m.nodes,
		Cutoffs:  m.cutoffs,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(string, int)       {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
