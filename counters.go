package docgen

import "sync/atomic"

// Counters accumulates analysis session statistics, safe for concurrent use
type Counters struct {
	analyzed  atomic.Int64
	functions atomic.Int64
	classes   atomic.Int64
	patterns  atomic.Int64
	examples  atomic.Int64
}

// NewCounters creates session counters
func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) AddAnalyzed(delta int) {
	c.analyzed.Add(int64(delta))
}

func (c *Counters) AddFunction() {
	c.functions.Add(1)
}

func (c *Counters) AddClass() {
	c.classes.Add(1)
}

func (c *Counters) AddPatterns(delta int) {
	c.patterns.Add(int64(delta))
}

func (c *Counters) AddExample() {
	c.examples.Add(1)
}

// Snapshot returns current counter values
func (c *Counters) Snapshot() map[string]int {
	return map[string]int{
		"total_analyzed":     int(c.analyzed.Load()),
		"functions_analyzed": int(c.functions.Load()),
		"classes_analyzed":   int(c.classes.Load()),
		"patterns_detected":  int(c.patterns.Load()),
		"examples_generated": int(c.examples.Load()),
	}
}
