package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Profiler accumulates per-frame CPU time by subsystem name.
// It is owned by the render thread and is not safe for concurrent use.
type Profiler struct {
	frameTotals map[string]time.Duration
	counters    map[string]int
	now         func() time.Time
}

// New creates an empty profiler.
func New() *Profiler {
	return &Profiler{
		frameTotals: make(map[string]time.Duration),
		counters:    make(map[string]int),
		now:         time.Now,
	}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer p.Track("terrain.Frame")()
// A nil profiler records nothing; every method is safe on nil.
func (p *Profiler) Track(name string) func() {
	if p == nil {
		return func() {}
	}
	start := p.now()
	return func() {
		p.frameTotals[name] += p.now().Sub(start)
	}
}

// Count adds n to a per-frame counter.
func (p *Profiler) Count(name string, n int) {
	if p == nil {
		return
	}
	p.counters[name] += n
}

// ResetFrame clears the per-frame totals. Call at the start of each frame.
func (p *Profiler) ResetFrame() {
	if p == nil {
		return
	}
	clear(p.frameTotals)
	clear(p.counters)
}

// Duration returns the total recorded for name this frame.
func (p *Profiler) Duration(name string) time.Duration {
	if p == nil {
		return 0
	}
	return p.frameTotals[name]
}

// Counter returns the counter value for name this frame.
func (p *Profiler) Counter(name string) int {
	if p == nil {
		return 0
	}
	return p.counters[name]
}

// SumWithPrefix totals every duration whose name starts with prefix.
func (p *Profiler) SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	if p == nil {
		return sum
	}
	for k, v := range p.frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n largest durations of the current frame.
// Example: "terrain.Frame:4.2ms, terrain.rebuild:2.1ms"
func (p *Profiler) TopN(n int) string {
	if p == nil {
		return ""
	}
	type entry struct {
		name string
		dur  time.Duration
	}
	list := make([]entry, 0, len(p.frameTotals))
	for k, v := range p.frameTotals {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", e.name, float64(e.dur.Microseconds())/1000))
	}
	return strings.Join(parts, ", ")
}
