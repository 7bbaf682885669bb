package profiling

import (
	"testing"
	"time"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestTrackAccumulates(t *testing.T) {
	p := New()
	p.now = fakeClock(time.Millisecond)

	p.Track("terrain.Frame")()
	p.Track("terrain.Frame")()
	p.Track("terrain.rebuild")()

	if got := p.Duration("terrain.Frame"); got != 2*time.Millisecond {
		t.Fatalf("expected 2ms, got %v", got)
	}
	if got := p.SumWithPrefix("terrain."); got != 3*time.Millisecond {
		t.Fatalf("expected 3ms under terrain., got %v", got)
	}

	p.Count("terrain.drawn", 4)
	p.Count("terrain.drawn", 1)
	if got := p.Counter("terrain.drawn"); got != 5 {
		t.Fatalf("expected counter 5, got %d", got)
	}

	p.ResetFrame()
	if p.Duration("terrain.Frame") != 0 || p.Counter("terrain.drawn") != 0 {
		t.Fatal("ResetFrame should clear totals and counters")
	}
}

func TestTopN(t *testing.T) {
	p := New()
	p.frameTotals["a"] = 1 * time.Millisecond
	p.frameTotals["b"] = 3 * time.Millisecond
	p.frameTotals["c"] = 2 * time.Millisecond

	if got, want := p.TopN(2), "b:3.0ms, c:2.0ms"; got != want {
		t.Fatalf("TopN = %q, want %q", got, want)
	}
	if got := p.TopN(10); got != "b:3.0ms, c:2.0ms, a:1.0ms" {
		t.Fatalf("TopN over length = %q", got)
	}
}

func TestNilProfiler(t *testing.T) {
	var p *Profiler
	p.Track("x")()
	p.Count("x", 1)
	p.ResetFrame()
	if p.Duration("x") != 0 || p.Counter("x") != 0 || p.TopN(3) != "" || p.SumWithPrefix("") != 0 {
		t.Fatal("nil profiler should report nothing")
	}
}
