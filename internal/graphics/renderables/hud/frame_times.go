package hud

import "time"

const frameHistory = 60

// FrameTimes keeps a rolling window of frame durations.
type FrameTimes struct {
	history []time.Duration
	next    int
}

// Add records one frame.
func (f *FrameTimes) Add(d time.Duration) {
	if len(f.history) < frameHistory {
		f.history = append(f.history, d)
		return
	}
	f.history[f.next] = d
	f.next = (f.next + 1) % frameHistory
}

// Stats returns min, average and max over the window.
func (f *FrameTimes) Stats() (lo, avg, hi time.Duration) {
	if len(f.history) == 0 {
		return 0, 0, 0
	}
	lo, hi = f.history[0], f.history[0]
	var total time.Duration
	for _, d := range f.history {
		total += d
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, total / time.Duration(len(f.history)), hi
}
