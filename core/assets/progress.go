package assets

import (
	"sync"
	"sync/atomic"
)

// ProgressFunc receives a completion fraction in [0, 1].
type ProgressFunc func(fraction float64)

func clamp01(v float64) float64 {
	switch {
	case v != v, v < 0: // NaN or negative
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// monotonic forwards increasing progress values to fn, one call at a time.
type monotonic struct {
	mu       sync.Mutex
	fn       ProgressFunc
	last     float64
	reported bool
}

func newMonotonic(fn ProgressFunc) *monotonic {
	return &monotonic{fn: fn}
}

func (m *monotonic) report(v float64) {
	if m.fn == nil {
		return
	}
	v = clamp01(v)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reported && v <= m.last {
		return
	}
	m.last = v
	m.reported = true
	m.fn(v)
}

// attempt returns a progress callback for one load attempt and a func that
// silences it once the attempt is over.
func (m *monotonic) attempt() (ProgressFunc, func()) {
	var closed atomic.Bool
	return func(v float64) {
			if !closed.Load() {
				m.report(v)
			}
		}, func() {
			closed.Store(true)
		}
}

// aggregate combines per-model progress into batch progress.
// Interim values stay below 1; exactly one final 1 is reported once every
// model has settled.
type aggregate struct {
	mu      sync.Mutex
	fn      ProgressFunc
	total   int
	settled int
	last    float64
	done    bool
}

func newAggregate(total int, fn ProgressFunc) *aggregate {
	return &aggregate{fn: fn, total: total}
}

func (a *aggregate) inflight() ProgressFunc {
	return func(p float64) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.emitLocked((float64(a.settled) + clamp01(p)) / float64(a.total))
	}
}

func (a *aggregate) settle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settled++
	if a.settled >= a.total {
		a.finishLocked()
		return
	}
	a.emitLocked(float64(a.settled) / float64(a.total))
}

func (a *aggregate) finish() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.finishLocked()
}

func (a *aggregate) emitLocked(v float64) {
	if a.fn == nil || a.done || v >= 1 || v <= a.last {
		return
	}
	a.last = v
	a.fn(v)
}

func (a *aggregate) finishLocked() {
	if a.done {
		return
	}
	a.done = true
	a.last = 1
	if a.fn != nil {
		a.fn(1)
	}
}
