package assets

import (
	"context"
	"time"
)

// Metrics exposes loader observability hooks.
// A NoopMetrics implementation is used by default.
type Metrics interface {
	Hit()
	Miss()
	AttemptFailed(timeout bool)
	Fallback()
	Failure()
	Loaded(d time.Duration)
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                 {}
func (NoopMetrics) Miss()                {}
func (NoopMetrics) AttemptFailed(bool)   {}
func (NoopMetrics) Fallback()            {}
func (NoopMetrics) Failure()             {}
func (NoopMetrics) Loaded(time.Duration) {}
func (NoopMetrics) Size(int)             {}

var _ Metrics = NoopMetrics{}

// Outcome describes how a LoadWithFallback call resolved.
type Outcome string

const (
	OutcomeCached   Outcome = "cached"
	OutcomeLoaded   Outcome = "loaded"
	OutcomeFallback Outcome = "fallback"
	OutcomeFailed   Outcome = "failed"
)

// LoadEvent is emitted to the Recorder once per resolved LoadWithFallback call.
type LoadEvent struct {
	Model    string
	Outcome  Outcome
	Attempts int
	Duration time.Duration
	Err      error
}

// Recorder persists load events, e.g. for fallback usage reports.
type Recorder interface {
	Record(ctx context.Context, event LoadEvent) error
}
