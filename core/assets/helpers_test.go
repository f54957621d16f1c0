package assets_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"garden-assets/core/assets"
	"garden-assets/core/scene"
)

var errBoom = errors.New("boom")

// stubDownloader records every call and delegates to fn.
type stubDownloader struct {
	mu    sync.Mutex
	calls []string
	times []time.Time
	fn    func(ctx context.Context, location string, progress assets.ProgressFunc) (*scene.Node, error)
}

func (s *stubDownloader) Download(ctx context.Context, location string, progress assets.ProgressFunc) (*scene.Node, error) {
	s.mu.Lock()
	s.calls = append(s.calls, location)
	s.times = append(s.times, time.Now())
	fn := s.fn
	s.mu.Unlock()
	return fn(ctx, location, progress)
}

func (s *stubDownloader) setFn(fn func(ctx context.Context, location string, progress assets.ProgressFunc) (*scene.Node, error)) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

func (s *stubDownloader) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubDownloader) locations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *stubDownloader) callTimes() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Time(nil), s.times...)
}

func succeeding() *stubDownloader {
	return &stubDownloader{fn: func(_ context.Context, location string, _ assets.ProgressFunc) (*scene.Node, error) {
		root := scene.NewGroup(location)
		root.Add(scene.NewMesh("body", scene.Geometry{Kind: scene.GeometryMesh, Primitives: 1}, scene.Material{Color: 0xFFFFFF}))
		return root, nil
	}}
}

func failing(err error) *stubDownloader {
	return &stubDownloader{fn: func(context.Context, string, assets.ProgressFunc) (*scene.Node, error) {
		return nil, err
	}}
}

// blocking waits for the attempt context to end, like a well-behaved downloader.
func blocking() *stubDownloader {
	return &stubDownloader{fn: func(ctx context.Context, _ string, _ assets.ProgressFunc) (*scene.Node, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
}

// fastConfig returns a config without delays so tests stay quick.
func fastConfig() assets.Config {
	cfg := assets.DefaultConfig()
	cfg.RetryDelayMs = 0
	cfg.TimeoutMs = 1000
	return cfg
}

// progressLog collects progress reports safely.
type progressLog struct {
	mu     sync.Mutex
	values []float64
}

func (p *progressLog) fn(v float64) {
	p.mu.Lock()
	p.values = append(p.values, v)
	p.mu.Unlock()
}

func (p *progressLog) all() []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]float64(nil), p.values...)
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []assets.LoadEvent
	err    error
}

func (r *fakeRecorder) Record(_ context.Context, e assets.LoadEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *fakeRecorder) outcomes() []assets.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]assets.Outcome, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Outcome)
	}
	return out
}

type countingMetrics struct {
	mu                                              sync.Mutex
	hits, misses, timeouts, errors, fallbacks, fail int
	loaded                                          int
	size                                            int
}

func (m *countingMetrics) Hit()  { m.mu.Lock(); m.hits++; m.mu.Unlock() }
func (m *countingMetrics) Miss() { m.mu.Lock(); m.misses++; m.mu.Unlock() }
func (m *countingMetrics) AttemptFailed(timeout bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if timeout {
		m.timeouts++
	} else {
		m.errors++
	}
}
func (m *countingMetrics) Fallback()              { m.mu.Lock(); m.fallbacks++; m.mu.Unlock() }
func (m *countingMetrics) Failure()               { m.mu.Lock(); m.fail++; m.mu.Unlock() }
func (m *countingMetrics) Loaded(_ time.Duration) { m.mu.Lock(); m.loaded++; m.mu.Unlock() }
func (m *countingMetrics) Size(n int)             { m.mu.Lock(); m.size = n; m.mu.Unlock() }
