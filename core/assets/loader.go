package assets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"garden-assets/core/scene"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Downloader fetches and decodes the model stored at location.
// progress is never nil. Implementations should stop when ctx is done.
type Downloader interface {
	Download(ctx context.Context, location string, progress ProgressFunc) (*scene.Node, error)
}

// DownloaderFunc adapts a function to the Downloader interface.
type DownloaderFunc func(ctx context.Context, location string, progress ProgressFunc) (*scene.Node, error)

func (f DownloaderFunc) Download(ctx context.Context, location string, progress ProgressFunc) (*scene.Node, error) {
	return f(ctx, location, progress)
}

// Resolver maps a base path and a model name to a storage location.
type Resolver func(basePath, name string) string

// ExtensionResolver joins base path, name and extension.
func ExtensionResolver(ext string) Resolver {
	return func(basePath, name string) string {
		return basePath + name + ext
	}
}

// Loader loads models with caching, retries, timeouts and fallbacks.
// It is safe for concurrent use.
type Loader struct {
	cfg        Config
	downloader Downloader
	resolve    Resolver
	classify   Classifier
	cache      *ModelCache
	logger     *zap.Logger
	metrics    Metrics
	recorder   Recorder
}

// Option configures a Loader.
type Option func(*Loader)

// WithResolver overrides how model names map to storage locations.
func WithResolver(r Resolver) Option {
	return func(l *Loader) { l.resolve = r }
}

// WithClassifier overrides how model names map to fallback categories.
func WithClassifier(c Classifier) Option {
	return func(l *Loader) { l.classify = c }
}

// WithCache makes the loader use an existing cache.
func WithCache(c *ModelCache) Option {
	return func(l *Loader) { l.cache = c }
}

// WithLogger sets the logger used for warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(l *Loader) { l.metrics = m }
}

// WithRecorder sets the load history recorder.
func WithRecorder(r Recorder) Option {
	return func(l *Loader) { l.recorder = r }
}

// NewLoader creates a loader with its own empty cache unless WithCache is given.
func NewLoader(cfg Config, downloader Downloader, opts ...Option) *Loader {
	l := &Loader{
		cfg:        cfg,
		downloader: downloader,
		resolve:    ExtensionResolver(cfg.Extension),
		classify:   CategoryOf,
		cache:      NewModelCache(),
		logger:     zap.NewNop(),
		metrics:    NoopMetrics{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	if l.metrics == nil {
		l.metrics = NoopMetrics{}
	}
	return l
}

// Cache returns the loader's model cache.
func (l *Loader) Cache() *ModelCache {
	return l.cache
}

// Config returns the loader's default configuration.
func (l *Loader) Config() Config {
	return l.cfg
}

// Location returns the storage location of a model under the default base path.
func (l *Loader) Location(name string) string {
	return l.resolve(l.cfg.BasePath, name)
}

// LoadWithFallback returns the named model.
//
// A cached model is returned as a fresh copy without any I/O. Otherwise the model
// is downloaded, retrying failed or timed out attempts up to the configured limit
// with a fixed delay in between. On success a copy is cached and the original is
// returned. When every attempt fails, a placeholder is returned if fallbacks are
// enabled, else a *LoadError wrapping the last failure.
func (l *Loader) LoadWithFallback(ctx context.Context, name string, onProgress ProgressFunc, opts ...LoadOption) (*scene.Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	p := l.cfg.policy()
	for _, opt := range opts {
		opt(&p)
	}
	if p.timeout <= 0 {
		l.logger.Debug("Non-positive attempt timeout, using default",
			zap.String("model", name),
			zap.Duration("timeout", DefaultConfig().Timeout()),
		)
	}
	p = p.normalize()

	start := time.Now()
	progress := newMonotonic(onProgress)

	if node, ok := l.cache.Get(name); ok {
		l.metrics.Hit()
		progress.report(1)
		l.record(ctx, LoadEvent{Model: name, Outcome: OutcomeCached, Duration: time.Since(start)})
		return node, nil
	}
	l.metrics.Miss()

	location := l.resolve(p.basePath, name)

	var (
		node     *scene.Node
		lastErr  error
		attempts int
	)
	if p.maxRetries > 0 {
		op := func() error {
			attempts++
			n, err := l.attempt(ctx, location, p.timeout, progress)
			if err == nil {
				node = n
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return backoff.Permanent(ctxErr)
			}
			lastErr = err
			l.metrics.AttemptFailed(errors.Is(err, ErrAttemptTimeout))
			l.logger.Warn("Failed to load model",
				zap.String("model", name),
				zap.String("location", location),
				zap.Int("attempt", attempts),
				zap.Int("max_retries", p.maxRetries),
				zap.Error(err),
			)
			return err
		}
		// maxRetries attempts in total, so maxRetries-1 delays and none after the last.
		policy := backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(p.retryDelay), uint64(p.maxRetries-1)),
			ctx,
		)
		err := backoff.Retry(op, policy)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("loading model %s: %w", name, ctxErr)
		}
		if err == nil {
			l.cache.Set(name, node)
			l.metrics.Size(l.cache.Len())
			l.metrics.Loaded(time.Since(start))
			progress.report(1)
			l.record(ctx, LoadEvent{Model: name, Outcome: OutcomeLoaded, Attempts: attempts, Duration: time.Since(start)})
			return node, nil
		}
	}

	if p.fallback {
		l.logger.Warn("Using fallback model",
			zap.String("model", name),
			zap.Int("attempts", attempts),
		)
		l.metrics.Fallback()
		l.record(ctx, LoadEvent{Model: name, Outcome: OutcomeFallback, Attempts: attempts, Duration: time.Since(start), Err: lastErr})
		return NewFallback(name, l.classify(name)), nil
	}

	l.metrics.Failure()
	loadErr := &LoadError{Name: name, Attempts: attempts, Err: lastErr}
	l.record(ctx, LoadEvent{Model: name, Outcome: OutcomeFailed, Attempts: attempts, Duration: time.Since(start), Err: loadErr})
	return nil, loadErr
}

type attemptResult struct {
	node *scene.Node
	err  error
}

// attempt runs one download bounded by timeout. The downloader's context is
// cancelled when the attempt ends; a downloader that ignores it keeps running
// in the background and its result is dropped.
func (l *Loader) attempt(ctx context.Context, location string, timeout time.Duration, progress *monotonic) (*scene.Node, error) {
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	report, silence := progress.attempt()
	defer silence()

	done := make(chan attemptResult, 1)
	go func() {
		node, err := l.downloader.Download(actx, location, report)
		done <- attemptResult{node: node, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) && ctx.Err() == nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrAttemptTimeout, location, r.err)
			}
			return nil, r.err
		}
		if r.node == nil {
			return nil, ErrNoModel
		}
		return r.node, nil
	case <-actx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: loading %s timed out after %s", ErrAttemptTimeout, location, timeout)
	}
}

func (l *Loader) record(ctx context.Context, event LoadEvent) {
	if l.recorder == nil {
		return
	}
	if err := l.recorder.Record(context.WithoutCancel(ctx), event); err != nil {
		l.logger.Warn("Failed to record load event",
			zap.String("model", event.Model),
			zap.String("outcome", string(event.Outcome)),
			zap.Error(err),
		)
	}
}
