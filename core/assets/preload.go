package assets

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PreloadMany loads every named model concurrently and waits for all of them to
// settle. Cached models are skipped but still count towards progress. A model
// that fails to load is logged and skipped; it never fails the batch. The only
// error returned is the context's, when ctx ends before the batch completes.
//
// onProgress receives the batch completion fraction, never decreasing, and is
// called with exactly 1 once, after the last model settled.
func (l *Loader) PreloadMany(ctx context.Context, names []string, onProgress ProgressFunc) error {
	agg := newAggregate(len(names), onProgress)
	if len(names) == 0 {
		agg.finish()
		return nil
	}

	var g errgroup.Group
	if l.cfg.PreloadConcurrency > 0 {
		g.SetLimit(l.cfg.PreloadConcurrency)
	}

	for _, name := range names {
		g.Go(func() error {
			defer agg.settle()

			if l.cache.Has(name) {
				return nil
			}
			if _, err := l.LoadWithFallback(ctx, name, agg.inflight()); err != nil {
				l.logger.Warn("Failed to preload model", zap.String("model", name), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	return ctx.Err()
}
