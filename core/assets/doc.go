// Package assets loads named 3D models for the prayer garden.
//
// The Loader resolves a model name to a storage location, downloads and decodes it
// through an injected Downloader and keeps a clone of every successfully loaded model
// in its ModelCache. Each load is retried a fixed number of times with a fixed delay
// between attempts and every attempt is bounded by a timeout. When all attempts fail
// and fallbacks are enabled, a placeholder geometry is synthesized for the model's
// category instead of returning an error.
//
// # Loading
//
//	l := assets.NewLoader(cfg, assets.NewStorageDownloader(client, bucket, nil),
//	    assets.WithLogger(logg))
//	tree, err := l.LoadWithFallback(ctx, "tree", nil, assets.WithMaxRetries(1))
//
// # Caching
//
// The cache is owned by the Loader, never evicts, and only ever stores and hands out
// clones, so callers may freely transform what they receive. Fallback models are never
// cached: a later call retries the real model from scratch.
//
// # Cancellation
//
// Each attempt runs the downloader with a context that expires after the attempt
// timeout. Downloaders should honor it; one that does not is abandoned and its late
// result is discarded.
package assets
