// Package models exposes the model loader over HTTP.
//
// # Routes
//
//   - GET /models/:name loads one model and summarizes it.
//   - POST /models/preload warms the cache with {"names": [...]} or the manifest.
//   - GET /models/cache lists cached models.
//   - GET /models/integrity lists manifest models missing from the bucket.
//   - GET /models/history returns recent load outcomes (503 without a database).
//
// The Service is also used by the preload and integrity commands.
package models
