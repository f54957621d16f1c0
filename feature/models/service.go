package models

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"garden-assets/core/assets"
	"garden-assets/core/history"
	"garden-assets/core/logger"
	"garden-assets/core/manifest"
	"garden-assets/core/scene"
	"garden-assets/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrNoManifest is returned when an operation needs the manifest and none is loaded.
	ErrNoManifest = errors.New("no model manifest configured")
	// ErrNoHistory is returned when load history is requested without a database.
	ErrNoHistory = errors.New("load history requires a database")
)

// HistoryStore is the read side of the load history.
type HistoryStore interface {
	Recent(ctx context.Context, limit int) ([]history.LoadEvent, error)
	Summary(ctx context.Context) ([]history.OutcomeCount, error)
	Verify(ctx context.Context) ([]string, error)
}

// Summary describes a loaded model.
type Summary struct {
	Name     string `json:"name"`
	Cached   bool   `json:"cached"`
	Fallback bool   `json:"fallback"`
	Category string `json:"category,omitempty"`
	Nodes    int    `json:"nodes"`
	Meshes   int    `json:"meshes"`
}

// PreloadReport is the outcome of a preload run.
type PreloadReport struct {
	Requested int           `json:"requested"`
	Cached    []string      `json:"cached"`
	Uncached  []string      `json:"uncached"`
	Duration  time.Duration `json:"duration_ns"`
}

// IntegrityReport lists manifest models missing from storage.
type IntegrityReport struct {
	Bucket  string   `json:"bucket"`
	Checked int      `json:"checked"`
	Missing []string `json:"missing"`
	// Unlisted are model objects in storage that the manifest does not name.
	Unlisted []string `json:"unlisted"`
	// HistoryColumns are missing load history columns, when a database is configured.
	HistoryColumns []string `json:"history_columns,omitempty"`
}

// Service exposes the model loader to HTTP and CLI callers.
type Service struct {
	loader   *assets.Loader
	client   storage.Client
	bucket   string
	manifest *manifest.Manifest
	history  HistoryStore
	logger   *zap.Logger
}

// NewService creates a model service. m and hist may be nil.
func NewService(loader *assets.Loader, client storage.Client, bucket string, m *manifest.Manifest, hist HistoryStore, log *zap.Logger) *Service {
	return &Service{
		loader:   loader,
		client:   client,
		bucket:   bucket,
		manifest: m,
		history:  hist,
		logger:   logger.OrNop(log),
	}
}

// Load loads a model, falling back to a placeholder when configured.
func (s *Service) Load(ctx context.Context, name string) (*Summary, error) {
	cached := s.loader.Cache().Has(name)
	node, err := s.loader.LoadWithFallback(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	return summarize(name, cached, node), nil
}

func summarize(name string, cached bool, node *scene.Node) *Summary {
	sum := &Summary{
		Name:     name,
		Cached:   cached,
		Fallback: node.IsFallback(),
		Nodes:    node.Count(),
	}
	if c, ok := node.UserData["category"].(string); ok {
		sum.Category = c
	}
	node.Walk(func(n *scene.Node) bool {
		if n.Geometry != nil {
			sum.Meshes++
		}
		return true
	})
	return sum
}

// Preload warms the cache with names, or with the manifest when names is empty.
// Individual failures do not fail the run; they show up as uncached.
func (s *Service) Preload(ctx context.Context, names []string, onProgress assets.ProgressFunc) (*PreloadReport, error) {
	if len(names) == 0 {
		if s.manifest == nil {
			return nil, ErrNoManifest
		}
		names = s.manifest.Names()
	}

	start := time.Now()
	if err := s.loader.PreloadMany(ctx, names, onProgress); err != nil {
		return nil, err
	}

	report := &PreloadReport{
		Requested: len(names),
		Cached:    []string{},
		Uncached:  []string{},
		Duration:  time.Since(start),
	}
	cache := s.loader.Cache()
	for _, name := range names {
		if cache.Has(name) {
			report.Cached = append(report.Cached, name)
		} else {
			report.Uncached = append(report.Uncached, name)
		}
	}
	s.logger.Info("Preload finished",
		zap.Int("requested", report.Requested),
		zap.Int("cached", len(report.Cached)),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// CachedModels lists cached model names.
func (s *Service) CachedModels() []string {
	return s.loader.Cache().Keys()
}

// CheckIntegrity compares the manifest with the objects under the loader's base path.
func (s *Service) CheckIntegrity(ctx context.Context) (*IntegrityReport, error) {
	if s.manifest == nil {
		return nil, ErrNoManifest
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	cfg := s.loader.Config()
	present := make(map[string]struct{})
	opts := minio.ListObjectsOptions{Prefix: cfg.BasePath, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list models: %w", obj.Err)
		}
		present[obj.Key] = struct{}{}
	}

	report := &IntegrityReport{
		Bucket:   s.bucket,
		Missing:  []string{},
		Unlisted: []string{},
	}
	listed := make(map[string]struct{})
	for _, name := range s.manifest.Names() {
		report.Checked++
		key := s.loader.Location(name)
		listed[key] = struct{}{}
		if _, ok := present[key]; !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	for key := range present {
		if _, ok := listed[key]; ok || !strings.HasSuffix(key, cfg.Extension) {
			continue
		}
		report.Unlisted = append(report.Unlisted, key)
	}
	sort.Strings(report.Unlisted)

	if s.history != nil {
		cols, err := s.history.Verify(ctx)
		if err != nil {
			return nil, err
		}
		report.HistoryColumns = cols
	}
	return report, nil
}

// History returns recent load events and per-model outcome counts.
func (s *Service) History(ctx context.Context, limit int) ([]history.LoadEvent, []history.OutcomeCount, error) {
	if s.history == nil {
		return nil, nil, ErrNoHistory
	}
	events, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	summary, err := s.history.Summary(ctx)
	if err != nil {
		return nil, nil, err
	}
	return events, summary, nil
}
