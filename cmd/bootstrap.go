package cmd

import (
	"errors"
	"fmt"
	"os"

	"garden-assets/core/assets"
	"garden-assets/core/assets/metrics/prom"
	"garden-assets/core/config"
	"garden-assets/core/database"
	"garden-assets/core/history"
	"garden-assets/core/logger"
	"garden-assets/core/manifest"
	"garden-assets/core/storage"
	"garden-assets/feature/models"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// runtime holds the components shared by the commands.
type runtime struct {
	cfg      *config.Config
	logg     *zap.Logger
	store    storage.Client
	manifest *manifest.Manifest
	history  *history.Repository
	registry *prometheus.Registry
	loader   *assets.Loader
	models   *models.Service
}

// bootstrap loads configuration and wires storage, the optional database and
// manifest, and the model loader.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := cfg.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage configuration: %w", err)
	}
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	rt := &runtime{
		cfg:      cfg,
		logg:     logg,
		store:    store,
		registry: prometheus.NewRegistry(),
	}

	opts := []assets.Option{
		assets.WithLogger(logg),
		assets.WithResolver(assets.ExtensionResolver(cfg.Loader.Extension)),
		assets.WithMetrics(prom.New(rt.registry, "garden", "loader", nil)),
	}

	if m, err := manifest.Load(cfg.Garden.ManifestPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		logg.Warn("Model manifest not found", zap.String("path", cfg.Garden.ManifestPath))
	} else {
		rt.manifest = m
		opts = append(opts, assets.WithClassifier(m.Classifier()))
	}

	// The load history database is optional.
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			repo := history.NewRepository(db)
			if err := repo.Migrate(); err != nil {
				logg.Warn("Load history migration failed", zap.Error(err))
			} else {
				rt.history = repo
				opts = append(opts, assets.WithRecorder(repo))
				logg.Info("Connected to load history database", zap.String("driver", cfg.Database.Driver))
			}
		}
	}

	downloader := assets.NewStorageDownloader(store, cfg.Storage.Bucket, nil)
	rt.loader = assets.NewLoader(cfg.Loader, downloader, opts...)

	var hist models.HistoryStore
	if rt.history != nil {
		hist = rt.history
	}
	rt.models = models.NewService(rt.loader, store, cfg.Storage.Bucket, rt.manifest, hist, logg)
	return rt, nil
}
