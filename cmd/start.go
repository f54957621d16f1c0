package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"garden-assets/core/loader"
	"garden-assets/core/logger"
	"garden-assets/core/middleware/auth"
	"garden-assets/core/middleware/premium"
	"garden-assets/core/middleware/rayid"

	"garden-assets/feature/garden"
	"garden-assets/feature/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "garden-assets/docs/swagger"
)

// @title Garden Assets API
// @version 1.0
// @description API for loading and composing prayer garden models.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the garden asset server",
	Long:  `Starts the HTTP server, warms the model cache from the manifest and serves the models and garden features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logg
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		gardenSvc := garden.NewService(rt.cfg.Garden, rt.loader, logg)

		mgr := loader.NewManager(logg)
		mgr.Register(models.NewFeature(rt.models))
		mgr.Register(garden.NewFeature(gardenSvc))

		// RayID first so every log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if rt.cfg.Server.MetricsEnabled {
			app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(rt.registry, promhttp.HandlerOpts{})))
		}

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey, Skip: []string{"/metrics"}}))
		app.Use(premium.New(premium.Config{Header: rt.cfg.Server.SubscriptionHeader}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if rt.cfg.Garden.PreloadOnStart && rt.manifest != nil {
			go warmCache(ctx, rt, gardenSvc)
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			errCh <- app.Listen(rt.cfg.Server.Addr())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(rt.cfg.Server.ShutdownTimeout())
	},
}

// warmCache preloads the manifest and the garden templates in the background.
func warmCache(ctx context.Context, rt *runtime, gardenSvc *garden.Service) {
	report, err := rt.models.Preload(ctx, nil, nil)
	if err != nil {
		rt.logg.Warn("Startup preload failed", zap.Error(err))
		return
	}
	if len(report.Uncached) > 0 {
		rt.logg.Warn("Models not available after preload", zap.Strings("models", report.Uncached))
	}
	if err := gardenSvc.Warm(); err != nil {
		rt.logg.Warn("Garden template warmup failed", zap.Error(err))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
