package models

import (
	"context"
	"errors"
	"strconv"

	"garden-assets/core/assets"
	"garden-assets/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for models.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PreloadRequest is the body of POST /models/preload.
type PreloadRequest struct {
	Names []string `json:"names"`
}

// RegisterRoutes registers the model routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/models")
	group.Get("/cache", h.HandleCache)
	group.Get("/integrity", h.HandleIntegrity)
	group.Get("/history", h.HandleHistory)
	group.Post("/preload", h.HandlePreload)
	group.Get("/:name", h.HandleLoad)
}

// HandleLoad loads a single model.
// @Summary Load Model
// @Description Loads a model from storage, using the cache and falling back to a placeholder when configured.
// @Tags models
// @Produce json
// @Param name path string true "Model name (e.g. 'oak')"
// @Success 200 {object} models.Summary "Model summary"
// @Failure 502 {object} map[string]string "Model load failed"
// @Router /models/{name} [get]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Load(c.UserContext(), name)
	if err != nil {
		l.Error("Model load failed", zap.String("model", name), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandlePreload warms the model cache.
// @Summary Preload Models
// @Description Preloads the given models, or the manifest when no names are given. Failures are reported as uncached.
// @Tags models
// @Accept json
// @Produce json
// @Param request body models.PreloadRequest false "Model names"
// @Success 200 {object} models.PreloadReport "Preload report"
// @Failure 400 {object} map[string]string "Invalid body"
// @Failure 503 {object} map[string]string "No manifest"
// @Router /models/preload [post]
func (h *Handler) HandlePreload(c *fiber.Ctx) error {
	var req PreloadRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	report, err := h.service.Preload(c.UserContext(), req.Names, nil)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Preload failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

// HandleCache lists cached models.
// @Summary List Cached Models
// @Tags models
// @Produce json
// @Success 200 {object} map[string]interface{} "Cached models"
// @Router /models/cache [get]
func (h *Handler) HandleCache(c *fiber.Ctx) error {
	keys := h.service.CachedModels()
	return c.JSON(fiber.Map{
		"count":  len(keys),
		"models": keys,
	})
}

// HandleIntegrity checks the manifest against storage.
// @Summary Check Model Integrity
// @Description Lists manifest models missing from the bucket and model objects the manifest does not name.
// @Tags models
// @Produce json
// @Success 200 {object} models.IntegrityReport "Integrity report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "No manifest"
// @Router /models/integrity [get]
func (h *Handler) HandleIntegrity(c *fiber.Ctx) error {
	report, err := h.service.CheckIntegrity(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Integrity check failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}

// HandleHistory returns recent load events.
// @Summary Load History
// @Tags models
// @Produce json
// @Param limit query int false "Maximum events (default 50)"
// @Success 200 {object} map[string]interface{} "Events and outcome counts"
// @Failure 503 {object} map[string]string "No database"
// @Router /models/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be an integer",
		})
	}

	events, summary, err := h.service.History(c.UserContext(), limit)
	if err != nil {
		if !errors.Is(err, ErrNoHistory) {
			logger.WithRayID(h.service.logger, c).Error("History query failed", zap.Error(err))
		}
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"events":  events,
		"summary": summary,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, assets.ErrEmptyName):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNoManifest), errors.Is(err, ErrNoHistory):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, assets.ErrLoadExhausted):
		return fiber.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}
