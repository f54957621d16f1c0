package garden

import (
	"errors"
	"strconv"

	"garden-assets/core/logger"
	"garden-assets/core/middleware/premium"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the garden.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the garden routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/garden")
	group.Get("/", premium.RequireFeature(premium.FeatureAdvancedGarden), h.HandleGrow)
	group.Get("/stats", h.HandleStats)
	group.Delete("/templates/:name", h.HandleReleaseTemplate)
}

// HandleGrow lays out the garden for a prayer activity level. Callers below
// the premium level get the basic garden, grown from a capped activity.
// @Summary Grow Garden
// @Description Lays out the prayer garden. The plant count grows with activity; the basic garden caps activity.
// @Tags garden
// @Produce json
// @Param activity query int false "Prayer activity (default 0)"
// @Param X-Subscription-Level header string false "basic, premium or family"
// @Success 200 {object} garden.Layout "Garden layout"
// @Failure 400 {object} map[string]string "Invalid activity"
// @Failure 502 {object} map[string]string "Model load failed"
// @Router /garden [get]
func (h *Handler) HandleGrow(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	activity := 0
	if raw := c.Query("activity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "activity must be a non-negative integer",
			})
		}
		activity = n
	}

	basic := premium.UsingBasic(c)
	if basic {
		activity = h.service.cfg.BasicActivity(activity)
	}

	layout, err := h.service.Grow(c.UserContext(), activity)
	if err != nil {
		l.Error("Garden layout failed", zap.Int("activity", activity), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	layout.BasicVersion = basic
	return c.JSON(layout)
}

// HandleStats reports held templates and pooled nodes.
// @Summary Garden Stats
// @Tags garden
// @Produce json
// @Success 200 {object} garden.Stats "Garden stats"
// @Router /garden/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// HandleReleaseTemplate releases a model template.
// @Summary Release Template
// @Description Drops a held model template so the next layout reloads it.
// @Tags garden
// @Param name path string true "Model name"
// @Success 204 "Released"
// @Failure 404 {object} map[string]string "Template not loaded"
// @Router /garden/templates/{name} [delete]
func (h *Handler) HandleReleaseTemplate(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.ReleaseTemplate(name); err != nil {
		if errors.Is(err, ErrUnknownTemplate) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Info("Garden template released", zap.String("model", name))
	return c.SendStatus(fiber.StatusNoContent)
}
