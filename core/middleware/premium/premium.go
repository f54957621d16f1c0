package premium

import (
	"github.com/gofiber/fiber/v2"
)

// DefaultHeader carries the caller's subscription level, set by the gateway in front of the API.
const DefaultHeader = "X-Subscription-Level"

// Locals keys.
const (
	LevelKey     = "subscription_level"
	RequestedKey = "requested_feature"
	ProvidedKey  = "provided_feature"
	BasicKey     = "using_basic_version"
)

// UpgradeMessage is returned for features that have no basic version.
const UpgradeMessage = "Feature requires premium subscription"

// Resolver determines the subscription level of a request.
type Resolver func(c *fiber.Ctx) Level

// HeaderResolver reads the level from header. A missing or unknown value is Basic.
func HeaderResolver(header string) Resolver {
	return func(c *fiber.Ctx) Level {
		level, _ := ParseLevel(c.Get(header))
		return level
	}
}

// Config holds the premium middleware settings.
type Config struct {
	// Header names the request header read when Resolve is nil. Defaults to DefaultHeader.
	Header string
	// Resolve overrides header based resolution.
	Resolve Resolver
}

// Response is sent when a feature is unavailable at the caller's level.
type Response struct {
	HasAccess     bool   `json:"has_access"`
	Feature       string `json:"feature"`
	RequiredLevel string `json:"required_level"`
	Message       string `json:"message,omitempty"`
}

// New returns a middleware storing the request's subscription level in Locals.
func New(cfg Config) fiber.Handler {
	resolve := cfg.Resolve
	if resolve == nil {
		header := cfg.Header
		if header == "" {
			header = DefaultHeader
		}
		resolve = HeaderResolver(header)
	}
	return func(c *fiber.Ctx) error {
		c.Locals(LevelKey, resolve(c))
		return c.Next()
	}
}

// RequireFeature gates a route on feature. Callers without access to a core
// feature continue with its basic version, recorded in Locals. Other features
// answer with an upgrade notice instead of running the handler.
func RequireFeature(feature Feature) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(RequestedKey, feature)
		if HasAccess(LevelFrom(c), feature) {
			c.Locals(ProvidedKey, feature)
			return c.Next()
		}
		if basic, ok := BasicVersion(feature); ok {
			c.Locals(ProvidedKey, basic)
			c.Locals(BasicKey, true)
			return c.Next()
		}
		return c.Status(fiber.StatusOK).JSON(Response{
			HasAccess:     false,
			Feature:       string(feature),
			RequiredLevel: RequiredLevel(feature).String(),
			Message:       UpgradeMessage,
		})
	}
}

// LevelFrom returns the level stored by New, Basic when absent.
func LevelFrom(c *fiber.Ctx) Level {
	level, ok := c.Locals(LevelKey).(Level)
	if !ok {
		return Basic
	}
	return level
}

// ProvidedFeature returns the feature RequireFeature let through, empty when none.
func ProvidedFeature(c *fiber.Ctx) Feature {
	f, _ := c.Locals(ProvidedKey).(Feature)
	return f
}

// UsingBasic reports whether RequireFeature substituted a basic version.
func UsingBasic(c *fiber.Ctx) bool {
	basic, _ := c.Locals(BasicKey).(bool)
	return basic
}
