package assets

import "time"

// Config holds configuration for the model loader.
type Config struct {
	// BasePath is the prefix joined with a model name to build its storage location.
	BasePath string `mapstructure:"base_path" default:"assets/models/"`
	// Extension is appended to the model name by the default resolver.
	Extension string `mapstructure:"extension" default:".glb"`
	// FallbackEnabled substitutes a placeholder model when every attempt fails.
	FallbackEnabled bool `mapstructure:"fallback_enabled" default:"true"`
	// MaxRetries is the total number of load attempts per model.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryDelayMs is the fixed wait between failed attempts, in milliseconds.
	RetryDelayMs int `mapstructure:"retry_delay_ms" default:"1000"`
	// TimeoutMs bounds a single attempt, in milliseconds.
	TimeoutMs int `mapstructure:"timeout_ms" default:"10000"`
	// PreloadConcurrency caps concurrent loads in PreloadMany. Zero means unbounded.
	PreloadConcurrency int `mapstructure:"preload_concurrency" default:"0"`
}

// DefaultConfig returns the loader defaults.
func DefaultConfig() Config {
	return Config{
		BasePath:        "assets/models/",
		Extension:       ".glb",
		FallbackEnabled: true,
		MaxRetries:      3,
		RetryDelayMs:    1000,
		TimeoutMs:       10000,
	}
}

// RetryDelay returns the delay between attempts as a duration.
func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// Timeout returns the per-attempt timeout as a duration. Values of zero or
// less are replaced by the default when a load runs.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// policy is the effective, per-call view of Config.
type policy struct {
	basePath   string
	fallback   bool
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration
}

func (c Config) policy() policy {
	p := policy{
		basePath:   c.BasePath,
		fallback:   c.FallbackEnabled,
		maxRetries: c.MaxRetries,
		retryDelay: c.RetryDelay(),
		timeout:    c.Timeout(),
	}
	return p.normalize()
}

func (p policy) normalize() policy {
	if p.maxRetries < 0 {
		p.maxRetries = 0
	}
	if p.retryDelay < 0 {
		p.retryDelay = 0
	}
	// A zero or negative timeout falls back to the 10s default.
	if p.timeout <= 0 {
		p.timeout = DefaultConfig().Timeout()
	}
	return p
}

// LoadOption overrides a loader setting for a single LoadWithFallback call.
type LoadOption func(*policy)

// WithBasePath overrides the base path.
func WithBasePath(path string) LoadOption {
	return func(p *policy) { p.basePath = path }
}

// WithFallback enables or disables the placeholder fallback.
func WithFallback(enabled bool) LoadOption {
	return func(p *policy) { p.fallback = enabled }
}

// WithMaxRetries overrides the number of attempts.
func WithMaxRetries(n int) LoadOption {
	return func(p *policy) { p.maxRetries = n }
}

// WithRetryDelay overrides the wait between failed attempts.
func WithRetryDelay(d time.Duration) LoadOption {
	return func(p *policy) { p.retryDelay = d }
}

// WithTimeout overrides the per-attempt timeout. A value of zero or less
// selects the default timeout rather than disabling it.
func WithTimeout(d time.Duration) LoadOption {
	return func(p *policy) { p.timeout = d }
}
