package storage

import (
	"errors"
	"strings"
	"time"
)

// ErrNoBucket is returned by Validate when no model bucket is configured.
var ErrNoBucket = errors.New("storage: model bucket is required")

// ErrNoEndpoint is returned by Validate when the object store address is empty.
var ErrNoEndpoint = errors.New("storage: endpoint is required")

const defaultTimeout = 30 * time.Second

// Config points the model loader at the S3-compatible store that holds the
// garden's .glb files. Model names resolve to object keys inside Bucket.
type Config struct {
	// Endpoint is the object store address. A leading http:// or https:// is accepted and stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the garden models; `integrity --fix` creates it when missing.
	Bucket string `mapstructure:"bucket" default:"garden"`
	// Region is only needed when the bucket is created.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, the TLS handshake and waiting for response
	// headers. A whole model download is bounded by the loader's attempt timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports missing settings the model loader cannot run without.
func (c Config) Validate() error {
	if c.Host() == "" {
		return ErrNoEndpoint
	}
	if strings.TrimSpace(c.Bucket) == "" {
		return ErrNoBucket
	}
	return nil
}

// Host returns Endpoint without its scheme, as the minio client expects.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}

// Timeout returns the connection timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
