package config

import (
	"os"
	"path/filepath"
	"testing"

	"garden-assets/core/assets"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "garden", cfg.Storage.Bucket)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, assets.DefaultConfig(), cfg.Loader)
	assert.Equal(t, "models.yaml", cfg.Garden.ManifestPath)
	assert.Equal(t, float32(2), cfg.Garden.Spacing)
	assert.True(t, cfg.Garden.PreloadOnStart)
	assert.Equal(t, 5, cfg.Garden.BasicMaxActivity)
	assert.Equal(t, "X-Subscription-Level", cfg.Server.SubscriptionHeader)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOADER_MAX_RETRIES", "5")
	t.Setenv("LOADER_FALLBACK_ENABLED", "false")
	t.Setenv("GARDEN_MAX_PLANTS", "12")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Loader.MaxRetries)
	assert.False(t, cfg.Loader.FallbackEnabled)
	assert.Equal(t, 12, cfg.Garden.MaxPlants)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOADER_TIMEOUT_MS=2500\nLOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("LOADER_TIMEOUT_MS")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 2500, cfg.Loader.TimeoutMs)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestBindValues(t *testing.T) {
	type inner struct {
		Value string `mapstructure:"value" default:"x"`
	}
	type outer struct {
		Inner   inner  `mapstructure:"inner"`
		Name    string `mapstructure:"name" default:"n"`
		Ignored string
	}

	v := viper.New()
	bindValues(v, &outer{}, "root")

	assert.Equal(t, "x", v.GetString("root.inner.value"))
	assert.Equal(t, "n", v.GetString("root.name"))
	assert.False(t, v.IsSet("root.ignored"))
}
