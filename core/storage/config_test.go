package storage_test

import (
	"testing"
	"time"

	"garden-assets/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
		want error
	}{
		{"Valid", storage.Config{Endpoint: "localhost:9000", Bucket: "garden"}, nil},
		{"MissingEndpoint", storage.Config{Bucket: "garden"}, storage.ErrNoEndpoint},
		{"SchemeOnly", storage.Config{Endpoint: "https://", Bucket: "garden"}, storage.ErrNoEndpoint},
		{"MissingBucket", storage.Config{Endpoint: "localhost:9000", Bucket: "  "}, storage.ErrNoBucket},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfig_Host(t *testing.T) {
	assert.Equal(t, "minio:9000", storage.Config{Endpoint: "http://minio:9000"}.Host())
	assert.Equal(t, "s3.amazonaws.com", storage.Config{Endpoint: "https://s3.amazonaws.com"}.Host())
	assert.Equal(t, "localhost:9000", storage.Config{Endpoint: "localhost:9000"}.Host())
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Config{}.Timeout())
	assert.Equal(t, 30*time.Second, storage.Config{TimeoutSeconds: -1}.Timeout())
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())
}
