package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"garden-assets/core/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
models:
  - name: oak
    category: tree
  - name: rose
    category: Flower
  - name: stone_path
    category: path
  - name: bench
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"oak", "rose", "stone_path", "bench"}, m.Names())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to open manifest")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Empty(t *testing.T) {
	m, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, m.Names())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty name", "models:\n  - name: ' '\n", "model name is empty"},
		{"duplicate", "models:\n  - name: oak\n  - name: oak\n", "duplicate model: oak"},
		{"unknown category", "models:\n  - name: oak\n    category: shrub\n", `unknown category "shrub"`},
		{"unknown field", "models:\n  - name: oak\n    colour: red\n", "failed to decode manifest"},
		{"malformed", "models: [", "failed to decode manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParse_DuplicateSentinel(t *testing.T) {
	_, err := Parse(strings.NewReader("models:\n  - name: a\n  - name: ' a '\n"))
	assert.ErrorIs(t, err, ErrDuplicateModel)
}

func TestClassifier(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	classify := m.Classifier()
	assert.Equal(t, assets.CategoryTree, classify("oak"))
	assert.Equal(t, assets.CategoryFlower, classify("rose"))
	assert.Equal(t, assets.CategoryPath, classify("stone_path"))
	assert.Equal(t, assets.CategoryGeneric, classify("bench"))
	// Unlisted names use the default classification.
	assert.Equal(t, assets.CategoryTree, classify("tree"))
	assert.Equal(t, assets.CategoryGeneric, classify("fountain"))
}
