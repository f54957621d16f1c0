package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"garden-assets/core/assets"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateModel reports a model listed twice.
var ErrDuplicateModel = errors.New("duplicate model")

// Model is one manifest entry.
type Model struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Manifest lists the models a garden uses.
type Manifest struct {
	Models []Model `yaml:"models" json:"models"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a manifest.
func Parse(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks names are present and unique and categories are known.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Models))
	for i, model := range m.Models {
		name := strings.TrimSpace(model.Name)
		if name == "" {
			return fmt.Errorf("model %d: %w", i, assets.ErrEmptyName)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateModel, name)
		}
		seen[name] = struct{}{}
		if model.Category != "" {
			if _, ok := assets.ParseCategory(model.Category); !ok {
				return fmt.Errorf("model %s: unknown category %q", name, model.Category)
			}
		}
		m.Models[i].Name = name
	}
	return nil
}

// Names returns model names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Models))
	for i, model := range m.Models {
		names[i] = model.Name
	}
	return names
}

// Classifier resolves categories from the manifest, deferring to
// assets.CategoryOf for unlisted or uncategorized models.
func (m *Manifest) Classifier() assets.Classifier {
	categories := make(map[string]assets.Category, len(m.Models))
	for _, model := range m.Models {
		if c, ok := assets.ParseCategory(model.Category); ok {
			categories[model.Name] = c
		}
	}
	return func(name string) assets.Category {
		if c, ok := categories[name]; ok {
			return c
		}
		return assets.CategoryOf(name)
	}
}
