package premium

import (
	"sort"
	"strings"
)

// Level is a subscription tier. Higher levels include every feature of the lower ones.
type Level int

const (
	// Basic is the free tier with the core prayer garden.
	Basic Level = iota
	// Premium adds the enhanced garden.
	Premium
	// Family adds shared gardens.
	Family
)

var levelNames = []string{"basic", "premium", "family"}

func (l Level) String() string {
	if l < Basic || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel parses a level name, ignoring case and surrounding space.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if s == name {
			return Level(i), true
		}
	}
	return Basic, false
}

// Feature identifies a gated capability.
type Feature string

const (
	FeatureCoreRosary     Feature = "core_rosary"
	FeatureBasicGarden    Feature = "basic_garden"
	FeatureEnhancedRosary Feature = "enhanced_rosary"
	FeatureAdvancedGarden Feature = "advanced_garden"
	FeatureSharedGarden   Feature = "shared_garden"
)

var requiredLevels = map[Feature]Level{
	FeatureCoreRosary:     Basic,
	FeatureBasicGarden:    Basic,
	FeatureEnhancedRosary: Premium,
	FeatureAdvancedGarden: Premium,
	FeatureSharedGarden:   Family,
}

// Core features always have a version every level can use.
var basicVersions = map[Feature]Feature{
	FeatureCoreRosary:     FeatureCoreRosary,
	FeatureBasicGarden:    FeatureBasicGarden,
	FeatureEnhancedRosary: FeatureCoreRosary,
	FeatureAdvancedGarden: FeatureBasicGarden,
}

// HasAccess reports whether level unlocks feature. Unknown features are denied.
func HasAccess(level Level, feature Feature) bool {
	required, ok := requiredLevels[feature]
	if !ok {
		return false
	}
	return level >= required
}

// RequiredLevel returns the lowest level unlocking feature, Premium when unknown.
func RequiredLevel(feature Feature) Level {
	if required, ok := requiredLevels[feature]; ok {
		return required
	}
	return Premium
}

// BasicVersion returns the feature served in place of a core feature the
// caller cannot access. ok is false for features without a basic version.
func BasicVersion(feature Feature) (Feature, bool) {
	basic, ok := basicVersions[feature]
	return basic, ok
}

// Features lists the features level unlocks, sorted by name.
func Features(level Level) []Feature {
	var out []Feature
	for f, required := range requiredLevels {
		if level >= required {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
