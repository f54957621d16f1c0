package garden

// Config holds configuration for the prayer garden.
type Config struct {
	// ManifestPath is the YAML list of models the garden preloads.
	ManifestPath string `mapstructure:"manifest_path" default:"models.yaml"`
	// PreloadOnStart warms the model cache from the manifest when the server starts.
	PreloadOnStart bool `mapstructure:"preload_on_start" default:"true"`
	// BasePlants is the plant count at zero activity.
	BasePlants int `mapstructure:"base_plants" default:"3"`
	// PlantsPerActivity is added per unit of prayer activity.
	PlantsPerActivity int `mapstructure:"plants_per_activity" default:"2"`
	// MaxPlants caps the layout.
	MaxPlants int `mapstructure:"max_plants" default:"64"`
	// Spacing is the distance between rows and between the path and a plant.
	Spacing float32 `mapstructure:"spacing" default:"2"`
	// TreeModel, FlowerModel and PathModel name the models placed in the garden.
	TreeModel   string `mapstructure:"tree_model" default:"tree"`
	FlowerModel string `mapstructure:"flower_model" default:"flower"`
	PathModel   string `mapstructure:"path_model" default:"path"`
	// NodePoolSize bounds the idle instance nodes kept between layouts.
	NodePoolSize int `mapstructure:"node_pool_size" default:"256"`
	// BasicMaxActivity caps the activity used for callers served the basic garden.
	BasicMaxActivity int `mapstructure:"basic_max_activity" default:"5"`
}

// DefaultConfig returns the garden defaults.
func DefaultConfig() Config {
	return Config{
		ManifestPath:      "models.yaml",
		PreloadOnStart:    true,
		BasePlants:        3,
		PlantsPerActivity: 2,
		MaxPlants:         64,
		Spacing:           2,
		TreeModel:         "tree",
		FlowerModel:       "flower",
		PathModel:         "path",
		NodePoolSize:      256,
		BasicMaxActivity:  5,
	}
}

// PlantCount returns how many plants grow for the given activity.
func (c Config) PlantCount(activity int) int {
	if activity < 0 {
		activity = 0
	}
	if c.MaxPlants > 0 && activity > c.MaxPlants {
		activity = c.MaxPlants
	}
	n := c.BasePlants + activity*c.PlantsPerActivity
	if c.MaxPlants > 0 && n > c.MaxPlants {
		n = c.MaxPlants
	}
	if n < 0 {
		return 0
	}
	return n
}

// BasicActivity caps activity for the basic garden. An unset cap is 5.
func (c Config) BasicActivity(activity int) int {
	limit := c.BasicMaxActivity
	if limit <= 0 {
		limit = 5
	}
	if activity > limit {
		return limit
	}
	return activity
}
