package assets

import (
	"strings"

	"garden-assets/core/scene"
)

// Category groups models that share a fallback shape.
type Category int

const (
	// CategoryGeneric is used for any model without a dedicated placeholder.
	CategoryGeneric Category = iota
	CategoryTree
	CategoryFlower
	CategoryPath
)

// Categories lists every known category.
var Categories = []Category{CategoryGeneric, CategoryTree, CategoryFlower, CategoryPath}

// String returns a string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryTree:
		return "tree"
	case CategoryFlower:
		return "flower"
	case CategoryPath:
		return "path"
	default:
		return "generic"
	}
}

// ParseCategory converts a category name to a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c, true
		}
	}
	return CategoryGeneric, false
}

// Classifier maps a model name to its fallback category.
type Classifier func(name string) Category

// CategoryOf is the default classifier: a model named after a category gets
// that category's placeholder, anything else gets the generic one.
func CategoryOf(name string) Category {
	switch name {
	case "tree":
		return CategoryTree
	case "flower":
		return CategoryFlower
	case "path":
		return CategoryPath
	default:
		return CategoryGeneric
	}
}

const (
	colorBark     = 0x8B4513
	colorFoliage  = 0x228B22
	colorStem     = 0x00FF00
	colorBloom    = 0xFFD700
	colorPath     = 0xA0522D
	colorMissing  = 0xFF00FF
	cylinderSides = 8
)

// NewFallback synthesizes a placeholder model for name using the category's shape.
// The result is tagged with scene.UserDataFallback.
func NewFallback(name string, category Category) *scene.Node {
	root := scene.NewGroup(name)
	root.Add(fallbackParts(category)...)
	root.UserData[scene.UserDataFallback] = true
	root.UserData["category"] = category.String()
	return root
}

func fallbackParts(category Category) []*scene.Node {
	switch category {
	case CategoryTree:
		trunk := scene.NewMesh("trunk",
			scene.Geometry{Kind: scene.GeometryCylinder, Params: []float32{0.2, 0.3, 2, cylinderSides}},
			scene.Material{Color: colorBark})
		trunk.Transform.Position.Y = 1

		foliage := scene.NewMesh("foliage",
			scene.Geometry{Kind: scene.GeometrySphere, Params: []float32{1, 8, 8}},
			scene.Material{Color: colorFoliage})
		foliage.Transform.Position.Y = 2.5
		return []*scene.Node{trunk, foliage}

	case CategoryFlower:
		stem := scene.NewMesh("stem",
			scene.Geometry{Kind: scene.GeometryCylinder, Params: []float32{0.05, 0.05, 0.5, cylinderSides}},
			scene.Material{Color: colorStem})
		stem.Transform.Position.Y = 0.25

		bloom := scene.NewMesh("bloom",
			scene.Geometry{Kind: scene.GeometrySphere, Params: []float32{0.2, 8, 8}},
			scene.Material{Color: colorBloom})
		bloom.Transform.Position.Y = 0.6
		return []*scene.Node{stem, bloom}

	case CategoryPath:
		return []*scene.Node{scene.NewMesh("path",
			scene.Geometry{Kind: scene.GeometryBox, Params: []float32{0.5, 0.05, 4}},
			scene.Material{Color: colorPath})}

	default:
		return []*scene.Node{scene.NewMesh("placeholder",
			scene.Geometry{Kind: scene.GeometryBox, Params: []float32{1, 1, 1}},
			scene.Material{Color: colorMissing})}
	}
}
