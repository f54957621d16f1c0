package scene

import "maps"

// GeometryKind identifies the primitive shape carried by a mesh node.
type GeometryKind int

const (
	GeometryNone GeometryKind = iota
	GeometryBox
	GeometryCylinder
	GeometrySphere
	// GeometryMesh is decoded mesh data from a model file.
	GeometryMesh
)

// String returns a string representation of the geometry kind.
func (k GeometryKind) String() string {
	switch k {
	case GeometryBox:
		return "box"
	case GeometryCylinder:
		return "cylinder"
	case GeometrySphere:
		return "sphere"
	case GeometryMesh:
		return "mesh"
	default:
		return "none"
	}
}

// Geometry describes the shape of a mesh.
// Params are kind specific:
//   - box: width, height, depth
//   - cylinder: radiusTop, radiusBottom, height, radialSegments
//   - sphere: radius, widthSegments, heightSegments
type Geometry struct {
	Kind       GeometryKind `json:"kind"`
	Params     []float32    `json:"params,omitempty"`
	Primitives int          `json:"primitives,omitempty"`
}

// Material holds the surface description of a mesh.
type Material struct {
	Color uint32 `json:"color"`
}

// UserDataFallback is the user data key that marks a synthesized placeholder model.
const UserDataFallback = "isFallback"

// Node is a single element of a 3D object graph.
type Node struct {
	Name      string         `json:"name"`
	Transform Transform      `json:"transform"`
	Visible   bool           `json:"visible"`
	Geometry  *Geometry      `json:"geometry,omitempty"`
	Material  *Material      `json:"material,omitempty"`
	UserData  map[string]any `json:"user_data,omitempty"`
	Children  []*Node        `json:"children,omitempty"`
}

// NewGroup creates an empty, visible group node.
func NewGroup(name string) *Node {
	return &Node{
		Name:      name,
		Transform: IdentityTransform(),
		Visible:   true,
		UserData:  map[string]any{},
	}
}

// NewMesh creates a visible mesh node from a geometry and a material.
func NewMesh(name string, geometry Geometry, material Material) *Node {
	n := NewGroup(name)
	n.Geometry = &geometry
	n.Material = &material
	return n
}

// Add appends children to the node and returns the node for chaining.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Clone returns a deep copy of the node. The copy shares no mutable state
// with the original: transforms, geometry params, user data and children are duplicated.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	c := &Node{
		Name:      n.Name,
		Transform: n.Transform,
		Visible:   n.Visible,
	}
	if n.Geometry != nil {
		g := *n.Geometry
		g.Params = append([]float32(nil), n.Geometry.Params...)
		c.Geometry = &g
	}
	if n.Material != nil {
		m := *n.Material
		c.Material = &m
	}
	if n.UserData != nil {
		c.UserData = maps.Clone(n.UserData)
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Walk visits the node and all of its descendants depth-first.
// Returning false from fn stops the descent into that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the graph rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}

// IsFallback reports whether the node was synthesized in place of a real model.
func (n *Node) IsFallback() bool {
	if n == nil || n.UserData == nil {
		return false
	}
	v, ok := n.UserData[UserDataFallback].(bool)
	return ok && v
}
