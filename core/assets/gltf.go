package assets

import (
	"fmt"
	"io"

	"garden-assets/core/scene"

	"github.com/qmuntal/gltf"
)

// GLTFDecoder decodes binary (.glb) and JSON (.gltf) models with self-contained buffers.
type GLTFDecoder struct{}

// Decode parses r and converts the default scene into a node graph.
func (GLTFDecoder) Decode(r io.Reader) (*scene.Node, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}
	return documentToNode(doc)
}

func documentToNode(doc *gltf.Document) (*scene.Node, error) {
	root := scene.NewGroup("scene")

	var roots []int
	switch {
	case doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes):
		s := doc.Scenes[int(*doc.Scene)]
		if s.Name != "" {
			root.Name = s.Name
		}
		for _, idx := range s.Nodes {
			roots = append(roots, int(idx))
		}
	case len(doc.Scenes) > 0:
		s := doc.Scenes[0]
		if s.Name != "" {
			root.Name = s.Name
		}
		for _, idx := range s.Nodes {
			roots = append(roots, int(idx))
		}
	default:
		roots = orphanNodes(doc)
	}

	if len(roots) == 0 {
		return nil, fmt.Errorf("model has no nodes")
	}

	for _, idx := range roots {
		child, err := convertNode(doc, idx, map[int]bool{})
		if err != nil {
			return nil, err
		}
		root.Add(child)
	}
	return root, nil
}

// orphanNodes returns the nodes that are nobody's child.
func orphanNodes(doc *gltf.Document) []int {
	isChild := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[int(c)] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func convertNode(doc *gltf.Document, idx int, path map[int]bool) (*scene.Node, error) {
	if idx < 0 || idx >= len(doc.Nodes) {
		return nil, fmt.Errorf("node index %d out of range", idx)
	}
	if path[idx] {
		return nil, fmt.Errorf("node %d is its own ancestor", idx)
	}
	path[idx] = true
	defer delete(path, idx)

	src := doc.Nodes[idx]
	out := scene.NewGroup(src.Name)
	out.Transform = scene.Transform{
		Position: toVec3(src.Translation, 0),
		Rotation: toQuat(src.Rotation),
		Scale:    toVec3(src.Scale, 1),
	}

	if src.Mesh != nil {
		if m := int(*src.Mesh); m >= 0 && m < len(doc.Meshes) {
			mesh := doc.Meshes[m]
			out.Geometry = &scene.Geometry{Kind: scene.GeometryMesh, Primitives: len(mesh.Primitives)}
			out.Material = &scene.Material{Color: 0xFFFFFF}
			if mesh.Name != "" {
				out.UserData["mesh"] = mesh.Name
			}
		}
	}

	for _, c := range src.Children {
		child, err := convertNode(doc, int(c), path)
		if err != nil {
			return nil, err
		}
		out.Add(child)
	}
	return out, nil
}

// toVec3 converts a glTF vector; an all-zero vector means "unset" and becomes def.
func toVec3[F ~float32 | ~float64](v [3]F, def float32) scene.Vec3 {
	if v == [3]F{} {
		return scene.Vec3{X: def, Y: def, Z: def}
	}
	return scene.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

func toQuat[F ~float32 | ~float64](q [4]F) scene.Quaternion {
	if q == [4]F{} {
		return scene.NewQuatIdentity()
	}
	return scene.Quaternion{X: float32(q[0]), Y: float32(q[1]), Z: float32(q[2]), W: float32(q[3])}
}
