package assets

import (
	"strings"
	"testing"

	"garden-assets/core/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, doc string) (*scene.Node, error) {
	t.Helper()
	return GLTFDecoder{}.Decode(strings.NewReader(doc))
}

func TestGLTFDecoder_DefaultScene(t *testing.T) {
	node, err := decode(t, `{
	  "asset": {"version": "2.0"},
	  "scene": 1,
	  "scenes": [{"name": "Unused", "nodes": [1]}, {"name": "Flower", "nodes": [0]}],
	  "nodes": [
	    {"name": "stem", "translation": [0, 0.25, 0], "mesh": 0, "children": [1]},
	    {"name": "bloom", "rotation": [0, 0.7071, 0, 0.7071]}
	  ],
	  "meshes": [{"name": "StemMesh", "primitives": [{"attributes": {}}]}]
	}`)
	require.NoError(t, err)

	assert.Equal(t, "Flower", node.Name)
	require.Len(t, node.Children, 1)

	stem := node.Children[0]
	assert.Equal(t, "stem", stem.Name)
	assert.Equal(t, scene.NewVec3(0, 0.25, 0), stem.Transform.Position)
	assert.Equal(t, scene.NewVec3One(), stem.Transform.Scale)
	assert.Equal(t, scene.NewQuatIdentity(), stem.Transform.Rotation)
	require.NotNil(t, stem.Geometry)
	assert.Equal(t, scene.GeometryMesh, stem.Geometry.Kind)
	assert.Equal(t, 1, stem.Geometry.Primitives)
	assert.Equal(t, "StemMesh", stem.UserData["mesh"])

	require.Len(t, stem.Children, 1)
	bloom := stem.Children[0]
	assert.Nil(t, bloom.Geometry)
	assert.InDelta(t, 0.7071, bloom.Transform.Rotation.Y, 1e-4)
}

func TestGLTFDecoder_NoScenesUsesRootNodes(t *testing.T) {
	node, err := decode(t, `{
	  "asset": {"version": "2.0"},
	  "nodes": [{"name": "a", "children": [1]}, {"name": "b"}, {"name": "c"}]
	}`)
	require.NoError(t, err)

	assert.Equal(t, "scene", node.Name)
	require.Len(t, node.Children, 2)
	assert.Equal(t, "a", node.Children[0].Name)
	assert.Equal(t, "c", node.Children[1].Name)
	assert.Equal(t, 4, node.Count())
}

func TestGLTFDecoder_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := decode(t, `{"asset": {"version": "2.0"}}`)
		assert.ErrorContains(t, err, "no nodes")
	})

	t.Run("Cycle", func(t *testing.T) {
		_, err := decode(t, `{
		  "asset": {"version": "2.0"},
		  "scenes": [{"nodes": [0]}],
		  "nodes": [{"name": "a", "children": [1]}, {"name": "b", "children": [0]}]
		}`)
		assert.ErrorContains(t, err, "own ancestor")
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := decode(t, `{
		  "asset": {"version": "2.0"},
		  "scenes": [{"nodes": [3]}],
		  "nodes": [{"name": "a"}]
		}`)
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := decode(t, `not a model`)
		assert.Error(t, err)
	})
}
