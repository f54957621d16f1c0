package scene

import "garden-assets/core/pool"

// ResetNode restores a node's transform, visibility and user data to their defaults.
// Geometry, material and children are left untouched so the node can be reused as-is.
func ResetNode(n *Node) {
	n.Transform = IdentityTransform()
	n.Visible = true
	n.UserData = map[string]any{}
}

// NewNodePool returns an object pool of nodes that are reset with ResetNode on release.
func NewNodePool(factory func() *Node, opts ...pool.Option) *pool.Pool[*Node] {
	return pool.New(factory, ResetNode, opts...)
}
