// Package scene defines the in-memory 3D object graph handed out by the asset loader.
//
// A Node is either a group (no geometry) or a mesh (geometry + material) and may hold
// children. Nodes returned from caches are always independent copies obtained through
// Clone, so callers are free to move, rotate or tag them.
//
// # Reset strategy
//
// ResetNode restores a node to its canonical default state. It is the reset function
// used by NewNodePool, which pools reusable mesh nodes for the garden.
package scene
