// Package garden composes the prayer garden from shared model templates.
//
// Each model the garden places (path tiles, flowers, trees) is loaded once
// through the model loader and held as a template in a resource manager.
// Placed instances are lightweight group nodes drawn from a node pool. They
// reference the shared template rather than copying it, and are returned to
// the pool when the next layout replaces them.
//
// Plant count grows with prayer activity:
//
//	plants = min(base_plants + activity * plants_per_activity, max_plants)
//
// Plants alternate either side of a central path, every third one a tree.
// When a model cannot be fetched the loader's placeholder is placed instead
// and the plant is reported with fallback set.
package garden
