package assets

import (
	"sort"
	"sync"

	"garden-assets/core/scene"
)

// ModelCache maps model names to loaded master copies.
// Entries are stored and returned as clones, so the masters are never shared.
type ModelCache struct {
	mu     sync.RWMutex
	models map[string]*scene.Node
}

// NewModelCache creates an empty cache.
func NewModelCache() *ModelCache {
	return &ModelCache{models: make(map[string]*scene.Node)}
}

// Get returns an independent copy of the cached model.
func (c *ModelCache) Get(name string) (*scene.Node, bool) {
	c.mu.RLock()
	master, ok := c.models[name]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return master.Clone(), true
}

// Set stores a copy of node under name, replacing any previous entry.
func (c *ModelCache) Set(name string, node *scene.Node) {
	master := node.Clone()
	c.mu.Lock()
	c.models[name] = master
	c.mu.Unlock()
}

// Has reports whether name is cached.
func (c *ModelCache) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.models[name]
	return ok
}

// Len returns the number of cached models.
func (c *ModelCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.models)
}

// Keys returns the cached model names in sorted order.
func (c *ModelCache) Keys() []string {
	c.mu.RLock()
	keys := make([]string, 0, len(c.models))
	for k := range c.models {
		keys = append(keys, k)
	}
	c.mu.RUnlock()

	sort.Strings(keys)
	return keys
}
