// Package resource provides a keyed resource cache with factory and cleanup hooks.
//
// A Manager builds a resource the first time its key is requested and keeps it until
// the key is explicitly released, at which point the optional cleanup callback runs.
// There is no reference counting: a single Release tears the entry down even if other
// callers still hold the value returned by an earlier Get.
//
// # Usage
//
//	textures := resource.NewManager(loadTexture, func(t *Texture) { t.Dispose() })
//	tex, err := textures.Get("bark")
//	...
//	textures.Release("bark")
package resource
