package resource

import (
	"errors"
	"sort"
	"sync"
)

// ErrBuildPanicked is returned to callers waiting on a build whose factory panicked.
var ErrBuildPanicked = errors.New("resource factory panicked")

// Factory builds the resource for a key.
type Factory[T any] func(key string) (T, error)

// Manager caches one resource per key.
// It is safe for concurrent use. Builds for different keys run in parallel and
// concurrent Gets of the same key share one build. A factory may Get other keys
// of the same manager but must not request its own key.
type Manager[T any] struct {
	mu      sync.Mutex
	cache   map[string]T
	pending map[string]*build[T]
	factory Factory[T]
	cleanup func(T)
}

// build is an in-flight factory call; done is closed once res and err are set.
type build[T any] struct {
	done chan struct{}
	res  T
	err  error
}

// NewManager creates a manager. cleanup may be nil.
func NewManager[T any](factory Factory[T], cleanup func(T)) *Manager[T] {
	return &Manager[T]{
		cache:   make(map[string]T),
		pending: make(map[string]*build[T]),
		factory: factory,
		cleanup: cleanup,
	}
}

// Get returns the cached resource for key, building it on first access.
// Factory errors are returned unchanged and nothing is cached. If the factory
// panics, the panic propagates to the building caller and any waiters get
// ErrBuildPanicked.
func (m *Manager[T]) Get(key string) (T, error) {
	m.mu.Lock()
	if res, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return res, nil
	}
	if b, ok := m.pending[key]; ok {
		m.mu.Unlock()
		<-b.done
		return b.res, b.err
	}
	b := &build[T]{done: make(chan struct{})}
	m.pending[key] = b
	m.mu.Unlock()

	m.run(key, b)
	return b.res, b.err
}

func (m *Manager[T]) run(key string, b *build[T]) {
	finished := false
	defer func() {
		m.mu.Lock()
		delete(m.pending, key)
		if finished && b.err == nil {
			m.cache[key] = b.res
		}
		m.mu.Unlock()

		if !finished {
			var zero T
			b.res, b.err = zero, ErrBuildPanicked
		}
		close(b.done)
	}()

	res, err := m.factory(key)
	if err != nil {
		var zero T
		res = zero
	}
	b.res, b.err = res, err
	finished = true
}

// Release runs the cleanup callback for key and removes it. It is a no-op
// when the key is not cached, including while its build is still running.
func (m *Manager[T]) Release(key string) {
	m.mu.Lock()
	res, ok := m.cache[key]
	if ok {
		delete(m.cache, key)
	}
	m.mu.Unlock()

	if ok && m.cleanup != nil {
		m.cleanup(res)
	}
}

// Preload builds every key that is not cached yet, in order. It stops at the
// first factory error; entries built before the failure stay cached.
func (m *Manager[T]) Preload(keys []string) error {
	for _, key := range keys {
		if _, err := m.Get(key); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether key is cached.
func (m *Manager[T]) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.cache[key]
	return ok
}

// Len returns the number of cached resources.
func (m *Manager[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// Keys returns the cached keys in sorted order.
func (m *Manager[T]) Keys() []string {
	m.mu.Lock()
	keys := make([]string, 0, len(m.cache))
	for k := range m.cache {
		keys = append(keys, k)
	}
	m.mu.Unlock()

	sort.Strings(keys)
	return keys
}
