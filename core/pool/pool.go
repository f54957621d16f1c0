package pool

import "sync"

// Pool is a bounded LIFO free list of reusable objects.
// It is safe for concurrent use.
type Pool[T any] struct {
	mu      sync.Mutex
	items   []T
	factory func() T
	reset   func(T)
	maxSize int
}

// New creates a pool that builds objects with factory and restores them with reset
// before they are returned to the free list.
func New[T any](factory func() T, reset func(T), opts ...Option) *Pool[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{
		factory: factory,
		reset:   reset,
		maxSize: o.maxSize,
	}
	p.Prewarm(o.initialSize)
	return p
}

// Get returns the most recently released object, or a new one if the pool is empty.
func (p *Pool[T]) Get() T {
	p.mu.Lock()
	if n := len(p.items); n > 0 {
		item := p.items[n-1]
		var zero T
		p.items[n-1] = zero
		p.items = p.items[:n-1]
		p.mu.Unlock()
		return item
	}
	p.mu.Unlock()

	return p.factory()
}

// Release resets item and returns it to the pool if there is room for it.
// Otherwise the object is dropped.
func (p *Pool[T]) Release(item T) {
	if p.reset != nil {
		p.reset(item)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.items) < p.maxSize {
		p.items = append(p.items, item)
	}
}

// Prewarm creates up to count additional objects without exceeding the max size.
func (p *Pool[T]) Prewarm(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := min(count, p.maxSize-len(p.items))
	for i := 0; i < n; i++ {
		p.items = append(p.items, p.factory())
	}
}

// Clear drops every idle object. Objects currently checked out are unaffected
// and can still be released later.
func (p *Pool[T]) Clear() {
	p.mu.Lock()
	p.items = nil
	p.mu.Unlock()
}

// Len returns the number of idle objects held by the pool.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// MaxSize returns the configured capacity.
func (p *Pool[T]) MaxSize() int {
	return p.maxSize
}
