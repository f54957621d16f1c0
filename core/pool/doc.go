// Package pool provides a generic object pool for reuse-heavy objects.
//
// Objects are handed out last-in-first-out so recently released (cache-warm) objects
// are reused first. Every released object is passed through a reset function before it
// re-enters the free list, and the free list never grows beyond the configured maximum:
// objects released past capacity are dropped and left to the garbage collector.
//
// # Usage
//
//	p := pool.New(newMesh, resetMesh, pool.WithInitialSize(16), pool.WithMaxSize(64))
//	m := p.Get()
//	defer p.Release(m)
//
// The pool does not track provenance. Releasing the same object twice, or an object
// that never came from the pool, is accepted and is the caller's responsibility.
package pool
