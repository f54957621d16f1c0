package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id    int
	dirty bool
}

func newCounter() (func() *item, *int) {
	n := 0
	return func() *item {
		n++
		return &item{id: n}
	}, &n
}

func resetItem(i *item) { i.dirty = false }

func TestPool_GetCreatesWhenEmpty(t *testing.T) {
	factory, created := newCounter()
	p := New(factory, resetItem)

	a := p.Get()
	b := p.Get()
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, *created)
	assert.Equal(t, 0, p.Len())
}

func TestPool_InitialSize(t *testing.T) {
	factory, created := newCounter()
	p := New(factory, resetItem, WithInitialSize(4))

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, 4, *created)

	_ = p.Get()
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 4, *created)
}

func TestPool_InitialSizeCappedByMax(t *testing.T) {
	factory, _ := newCounter()
	p := New(factory, resetItem, WithInitialSize(10), WithMaxSize(3))
	assert.Equal(t, 3, p.Len())
}

func TestPool_ReleaseResets(t *testing.T) {
	factory, _ := newCounter()
	p := New(factory, resetItem)

	i := p.Get()
	i.dirty = true
	p.Release(i)

	assert.False(t, i.dirty)
	assert.Equal(t, 1, p.Len())
}

// Releasing maxSize+k objects into an empty pool retains exactly maxSize of them,
// and Get hands them back most-recent first.
func TestPool_LIFOAndBound(t *testing.T) {
	const maxSize, extra = 3, 2
	factory, _ := newCounter()
	p := New(factory, resetItem, WithMaxSize(maxSize))

	objs := make([]*item, 0, maxSize+extra)
	for i := 0; i < maxSize+extra; i++ {
		objs = append(objs, &item{id: 100 + i})
	}
	for _, o := range objs {
		p.Release(o)
	}
	require.Equal(t, maxSize, p.Len())

	assert.Same(t, objs[2], p.Get())
	assert.Same(t, objs[1], p.Get())
	assert.Same(t, objs[0], p.Get())
	assert.Equal(t, 0, p.Len())
}

func TestPool_DroppedObjectsAreStillReset(t *testing.T) {
	factory, _ := newCounter()
	p := New(factory, resetItem, WithMaxSize(0))

	i := &item{dirty: true}
	p.Release(i)
	assert.False(t, i.dirty)
	assert.Equal(t, 0, p.Len())
}

func TestPool_Prewarm(t *testing.T) {
	factory, created := newCounter()
	p := New(factory, resetItem, WithMaxSize(5))

	p.Prewarm(3)
	assert.Equal(t, 3, p.Len())

	p.Prewarm(10)
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 5, *created)

	p.Prewarm(-1)
	assert.Equal(t, 5, p.Len())
}

func TestPool_Clear(t *testing.T) {
	factory, _ := newCounter()
	p := New(factory, resetItem, WithInitialSize(2))

	out := p.Get()
	p.Clear()
	assert.Equal(t, 0, p.Len())

	// Objects checked out before Clear can still be released.
	p.Release(out)
	assert.Equal(t, 1, p.Len())
	assert.Same(t, out, p.Get())
}

func TestPool_ForeignObjectsAccepted(t *testing.T) {
	factory, created := newCounter()
	p := New(factory, resetItem)

	foreign := &item{id: -1, dirty: true}
	p.Release(foreign)
	assert.Same(t, foreign, p.Get())
	assert.Equal(t, 0, *created)
}

func TestPool_FactoryPanicPropagates(t *testing.T) {
	p := New(func() *item { panic("boom") }, resetItem)
	assert.PanicsWithValue(t, "boom", func() { p.Get() })
}

func TestPool_ConcurrentNeverExceedsMax(t *testing.T) {
	const maxSize = 8
	p := New(func() *item { return &item{} }, resetItem, WithMaxSize(maxSize))

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				it := p.Get()
				p.Release(it)
				p.Release(&item{})
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, p.Len(), maxSize)
}
