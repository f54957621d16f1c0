package resource_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"garden-assets/core/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type texture struct {
	key      string
	disposed bool
}

func TestManager_GetBuildsOnce(t *testing.T) {
	var calls int32
	m := resource.NewManager(func(key string) (*texture, error) {
		atomic.AddInt32(&calls, 1)
		return &texture{key: key}, nil
	}, nil)

	a, err := m.Get("x")
	require.NoError(t, err)
	b, err := m.Get("x")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestManager_ConcurrentGetBuildsOnce(t *testing.T) {
	var calls int32
	m := resource.NewManager(func(key string) (*texture, error) {
		atomic.AddInt32(&calls, 1)
		return &texture{key: key}, nil
	}, nil)

	var wg sync.WaitGroup
	results := make([]*texture, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = m.Get("x")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestManager_ReleaseRunsCleanup(t *testing.T) {
	var cleaned []string
	m := resource.NewManager(func(key string) (*texture, error) {
		return &texture{key: key}, nil
	}, func(tex *texture) {
		tex.disposed = true
		cleaned = append(cleaned, tex.key)
	})

	tex, err := m.Get("bark")
	require.NoError(t, err)

	m.Release("bark")
	assert.True(t, tex.disposed)
	assert.Equal(t, []string{"bark"}, cleaned)
	assert.False(t, m.Has("bark"))

	// A second release and a release of an unknown key do nothing.
	m.Release("bark")
	m.Release("never-loaded")
	assert.Equal(t, []string{"bark"}, cleaned)
}

func TestManager_ReleaseWithoutCleanup(t *testing.T) {
	m := resource.NewManager(func(key string) (int, error) { return len(key), nil }, nil)
	_, _ = m.Get("abc")
	m.Release("abc")
	assert.Equal(t, 0, m.Len())
}

func TestManager_GetAfterReleaseRebuilds(t *testing.T) {
	var calls int
	m := resource.NewManager(func(key string) (*texture, error) {
		calls++
		return &texture{key: key}, nil
	}, nil)

	first, _ := m.Get("x")
	m.Release("x")
	second, _ := m.Get("x")

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestManager_FactoryErrorNotCached(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	m := resource.NewManager(func(key string) (*texture, error) {
		if fail {
			return nil, boom
		}
		return &texture{key: key}, nil
	}, nil)

	_, err := m.Get("x")
	assert.ErrorIs(t, err, boom)
	assert.False(t, m.Has("x"))

	fail = false
	tex, err := m.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "x", tex.key)
}

func TestManager_Preload(t *testing.T) {
	built := map[string]int{}
	cleanups := 0
	m := resource.NewManager(func(key string) (string, error) {
		built[key]++
		return key, nil
	}, func(string) { cleanups++ })

	_, _ = m.Get("a")
	require.NoError(t, m.Preload([]string{"a", "b", "c"}))

	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, built)
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, 0, cleanups)
}

func TestManager_PreloadStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	m := resource.NewManager(func(key string) (string, error) {
		if key == "bad" {
			return "", boom
		}
		return key, nil
	}, nil)

	err := m.Preload([]string{"a", "bad", "c"})
	assert.ErrorIs(t, err, boom)
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("c"))
}

// A slow build for one key does not hold up other keys or cache lookups.
func TestManager_SlowBuildDoesNotBlockOtherKeys(t *testing.T) {
	unblock := make(chan struct{})
	started := make(chan struct{})
	m := resource.NewManager(func(key string) (*texture, error) {
		if key == "slow" {
			close(started)
			<-unblock
		}
		return &texture{key: key}, nil
	}, nil)

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		_, _ = m.Get("slow")
	}()
	<-started

	fast := make(chan *texture, 1)
	go func() {
		tex, _ := m.Get("fast")
		fast <- tex
	}()
	select {
	case tex := <-fast:
		assert.Equal(t, "fast", tex.key)
	case <-time.After(time.Second):
		t.Fatal("Get of another key waited on a slow build")
	}

	has := make(chan bool, 1)
	go func() { has <- m.Has("other") }()
	select {
	case ok := <-has:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Has waited on a slow build")
	}
	assert.False(t, m.Has("slow"))

	close(unblock)
	<-slowDone
	assert.True(t, m.Has("slow"))
	assert.Equal(t, []string{"fast", "slow"}, m.Keys())
}

// A caller arriving while a key is being built waits for that build instead of starting another.
func TestManager_WaiterSharesInFlightBuild(t *testing.T) {
	var calls int32
	unblock := make(chan struct{})
	started := make(chan struct{})
	m := resource.NewManager(func(key string) (*texture, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-unblock
		return &texture{key: key}, nil
	}, nil)

	first := make(chan *texture, 1)
	go func() {
		tex, _ := m.Get("x")
		first <- tex
	}()
	<-started

	second := make(chan *texture, 1)
	go func() {
		tex, _ := m.Get("x")
		second <- tex
	}()
	select {
	case <-second:
		t.Fatal("waiter returned before the build finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(unblock)
	a, b := <-first, <-second
	assert.Same(t, a, b)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

// Waiters on a failing build see the same error and nothing is cached.
func TestManager_WaiterSharesBuildError(t *testing.T) {
	boom := errors.New("boom")
	unblock := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	m := resource.NewManager(func(key string) (*texture, error) {
		once.Do(func() { close(started) })
		<-unblock
		return nil, boom
	}, nil)

	errs := make(chan error, 2)
	go func() {
		_, err := m.Get("x")
		errs <- err
	}()
	<-started
	go func() {
		_, err := m.Get("x")
		errs <- err
	}()
	time.Sleep(50 * time.Millisecond)
	close(unblock)

	assert.ErrorIs(t, <-errs, boom)
	assert.ErrorIs(t, <-errs, boom)
	assert.False(t, m.Has("x"))
}

// A panicking factory leaves the key buildable again.
func TestManager_FactoryPanicRecovers(t *testing.T) {
	explode := true
	m := resource.NewManager(func(key string) (*texture, error) {
		if explode {
			panic("bad mesh")
		}
		return &texture{key: key}, nil
	}, nil)

	assert.PanicsWithValue(t, "bad mesh", func() { _, _ = m.Get("x") })
	assert.False(t, m.Has("x"))

	explode = false
	tex, err := m.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "x", tex.key)
}

// Waiters on a build that panicked get ErrBuildPanicked.
func TestManager_WaiterOnPanickedBuild(t *testing.T) {
	unblock := make(chan struct{})
	started := make(chan struct{})
	var calls int32
	m := resource.NewManager(func(key string) (*texture, error) {
		if atomic.AddInt32(&calls, 1) > 1 {
			return nil, errors.New("second build")
		}
		close(started)
		<-unblock
		panic("bad mesh")
	}, nil)

	go func() {
		defer func() { _ = recover() }()
		_, _ = m.Get("x")
	}()
	<-started

	errs := make(chan error, 1)
	go func() {
		_, err := m.Get("x")
		errs <- err
	}()
	time.Sleep(50 * time.Millisecond)
	close(unblock)

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, resource.ErrBuildPanicked)
	case <-time.After(time.Second):
		t.Fatal("waiter never returned")
	}
}

// A factory may resolve dependencies through the same manager.
func TestManager_FactoryGetsOtherKey(t *testing.T) {
	var m *resource.Manager[string]
	m = resource.NewManager(func(key string) (string, error) {
		if key == "tree" {
			bark, err := m.Get("bark")
			if err != nil {
				return "", err
			}
			return "tree+" + bark, nil
		}
		return key, nil
	}, nil)

	done := make(chan string, 1)
	go func() {
		v, _ := m.Get("tree")
		done <- v
	}()
	select {
	case v := <-done:
		assert.Equal(t, "tree+bark", v)
	case <-time.After(time.Second):
		t.Fatal("nested Get deadlocked")
	}
	assert.Equal(t, []string{"bark", "tree"}, m.Keys())
}
