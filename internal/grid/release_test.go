package grid

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseHub_SubscribeAndUnsubscribe(t *testing.T) {
	hub := NewReleaseHub()
	calls := 0
	unsubscribe := hub.Subscribe(func() { calls++ })

	hub.Release()
	hub.Release()
	assert.Equal(t, 2, calls)

	unsubscribe()
	unsubscribe()
	hub.Release()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, hub.Subscribers())
}

func TestReleaseHub_ConcurrentRelease(t *testing.T) {
	hub := NewReleaseHub()
	engines := make([]*Engine, 8)
	for i := range engines {
		engines[i] = NewEngine("20261016")
		defer engines[i].Mount(hub)()
		engines[i].PointerDown(3)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Release()
		}()
	}
	wg.Wait()

	for _, e := range engines {
		assert.False(t, e.Dragging())
		assert.True(t, e.IsSelected(3))
	}
}
