package cache_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakWdo/Symulacja-sub006/internal/engine/cache"
)

func TestDebouncer_AddSingleKey(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedKeys []string

		d := cache.NewDebouncer(100*time.Millisecond, func(keys []string) {
			callCount++
			receivedKeys = keys
		})

		d.Add("projects")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"projects"}, receivedKeys)
	})
}

func TestDebouncer_ResetsWindowOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches [][]string

		d := cache.NewDebouncer(100*time.Millisecond, func(keys []string) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, keys)
		})

		d.Add("projects")
		time.Sleep(50 * time.Millisecond)
		d.Add("dashboard/summary")
		time.Sleep(50 * time.Millisecond)
		d.Add("personas/p1")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, batches, 1, "adds within the window must merge into one batch")
		assert.ElementsMatch(t, []string{"projects", "dashboard/summary", "personas/p1"}, batches[0])
	})
}

func TestDebouncer_DeduplicatesKeys(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var receivedKeys []string

		d := cache.NewDebouncer(100*time.Millisecond, func(keys []string) {
			receivedKeys = keys
		})

		d.Add("projects")
		d.Add("projects")
		d.Add("projects")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, []string{"projects"}, receivedKeys)
	})
}

func TestDebouncer_FlushDeliversImmediately(t *testing.T) {
	var receivedKeys []string

	d := cache.NewDebouncer(time.Hour, func(keys []string) {
		receivedKeys = keys
	})

	d.Add("projects")
	d.Flush()

	assert.Equal(t, []string{"projects"}, receivedKeys, "flush must not wait for the window")
}

func TestDebouncer_FlushWithNothingPending(t *testing.T) {
	var callCount int

	d := cache.NewDebouncer(100*time.Millisecond, func([]string) {
		callCount++
	})

	d.Flush()
	assert.Equal(t, 0, callCount)
}
