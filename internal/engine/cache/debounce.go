package cache

import (
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces bursts of invalidation events into batched
// notifications so observers re-read the store once per burst.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(keys []string)
}

// NewDebouncer creates a debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(keys []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a canonical cache key to the pending set and restarts the window.
func (d *Debouncer) Add(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Interned handles deduplicate repeated invalidations of the same key.
	handle := unique.Make(key)
	d.pending[handle] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	keys := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		keys = append(keys, handle.Value())
	}

	d.pending = make(map[unique.Handle[string]]struct{})
	d.timer = nil
	d.mu.Unlock()

	if len(keys) > 0 && d.callback != nil {
		go d.callback(keys)
	}
}

// Flush immediately delivers all pending keys. It blocks until the callback
// completes, which makes it suitable for teardown where the final
// notification must land before the process exits.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than delivering twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	keys := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		keys = append(keys, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	d.mu.Unlock()

	if len(keys) > 0 && d.callback != nil {
		d.callback(keys)
	}
}
