package session

import (
	"sync"
	"time"
)

// Debouncer runs only the last function scheduled within its delay. Each
// Trigger cancels the run scheduled before it.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the delay. With a non-positive delay fn runs
// synchronously.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	d.stopLocked()
	d.gen++
	gen := d.gen
	if d.delay <= 0 {
		d.mu.Unlock()
		fn()
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
	d.mu.Unlock()
}

// Cancel drops the pending run, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	d.stopLocked()
	d.gen++
	d.mu.Unlock()
}

// Pending reports whether a run is scheduled and has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
