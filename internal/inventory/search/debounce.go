package search

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long query input must pause before a pending
// recomputation fires.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer collapses a burst of query-input events into one evaluation of
// the most recent query after a quiet period. The timer is single-shot and
// restarts on every keystroke, so at most one recomputation is scheduled at
// any time.
type Debouncer struct {
	delay time.Duration
	fire  func(query string)

	mu     sync.Mutex
	timer  *time.Timer
	query  string
	closed bool
}

// NewDebouncer creates a debouncer calling fire with the winning query.
// A non-positive delay falls back to DefaultQuietPeriod.
func NewDebouncer(delay time.Duration, fire func(query string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{delay: delay, fire: fire}
}

// Input records a keystroke's query and restarts the quiet-period timer,
// cancelling any pending evaluation.
func (d *Debouncer) Input(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.query = query
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.expire)
}

func (d *Debouncer) expire() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	query := d.query
	d.timer = nil
	d.mu.Unlock()

	d.fire(query)
}

// Submit evaluates the query immediately, cancelling any pending timer
func (d *Debouncer) Submit(query string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.query = query
	d.mu.Unlock()

	d.fire(query)
}

// ShowAll resets the query to empty and evaluates immediately
func (d *Debouncer) ShowAll() {
	d.Submit("")
}

// Close cancels any pending evaluation; the debouncer fires no more
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
