package widget

import (
	"time"

	"github.com/zamanilabs/zamani-demo/internal/scheduler"
)

// PlaceholderRotator cycles the prompt placeholder while the input is empty.
type PlaceholderRotator struct {
	sched    scheduler.Scheduler
	examples []string
	interval time.Duration

	index  int
	cancel scheduler.Cancel
	torn   bool
}

// NewPlaceholderRotator creates a stopped rotator at index 0
func NewPlaceholderRotator(s scheduler.Scheduler, examples []string, interval time.Duration) *PlaceholderRotator {
	return &PlaceholderRotator{
		sched:    s,
		examples: examples,
		interval: interval,
	}
}

// Watch gates the rotation on the input buffer being empty. A transition to
// empty starts a fresh timer; a transition to non-empty cancels it.
func (r *PlaceholderRotator) Watch(inputEmpty bool) {
	if r.torn || len(r.examples) == 0 {
		return
	}
	switch {
	case inputEmpty && r.cancel == nil:
		r.cancel = r.sched.Every(r.interval, r.tick)
	case !inputEmpty && r.cancel != nil:
		r.stop()
	}
}

func (r *PlaceholderRotator) tick() {
	if r.torn {
		return
	}
	r.index = (r.index + 1) % len(r.examples)
}

func (r *PlaceholderRotator) stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Stop cancels the timer for good
func (r *PlaceholderRotator) Stop() {
	r.stop()
	r.torn = true
}

// Running reports whether the rotation timer is armed
func (r *PlaceholderRotator) Running() bool {
	return r.cancel != nil
}

// Index returns the cursor into the examples
func (r *PlaceholderRotator) Index() int {
	return r.index
}

// Current returns the placeholder text to display
func (r *PlaceholderRotator) Current() string {
	if len(r.examples) == 0 {
		return ""
	}
	return r.examples[r.index]
}
