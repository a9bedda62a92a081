// Package scheduler provides restartable timers for the demo widget.
//
// Every callback runs on the owner's event loop. Implementations never run a
// callback concurrently with another callback from the same scheduler, so
// widgets can mutate their own state from inside a callback without locks.
package scheduler

import "time"

// Cancel stops a scheduled task. It is safe to call more than once, and
// safe to call after the task already ran.
type Cancel func()

// Scheduler schedules one-shot and recurring callbacks.
type Scheduler interface {
	// After runs fn once, d from now.
	After(d time.Duration, fn func()) Cancel
	// Every runs fn every d until cancelled. The first run is d from now.
	Every(d time.Duration, fn func()) Cancel
}

// Noop is a Cancel that does nothing
func Noop() {}
