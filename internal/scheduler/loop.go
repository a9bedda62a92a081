package scheduler

import (
	"sync"
	"time"
)

// Loop is a wall-clock Scheduler. Timers fire on their own goroutines but
// only enqueue callbacks; the owner runs them by draining Tasks from its
// event loop. Callbacks of cancelled tasks are dropped when drained.
type Loop struct {
	tasks chan func()
	done  chan struct{}

	mu     sync.Mutex
	timers map[*loopTask]struct{}
	closed bool
}

type loopTask struct {
	loop     *Loop
	interval time.Duration
	fn       func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewLoop creates a Loop whose queue holds up to buffer callbacks before
// timer goroutines block.
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 16
	}
	return &Loop{
		tasks:  make(chan func(), buffer),
		done:   make(chan struct{}),
		timers: make(map[*loopTask]struct{}),
	}
}

// Tasks returns the queue of callbacks ready to run on the event loop
func (l *Loop) Tasks() <-chan func() {
	return l.tasks
}

// Done is closed once the loop has been closed
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// After implements Scheduler
func (l *Loop) After(d time.Duration, fn func()) Cancel {
	return l.start(d, 0, fn)
}

// Every implements Scheduler
func (l *Loop) Every(d time.Duration, fn func()) Cancel {
	if d <= 0 {
		d = time.Millisecond
	}
	return l.start(d, d, fn)
}

func (l *Loop) start(d, interval time.Duration, fn func()) Cancel {
	t := &loopTask{loop: l, interval: interval, fn: fn}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return Noop
	}
	l.timers[t] = struct{}{}
	l.mu.Unlock()

	t.mu.Lock()
	t.timer = time.AfterFunc(d, t.fire)
	t.mu.Unlock()

	return t.cancel
}

// fire runs on the timer goroutine and hands the callback to the event loop
func (t *loopTask) fire() {
	select {
	case t.loop.tasks <- t.run:
	case <-t.loop.done:
	}
}

// run executes on the event loop
func (t *loopTask) run() {
	if t.isStopped() {
		return
	}
	if t.interval == 0 {
		t.loop.forget(t)
		t.fn()
		return
	}
	t.fn()

	// Re-arm after the callback so a slow loop never sees a burst of ticks.
	t.mu.Lock()
	if !t.stopped {
		t.timer = time.AfterFunc(t.interval, t.fire)
	}
	t.mu.Unlock()
}

func (t *loopTask) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (t *loopTask) cancel() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.mu.Unlock()
	t.loop.forget(t)
}

func (l *Loop) forget(t *loopTask) {
	l.mu.Lock()
	delete(l.timers, t)
	l.mu.Unlock()
}

// Active returns the number of tasks that have not completed or been cancelled
func (l *Loop) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// Close cancels every task. Callbacks still queued become no-ops.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	tasks := make([]*loopTask, 0, len(l.timers))
	for t := range l.timers {
		tasks = append(tasks, t)
	}
	l.mu.Unlock()

	for _, t := range tasks {
		t.cancel()
	}
	close(l.done)
}
