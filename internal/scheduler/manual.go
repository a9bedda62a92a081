package scheduler

import "time"

// Manual is a deterministic Scheduler driven by Advance. Tasks due at the
// same instant run in the order they were scheduled.
type Manual struct {
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	due      time.Duration
	seq      uint64
	interval time.Duration // zero for one-shot tasks
	fn       func()
}

// NewManual creates a manual scheduler at time zero
func NewManual() *Manual {
	return &Manual{}
}

// After implements Scheduler
func (m *Manual) After(d time.Duration, fn func()) Cancel {
	return m.schedule(d, 0, fn)
}

// Every implements Scheduler
func (m *Manual) Every(d time.Duration, fn func()) Cancel {
	if d <= 0 {
		d = time.Millisecond
	}
	return m.schedule(d, d, fn)
}

func (m *Manual) schedule(d, interval time.Duration, fn func()) Cancel {
	if d < 0 {
		d = 0
	}
	t := &manualTask{due: m.now + d, interval: interval, fn: fn}
	m.push(t)
	return func() { m.remove(t) }
}

func (m *Manual) push(t *manualTask) {
	m.seq++
	t.seq = m.seq
	m.tasks = append(m.tasks, t)
}

func (m *Manual) remove(t *manualTask) {
	for i, task := range m.tasks {
		if task == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

// next returns the earliest task due at or before limit
func (m *Manual) next(limit time.Duration) *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Advance moves the clock forward by d, running every task that comes due.
// Tasks scheduled by callbacks also run if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	limit := m.now + d
	for {
		t := m.next(limit)
		if t == nil {
			break
		}
		m.remove(t)
		m.now = t.due
		if t.interval > 0 {
			t.due += t.interval
			m.push(t)
		}
		t.fn()
	}
	m.now = limit
}

// Now returns the elapsed manual time
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of scheduled tasks
func (m *Manual) Pending() int {
	return len(m.tasks)
}
