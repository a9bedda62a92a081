package widget

import (
	"sort"
	"sync"
)

// PointerEvent is a pointer-down at a cell of the rendered surface.
type PointerEvent struct {
	X, Y int
}

// Rect is a rendered region in surface cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// PointerSource lets a widget observe pointer-down events. The returned
// function removes the observer.
type PointerSource interface {
	Subscribe(fn func(PointerEvent)) (unsubscribe func())
}

// PointerBus is a PointerSource fed by the renderer.
type PointerBus struct {
	mu       sync.Mutex
	next     int
	handlers map[int]func(PointerEvent)
}

// NewPointerBus creates an empty bus
func NewPointerBus() *PointerBus {
	return &PointerBus{handlers: make(map[int]func(PointerEvent))}
}

// Subscribe implements PointerSource
func (b *PointerBus) Subscribe(fn func(PointerEvent)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.handlers[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers ev to every observer registered at the time of the call.
func (b *PointerBus) Publish(ev PointerEvent) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]func(PointerEvent), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Len returns the number of registered observers
func (b *PointerBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}
