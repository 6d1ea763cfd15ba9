package store

import (
	"log/slog"
	"sync"
)

// Listener receives a snapshot of the collection after every change.
type Listener[T any] func(items []T)

// listeners is the registration list shared by stores that fan out snapshots.
type listeners[T any] struct {
	mu  sync.RWMutex
	fns []Listener[T]
}

// AddListener registers fn. Listeners are never removed and duplicates are kept.
func (l *listeners[T]) AddListener(fn Listener[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fns = append(l.fns, fn)
}

// notify calls every listener in registration order. Each call gets its own
// copy of items, and a panicking listener does not stop the ones after it.
func (l *listeners[T]) notify(items []T) {
	l.mu.RLock()
	fns := make([]Listener[T], len(l.fns))
	copy(fns, l.fns)
	l.mu.RUnlock()

	for i, fn := range fns {
		snapshot := make([]T, len(items))
		copy(snapshot, items)
		call(i, fn, snapshot)
	}
}

func call[T any](index int, fn Listener[T], snapshot []T) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("listener panicked", "listener", index, "panic", r)
		}
	}()
	fn(snapshot)
}
