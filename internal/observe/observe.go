package observe

import "sync"

// Value holds an immutable snapshot of type T and a list of listeners that
// are told about every replacement of that snapshot.
type Value[T any] struct {
	mu        sync.RWMutex
	snapshot  T
	listeners []func(T)
}

// New creates a container holding initial. No listener sees the initial
// snapshot; listeners only observe commits made after they subscribe.
func New[T any](initial T) *Value[T] {
	return &Value[T]{snapshot: initial}
}

// State returns the current snapshot.
func (v *Value[T]) State() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snapshot
}

// Subscribe appends fn to the listener list. Listeners are notified in
// registration order. There is no unsubscribe; the list lives as long as the
// container.
func (v *Value[T]) Subscribe(fn func(T)) {
	v.mu.Lock()
	v.listeners = append(v.listeners, fn)
	v.mu.Unlock()
}

// Commit replaces the snapshot wholesale, then synchronously invokes every
// listener registered at commit time with the new snapshot. Notification
// runs on the committing goroutine with no queuing or batching; a listener
// that panics propagates to the caller without rolling back the commit.
// Listeners must not call back into the owner's mutating operations.
func (v *Value[T]) Commit(next T) {
	v.mu.Lock()
	v.snapshot = next
	listeners := v.listeners
	v.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}
