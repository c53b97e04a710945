package notify

import "slices"

// Signal delivers values of type T to subscribed listeners synchronously.
// The zero value is ready to use. Signal is not safe for concurrent use;
// serialize access at the owning component.
type Signal[T any] struct {
	listeners []listener[T]
	nextID    int
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it again.
// Nil listeners are ignored and yield a no-op unsubscribe.
// Unsubscribing more than once is safe.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})

	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener[T]) bool {
			return l.id == id
		})
	}
}

// Emit invokes every listener with v, in subscription order, on the calling
// goroutine. The listener set is snapshotted first, so listeners added during
// emission are not called for v, and listeners removed during emission are
// still called exactly once.
func (s *Signal[T]) Emit(v T) {
	if len(s.listeners) == 0 {
		return
	}
	for _, l := range slices.Clone(s.listeners) {
		l.fn(v)
	}
}

// Len returns the number of subscribed listeners.
func (s *Signal[T]) Len() int {
	return len(s.listeners)
}
