// Package state holds the small reactive values widgets observe: a
// Signal for owned state, a Computed for derived state and schedulers
// that decide where change callbacks run.
package state

import "sync"

// EqualFunc reports whether two values are the same for change detection.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// Readable is reactive state a widget can observe but not set.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable is Readable state that can also be set.
type Writable[T any] interface {
	Readable[T]
	Set(value T) bool
	Update(fn func(T) T) bool
}

type listener struct {
	id        uint64
	fn        func()
	scheduler Scheduler
}

// Signal holds a value and notifies listeners, in subscription order,
// whenever it changes.
type Signal[T any] struct {
	mu        sync.Mutex
	value     T
	version   uint64
	equal     EqualFunc[T]
	listeners []listener
	nextID    uint64
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// NewComparableSignal creates a signal that ignores sets of an equal value.
func NewComparableSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{value: initial, equal: EqualComparable[T]}
}

// SetEqualFunc sets the check used to drop redundant sets. A nil func
// makes every Set a change.
func (s *Signal[T]) SetEqualFunc(fn EqualFunc[T]) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	if s == nil {
		var zero T
		return zero
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Version counts the changes applied so far.
func (s *Signal[T]) Version() uint64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Set stores value and reports whether it counted as a change.
func (s *Signal[T]) Set(value T) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	notify, changed := s.storeLocked(value)
	s.mu.Unlock()
	if changed {
		dispatch(notify)
	}
	return changed
}

// Update replaces the value with fn(current) under the signal lock.
// fn must not call back into the signal.
func (s *Signal[T]) Update(fn func(T) T) bool {
	if s == nil || fn == nil {
		return false
	}
	s.mu.Lock()
	notify, changed := s.storeLocked(fn(s.value))
	s.mu.Unlock()
	if changed {
		dispatch(notify)
	}
	return changed
}

func (s *Signal[T]) storeLocked(value T) ([]listener, bool) {
	if s.equal != nil && s.equal(s.value, value) {
		return nil, false
	}
	s.value = value
	s.version++
	return append([]listener(nil), s.listeners...), true
}

// Subscribe calls fn synchronously after every change.
func (s *Signal[T]) Subscribe(fn func()) func() {
	return s.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler hands fn to scheduler after every change. A nil
// scheduler runs fn in the goroutine that made the change. The returned
// func unsubscribes and is safe to call more than once.
func (s *Signal[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn, scheduler: scheduler})
	s.mu.Unlock()
	return func() { s.unsubscribe(id) }
}

func (s *Signal[T]) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

func dispatch(listeners []listener) {
	for _, l := range listeners {
		if l.scheduler == nil {
			l.fn()
			continue
		}
		l.scheduler.Schedule(l.fn)
	}
}
