package state

import "sync"

// Computed is a read-only value derived from other reactive values. It
// recomputes whenever a dependency changes.
type Computed[T any] struct {
	out       *Signal[T]
	compute   func() T
	scheduler Scheduler

	mu     sync.Mutex
	unsubs []func()
}

// NewComputed derives a value and recomputes it synchronously.
func NewComputed[T any](compute func() T, deps ...Subscribable) *Computed[T] {
	return NewComputedWithScheduler(nil, compute, deps...)
}

// NewComputedWithScheduler derives a value and hands recomputes to scheduler.
func NewComputedWithScheduler[T any](scheduler Scheduler, compute func() T, deps ...Subscribable) *Computed[T] {
	if compute == nil {
		compute = func() (zero T) { return zero }
	}
	c := &Computed[T]{
		out:       NewSignal(compute()),
		compute:   compute,
		scheduler: scheduler,
	}
	for _, dep := range deps {
		if dep != nil {
			c.unsubs = append(c.unsubs, dep.Subscribe(c.invalidate))
		}
	}
	return c
}

// SetEqualFunc sets the check used to drop recomputes that produce the
// same value.
func (c *Computed[T]) SetEqualFunc(fn EqualFunc[T]) {
	if c == nil {
		return
	}
	c.out.SetEqualFunc(fn)
}

// Get returns the last computed value.
func (c *Computed[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	return c.out.Get()
}

// Subscribe calls fn after each change of the computed value.
func (c *Computed[T]) Subscribe(fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.out.Subscribe(fn)
}

// SubscribeWithScheduler is Subscribe with an explicit scheduler.
func (c *Computed[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.out.SubscribeWithScheduler(scheduler, fn)
}

// Stop detaches from all dependencies. The last value stays readable.
func (c *Computed[T]) Stop() {
	if c == nil {
		return
	}
	c.mu.Lock()
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}

func (c *Computed[T]) invalidate() {
	if c.scheduler == nil {
		c.recompute()
		return
	}
	c.scheduler.Schedule(c.recompute)
}

func (c *Computed[T]) recompute() {
	c.out.Set(c.compute())
}
