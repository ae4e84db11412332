package state

import "sync"

// Subscriptions owns a set of unsubscribe funcs so a widget can drop all
// of them when it unbinds.
type Subscriptions struct {
	mu        sync.Mutex
	unsubs    []func()
	scheduler Scheduler
}

// NewSubscriptions creates a set whose Observe calls use scheduler.
func NewSubscriptions(scheduler Scheduler) *Subscriptions {
	return &Subscriptions{scheduler: scheduler}
}

// SetScheduler replaces the scheduler used by later Observe calls.
func (s *Subscriptions) SetScheduler(scheduler Scheduler) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.scheduler = scheduler
	s.mu.Unlock()
}

// Add tracks an unsubscribe func.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Observe subscribes fn to src through the set's scheduler. Sources that
// cannot take a scheduler are subscribed directly.
func (s *Subscriptions) Observe(src Subscribable, fn func()) {
	if s == nil || src == nil || fn == nil {
		return
	}
	s.mu.Lock()
	scheduler := s.scheduler
	s.mu.Unlock()
	if scheduled, ok := src.(interface {
		SubscribeWithScheduler(Scheduler, func()) func()
	}); ok && scheduler != nil {
		s.Add(scheduled.SubscribeWithScheduler(scheduler, fn))
		return
	}
	s.Add(src.Subscribe(fn))
}

// Len returns the number of tracked subscriptions.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.unsubs)
}

// Clear unsubscribes everything tracked so far.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}
