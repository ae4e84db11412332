package runtime

import (
	"sync/atomic"

	"github.com/odvcencio/furry-list/state"
)

// QueueFlushPolicy configures when the app flushes its state queue.
type QueueFlushPolicy int

const (
	// FlushOnMessageAndTick flushes on any message or tick.
	FlushOnMessageAndTick QueueFlushPolicy = iota
	// FlushOnMessage flushes on messages except TickMsg.
	FlushOnMessage
	// FlushOnTick flushes only on TickMsg.
	FlushOnTick
	// FlushManual flushes only on QueueFlushMsg.
	FlushManual
)

// WithQueue wraps update to flush queue on TickMsg or QueueFlushMsg.
func WithQueue(queue *state.Queue, update UpdateFunc) UpdateFunc {
	return WithQueuePolicy(queue, FlushOnTick, update)
}

// WithQueuePolicy wraps update to flush queue based on policy.
// If update is nil, DefaultUpdate is used.
func WithQueuePolicy(queue *state.Queue, policy QueueFlushPolicy, update UpdateFunc) UpdateFunc {
	if update == nil {
		update = DefaultUpdate
	}
	return func(app *App, msg Message) bool {
		dirty := update(app, msg)
		if queue != nil && shouldFlushQueue(policy, msg) && queue.Flush() > 0 {
			dirty = true
		}
		return dirty
	}
}

func shouldFlushQueue(policy QueueFlushPolicy, msg Message) bool {
	if _, ok := msg.(QueueFlushMsg); ok {
		return true
	}
	_, isTick := msg.(TickMsg)
	switch policy {
	case FlushManual:
		return false
	case FlushOnMessage:
		return !isTick
	case FlushOnTick:
		return isTick
	default:
		return true
	}
}

// coalescer posts a wake-up message at most once until reset by the loop.
type coalescer struct {
	post    func(Message) bool
	msg     Message
	pending atomic.Bool
}

func (c *coalescer) wake() {
	if c == nil || c.post == nil {
		return
	}
	if c.pending.CompareAndSwap(false, true) && !c.post(c.msg) {
		c.pending.Store(false)
	}
}

func (c *coalescer) reset() {
	if c == nil {
		return
	}
	c.pending.Store(false)
}

// QueueScheduler enqueues callbacks and wakes the app to flush them on
// the UI goroutine.
type QueueScheduler struct {
	queue *state.Queue
	waker coalescer
}

// NewQueueScheduler wires a queue to a post function.
func NewQueueScheduler(queue *state.Queue, post func(Message) bool) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{
		queue: queue,
		waker: coalescer{post: post, msg: QueueFlushMsg{}},
	}
}

// Schedule enqueues fn and posts a flush message.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	s.waker.wake()
}

func (s *QueueScheduler) resetPending() {
	if s == nil {
		return
	}
	s.waker.reset()
}

// Invalidator posts coalesced InvalidateMsg wake-ups.
type Invalidator struct {
	waker coalescer
}

// NewInvalidator creates an invalidator wired to a post function.
func NewInvalidator(post func(Message) bool) *Invalidator {
	return &Invalidator{waker: coalescer{post: post, msg: InvalidateMsg{}}}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil {
		return
	}
	i.waker.wake()
}

// Schedule runs fn and requests a render pass.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

func (i *Invalidator) resetPending() {
	if i == nil {
		return
	}
	i.waker.reset()
}
