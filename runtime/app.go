package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/state"
)

// ErrNoBackend is returned by Run when the app has no backend.
var ErrNoBackend = errors.New("runtime: backend is required")

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands emitted by widgets.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
	StateQueue     *state.Queue
	FlushPolicy    QueueFlushPolicy
	// Logger defaults to the shared runtime logger.
	Logger *slog.Logger
}

// App runs a widget tree against a terminal backend.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	invalidator    *Invalidator
	logger         *slog.Logger
	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingMu      sync.Mutex
	pendingEffects []Effect

	running bool
	dirty   bool
	frames  int
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = Logger()
	}
	app := &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
		stateQueue:     queue,
		flushPolicy:    cfg.FlushPolicy,
		logger:         logger,
	}
	app.queueScheduler = NewQueueScheduler(queue, app.tryPost)
	app.invalidator = NewInvalidator(app.tryPost)
	return app
}

// Screen returns the active screen, if initialized.
func (a *App) Screen() *Screen {
	return a.screen
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Frames returns the number of frames flushed to the backend.
func (a *App) Frames() int {
	return a.frames
}

// StateQueue returns the app's state queue.
func (a *App) StateQueue() *state.Queue {
	if a == nil {
		return nil
	}
	return a.stateQueue
}

// StateScheduler returns a scheduler that wakes the app to flush.
func (a *App) StateScheduler() state.Scheduler {
	if a == nil || a.queueScheduler == nil {
		return nil
	}
	return a.queueScheduler
}

// InvalidateScheduler returns a scheduler that invalidates the render pass.
func (a *App) InvalidateScheduler() state.Scheduler {
	if a == nil || a.invalidator == nil {
		return nil
	}
	return a.invalidator
}

// Invalidate requests a render pass.
func (a *App) Invalidate() {
	if a == nil || a.invalidator == nil {
		return
	}
	a.invalidator.Invalidate()
}

// Spawn starts an effect using the app task context.
// If Run has not started, the effect is queued until start.
func (a *App) Spawn(effect Effect) {
	if a == nil || effect.Run == nil {
		return
	}
	a.pendingMu.Lock()
	if a.taskCtx == nil {
		a.pendingEffects = append(a.pendingEffects, effect)
		a.pendingMu.Unlock()
		return
	}
	a.pendingMu.Unlock()
	a.runEffect(effect)
}

// After schedules a delayed message using the app task context.
func (a *App) After(delay time.Duration, msg Message) {
	a.Spawn(After(delay, msg))
}

// Every schedules a recurring message using the app task context.
func (a *App) Every(interval time.Duration, fn func(time.Time) Message) {
	a.Spawn(Every(interval, fn))
}

// SetRoot swaps the root widget.
func (a *App) SetRoot(root Widget) {
	a.root = root
	if a.screen != nil {
		a.screen.SetRoot(root)
		a.dirty = true
	}
}

// Post sends a message to the event loop, dropping it when the queue is full.
func (a *App) Post(msg Message) {
	if !a.tryPost(msg) && a != nil {
		a.logger.Debug("message dropped", "type", fmt.Sprintf("%T", msg))
	}
}

// TryPost sends a message to the event loop without blocking.
func (a *App) TryPost(msg Message) bool {
	return a.tryPost(msg)
}

func (a *App) tryPost(msg Message) bool {
	if a == nil || a.messages == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		return false
	}
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, taskCancel := context.WithCancel(ctx)
	a.pendingMu.Lock()
	a.taskCtx = taskCtx
	a.taskCancel = taskCancel
	a.pendingMu.Unlock()
	defer func() {
		taskCancel()
		a.pendingMu.Lock()
		a.taskCtx = nil
		a.taskCancel = nil
		a.pendingMu.Unlock()
	}()
	if err := a.backend.Init(); err != nil {
		a.logger.Error("backend init failed", "err", err)
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.screen = NewScreen(w, h)
	a.screen.SetServices(a.Services())
	if a.root != nil {
		a.screen.SetRoot(a.root)
	}
	if a.update == nil {
		a.update = DefaultUpdate
	}
	a.logger.Debug("app started", "width", w, "height", h)

	a.running = true
	a.dirty = true
	a.startPendingEffects()

	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running {
		if a.dirty {
			a.render()
			a.dirty = false
		}

		var msg Message
		select {
		case <-ctx.Done():
			a.running = false
			continue
		case msg = <-a.messages:
		case now := <-ticks:
			msg = TickMsg{Time: now}
		}

		if a.update(a, msg) {
			a.dirty = true
		}
		if !a.running {
			break
		}
		if a.flushQueueIfNeeded(msg) {
			a.dirty = true
		}
		if _, ok := msg.(InvalidateMsg); ok {
			a.invalidator.resetPending()
		}
	}
	a.cancelTasks()
	if a.root != nil {
		DetachTree(a.root)
	}
	a.logger.Debug("app stopped", "frames", a.frames)
	return ctx.Err()
}

// DefaultUpdate handles input messages and widget commands.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.screen == nil {
		return false
	}
	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case QueueFlushMsg:
		return false
	case InvalidateMsg:
		return true
	default:
		return app.dispatchMessage(msg)
	}
}

func (a *App) dispatchMessage(msg Message) bool {
	if a == nil || a.screen == nil {
		return false
	}
	result := a.screen.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if a.handleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

func (a *App) handleCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		a.running = false
		a.cancelTasks()
		return false
	case Refresh:
		if a.screen != nil {
			a.screen.Buffer().MarkAllDirty()
		}
		return true
	case SendMsg:
		if c.Message != nil {
			a.Post(c.Message)
		}
		return false
	case Effect:
		a.runEffect(c)
		return false
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

// ExecuteCommand runs a command through the app handler.
func (a *App) ExecuteCommand(cmd Command) bool {
	if a == nil {
		return false
	}
	return a.handleCommand(cmd)
}

func (a *App) pollEvents() {
	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		if msg := FromEvent(ev); msg != nil {
			a.Post(msg)
		}
	}
}

func (a *App) render() {
	if a.screen == nil {
		return
	}
	a.screen.Render()
	buf := a.screen.Buffer()
	if !buf.IsDirty() {
		return
	}
	w, h := buf.Size()
	cells := buf.Cells()
	if rectWriter, ok := a.backend.(backend.RectWriter); ok && buf.DirtyCount() == w*h {
		rectWriter.SetRect(0, 0, w, h, cells)
		buf.ClearDirty()
		a.backend.Show()
		a.frames++
		return
	}
	rowWriter, hasRowWriter := a.backend.(backend.RowWriter)
	buf.ForEachDirtySpan(func(y, startX, endX int) {
		row := cells[y*w : (y+1)*w]
		if hasRowWriter {
			rowWriter.SetRow(y, startX, row[startX:endX])
			return
		}
		for x := startX; x < endX; x++ {
			a.backend.SetContent(x, y, row[x].Rune, nil, row[x].Style)
		}
	})
	buf.ClearDirty()
	a.backend.Show()
	a.frames++
}

func (a *App) taskContext() context.Context {
	a.pendingMu.Lock()
	defer a.pendingMu.Unlock()
	if a.taskCtx != nil {
		return a.taskCtx
	}
	return context.Background()
}

func (a *App) cancelTasks() {
	a.pendingMu.Lock()
	cancel := a.taskCancel
	a.pendingMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (a *App) runEffect(effect Effect) {
	if a == nil || effect.Run == nil {
		return
	}
	ctx := a.taskContext()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error("effect panicked", "panic", r)
			}
		}()
		effect.Run(ctx, a.tryPost)
	}()
}

func (a *App) startPendingEffects() {
	a.pendingMu.Lock()
	effects := a.pendingEffects
	a.pendingEffects = nil
	a.pendingMu.Unlock()
	for _, effect := range effects {
		a.runEffect(effect)
	}
}

func (a *App) flushQueueIfNeeded(msg Message) bool {
	if a.stateQueue == nil || !shouldFlushQueue(a.flushPolicy, msg) {
		return false
	}
	a.queueScheduler.resetPending()
	return a.stateQueue.Flush() > 0
}
