package runtime

import (
	"log/slog"
	"time"

	"github.com/odvcencio/furry-list/state"
)

// Services exposes app-level scheduling and messaging helpers to widgets.
type Services struct {
	app *App
}

// Services returns a service handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

func (s Services) isZero() bool {
	return s.app == nil
}

// Scheduler returns a scheduler that runs callbacks on the UI goroutine.
func (s Services) Scheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.StateScheduler()
}

// InvalidateScheduler returns a scheduler that also requests a render.
func (s Services) InvalidateScheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.InvalidateScheduler()
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.app == nil {
		return
	}
	s.app.Invalidate()
}

// Post sends a message into the app loop.
func (s Services) Post(msg Message) bool {
	if s.app == nil {
		return false
	}
	return s.app.tryPost(msg)
}

// Spawn starts an effect using the app task context.
func (s Services) Spawn(effect Effect) {
	if s.app == nil {
		return
	}
	s.app.Spawn(effect)
}

// After schedules a delayed message.
func (s Services) After(delay time.Duration, msg Message) {
	if s.app == nil {
		return
	}
	s.app.After(delay, msg)
}

// Logger returns the app logger, or the shared runtime logger when the
// services are not bound.
func (s Services) Logger() *slog.Logger {
	if s.app == nil {
		return Logger()
	}
	return s.app.logger
}
