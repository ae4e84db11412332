package widgets

import (
	"log/slog"

	"github.com/odvcencio/furry-list/runtime"
	"github.com/odvcencio/furry-list/state"
)

// Component is a focusable base that keeps the app services it was bound
// with and drops its subscriptions on unbind.
type Component struct {
	FocusableBase
	Services runtime.Services
	Subs     state.Subscriptions
}

// Bind stores services and routes observed changes through the app
// scheduler so callbacks run on the UI goroutine.
func (c *Component) Bind(services runtime.Services) {
	c.Services = services
	c.Subs.SetScheduler(services.Scheduler())
}

// Unbind clears subscriptions and services.
func (c *Component) Unbind() {
	c.Subs.Clear()
	c.Services = runtime.Services{}
}

// Invalidate requests a render pass.
func (c *Component) Invalidate() {
	c.Services.Invalidate()
}

// Observe subscribes fn to src until Unbind.
func (c *Component) Observe(src state.Subscribable, fn func()) {
	c.Subs.Observe(src, fn)
}

// Logger returns the bound app logger.
func (c *Component) Logger() *slog.Logger {
	return c.Services.Logger()
}
