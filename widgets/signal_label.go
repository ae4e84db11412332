package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/runtime"
	"github.com/odvcencio/furry-list/state"
)

// SignalLabel is a one-line label that shows the value of a string
// signal while mounted.
type SignalLabel struct {
	Base
	source    state.Readable[string]
	scheduler state.Scheduler
	subs      state.Subscriptions
	services  runtime.Services
	text      string
	style     backend.Style
	align     Alignment
	mounted   bool
}

// NewSignalLabel creates a label over source. Updates run through
// scheduler, or through the app scheduler once bound when it is nil.
func NewSignalLabel(source state.Readable[string], scheduler state.Scheduler) *SignalLabel {
	s := &SignalLabel{source: source, scheduler: scheduler}
	if source != nil {
		s.text = source.Get()
	}
	return s
}

// Text returns the text as of the last update.
func (s *SignalLabel) Text() string {
	return s.text
}

// SetStyle sets the label style.
func (s *SignalLabel) SetStyle(style backend.Style) {
	s.style = style
}

// SetAlignment sets the text alignment.
func (s *SignalLabel) SetAlignment(align Alignment) {
	s.align = align
}

// Bind picks up the app scheduler.
func (s *SignalLabel) Bind(services runtime.Services) {
	s.services = services
}

// Unbind drops the app services.
func (s *SignalLabel) Unbind() {
	s.services = runtime.Services{}
}

// Measure asks for one row as wide as the text.
func (s *SignalLabel) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: runewidth.StringWidth(s.text), Height: 1})
}

// Render draws the text on the first row.
func (s *SignalLabel) Render(ctx runtime.RenderContext) {
	if s.bounds.Empty() {
		return
	}
	drawLine(ctx.Sub(s.bounds), s.bounds, s.bounds.Y, s.text, s.align, s.style)
}

// Mount subscribes to the source.
func (s *SignalLabel) Mount() {
	s.mounted = true
	s.subs.Clear()
	if s.source == nil {
		s.text = ""
		return
	}
	scheduler := s.scheduler
	if scheduler == nil {
		scheduler = s.services.Scheduler()
	}
	s.subs.SetScheduler(scheduler)
	s.text = s.source.Get()
	s.subs.Observe(s.source, s.refresh)
}

// Unmount unsubscribes from the source.
func (s *SignalLabel) Unmount() {
	s.mounted = false
	s.subs.Clear()
}

func (s *SignalLabel) refresh() {
	if !s.mounted {
		return
	}
	s.text = s.source.Get()
}
