// Package widgets provides the widgets that host windowed lists.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/runtime"
)

// Base holds the bounds and focus flag most widgets need.
// Embed it to get default Layout, Bounds and focus methods.
type Base struct {
	bounds  runtime.Rect
	focused bool
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	if b == nil {
		return
	}
	b.bounds = bounds
}

// Bounds returns the assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	if b == nil {
		return runtime.Rect{}
	}
	return b.bounds
}

// HandleMessage ignores every message.
func (b *Base) HandleMessage(runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// CanFocus reports false.
func (b *Base) CanFocus() bool {
	return false
}

// Focus marks the widget focused.
func (b *Base) Focus() {
	if b == nil {
		return
	}
	b.focused = true
}

// Blur clears focus.
func (b *Base) Blur() {
	if b == nil {
		return
	}
	b.focused = false
}

// IsFocused reports whether the widget has focus.
func (b *Base) IsFocused() bool {
	return b != nil && b.focused
}

// FocusableBase is Base for widgets that take keyboard focus.
type FocusableBase struct {
	Base
}

// CanFocus reports true.
func (f *FocusableBase) CanFocus() bool {
	return true
}

// Alignment positions text inside its bounds.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// truncate shortens s to at most width columns, ending in an ellipsis
// when something was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// drawLine fills one row of bounds with style and draws text aligned in it.
func drawLine(ctx runtime.RenderContext, bounds runtime.Rect, y int, text string, align Alignment, style backend.Style) {
	ctx.Fill(runtime.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: 1}, ' ', style)
	text = truncate(text, bounds.Width)
	x := bounds.X
	switch pad := bounds.Width - runewidth.StringWidth(text); align {
	case AlignCenter:
		x += pad / 2
	case AlignRight:
		x += pad
	}
	ctx.SetString(x, y, text, style)
}
