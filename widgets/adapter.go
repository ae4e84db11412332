package widgets

import (
	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/runtime"
	"github.com/odvcencio/furry-list/state"
)

// RenderFunc draws one item into ctx. ctx.Bounds is the item's full row
// block; parts scrolled out of the list are clipped.
type RenderFunc[T any] func(item T, index int, selected bool, ctx runtime.RenderContext)

// ListAdapter supplies items to a list widget.
type ListAdapter[T any] interface {
	Count() int
	Item(index int) T
	Render(item T, index int, selected bool, ctx runtime.RenderContext)
}

// ChangeNotifier is implemented by adapters whose item count can change
// while the list is mounted.
type ChangeNotifier interface {
	Changes() state.Subscribable
}

// WidthSetter is implemented by adapters whose item count depends on the
// list width, such as adapters that wrap text into rows.
type WidthSetter interface {
	SetWidth(width int)
}

// SliceAdapter serves a fixed slice.
type SliceAdapter[T any] struct {
	items  []T
	render RenderFunc[T]
}

// NewSliceAdapter wraps items.
func NewSliceAdapter[T any](items []T, render RenderFunc[T]) *SliceAdapter[T] {
	return &SliceAdapter[T]{items: items, render: render}
}

// Count returns len(items).
func (s *SliceAdapter[T]) Count() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Item returns the item at index, or the zero value when out of range.
func (s *SliceAdapter[T]) Item(index int) T {
	var zero T
	if s == nil || index < 0 || index >= len(s.items) {
		return zero
	}
	return s.items[index]
}

// Render calls the render func.
func (s *SliceAdapter[T]) Render(item T, index int, selected bool, ctx runtime.RenderContext) {
	if s == nil || s.render == nil {
		return
	}
	s.render(item, index, selected, ctx)
}

// SignalAdapter serves the slice held by a signal and reports its changes.
type SignalAdapter[T any] struct {
	items  state.Readable[[]T]
	render RenderFunc[T]
}

// NewSignalAdapter wraps a signal of items.
func NewSignalAdapter[T any](items state.Readable[[]T], render RenderFunc[T]) *SignalAdapter[T] {
	return &SignalAdapter[T]{items: items, render: render}
}

// Count returns the current number of items.
func (s *SignalAdapter[T]) Count() int {
	if s == nil || s.items == nil {
		return 0
	}
	return len(s.items.Get())
}

// Item returns the item at index, or the zero value when out of range.
func (s *SignalAdapter[T]) Item(index int) T {
	var zero T
	if s == nil || s.items == nil {
		return zero
	}
	items := s.items.Get()
	if index < 0 || index >= len(items) {
		return zero
	}
	return items[index]
}

// Render calls the render func.
func (s *SignalAdapter[T]) Render(item T, index int, selected bool, ctx runtime.RenderContext) {
	if s == nil || s.render == nil {
		return
	}
	s.render(item, index, selected, ctx)
}

// Changes returns the underlying signal.
func (s *SignalAdapter[T]) Changes() state.Subscribable {
	if s == nil {
		return nil
	}
	return s.items
}

// TextRenderer returns a RenderFunc that draws format(item) on the first
// row of each item block.
func TextRenderer[T any](format func(T) string, style, selectedStyle backend.Style) RenderFunc[T] {
	return func(item T, _ int, selected bool, ctx runtime.RenderContext) {
		st := style
		if selected {
			st = selectedStyle
		}
		drawLine(ctx, ctx.Bounds, ctx.Bounds.Y, format(item), AlignLeft, st)
	}
}
