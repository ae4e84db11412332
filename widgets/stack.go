package widgets

import "github.com/odvcencio/furry-list/runtime"

// StackItem is one child of a Stack. A Height of zero shares the rows
// left over after fixed-height children.
type StackItem struct {
	Widget runtime.Widget
	Height int
}

// Stack lays children out top to bottom.
type Stack struct {
	Base
	items []StackItem
}

// NewStack creates a vertical stack.
func NewStack(items ...StackItem) *Stack {
	return &Stack{items: items}
}

// Fixed returns an item with a fixed height.
func Fixed(w runtime.Widget, height int) StackItem {
	return StackItem{Widget: w, Height: max(height, 1)}
}

// Flex returns an item that takes a share of the remaining rows.
func Flex(w runtime.Widget) StackItem {
	return StackItem{Widget: w}
}

// ChildWidgets returns the stacked widgets.
func (s *Stack) ChildWidgets() []runtime.Widget {
	out := make([]runtime.Widget, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Widget)
	}
	return out
}

// Measure fills the available space.
func (s *Stack) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: c.MaxWidth, Height: c.MaxHeight})
}

// Layout assigns rows to children.
func (s *Stack) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	fixed, flex := 0, 0
	for _, it := range s.items {
		if it.Height > 0 {
			fixed += it.Height
		} else {
			flex++
		}
	}
	spare := max(bounds.Height-fixed, 0)
	y := bounds.Y
	for _, it := range s.items {
		h := it.Height
		if h == 0 {
			h = spare / flex
			if flex == 1 {
				h = spare
			}
			spare -= h
			flex--
		}
		h = min(h, max(bounds.Y+bounds.Height-y, 0))
		it.Widget.Layout(runtime.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: h})
		y += h
	}
}

// Render draws every child.
func (s *Stack) Render(ctx runtime.RenderContext) {
	for _, it := range s.items {
		it.Widget.Render(ctx)
	}
}

// HandleMessage offers msg to the focused child first, then the rest.
func (s *Stack) HandleMessage(msg runtime.Message) runtime.HandleResult {
	var rest []runtime.Widget
	for _, it := range s.items {
		if f, ok := it.Widget.(runtime.Focusable); ok && f.IsFocused() {
			if result := it.Widget.HandleMessage(msg); result.Handled {
				return result
			}
			continue
		}
		rest = append(rest, it.Widget)
	}
	for _, w := range rest {
		if result := w.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return runtime.Unhandled()
}
