package runtime

import "github.com/odvcencio/furry-list/terminal"

// Screen owns the root widget, the focus ring and the render buffer.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	services      Services
	focusables    []Focusable
	focusIndex    int
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{
		width:      w,
		height:     h,
		buffer:     NewBuffer(w, h),
		focusIndex: -1,
	}
}

// SetServices configures app services for bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays out the root.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	if s.root != nil {
		s.root.Layout(Rect{Width: w, Height: h})
	}
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// SetRoot replaces the root widget, detaching the old tree and focusing
// the first focusable widget of the new one.
func (s *Screen) SetRoot(root Widget) {
	if s.root != nil {
		DetachTree(s.root)
	}
	s.root = root
	s.focusables = nil
	s.focusIndex = -1
	if root == nil {
		return
	}
	AttachTree(root, s.services)
	root.Layout(Rect{Width: s.width, Height: s.height})
	walkTree(root, true, func(w Widget) {
		if f, ok := w.(Focusable); ok && f.CanFocus() {
			s.focusables = append(s.focusables, f)
		}
	})
	if len(s.focusables) > 0 {
		s.setFocus(0)
	}
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// Focused returns the focused widget, if any.
func (s *Screen) Focused() Focusable {
	if s.focusIndex < 0 || s.focusIndex >= len(s.focusables) {
		return nil
	}
	return s.focusables[s.focusIndex]
}

// FocusNext moves focus to the next focusable widget.
func (s *Screen) FocusNext() {
	if len(s.focusables) == 0 {
		return
	}
	s.setFocus((s.focusIndex + 1) % len(s.focusables))
}

func (s *Screen) setFocus(index int) {
	if current := s.Focused(); current != nil {
		current.Blur()
	}
	s.focusIndex = index
	s.focusables[index].Focus()
}

// Render draws the root widget into the buffer.
func (s *Screen) Render() {
	if s.root == nil {
		return
	}
	s.root.Render(NewRenderContext(s.buffer))
}

// HandleMessage routes mouse messages to the widget under the pointer and
// everything else to the root. Tab cycles focus.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if s.root == nil {
		return Unhandled()
	}
	switch m := msg.(type) {
	case KeyMsg:
		if m.Key == terminal.KeyTab && len(s.focusables) > 1 {
			s.FocusNext()
			return Handled()
		}
	case MouseMsg:
		if target := s.widgetAt(s.root, m.X, m.Y); target != nil {
			if result := target.HandleMessage(msg); result.Handled {
				return result
			}
		}
	}
	return s.root.HandleMessage(msg)
}

// widgetAt returns the deepest widget whose bounds contain (x, y).
func (s *Screen) widgetAt(w Widget, x, y int) Widget {
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			if hit := s.widgetAt(child, x, y); hit != nil {
				return hit
			}
		}
	}
	if bp, ok := w.(BoundsProvider); ok && bp.Bounds().Contains(x, y) {
		return w
	}
	return nil
}
