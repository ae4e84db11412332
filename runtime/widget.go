package runtime

// Rect is a cell rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// Constraints bound a widget's measured size.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Tight returns constraints that only allow size.
func Tight(size Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size Size) Size {
	size.Width = min(max(size.Width, c.MinWidth), c.MaxWidth)
	size.Height = min(max(size.Height, c.MinHeight), c.MaxHeight)
	return size
}

// Widget is a node in the UI tree.
type Widget interface {
	Measure(constraints Constraints) Size
	Layout(bounds Rect)
	Render(ctx RenderContext)
	HandleMessage(msg Message) HandleResult
}

// ChildProvider is implemented by widgets with children.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// BoundsProvider exposes a widget's assigned bounds.
type BoundsProvider interface {
	Bounds() Rect
}

// Focusable is implemented by widgets that accept keyboard focus.
type Focusable interface {
	CanFocus() bool
	Focus()
	Blur()
	IsFocused() bool
}

// HandleResult reports whether a message was consumed and any commands
// it produced.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled returns a result for a consumed message.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled returns a result for an ignored message.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand returns a handled result carrying cmd.
func WithCommand(cmd Command) HandleResult {
	return HandleResult{Handled: true, Commands: []Command{cmd}}
}
