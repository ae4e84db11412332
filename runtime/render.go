package runtime

import "github.com/odvcencio/furry-list/backend"

// RenderContext is passed to Render. Bounds is the area a widget owns and
// Clip is the part of it that may be drawn; drawing through the context
// is clipped, drawing through Buffer is not.
type RenderContext struct {
	Buffer *Buffer
	Bounds Rect
	Clip   Rect
}

// NewRenderContext creates a context covering the whole buffer.
func NewRenderContext(buf *Buffer) RenderContext {
	w, h := buf.Size()
	full := Rect{Width: w, Height: h}
	return RenderContext{Buffer: buf, Bounds: full, Clip: full}
}

// Sub returns a context for bounds, clipped to the parent's clip.
// Bounds may extend past the parent; only the overlap is drawn.
func (c RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{
		Buffer: c.Buffer,
		Bounds: bounds,
		Clip:   c.Clip.Intersect(bounds),
	}
}

// Visible reports whether any part of the context can be drawn.
func (c RenderContext) Visible() bool {
	return c.Buffer != nil && !c.Clip.Empty()
}

// Set writes a cell if it lies inside the clip.
func (c RenderContext) Set(x, y int, r rune, style backend.Style) {
	if c.Buffer == nil || !c.Clip.Contains(x, y) {
		return
	}
	c.Buffer.Set(x, y, r, style)
}

// SetString writes text starting at (x, y), clipped horizontally and
// vertically. It returns the number of columns advanced.
func (c RenderContext) SetString(x, y int, s string, style backend.Style) int {
	if c.Buffer == nil || y < c.Clip.Y || y >= c.Clip.Y+c.Clip.Height {
		return stringWidth(s)
	}
	return c.Buffer.setStringClipped(x, y, s, style, c.Clip.X, c.Clip.X+c.Clip.Width)
}

// Fill fills r intersected with the clip.
func (c RenderContext) Fill(r Rect, ch rune, style backend.Style) {
	if c.Buffer == nil {
		return
	}
	c.Buffer.Fill(c.Clip.Intersect(r), ch, style)
}
