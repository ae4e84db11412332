// Package scroll provides list windowing, viewport and scrollbar primitives.
package scroll

import "github.com/odvcencio/furry-list/backend"

// Controller provides scroll control for widgets.
type Controller interface {
	ScrollBy(dx, dy int)
	ScrollTo(x, y int)
	PageBy(pages int)
	ScrollToStart()
	ScrollToEnd()
}

// ScrollPolicy configures when scrollbars appear.
type ScrollPolicy int

const (
	ScrollAuto ScrollPolicy = iota
	ScrollAlways
	ScrollNever
)

// Scrollbar configures scrollbar rendering.
type Scrollbar struct {
	Policy       ScrollPolicy
	Track        backend.Style
	Thumb        backend.Style
	MinThumbSize int
	Chars        ScrollbarChars
}

// Visible reports whether the scrollbar should be drawn.
func (s Scrollbar) Visible(contentLen, viewLen int) bool {
	switch s.Policy {
	case ScrollAlways:
		return true
	case ScrollNever:
		return false
	default:
		return contentLen > viewLen
	}
}

// ScrollbarChars defines characters used to render the scrollbar.
type ScrollbarChars struct {
	Track rune
	Thumb rune
}

// DefaultScrollbarChars returns ASCII defaults.
func DefaultScrollbarChars() ScrollbarChars {
	return ScrollbarChars{
		Track: '|',
		Thumb: '#',
	}
}

// Thumb returns the start and length of the scrollbar thumb within a track
// of trackLen cells.
func Thumb(contentLen, viewLen, offset, trackLen, minThumb int) (start, size int) {
	if trackLen <= 0 {
		return 0, 0
	}
	if contentLen <= 0 || viewLen <= 0 || contentLen <= viewLen {
		return 0, trackLen
	}
	size = viewLen * trackLen / contentLen
	size = max(size, minThumb, 1)
	size = min(size, trackLen)
	maxOffset := contentLen - viewLen
	offset = min(max(offset, 0), maxOffset)
	start = offset * (trackLen - size) / maxOffset
	return start, size
}
