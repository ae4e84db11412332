package scroll

import (
	"errors"
	"fmt"
)

// DefaultOverscan is the number of rows rendered past each viewport edge
// when a caller does not pick one.
const DefaultOverscan = 5

// ErrInvalidConfig reports layout parameters that cannot produce a window.
var ErrInvalidConfig = errors.New("scroll: invalid configuration")

// ConfigError describes the offending layout field.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scroll: invalid %s %d", e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Layout holds the fixed geometry of a windowed list.
type Layout struct {
	ItemHeight int
	Overscan   int
}

// Validate reports whether the layout can be windowed.
func (l Layout) Validate() error {
	if l.ItemHeight <= 0 {
		return &ConfigError{Field: "item height", Value: l.ItemHeight}
	}
	return nil
}

// ViewportState is the scroll position and visible height of a host view.
type ViewportState struct {
	ScrollOffset int
	Height       int
}

// Window is the contiguous range of items to materialize.
//
// Items in [Start, End) are rendered. Anchor is the first row intersecting
// the viewport before overscan is applied, and Offset is Anchor*ItemHeight.
type Window struct {
	Start  int
	End    int
	Anchor int
	Offset int
}

// Len returns the number of items in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Empty reports whether the window holds no items.
func (w Window) Empty() bool {
	return w.End <= w.Start
}

// Contains reports whether index falls inside the window.
func (w Window) Contains(index int) bool {
	return index >= w.Start && index < w.End
}

// ComputeWindow returns the items that must be mounted for a viewport.
//
// itemHeight must be positive and itemCount non-negative. Negative offsets,
// heights and overscan counts are treated as zero.
func ComputeWindow(scrollOffset, itemHeight, viewportHeight, itemCount, overscan int) (Window, error) {
	if itemHeight <= 0 {
		return Window{}, &ConfigError{Field: "item height", Value: itemHeight}
	}
	if itemCount < 0 {
		return Window{}, &ConfigError{Field: "item count", Value: itemCount}
	}
	scrollOffset = max(scrollOffset, 0)
	viewportHeight = max(viewportHeight, 0)
	overscan = max(overscan, 0)

	rawStart := scrollOffset / itemHeight
	visible := (viewportHeight + itemHeight - 1) / itemHeight
	end := min(rawStart+visible+overscan, itemCount)
	start := min(max(0, rawStart-overscan), end)
	return Window{
		Start:  start,
		End:    end,
		Anchor: rawStart,
		Offset: rawStart * itemHeight,
	}, nil
}

// Window computes the visible window for the given viewport.
func (l Layout) Window(vs ViewportState, itemCount int) (Window, error) {
	return ComputeWindow(vs.ScrollOffset, l.ItemHeight, vs.Height, itemCount, l.Overscan)
}

// ScrollToIndex returns the scroll offset that puts index at the top.
func (l Layout) ScrollToIndex(index int) int {
	return max(0, index) * max(0, l.ItemHeight)
}

// ScrollToTop returns the offset of the first item.
func (l Layout) ScrollToTop() int {
	return l.ScrollToIndex(0)
}

// ScrollToBottom returns the offset of the last item, or 0 for an empty list.
func (l Layout) ScrollToBottom(itemCount int) int {
	return l.ScrollToIndex(itemCount - 1)
}

// NearBottom reports whether the viewport reaches the last item.
func (l Layout) NearBottom(vs ViewportState, itemCount int) bool {
	return vs.ScrollOffset+vs.Height >= (itemCount-1)*l.ItemHeight
}
