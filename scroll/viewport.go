package scroll

// Viewport owns the scroll state of one windowed list.
//
// It clamps offsets the way a real scroll container does and applies the
// follow policy when the item count changes. The window itself is always
// recomputed from the current state.
type Viewport struct {
	layout   Layout
	index    FixedHeightIndex
	state    ViewportState
	count    int
	follow   FollowPolicy
	onChange func(state ViewportState, count int)
}

// NewViewport validates layout and returns a viewport scrolled to the top.
func NewViewport(layout Layout) (*Viewport, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	layout.Overscan = max(layout.Overscan, 0)
	v := &Viewport{layout: layout}
	v.index = FixedHeightIndex{Layout: layout, Count: v.ItemCount}
	return v, nil
}

// Layout returns the layout parameters.
func (v *Viewport) Layout() Layout {
	if v == nil {
		return Layout{}
	}
	return v.layout
}

// State returns the current viewport state.
func (v *Viewport) State() ViewportState {
	if v == nil {
		return ViewportState{}
	}
	return v.state
}

// ItemCount returns the last item count seen by the viewport.
func (v *Viewport) ItemCount() int {
	if v == nil {
		return 0
	}
	return v.count
}

// SetFollow sets the policy applied on item count changes.
func (v *Viewport) SetFollow(policy FollowPolicy) {
	if v == nil {
		return
	}
	v.follow = policy
}

// Follow returns the follow policy.
func (v *Viewport) Follow() FollowPolicy {
	if v == nil {
		return FollowNever
	}
	return v.follow
}

// SetOnChange sets a callback fired after the scroll offset changes.
func (v *Viewport) SetOnChange(fn func(state ViewportState, count int)) {
	if v == nil {
		return
	}
	v.onChange = fn
}

// SetHeight updates the visible height and re-clamps the offset.
func (v *Viewport) SetHeight(height int) {
	if v == nil {
		return
	}
	height = max(height, 0)
	if height == v.state.Height {
		return
	}
	v.state.Height = height
	v.moveTo(v.clamp(v.state.ScrollOffset))
}

// SetItemCount records a new item count. It reports whether the follow
// policy moved the view. A negative count is rejected with a
// *ConfigError and leaves the viewport unchanged.
func (v *Viewport) SetItemCount(count int) (bool, error) {
	if v == nil {
		return false, nil
	}
	if count < 0 {
		return false, &ConfigError{Field: "item count", Value: count}
	}
	if count == v.count {
		return false, nil
	}
	prev := v.state
	prevCount := v.count
	v.count = count
	target, jump := FollowTarget(v.follow, v.layout, prev, prevCount, count)
	if !jump {
		target = prev.ScrollOffset
	}
	v.moveTo(v.clamp(target))
	return jump, nil
}

// SetScrollOffset moves the viewport to offset, clamped to the content.
func (v *Viewport) SetScrollOffset(offset int) {
	if v == nil {
		return
	}
	v.moveTo(v.clamp(offset))
}

// ScrollBy adjusts the offset by delta rows.
func (v *Viewport) ScrollBy(delta int) {
	if v == nil {
		return
	}
	v.SetScrollOffset(v.state.ScrollOffset + delta)
}

// ScrollToIndex puts index at the top of the viewport where possible.
func (v *Viewport) ScrollToIndex(index int) {
	if v == nil {
		return
	}
	v.SetScrollOffset(v.layout.ScrollToIndex(index))
}

// ScrollToTop moves to the first item.
func (v *Viewport) ScrollToTop() {
	if v == nil {
		return
	}
	v.SetScrollOffset(v.layout.ScrollToTop())
}

// ScrollToBottom moves to the last item.
func (v *Viewport) ScrollToBottom() {
	if v == nil {
		return
	}
	v.SetScrollOffset(v.layout.ScrollToBottom(v.count))
}

// EnsureVisible scrolls the minimum distance that shows all of index.
func (v *Viewport) EnsureVisible(index int) {
	if v == nil || v.count == 0 {
		return
	}
	index = min(max(index, 0), v.count-1)
	top := v.layout.ScrollToIndex(index)
	bottom := top + v.layout.ItemHeight
	switch {
	case top < v.state.ScrollOffset:
		v.SetScrollOffset(top)
	case bottom > v.state.ScrollOffset+v.state.Height:
		v.SetScrollOffset(bottom - v.state.Height)
	}
}

// ContentHeight returns the height of all items.
func (v *Viewport) ContentHeight() int {
	if v == nil {
		return 0
	}
	return v.index.TotalHeight()
}

// IndexAt returns the item under row y of the viewport, where row 0 is
// the top edge. It reports false below the last item.
func (v *Viewport) IndexAt(y int) (int, bool) {
	if v == nil || y < 0 {
		return 0, false
	}
	offset := v.state.ScrollOffset + y
	if offset >= v.ContentHeight() {
		return 0, false
	}
	return v.index.IndexForOffset(offset), true
}

// MaxOffset returns the largest reachable scroll offset.
func (v *Viewport) MaxOffset() int {
	if v == nil {
		return 0
	}
	return max(v.ContentHeight()-v.state.Height, 0)
}

// AtBottom reports whether the last row is fully visible.
func (v *Viewport) AtBottom() bool {
	if v == nil {
		return true
	}
	return v.state.ScrollOffset >= v.MaxOffset()
}

// Window computes the current visible window.
func (v *Viewport) Window() Window {
	if v == nil {
		return Window{}
	}
	// The layout was validated in NewViewport and count is never negative.
	w, _ := v.layout.Window(v.state, v.count)
	return w
}

func (v *Viewport) clamp(offset int) int {
	return min(max(offset, 0), v.MaxOffset())
}

func (v *Viewport) moveTo(offset int) {
	if offset == v.state.ScrollOffset {
		return
	}
	v.state.ScrollOffset = offset
	if v.onChange != nil {
		v.onChange(v.state, v.count)
	}
}
