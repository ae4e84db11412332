package scroll

// FollowPolicy controls whether a view stays pinned to its newest item
// when the item count changes.
type FollowPolicy int

const (
	// FollowNever leaves the scroll offset alone.
	FollowNever FollowPolicy = iota
	// FollowNearBottom jumps to the last item when the viewport was
	// reaching the previous last item.
	FollowNearBottom
	// FollowAlways jumps to the last item on every count change.
	FollowAlways
)

// String returns the policy name.
func (p FollowPolicy) String() string {
	switch p {
	case FollowNever:
		return "never"
	case FollowNearBottom:
		return "near-bottom"
	case FollowAlways:
		return "always"
	default:
		return "unknown"
	}
}

// FollowTarget decides where to scroll after the item count changes from
// prevCount to nextCount. prev is the viewport before the change. It returns
// the new scroll offset and true when the view should jump.
func FollowTarget(policy FollowPolicy, layout Layout, prev ViewportState, prevCount, nextCount int) (int, bool) {
	if prevCount == nextCount || layout.ItemHeight <= 0 {
		return prev.ScrollOffset, false
	}
	switch policy {
	case FollowAlways:
	case FollowNearBottom:
		if !layout.NearBottom(prev, prevCount) {
			return prev.ScrollOffset, false
		}
	default:
		return prev.ScrollOffset, false
	}
	return layout.ScrollToBottom(nextCount), true
}
