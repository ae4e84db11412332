package widgets

import (
	"fmt"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/runtime"
	"github.com/odvcencio/furry-list/scroll"
	"github.com/odvcencio/furry-list/state"
	"github.com/odvcencio/furry-list/terminal"
)

// wheelRows is how many rows one wheel notch scrolls.
const wheelRows = 3

// VirtualListConfig configures a VirtualList.
type VirtualListConfig struct {
	// ItemHeight is the height of every item in rows. It must be positive.
	ItemHeight int
	// Overscan is the number of extra items drawn above and below the
	// visible ones. Zero selects scroll.DefaultOverscan; negative disables it.
	Overscan int
	// Follow keeps the view on the newest item as items are added.
	Follow scroll.FollowPolicy
	// Scrollbar draws a vertical scrollbar in the rightmost column when set.
	Scrollbar *scroll.Scrollbar

	Style         backend.Style
	SelectedStyle backend.Style
}

// VirtualList shows a list of fixed-height items, rendering only the
// items in the current window. Item i is drawn at i*ItemHeight rows
// below the top of the content, shifted up by the scroll offset.
type VirtualList[T any] struct {
	Component
	adapter       ListAdapter[T]
	viewport      *scroll.Viewport
	scrollbar     *scroll.Scrollbar
	style         backend.Style
	selectedStyle backend.Style
	selected      int
	window        *state.Signal[scroll.Window]
	onSelect      func(index int, item T)
	onActivate    func(index int, item T)
}

// NewVirtualList creates a list over adapter. It fails with an error
// wrapping scroll.ErrInvalidConfig when cfg.ItemHeight is not positive.
func NewVirtualList[T any](adapter ListAdapter[T], cfg VirtualListConfig) (*VirtualList[T], error) {
	overscan := cfg.Overscan
	if overscan == 0 {
		overscan = scroll.DefaultOverscan
	}
	vp, err := scroll.NewViewport(scroll.Layout{ItemHeight: cfg.ItemHeight, Overscan: overscan})
	if err != nil {
		return nil, fmt.Errorf("widgets: virtual list: %w", err)
	}
	vp.SetFollow(cfg.Follow)
	selectedStyle := cfg.SelectedStyle
	if selectedStyle == (backend.Style{}) {
		selectedStyle = backend.DefaultStyle().Reverse(true)
	}
	l := &VirtualList[T]{
		adapter:       adapter,
		viewport:      vp,
		scrollbar:     cfg.Scrollbar,
		style:         cfg.Style,
		selectedStyle: selectedStyle,
		window:        state.NewComparableSignal(scroll.Window{}),
	}
	l.syncCount()
	return l, nil
}

// OnSelect registers a callback for selection changes.
func (l *VirtualList[T]) OnSelect(fn func(index int, item T)) {
	if l == nil {
		return
	}
	l.onSelect = fn
}

// OnActivate registers a callback for Enter on the selected item.
func (l *VirtualList[T]) OnActivate(fn func(index int, item T)) {
	if l == nil {
		return
	}
	l.onActivate = fn
}

// Mount starts observing the adapter when it reports changes.
func (l *VirtualList[T]) Mount() {
	if n, ok := l.adapter.(ChangeNotifier); ok {
		l.Observe(n.Changes(), l.itemsChanged)
	}
}

// Unmount stops observing the adapter.
func (l *VirtualList[T]) Unmount() {
	l.Subs.Clear()
}

func (l *VirtualList[T]) itemsChanged() {
	l.syncCount()
	l.Invalidate()
}

// syncCount feeds the adapter's count to the viewport, which applies the
// follow policy. A negative count is logged and the last good count kept.
func (l *VirtualList[T]) syncCount() {
	if l.adapter == nil {
		return
	}
	before := l.viewport.ItemCount()
	count := l.adapter.Count()
	jumped, err := l.viewport.SetItemCount(count)
	if err != nil {
		l.Logger().Error("list adapter reported a bad count", "err", err)
		return
	}
	if jumped {
		l.Logger().Debug("list followed new items",
			"from", before, "to", count, "offset", l.viewport.State().ScrollOffset)
	}
	l.selected = min(l.selected, max(count-1, 0))
}

// Viewport returns the list's viewport.
func (l *VirtualList[T]) Viewport() *scroll.Viewport {
	if l == nil {
		return nil
	}
	return l.viewport
}

// Window returns the window as of the last render.
func (l *VirtualList[T]) Window() scroll.Window {
	if l == nil {
		return scroll.Window{}
	}
	return l.window.Get()
}

// WindowSignal publishes the window each time a render changes it.
func (l *VirtualList[T]) WindowSignal() state.Readable[scroll.Window] {
	return l.window
}

// SelectedIndex returns the selected item index.
func (l *VirtualList[T]) SelectedIndex() int {
	if l == nil {
		return 0
	}
	return l.selected
}

// SelectedItem returns the selected item, if any.
func (l *VirtualList[T]) SelectedItem() (T, bool) {
	var zero T
	if l == nil || l.adapter == nil || l.selected >= l.adapter.Count() {
		return zero, false
	}
	return l.adapter.Item(l.selected), true
}

// SetSelected selects index and scrolls it into view.
func (l *VirtualList[T]) SetSelected(index int) {
	if l == nil || l.adapter == nil {
		return
	}
	l.syncCount()
	count := l.adapter.Count()
	if count <= 0 {
		return
	}
	index = min(max(index, 0), count-1)
	l.viewport.EnsureVisible(index)
	if index == l.selected {
		return
	}
	l.selected = index
	if l.onSelect != nil {
		l.onSelect(index, l.adapter.Item(index))
	}
}

// ScrollToIndex puts index at the top of the list where possible.
func (l *VirtualList[T]) ScrollToIndex(index int) {
	if l == nil {
		return
	}
	l.syncCount()
	l.viewport.ScrollToIndex(index)
}

// ScrollBy scrolls dy items. dx is ignored.
func (l *VirtualList[T]) ScrollBy(dx, dy int) {
	if l == nil {
		return
	}
	l.viewport.ScrollBy(dy * l.viewport.Layout().ItemHeight)
}

// ScrollTo scrolls item y to the top. x is ignored.
func (l *VirtualList[T]) ScrollTo(x, y int) {
	l.ScrollToIndex(y)
}

// PageBy scrolls by whole viewport heights.
func (l *VirtualList[T]) PageBy(pages int) {
	if l == nil {
		return
	}
	l.viewport.ScrollBy(pages * max(l.viewport.State().Height, 1))
}

// ScrollToStart scrolls to the first item.
func (l *VirtualList[T]) ScrollToStart() {
	if l == nil {
		return
	}
	l.viewport.ScrollToTop()
}

// ScrollToEnd scrolls to the last item.
func (l *VirtualList[T]) ScrollToEnd() {
	if l == nil {
		return
	}
	l.syncCount()
	l.viewport.ScrollToBottom()
}

// Measure asks for the full content height, bounded by constraints.
func (l *VirtualList[T]) Measure(c runtime.Constraints) runtime.Size {
	content := 0
	if l.adapter != nil {
		content = max(l.adapter.Count(), 0) * l.viewport.Layout().ItemHeight
	}
	return c.Constrain(runtime.Size{Width: c.MaxWidth, Height: content})
}

// Layout stores bounds and resizes the viewport. Adapters that wrap to
// the list width are told the new width before the count is re-read.
func (l *VirtualList[T]) Layout(bounds runtime.Rect) {
	l.Base.Layout(bounds)
	l.viewport.SetHeight(bounds.Height)
	if ws, ok := l.adapter.(WidthSetter); ok && bounds.Width > 0 {
		width := bounds.Width
		if l.scrollbar != nil && l.scrollbar.Policy != scroll.ScrollNever {
			width--
		}
		ws.SetWidth(max(width, 1))
		l.syncCount()
	}
}

// Render draws the items in the current window.
func (l *VirtualList[T]) Render(ctx runtime.RenderContext) {
	bounds := l.bounds
	if l.adapter == nil || bounds.Empty() {
		return
	}
	l.syncCount()
	area := ctx.Sub(bounds)
	area.Fill(bounds, ' ', l.style)

	content := l.viewport.ContentHeight()
	listBounds := bounds
	showBar := l.scrollbar != nil && l.scrollbar.Visible(content, bounds.Height) && bounds.Width > 1
	if showBar {
		listBounds.Width--
	}
	rows := area.Sub(listBounds)

	win := l.viewport.Window()
	l.window.Set(win)
	offset := l.viewport.State().ScrollOffset
	height := l.viewport.Layout().ItemHeight
	for i := win.Start; i < win.End; i++ {
		block := runtime.Rect{
			X:      listBounds.X,
			Y:      listBounds.Y + i*height - offset,
			Width:  listBounds.Width,
			Height: height,
		}
		item := rows.Sub(block)
		if !item.Visible() {
			continue
		}
		selected := i == l.selected && l.focused
		if selected {
			item.Fill(block, ' ', l.selectedStyle)
		}
		l.adapter.Render(l.adapter.Item(i), i, selected, item)
	}

	if showBar {
		l.renderScrollbar(area, bounds, content, offset)
	}
}

func (l *VirtualList[T]) renderScrollbar(ctx runtime.RenderContext, bounds runtime.Rect, content, offset int) {
	chars := l.scrollbar.Chars
	if chars == (scroll.ScrollbarChars{}) {
		chars = scroll.DefaultScrollbarChars()
	}
	x := bounds.X + bounds.Width - 1
	start, size := scroll.Thumb(content, bounds.Height, offset, bounds.Height, l.scrollbar.MinThumbSize)
	for y := 0; y < bounds.Height; y++ {
		if y >= start && y < start+size {
			ctx.Set(x, bounds.Y+y, chars.Thumb, l.scrollbar.Thumb)
			continue
		}
		ctx.Set(x, bounds.Y+y, chars.Track, l.scrollbar.Track)
	}
}

// HandleMessage moves the selection with the keyboard and scrolls with
// the mouse wheel. Enter emits runtime.Activated.
func (l *VirtualList[T]) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if l == nil || l.adapter == nil {
		return runtime.Unhandled()
	}
	switch m := msg.(type) {
	case runtime.MouseMsg:
		return l.handleMouse(m)
	case runtime.KeyMsg:
		if !l.focused {
			return runtime.Unhandled()
		}
		return l.handleKey(m)
	}
	return runtime.Unhandled()
}

func (l *VirtualList[T]) handleKey(key runtime.KeyMsg) runtime.HandleResult {
	count := l.adapter.Count()
	if count <= 0 {
		return runtime.Unhandled()
	}
	page := max(l.viewport.State().Height/l.viewport.Layout().ItemHeight, 1)
	switch key.Key {
	case terminal.KeyUp:
		l.SetSelected(l.selected - 1)
	case terminal.KeyDown:
		l.SetSelected(l.selected + 1)
	case terminal.KeyPageUp:
		l.SetSelected(l.selected - page)
	case terminal.KeyPageDown:
		l.SetSelected(l.selected + page)
	case terminal.KeyHome:
		l.SetSelected(0)
	case terminal.KeyEnd:
		l.SetSelected(count - 1)
	case terminal.KeyEnter:
		item := l.adapter.Item(l.selected)
		if l.onActivate != nil {
			l.onActivate(l.selected, item)
		}
		return runtime.WithCommand(runtime.Activated{Index: l.selected, Item: item})
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

func (l *VirtualList[T]) handleMouse(m runtime.MouseMsg) runtime.HandleResult {
	if !l.bounds.Contains(m.X, m.Y) {
		return runtime.Unhandled()
	}
	switch m.Button {
	case terminal.MouseWheelUp:
		l.viewport.ScrollBy(-wheelRows)
	case terminal.MouseWheelDown:
		l.viewport.ScrollBy(wheelRows)
	case terminal.MouseLeft:
		if m.Action != terminal.MousePress {
			return runtime.Unhandled()
		}
		index, ok := l.viewport.IndexAt(m.Y - l.bounds.Y)
		if !ok {
			return runtime.Unhandled()
		}
		l.SetSelected(index)
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}

var _ scroll.Controller = (*VirtualList[any])(nil)
