package runtime

import (
	"testing"

	"github.com/odvcencio/furry-list/backend"
)

func TestBufferDirtyTracking(t *testing.T) {
	buf := NewBuffer(10, 4)
	buf.ClearDirty()

	buf.Set(2, 1, 'a', backend.DefaultStyle())
	buf.Set(5, 3, 'b', backend.DefaultStyle())
	if got := buf.DirtyCount(); got != 2 {
		t.Fatalf("dirty count = %d, want 2", got)
	}
	if got := buf.DirtyRect(); got != (Rect{X: 2, Y: 1, Width: 4, Height: 3}) {
		t.Fatalf("dirty rect = %+v", got)
	}

	buf.Set(2, 1, 'a', backend.DefaultStyle())
	if got := buf.DirtyCount(); got != 2 {
		t.Fatalf("dirty count after identical write = %d, want 2", got)
	}

	var spans [][3]int
	buf.ForEachDirtySpan(func(y, startX, endX int) {
		spans = append(spans, [3]int{y, startX, endX})
	})
	if len(spans) != 2 || spans[0] != [3]int{1, 2, 3} || spans[1] != [3]int{3, 5, 6} {
		t.Fatalf("spans = %v", spans)
	}

	buf.ClearDirty()
	if buf.IsDirty() || buf.IsCellDirty(2, 1) {
		t.Fatal("expected clean buffer after ClearDirty")
	}
}

func TestBufferSetStringWideRunes(t *testing.T) {
	buf := NewBuffer(6, 1)
	advanced := buf.SetString(0, 0, "a界b", backend.DefaultStyle())
	if advanced != 4 {
		t.Fatalf("advanced = %d, want 4", advanced)
	}
	if got := buf.Get(1, 0).Rune; got != '界' {
		t.Fatalf("cell 1 = %q", got)
	}
	if got := buf.Get(3, 0).Rune; got != 'b' {
		t.Fatalf("cell 3 = %q", got)
	}

	buf.Clear()
	buf.SetString(5, 0, "界", backend.DefaultStyle())
	if got := buf.Get(5, 0).Rune; got != ' ' {
		t.Fatalf("wide rune at edge = %q, want it dropped", got)
	}
}

func TestBufferResizeKeepsContent(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.Set(1, 1, 'x', backend.DefaultStyle())
	buf.Resize(8, 3)
	if got := buf.Get(1, 1).Rune; got != 'x' {
		t.Fatalf("cell after resize = %q", got)
	}
	if got := buf.DirtyCount(); got != 24 {
		t.Fatalf("dirty count after resize = %d, want 24", got)
	}
}

func TestRenderContextClips(t *testing.T) {
	buf := NewBuffer(10, 5)
	root := NewRenderContext(buf)
	list := root.Sub(Rect{X: 2, Y: 1, Width: 5, Height: 2})

	// A row starting above the list is partially visible.
	row := list.Sub(Rect{X: 2, Y: 0, Width: 5, Height: 2})
	if !row.Visible() {
		t.Fatal("expected overlapping row to be visible")
	}
	row.Fill(row.Bounds, '#', backend.DefaultStyle())
	if got := buf.Get(2, 0).Rune; got == '#' {
		t.Fatal("expected row to be clipped above the list")
	}
	if got := buf.Get(2, 1).Rune; got != '#' {
		t.Fatalf("cell inside clip = %q, want #", got)
	}

	list.SetString(4, 2, "abcdefgh", backend.DefaultStyle())
	if got := buf.Get(6, 2).Rune; got != 'c' {
		t.Fatalf("cell 6 = %q, want c", got)
	}
	if got := buf.Get(7, 2).Rune; got == 'd' {
		t.Fatal("expected text to be clipped at the right edge")
	}

	hidden := list.Sub(Rect{X: 2, Y: 4, Width: 5, Height: 1})
	if hidden.Visible() {
		t.Fatal("expected row below the list to be hidden")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	if got := a.Intersect(Rect{X: 2, Y: 3, Width: 10, Height: 10}); got != (Rect{X: 2, Y: 3, Width: 2, Height: 1}) {
		t.Fatalf("intersect = %+v", got)
	}
	if got := a.Intersect(Rect{X: 5, Y: 5, Width: 1, Height: 1}); !got.Empty() {
		t.Fatalf("disjoint intersect = %+v", got)
	}
}
