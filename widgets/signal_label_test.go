package widgets

import (
	"testing"

	"github.com/odvcencio/furry-list/runtime"
	"github.com/odvcencio/furry-list/state"
)

func TestSignalLabelFollowsSourceWhileMounted(t *testing.T) {
	sig := state.NewSignal("start")
	queue := state.NewQueue()
	label := NewSignalLabel(sig, queue)

	label.Mount()
	if got := label.Text(); got != "start" {
		t.Fatalf("text = %q, want start", got)
	}

	sig.Set("next")
	if got := label.Text(); got != "start" {
		t.Fatalf("text before flush = %q, want start", got)
	}
	if n := queue.Flush(); n != 1 {
		t.Fatalf("flushed %d callbacks, want 1", n)
	}
	if got := label.Text(); got != "next" {
		t.Fatalf("text after flush = %q, want next", got)
	}

	label.Unmount()
	sig.Set("final")
	if n := queue.Flush(); n != 0 {
		t.Fatalf("flushed %d callbacks after unmount, want 0", n)
	}
	if got := label.Text(); got != "next" {
		t.Fatalf("text after unmount = %q, want next", got)
	}
}

func TestSignalLabelRendersAligned(t *testing.T) {
	buf := runtime.NewBuffer(10, 1)
	label := NewSignalLabel(state.NewSignal("ok"), nil)
	label.SetAlignment(AlignRight)
	label.Layout(runtime.Rect{Width: 10, Height: 1})
	label.Render(runtime.NewRenderContext(buf))

	if got := buf.Get(8, 0).Rune; got != 'o' {
		t.Fatalf("cell 8 = %q, want 'o'", got)
	}
	if got := buf.Get(9, 0).Rune; got != 'k' {
		t.Fatalf("cell 9 = %q, want 'k'", got)
	}
	if got := buf.Get(0, 0).Rune; got != ' ' {
		t.Fatalf("cell 0 = %q, want blank", got)
	}
}

func TestSignalLabelTruncates(t *testing.T) {
	buf := runtime.NewBuffer(5, 1)
	label := NewSignalLabel(state.NewSignal("abcdefgh"), nil)
	label.Layout(runtime.Rect{Width: 5, Height: 1})
	label.Render(runtime.NewRenderContext(buf))

	if got := buf.Get(0, 0).Rune; got != 'a' {
		t.Fatalf("cell 0 = %q, want 'a'", got)
	}
	if got := buf.Get(4, 0).Rune; got != '…' {
		t.Fatalf("cell 4 = %q, want ellipsis", got)
	}
}
