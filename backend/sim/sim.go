// Package sim provides an in-memory backend for tests and scripted runs.
package sim

import (
	"strings"
	"sync"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/terminal"
)

// Backend records drawn cells and replays injected events.
type Backend struct {
	mu      sync.Mutex
	width   int
	height  int
	pending []backend.Cell
	shown   []backend.Cell
	shows   int
	events  chan terminal.Event
	done    chan struct{}
	closed  bool
}

// New creates a simulated terminal of the given size.
func New(width, height int) *Backend {
	b := &Backend{
		events: make(chan terminal.Event, 256),
		done:   make(chan struct{}),
	}
	b.resize(width, height)
	return b
}

// Init prepares the backend for a new run.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		b.done = make(chan struct{})
		b.closed = false
	}
	return nil
}

// Fini stops PollEvent.
func (b *Backend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		close(b.done)
		b.closed = true
	}
}

// Size returns the simulated terminal size.
func (b *Backend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// SetContent writes a cell to the pending frame.
func (b *Backend) SetContent(x, y int, mainc rune, combc []rune, style backend.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pending[y*b.width+x] = backend.Cell{Rune: mainc, Style: style}
}

// Show publishes the pending frame.
func (b *Backend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	copy(b.shown, b.pending)
	b.shows++
}

// HideCursor is a no-op.
func (b *Backend) HideCursor() {}

// PollEvent returns the next injected event, or nil after Fini.
func (b *Backend) PollEvent() terminal.Event {
	b.mu.Lock()
	done := b.done
	b.mu.Unlock()
	select {
	case ev := <-b.events:
		return ev
	case <-done:
		return nil
	}
}

// InjectEvent queues an input event.
func (b *Backend) InjectEvent(ev terminal.Event) {
	if ev == nil {
		return
	}
	b.events <- ev
}

// InjectKey queues a key press.
func (b *Backend) InjectKey(key terminal.Key, r rune) {
	b.InjectEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectKeyRune queues a printable key press.
func (b *Backend) InjectKeyRune(r rune) {
	b.InjectKey(terminal.KeyRune, r)
}

// InjectMouse queues a mouse event.
func (b *Backend) InjectMouse(x, y int, button terminal.MouseButton) {
	b.InjectEvent(terminal.MouseEvent{X: x, Y: y, Button: button, Action: terminal.MousePress})
}

// InjectResize resizes the terminal and queues a resize event.
func (b *Backend) InjectResize(width, height int) {
	b.mu.Lock()
	b.resize(width, height)
	b.mu.Unlock()
	b.InjectEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// ShowCount returns the number of frames shown.
func (b *Backend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// CellAt returns a shown cell.
func (b *Backend) CellAt(x, y int) backend.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return backend.Cell{}
	}
	return b.shown[y*b.width+x]
}

// Capture returns the shown frame as text, one line per row, with
// trailing spaces removed.
func (b *Backend) Capture() string {
	return strings.Join(b.lines(), "\n")
}

// ContainsText reports whether text appears on a single row.
func (b *Backend) ContainsText(text string) bool {
	x, _ := b.FindText(text)
	return x >= 0
}

// FindText returns the cell position of text, or (-1, -1).
func (b *Backend) FindText(text string) (x, y int) {
	if text == "" {
		return -1, -1
	}
	for row, line := range b.lines() {
		if idx := strings.Index(line, text); idx >= 0 {
			return len([]rune(line[:idx])), row
		}
	}
	return -1, -1
}

func (b *Backend) lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			r := b.shown[y*b.width+x].Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

func (b *Backend) resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	b.width = width
	b.height = height
	b.pending = make([]backend.Cell, width*height)
	b.shown = make([]backend.Cell, width*height)
}

var _ backend.Backend = (*Backend)(nil)
