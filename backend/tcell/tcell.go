// Package tcell implements backend.Backend on a real terminal.
package tcell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-list/backend"
	"github.com/odvcencio/furry-list/terminal"
)

// Backend draws to a tcell screen.
type Backend struct {
	screen tcell.Screen
	mouse  bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithMouse enables mouse reporting, including the wheel.
func WithMouse() Option {
	return func(b *Backend) {
		b.mouse = true
	}
}

// New creates a backend for the controlling terminal.
func New(opts ...Option) (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return NewWithScreen(screen, opts...), nil
}

// NewWithScreen wraps an existing screen, such as tcell.NewSimulationScreen.
func NewWithScreen(screen tcell.Screen, opts ...Option) *Backend {
	b := &Backend{screen: screen}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init initializes the terminal.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	if b.mouse {
		b.screen.EnableMouse()
	}
	b.screen.EnablePaste()
	b.screen.Clear()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal size in cells.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// SetContent writes one cell.
func (b *Backend) SetContent(x, y int, mainc rune, combc []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, combc, ConvertStyle(style))
}

// Show flushes pending cells.
func (b *Backend) Show() {
	b.screen.Show()
}

// HideCursor hides the text cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// PollEvent waits for the next supported event.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := ConvertEvent(ev); converted != nil {
			return converted
		}
	}
}

// ConvertStyle maps a backend style onto a tcell style.
func ConvertStyle(style backend.Style) tcell.Style {
	fg, bg, attrs := style.Decompose()
	return tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg)).
		Bold(attrs&backend.AttrBold != 0).
		Italic(attrs&backend.AttrItalic != 0).
		Underline(attrs&backend.AttrUnderline != 0).
		Dim(attrs&backend.AttrDim != 0).
		Reverse(attrs&backend.AttrReverse != 0)
}

func convertColor(c backend.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.IsRGB():
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.PaletteColor(int(c.Index()))
	}
}

var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyRune:       terminal.KeyRune,
}

// ConvertEvent maps a tcell event. Unsupported events return nil.
func ConvertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, ok := keyMap[e.Key()]
		if !ok {
			return nil
		}
		mods := e.Modifiers()
		out := terminal.KeyEvent{
			Key:   key,
			Alt:   mods&tcell.ModAlt != 0,
			Ctrl:  mods&tcell.ModCtrl != 0,
			Shift: mods&tcell.ModShift != 0,
		}
		if key == terminal.KeyRune {
			out.Rune = e.Rune()
		}
		return out
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		out := terminal.MouseEvent{
			X:      x,
			Y:      y,
			Action: terminal.MousePress,
			Alt:    mods&tcell.ModAlt != 0,
			Ctrl:   mods&tcell.ModCtrl != 0,
			Shift:  mods&tcell.ModShift != 0,
		}
		buttons := e.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			out.Button = terminal.MouseWheelUp
		case buttons&tcell.WheelDown != 0:
			out.Button = terminal.MouseWheelDown
		case buttons&tcell.Button1 != 0:
			out.Button = terminal.MouseLeft
		case buttons&tcell.Button3 != 0:
			out.Button = terminal.MouseMiddle
		case buttons&tcell.Button2 != 0:
			out.Button = terminal.MouseRight
		default:
			out.Button = terminal.MouseNone
			out.Action = terminal.MouseMove
		}
		return out
	}
	return nil
}

var _ backend.Backend = (*Backend)(nil)
