// Package backend abstracts the terminal a runtime draws to.
package backend

import "github.com/odvcencio/furry-list/terminal"

// Backend is a cell-addressed terminal surface with an input stream.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, mainc rune, combc []rune, style Style)
	Show()
	HideCursor()
	// PollEvent blocks for the next event. It returns nil once the
	// backend has been finalized.
	PollEvent() terminal.Event
}

// Cell is one character cell.
type Cell struct {
	Rune  rune
	Style Style
}
