package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-list/backend"
)

// Cell represents a single character cell in the buffer.
type Cell = backend.Cell

// Buffer is the frame widgets render into before it is flushed to the
// backend. It tracks which cells changed since the last flush.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirtyStamp []uint32 // generation marker per cell
	dirtyGen   uint32
	dirtyAll   bool
	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	w = max(w, 0)
	h = max(h, 0)
	return &Buffer{
		cells:      make([]Cell, w*h),
		dirtyStamp: make([]uint32, w*h),
		dirtyGen:   1,
		width:      w,
		height:     h,
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the buffer dimensions, keeping the overlapping content.
func (b *Buffer) Resize(w, h int) {
	w = max(w, 0)
	h = max(h, 0)
	if w == b.width && h == b.height {
		return
	}
	cells := make([]Cell, w*h)
	minW := min(w, b.width)
	for y := 0; y < min(h, b.height); y++ {
		copy(cells[y*w:y*w+minW], b.cells[y*b.width:y*b.width+minW])
	}
	b.cells = cells
	b.dirtyStamp = make([]uint32, w*h)
	b.dirtyGen = 1
	b.width = w
	b.height = h
	b.MarkAllDirty()
}

// Clear fills the buffer with spaces in the default style.
func (b *Buffer) Clear() {
	b.Fill(Rect{Width: b.width, Height: b.height}, ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank cell when out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with style at (x, y).
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.put(x, y, Cell{Rune: r, Style: s})
}

// SetString writes s starting at (x, y). Wide runes take two cells and
// zero-width runes are dropped. It returns the columns advanced.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	return b.setStringClipped(x, y, s, style, 0, b.width)
}

func (b *Buffer) setStringClipped(x, y int, s string, style backend.Style, minX, maxX int) int {
	minX = max(minX, 0)
	maxX = min(maxX, b.width)
	px := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if y >= 0 && y < b.height && px >= minX && px+w <= maxX {
			b.put(px, y, Cell{Rune: r, Style: style})
			if w == 2 {
				b.put(px+1, y, Cell{Rune: 0, Style: style})
			}
		}
		px += w
	}
	return px - x
}

// Fill fills r, clipped to the buffer, with ch.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	x0 := max(0, r.X)
	y0 := max(0, r.Y)
	x1 := min(b.width, r.X+r.Width)
	y1 := min(b.height, r.Y+r.Height)
	cell := Cell{Rune: ch, Style: s}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.put(x, y, cell)
		}
	}
}

// Cells returns the row-major cell slice.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

func (b *Buffer) put(x, y int, cell Cell) {
	idx := y*b.width + x
	if b.cells[idx] == cell {
		return
	}
	b.cells[idx] = cell
	b.markCellDirty(x, y, idx)
}

func (b *Buffer) markCellDirty(x, y, idx int) {
	if b.dirtyAll || b.dirtyStamp[idx] == b.dirtyGen {
		return
	}
	b.dirtyStamp[idx] = b.dirtyGen
	b.dirtyCount++
	if b.dirtyCount == 1 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		return
	}
	x0 := min(b.dirtyRect.X, x)
	y0 := min(b.dirtyRect.Y, y)
	x1 := max(b.dirtyRect.X+b.dirtyRect.Width, x+1)
	y1 := max(b.dirtyRect.Y+b.dirtyRect.Height, y+1)
	b.dirtyRect = Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkAllDirty forces the next flush to redraw every cell.
func (b *Buffer) MarkAllDirty() {
	b.dirtyAll = true
	b.dirtyCount = b.width * b.height
	b.dirtyRect = Rect{Width: b.width, Height: b.height}
}

// ClearDirty resets dirty tracking after a flush.
func (b *Buffer) ClearDirty() {
	b.dirtyAll = false
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
	b.dirtyGen++
	if b.dirtyGen == 0 {
		clear(b.dirtyStamp)
		b.dirtyGen = 1
	}
}

// IsDirty reports whether any cell changed.
func (b *Buffer) IsDirty() bool {
	return b.dirtyAll || b.dirtyCount > 0
}

// DirtyCount returns the number of changed cells.
func (b *Buffer) DirtyCount() int {
	if b.dirtyAll {
		return b.width * b.height
	}
	return b.dirtyCount
}

// DirtyRect returns the bounding box of changed cells.
func (b *Buffer) DirtyRect() Rect {
	if b.dirtyAll {
		return Rect{Width: b.width, Height: b.height}
	}
	return b.dirtyRect
}

// IsCellDirty reports whether (x, y) changed.
func (b *Buffer) IsCellDirty(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.dirtyAll || b.dirtyStamp[y*b.width+x] == b.dirtyGen
}

// ForEachDirtySpan calls fn for each run of changed cells in a row.
func (b *Buffer) ForEachDirtySpan(fn func(y, startX, endX int)) {
	if b.dirtyAll {
		for y := 0; y < b.height; y++ {
			fn(y, 0, b.width)
		}
		return
	}
	if b.dirtyCount == 0 {
		return
	}
	rect := b.dirtyRect
	xEnd := min(b.width, rect.X+rect.Width)
	yEnd := min(b.height, rect.Y+rect.Height)
	for y := rect.Y; y < yEnd; y++ {
		row := y * b.width
		x := rect.X
		for x < xEnd {
			if b.dirtyStamp[row+x] != b.dirtyGen {
				x++
				continue
			}
			start := x
			for x < xEnd && b.dirtyStamp[row+x] == b.dirtyGen {
				x++
			}
			fn(y, start, x)
		}
	}
}

func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}
