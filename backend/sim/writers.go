package sim

import "github.com/odvcencio/furry-list/backend"

// SetRow writes a run of cells on row y.
func (b *Backend) SetRow(y int, startX int, cells []backend.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return
	}
	for i, cell := range cells {
		x := startX + i
		if x < 0 || x >= b.width {
			continue
		}
		b.pending[y*b.width+x] = cell
	}
}

// SetRect writes a row-major block of width*height cells.
func (b *Backend) SetRect(x, y, width, height int, cells []backend.Cell) {
	if len(cells) < width*height {
		return
	}
	for row := 0; row < height; row++ {
		b.SetRow(y+row, x, cells[row*width:(row+1)*width])
	}
}

var (
	_ backend.RowWriter  = (*Backend)(nil)
	_ backend.RectWriter = (*Backend)(nil)
)
