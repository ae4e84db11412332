package backend

// RowWriter is implemented by backends that accept a run of cells at once.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}

// RectWriter is implemented by backends that accept a whole block of cells.
// The cells slice is row-major with width*height entries.
type RectWriter interface {
	SetRect(x, y, width, height int, cells []Cell)
}
