package scroll

// FixedHeightIndex maps between scroll offsets and rows of uniform height
// over a list whose length may change between calls.
type FixedHeightIndex struct {
	Layout Layout
	Count  func() int
}

// NewFixedHeightIndex validates the layout and returns an index over count.
func NewFixedHeightIndex(layout Layout, count func() int) (FixedHeightIndex, error) {
	if err := layout.Validate(); err != nil {
		return FixedHeightIndex{}, err
	}
	return FixedHeightIndex{Layout: layout, Count: count}, nil
}

// TotalHeight returns the height of all rows.
func (f FixedHeightIndex) TotalHeight() int {
	height := f.Layout.ItemHeight
	if height <= 0 {
		return 0
	}
	return height * f.count()
}

// IndexForOffset returns the row containing offset, clamped to the last row.
func (f FixedHeightIndex) IndexForOffset(offset int) int {
	height := f.Layout.ItemHeight
	if height <= 0 || offset <= 0 {
		return 0
	}
	index := offset / height
	maxIndex := max(f.count()-1, 0)
	return min(index, maxIndex)
}

// OffsetForIndex returns the top offset of row index, clamped to the last row.
func (f FixedHeightIndex) OffsetForIndex(index int) int {
	count := f.count()
	if count <= 0 {
		return 0
	}
	return f.Layout.ScrollToIndex(min(index, count-1))
}

// Window computes the visible window against the current row count.
func (f FixedHeightIndex) Window(vs ViewportState) (Window, error) {
	return f.Layout.Window(vs, f.count())
}

func (f FixedHeightIndex) count() int {
	if f.Count == nil {
		return 0
	}
	return max(f.Count(), 0)
}
