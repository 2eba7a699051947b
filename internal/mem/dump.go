package mem

// CellsDump exposes page layout for tests and diagnostic dumps.
type CellsDump struct {
	Bases []int64
	Sizes []int64
	Pages [][]int64
}

// Dump returns the current page layout; the returned slices alias memory.
func (m *Cells) Dump() (d CellsDump) {
	d.Bases = m.bases
	d.Sizes = m.sizes
	d.Pages = m.pages
	return d
}
