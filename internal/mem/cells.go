package mem

// DefaultPageSize provides a default for Cells.PageSize.
const DefaultPageSize = 256

// Cells implements a sparse, paged memory of signed 64-bit cells addressed
// from 0. Every cell that was never stored reads as 0; stores past the end of
// allocated memory allocate just the pages they touch.
// Pages may not necessarily be the same size, but usually are in practice.
type Cells struct {
	PagedCore
	pages [][]int64
}

// Size returns an address one position higher than the last position in the
// last page allocated so far.
func (m *Cells) Size() int64 {
	if i := len(m.bases) - 1; i >= 0 {
		return m.bases[i] + int64(len(m.pages[i]))
	}
	return 0
}

// Load returns a single value from the given address.
// Unallocated pages are left unallocated, resulting in implicit 0 values.
// Returns an error if addr is negative or exceeds any Limit.
func (m *Cells) Load(addr int64) (int64, error) {
	if err := m.check(addr, addr+1, "load"); err != nil {
		return 0, err
	}

	if len(m.pages) == 0 {
		return 0, nil
	}

	pageID := m.findPage(addr)
	base := m.bases[pageID]
	page := m.pages[pageID]
	if i := addr - base; 0 <= i && i < int64(len(page)) {
		return page[i], nil
	}

	return 0, nil
}

// LoadInto reads len(buf) cells from memory starting at addr.
// Skips any unallocated pages, zeroing the result buffer where encountered.
// Returns an error if the range is invalid; no partial load is done.
func (m *Cells) LoadInto(addr int64, buf []int64) error {
	if len(buf) == 0 {
		return nil
	}

	end := addr + int64(len(buf))
	if err := m.check(addr, end, "load"); err != nil {
		return err
	}

	for pageID := m.findPage(addr); addr < end && pageID < len(m.bases); pageID++ {
		base := m.bases[pageID]
		if base > end {
			break
		}

		if skip := base - addr; skip > 0 {
			if skip >= int64(len(buf)) {
				break
			}
			addr += skip
			for i := range buf[:skip] {
				buf[i] = 0
			}
			buf = buf[skip:]
		}

		page := m.pages[pageID]
		if skip := addr - base; skip > 0 {
			if skip >= int64(len(page)) {
				continue
			}
			page = page[skip:]
		}

		n := copy(buf, page)
		buf = buf[n:]
		addr += int64(n)
	}

	for i := range buf {
		buf[i] = 0
	}

	return nil
}

// Stor stores any values at addr, allocating pages if necessary.
// Returns an error if the range is invalid; no partial store is done.
func (m *Cells) Stor(addr int64, values ...int64) error {
	if len(values) == 0 {
		return nil
	}

	end := addr + int64(len(values))
	if err := m.check(addr, end, "stor"); err != nil {
		return err
	}

	if m.PageSize <= 0 {
		m.PageSize = DefaultPageSize
	}

	for pageID := m.findPage(addr); addr < end; pageID++ {
		base, size, page := m.allocPage(pageID, addr)
		if skip := addr - base; skip > 0 {
			if skip >= size {
				continue
			}
			page = page[skip:]
		}
		n := copy(page, values)
		values = values[n:]
		addr += int64(n)
	}

	return nil
}

// Reset discards all pages, retaining PageSize and Limit.
func (m *Cells) Reset() {
	m.bases = m.bases[:0]
	m.sizes = m.sizes[:0]
	m.pages = m.pages[:0]
}

func (m *Cells) allocPage(pageID int, addr int64) (base, size int64, page []int64) {
	base, size, isNew := m.PagedCore.allocPage(pageID, addr)
	if isNew {
		page = make([]int64, size)
		if pageID == len(m.pages) {
			m.pages = append(m.pages, page)
		} else {
			m.pages = append(m.pages, nil)
			copy(m.pages[pageID+1:], m.pages[pageID:])
			m.pages[pageID] = page
		}
	} else {
		page = m.pages[pageID]
	}
	return base, size, page
}
