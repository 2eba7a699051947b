package mem

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAddress is matched by any AddrError.
var ErrInvalidAddress = errors.New("invalid address")

// PagedCore provides functionality common to any paged memory model.
type PagedCore struct {
	// PageSize specifies the length for newly allocated pages.
	PageSize int64

	// Limit specifies a limit, past which any store or load should result in
	// an error; 0 means unlimited.
	Limit int64

	bases []int64
	sizes []int64
}

// AddrError indicates a load or store at a negative address, or one whose
// range overflows the address space.
type AddrError struct {
	Addr int64
	Op   string
}

func (ae AddrError) Error() string {
	return fmt.Sprintf("invalid %v address %v", ae.Op, ae.Addr)
}

// Unwrap returns ErrInvalidAddress.
func (ae AddrError) Unwrap() error { return ErrInvalidAddress }

// LimitError indicates that a memory operation, like load or store, exceeded a limit.
type LimitError struct {
	Addr int64
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v", lim.Op, lim.Addr)
}

func (m *PagedCore) findPage(addr int64) int {
	i, j := 0, len(m.bases)
	for i < j {
		h := (i+j)>>1 + 1
		if h < len(m.bases) && m.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

func (m *PagedCore) allocPage(pageID int, addr int64) (base, size int64, isNew bool) {
	if pageID == len(m.bases) {
		base = addr / m.PageSize * m.PageSize
		size = m.PageSize
		if i := len(m.bases) - 1; i >= 0 {
			lastEnd := m.bases[i] + m.sizes[i]
			if base < lastEnd {
				size -= lastEnd - base
				base = lastEnd
			}
		}
		size = clampSize(base, size)
		m.bases = append(m.bases, base)
		m.sizes = append(m.sizes, size)
		return base, size, true
	}

	base = m.bases[pageID]
	if addr < base {
		size = m.PageSize
		nextBase := base
		base = addr / m.PageSize * m.PageSize
		if gapSize := nextBase - base; size > gapSize {
			size = gapSize
		}
		size = clampSize(base, size)
		m.bases = append(m.bases, 0)
		m.sizes = append(m.sizes, 0)
		copy(m.bases[pageID+1:], m.bases[pageID:])
		copy(m.sizes[pageID+1:], m.sizes[pageID:])
		m.bases[pageID] = base
		m.sizes[pageID] = size
		return base, size, true
	}

	return base, m.sizes[pageID], false
}

// clampSize keeps a page from extending past the largest int64 address.
func clampSize(base, size int64) int64 {
	if room := math.MaxInt64 - base; size > room {
		return room
	}
	return size
}

// check validates the address range [addr, end); a range whose end is not
// representable, reaching past the largest int64, is invalid.
func (m *PagedCore) check(addr, end int64, op string) error {
	if addr < 0 || end < addr {
		return AddrError{addr, op}
	}
	if maxSize := m.Limit; maxSize != 0 && end > maxSize {
		return LimitError{end, op}
	}
	return nil
}
