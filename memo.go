package calgrid

// CellKey is the per-cell comparison tuple. Two renders of a cell with the
// same key produce the same pixels at the same position, so a host can skip
// redrawing it.
type CellKey struct {
	Day            int
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	MarkText       string
}

// CellMemo remembers the keys of the previous frame and reports which
// cells changed. It replaces "skip re-render if props are equal" with an
// explicit, inspectable cache.
//
// The zero CellMemo is ready to use; its first Update reports every cell.
type CellMemo struct {
	keys  []CellKey
	valid bool
}

// Update stores the keys of frames and returns the indices whose key
// differs from the previous call. A change in cell count, or a prior
// Reset, marks every cell dirty.
func (m *CellMemo) Update(frames []CellFrame) []int {
	full := !m.valid || len(frames) != len(m.keys)
	if full {
		m.keys = make([]CellKey, len(frames))
	}
	var dirty []int
	for _, f := range frames {
		if full || m.keys[f.Index] != f.Key {
			dirty = append(dirty, f.Index)
		}
		m.keys[f.Index] = f.Key
	}
	m.valid = true
	return dirty
}

// Key returns the remembered key of cell i.
func (m *CellMemo) Key(i int) (CellKey, bool) {
	if !m.valid || i < 0 || i >= len(m.keys) {
		return CellKey{}, false
	}
	return m.keys[i], true
}

// Reset forgets every key; the next Update reports all cells. Call it when
// geometry changes (viewport width, fonts), which the key does not cover.
func (m *CellMemo) Reset() {
	m.keys = nil
	m.valid = false
}
