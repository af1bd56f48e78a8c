package dat

// AlphabetMap maps BMP code units (0..65535) to dense alphabet IDs.
// Only the 256-entry pages for high bytes actually used by a word list are
// allocated; for Latin word lists this is a single page.
//
//   - top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - pages is a flat array of NumPages*256 entries.
type AlphabetMap struct {
	top   [256]uint16
	pages []uint16
	size  int // number of code units with a non-zero dense ID
}

// Dense returns the dense alphabet ID for a BMP code unit,
// or 0 if it is not part of the alphabet.
func (m *AlphabetMap) Dense(bmp uint16) uint16 {
	pi := m.top[bmp>>8]
	if pi == 0 {
		return 0
	}
	return m.pages[int(pi-1)<<8+int(bmp&0xFF)]
}

// Set maps bmp to dense. A dense ID of 0 removes bmp from the alphabet.
func (m *AlphabetMap) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := m.top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		m.pages = append(m.pages, make([]uint16, 256)...)
		pi = uint16(len(m.pages) >> 8)
		m.top[hi] = pi
	}
	slot := &m.pages[int(pi-1)<<8+int(bmp&0xFF)]
	switch {
	case *slot == 0 && dense != 0:
		m.size++
	case *slot != 0 && dense == 0:
		m.size--
	}
	*slot = dense
}

// Size returns the number of code units in the alphabet.
func (m *AlphabetMap) Size() int { return m.size }

// NumPages returns the number of allocated pages.
func (m *AlphabetMap) NumPages() int { return len(m.pages) >> 8 }
