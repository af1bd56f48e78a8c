package dat

// Bitset is a set of trie states, directly indexed by state number.
// It grows on demand.
type Bitset struct {
	words []uint64
	count int
}

// Set adds state i to the set.
func (b *Bitset) Set(i int) {
	if i < 0 {
		return
	}
	w := i >> 6
	if w >= len(b.words) {
		b.words = append(b.words, make([]uint64, w+1-len(b.words))...)
	}
	mask := uint64(1) << (uint(i) & 63)
	if b.words[w]&mask == 0 {
		b.words[w] |= mask
		b.count++
	}
}

// Has reports whether state i is in the set.
func (b *Bitset) Has(i int) bool {
	if i < 0 || i>>6 >= len(b.words) {
		return false
	}
	return b.words[i>>6]&(uint64(1)<<(uint(i)&63)) != 0
}

// Count returns the number of states in the set.
func (b *Bitset) Count() int { return b.count }
