package dat

// DAT is a frozen double-array trie over a set of words.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// A state is the end of a word if it is flagged in Terminal.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Terminal flags states which complete a word.
	Terminal Bitset

	// Alphabet maps BMP code units to dense IDs [0..Sigma].
	Alphabet AlphabetMap
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Walk follows key from the root and returns the state reached.
// It returns 0 if key leaves the trie.
func (d *DAT) Walk(key []uint16) uint32 {
	state := d.Root
	for _, c := range key {
		if c == 0 {
			return 0
		}
		next, ok := d.Transition(state, c)
		if !ok {
			return 0
		}
		state = next
	}
	return state
}

// Contains reports whether key is a complete word.
func (d *DAT) Contains(key []uint16) bool {
	if len(key) == 0 {
		return false
	}
	state := d.Walk(key)
	return state != 0 && d.Terminal.Has(int(state))
}

// Dense maps a BMP code unit to a dense alphabet ID.
// Returns 0 if the code unit is not in the alphabet.
func (d *DAT) Dense(bmp uint16) uint16 { return d.Alphabet.Dense(bmp) }
