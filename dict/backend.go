package dict

// wordTrie is the internal backend abstraction for word-key storage.
//
// A backend is filled with Insert, then frozen. Contains may be called in
// either state.
type wordTrie interface {
	EncodeKey(s string) ([]uint16, bool)
	Insert(key []uint16) (added bool)
	Freeze()
	Contains(key []uint16) bool
	Stats() trieStats
}

type trieStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s trieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}
