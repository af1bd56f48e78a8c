package dict

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/letterseg/dict/dat"
)

// datBuildNode is a node of the pointer-based trie used while words are
// being inserted. Freeze compiles the build trie into a double array.
type datBuildNode struct {
	state    uint32
	terminal bool
	children map[uint16]*datBuildNode
}

type datBackend struct {
	frozen      bool
	root        *datBuildNode
	runeToDense map[rune]uint16
	nextDenseID uint16
	compiled    *dat.DAT
}

func newDATBackend() *datBackend {
	return &datBackend{
		root:        &datBuildNode{children: make(map[uint16]*datBuildNode)},
		runeToDense: make(map[rune]uint16),
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

// EncodeKey maps s to dense alphabet IDs. Before freezing, unseen runes are
// added to the alphabet. After freezing, unseen runes map to 0, which never
// matches. Runes outside the BMP are not supported.
func (db *datBackend) EncodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, utf8.RuneCountInString(s))
	if db.frozen {
		for _, r := range s {
			if r > 0xFFFF {
				key = append(key, 0)
				continue
			}
			key = append(key, db.compiled.Dense(uint16(r)))
		}
		return key, true
	}
	for _, r := range s {
		if r > 0xFFFF {
			return nil, false
		}
		dense, ok := db.runeToDense[r]
		if !ok {
			if db.nextDenseID == ^uint16(0) {
				return nil, false
			}
			db.nextDenseID++
			dense = db.nextDenseID
			db.runeToDense[r] = dense
			db.compiled.Alphabet.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, true
}

func (db *datBackend) Insert(key []uint16) bool {
	if db.frozen || len(key) == 0 {
		return false
	}
	n := db.root
	for _, c := range key {
		if c == 0 {
			return false
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{children: make(map[uint16]*datBuildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	return true
}

func (db *datBackend) Contains(key []uint16) bool {
	if db.frozen {
		return db.compiled.Contains(key)
	}
	if len(key) == 0 {
		return false
	}
	n := db.root
	for _, c := range key {
		if n = n.children[c]; n == nil {
			return false
		}
	}
	return n.terminal
}

// Freeze lays out the build trie breadth-first in a double array and drops
// the build structures.
func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = db.nextDenseID
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	db.root.state = d.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if n.terminal {
			d.Terminal.Set(int(n.state))
		}
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, labels)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.runeToDense = nil
	db.frozen = true
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findDATBase finds the smallest base for which all label slots are free.
func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() trieStats {
	stats := trieStats{
		Backend:    "dat",
		TotalSlots: db.compiled.NStates(),
		MaxStateID: int(db.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(db.compiled.Root)
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
