package dat

import "testing"

func TestBitset(t *testing.T) {
	var b Bitset
	b.Set(3)
	b.Set(130)
	b.Set(3)
	if !b.Has(3) || !b.Has(130) {
		t.Fatalf("expected 3 and 130 to be set")
	}
	if b.Has(4) || b.Has(1000) || b.Has(-1) {
		t.Fatalf("unexpected member")
	}
	if b.Count() != 2 {
		t.Fatalf("expected count 2, got %d", b.Count())
	}
}

func TestAlphabetMap(t *testing.T) {
	var m AlphabetMap
	m.Set('a', 1)
	m.Set('ü', 2)
	m.Set('中', 3)
	if m.Dense('a') != 1 || m.Dense('ü') != 2 || m.Dense('中') != 3 {
		t.Fatalf("dense mapping mismatch")
	}
	if m.Dense('b') != 0 {
		t.Fatalf("unmapped code unit should be 0")
	}
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.NumPages())
	}
	m.Set('a', 0)
	if m.Size() != 2 || m.Dense('a') != 0 {
		t.Fatalf("clearing a mapping failed: size=%d", m.Size())
	}
}

func TestTransition(t *testing.T) {
	// root(1) --1--> 3 --2--> 4
	d := &DAT{
		Root:  1,
		Sigma: 2,
		Base:  []int32{0, 2, 0, 2, 0},
		Check: []int32{0, 0, 0, 1, 3},
	}
	d.Terminal.Set(4)
	if s, ok := d.Transition(1, 1); !ok || s != 3 {
		t.Fatalf("expected transition 1 -1-> 3, got %d/%v", s, ok)
	}
	if _, ok := d.Transition(1, 2); ok {
		t.Fatalf("unexpected transition 1 -2->")
	}
	if !d.Contains([]uint16{1, 2}) {
		t.Fatalf("expected key [1 2] to be contained")
	}
	if d.Contains([]uint16{1}) {
		t.Fatalf("key [1] is not terminal")
	}
	if d.Contains([]uint16{1, 0}) {
		t.Fatalf("dense 0 must never match")
	}
}
