package universe

import "testing"

func TestFingerprintOrderIndependent(t *testing.T) {
	a := LiveSet{}
	for _, c := range []Cell{{1, 2}, {3, 4}, {-5, 6}, {0, 0}} {
		a[c] = struct{}{}
	}
	b := LiveSet{}
	for _, c := range []Cell{{0, 0}, {-5, 6}, {3, 4}, {1, 2}} {
		b[c] = struct{}{}
	}
	if FingerprintOf(a) != FingerprintOf(b) {
		t.Fatalf("fingerprints differ for the same cells")
	}
	//swapped coordinates are a different generation
	if FingerprintOf(NewLiveSet(Cell{1, 2})) == FingerprintOf(NewLiveSet(Cell{2, 1})) {
		t.Fatalf("fingerprints collide for different cells")
	}
}

func TestHistoryRepeat(t *testing.T) {
	h := NewHistory()
	live := NewLiveSet(Cell{1, 1}, Cell{1, 2})
	if s := h.Check(live); s != Continue {
		t.Fatalf("first check: %v", s)
	}
	if s := h.Check(NewLiveSet(Cell{1, 2}, Cell{1, 1})); s != Terminal {
		t.Fatalf("repeat check: %v", s)
	}
	if h.Len() != 1 {
		t.Fatalf("history len = %v, expected 1", h.Len())
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	if s := h.Check(LiveSet{}); s != Terminal {
		t.Fatalf("empty generation: %v", s)
	}
	if h.Len() != 0 {
		t.Fatalf("empty generation was remembered")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	live := NewLiveSet(Cell{4, 4})
	h.Check(live)
	h.Clear()
	if s := h.Check(live); s != Continue {
		t.Fatalf("after clear: %v", s)
	}
}

func TestHistoryZeroValue(t *testing.T) {
	var h History
	if s := h.Check(NewLiveSet(Cell{0, 0})); s != Continue {
		t.Fatalf("zero value history: %v", s)
	}
}

func TestHistoryBlinkerCycle(t *testing.T) {
	h := NewHistory()
	live := NewLiveSet(Cell{5, 4}, Cell{5, 5}, Cell{5, 6})
	signals := []Signal{}
	for i := 0; i < 3; i++ {
		signals = append(signals, h.Check(live))
		live = Step(live, board)
	}
	expected := []Signal{Continue, Continue, Terminal}
	for i := range expected {
		if signals[i] != expected[i] {
			t.Fatalf("generation %v: %v, expected %v", i, signals[i], expected[i])
		}
	}
}
