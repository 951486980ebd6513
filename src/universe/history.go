package universe

import (
	"crypto/md5"
	"encoding/binary"
)

//Signal is the History verdict for the current generation
type Signal int

const (
	Continue Signal = iota
	Terminal
)

func (s Signal) String() string {
	if s == Terminal {
		return "terminal"
	}
	return "continue"
}

//Fingerprint is the order independent digest of the generation
type Fingerprint [md5.Size]byte

//FingerprintOf digests the cells sorted row-major, so the set iteration order never matters
func FingerprintOf(live LiveSet) Fingerprint {
	h := md5.New()
	var buf [16]byte
	for _, c := range live.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.Row))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Col))
		h.Write(buf[:])
	}
	var f Fingerprint
	copy(f[:], h.Sum(nil))
	return f
}

//History keeps the fingerprints seen during the current pattern run
//it grows until Clear, long period patterns are not capped
type History struct {
	seen map[Fingerprint]struct{}
}

func NewHistory() *History {
	return &History{seen: map[Fingerprint]struct{}{}}
}

//Check returns Terminal when the generation is empty or was already seen
//otherwise remembers the generation and returns Continue
func (h *History) Check(live LiveSet) Signal {
	if live.Len() == 0 {
		return Terminal
	}
	if h.seen == nil {
		h.seen = map[Fingerprint]struct{}{}
	}
	f := FingerprintOf(live)
	if _, ok := h.seen[f]; ok {
		return Terminal
	}
	h.seen[f] = struct{}{}
	return Continue
}

//Clear forgets all seen generations
func (h *History) Clear() {
	h.seen = map[Fingerprint]struct{}{}
}

func (h *History) Len() int {
	return len(h.seen)
}
