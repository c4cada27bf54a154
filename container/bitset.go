package container

import "math/bits"

const (
	wordBits  = 64
	wordShift = 6
)

// BitSet is a dynamically sized bit vector backed by 64-bit words. Setting a
// bit past the current word count grows the backing storage; reads past the
// tracked size report false. Word boundaries are handled exactly, since
// component counts routinely exceed one word.
type BitSet struct {
	words []uint64
}

// Set turns on bit i, growing the backing storage when needed.
func (s *BitSet) Set(i int) {
	if i < 0 {
		return
	}
	w := i >> wordShift
	s.ensureWords(w + 1)
	s.words[w] |= 1 << (uint(i) & (wordBits - 1))
}

// Clear turns off bit i. Clearing past the tracked size is a no-op.
func (s *BitSet) Clear(i int) {
	if i < 0 {
		return
	}
	w := i >> wordShift
	if w >= len(s.words) {
		return
	}
	s.words[w] &^= 1 << (uint(i) & (wordBits - 1))
}

// Get reports whether bit i is set. Any index at or past the tracked size
// reads as false.
func (s *BitSet) Get(i int) bool {
	if i < 0 {
		return false
	}
	w := i >> wordShift
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<(uint(i)&(wordBits-1))) != 0
}

// And intersects s with other in place. Words s has beyond other are zeroed.
func (s *BitSet) And(other *BitSet) {
	n := len(other.words)
	for i := range s.words {
		if i < n {
			s.words[i] &= other.words[i]
		} else {
			s.words[i] = 0
		}
	}
}

// Or unions other into s, growing s as needed.
func (s *BitSet) Or(other *BitSet) {
	s.ensureWords(len(other.words))
	for i, w := range other.words {
		s.words[i] |= w
	}
}

// Intersects reports whether s and other share at least one set bit.
func (s *BitSet) Intersects(other *BitSet) bool {
	n := len(s.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		if s.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every bit set in other is also set in s.
// Missing words on either side are treated as zero.
func (s *BitSet) ContainsAll(other *BitSet) bool {
	for i, w := range other.words {
		if w == 0 {
			continue
		}
		if i >= len(s.words) || s.words[i]&w != w {
			return false
		}
	}
	return true
}

// Cardinality returns the number of set bits.
func (s *BitSet) Cardinality() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// NextSetBit returns the index of the first set bit at or after from, or -1
// when no such bit exists.
func (s *BitSet) NextSetBit(from int) int {
	if from < 0 {
		from = 0
	}
	w := from >> wordShift
	if w >= len(s.words) {
		return -1
	}
	word := s.words[w] >> (uint(from) & (wordBits - 1))
	if word != 0 {
		return from + bits.TrailingZeros64(word)
	}
	for w++; w < len(s.words); w++ {
		if s.words[w] != 0 {
			return w<<wordShift + bits.TrailingZeros64(s.words[w])
		}
	}
	return -1
}

// IsEmpty reports whether no bit is set.
func (s *BitSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Reset clears every bit, retaining the allocated words.
func (s *BitSet) Reset() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Clone returns an independent copy of s.
func (s *BitSet) Clone() *BitSet {
	c := &BitSet{words: make([]uint64, len(s.words))}
	copy(c.words, s.words)
	return c
}

// EnsureBits grows the backing storage to cover at least n bits.
func (s *BitSet) EnsureBits(n int) {
	if n <= 0 {
		return
	}
	s.ensureWords((n + wordBits - 1) >> wordShift)
}

func (s *BitSet) ensureWords(n int) {
	if n <= len(s.words) {
		return
	}
	grown := make([]uint64, n)
	copy(grown, s.words)
	s.words = grown
}
