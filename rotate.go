package seqvec

import "slices"

// CShift circularly rotates the elements by k positions.  Positive k moves
// elements toward index 0; negative k moves them away.  No information is
// lost: CShift(k) followed by CShift(-k) restores the sequence.
func (s *Seq[E]) CShift(k int) *Seq[E] {
	l := len(s.elems)
	if l == 0 {
		return s
	}
	r := ((k % l) + l) % l
	if r == 0 {
		return s
	}
	slices.Reverse(s.elems[:r])
	slices.Reverse(s.elems[r:])
	slices.Reverse(s.elems)
	return s
}

// Shift rotates like CShift but zero fills the positions that received
// wrapped elements, so information is dropped.  The element count is
// preserved.
func (s *Seq[E]) Shift(k int) *Seq[E] {
	l := len(s.elems)
	if l == 0 || k == 0 {
		return s
	}
	s.CShift(k)
	var zero E
	if k > 0 {
		n := k % l
		for i := l - n; i < l; i++ {
			s.elems[i] = zero
		}
	} else {
		n := (-k) % l
		for i := 0; i < n; i++ {
			s.elems[i] = zero
		}
	}
	return s
}
