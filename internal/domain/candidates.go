package domain

import "math/bits"

// CandidateSet is a bitmask over the digits 1..9 (bit v set = v is a
// candidate). Candidate sets are derived state: they are recomputed from the
// current grid before being trusted, never maintained incrementally.
type CandidateSet uint16

// AllCandidates is the full set {1..9}.
const AllCandidates CandidateSet = 0b1111111110

func (s CandidateSet) Has(v uint8) bool { return s&(1<<v) != 0 }

func (s *CandidateSet) Add(v uint8) { *s |= 1 << v }

func (s *CandidateSet) Remove(v uint8) { *s &^= 1 << v }

// Count reports how many candidates the set contains.
func (s CandidateSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Single returns the sole candidate if exactly one remains.
func (s CandidateSet) Single() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// Values lists the candidates in ascending order.
func (s CandidateSet) Values() []uint8 {
	out := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
