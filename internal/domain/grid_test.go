package domain

import (
	"errors"
	"testing"
)

func validMatrix() [][]int {
	out := make([][]int, 9)
	for r := range out {
		out[r] = make([]int, 9)
	}
	out[0][0] = 5
	return out
}

func TestNewGridFromMatrixRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		mut  func(m [][]int) [][]int
	}{
		{"too few rows", func(m [][]int) [][]int { return m[:8] }},
		{"short row", func(m [][]int) [][]int { m[3] = m[3][:8]; return m }},
		{"long row", func(m [][]int) [][]int { m[3] = append(m[3], 1); return m }},
		{"value too large", func(m [][]int) [][]int { m[2][2] = 10; return m }},
		{"negative value", func(m [][]int) [][]int { m[8][8] = -1; return m }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGridFromMatrix(tc.mut(validMatrix()))
			if !errors.Is(err, ErrInvalidPuzzle) {
				t.Fatalf("expected ErrInvalidPuzzle, got %v", err)
			}
		})
	}
}

func TestNewGridFromMatrixMarksGivens(t *testing.T) {
	g, err := NewGridFromMatrix(validMatrix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Given[0][0] {
		t.Fatalf("non-zero cell not marked as given")
	}
	if g.Given[0][1] {
		t.Fatalf("empty cell marked as given")
	}
	if g.NumFilled() != 1 {
		t.Fatalf("NumFilled = %d, want 1", g.NumFilled())
	}
}

func TestCandidateSetOperations(t *testing.T) {
	var s CandidateSet
	if s.Count() != 0 {
		t.Fatalf("empty set count = %d", s.Count())
	}
	s.Add(3)
	s.Add(7)
	if !s.Has(3) || !s.Has(7) || s.Has(5) {
		t.Fatalf("membership wrong after adds: %b", s)
	}
	if _, ok := s.Single(); ok {
		t.Fatalf("two-element set reported single")
	}
	s.Remove(7)
	v, ok := s.Single()
	if !ok || v != 3 {
		t.Fatalf("Single = (%d,%v), want (3,true)", v, ok)
	}
	if got := AllCandidates.Count(); got != 9 {
		t.Fatalf("full set count = %d, want 9", got)
	}
	vals := AllCandidates.Values()
	for i, v := range vals {
		if int(v) != i+1 {
			t.Fatalf("Values not ascending 1..9: %v", vals)
		}
	}
}
