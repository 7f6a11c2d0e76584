// Package constraint implements pure row/column/box constraint checks and
// candidate computation over grid snapshots. No function here mutates its
// input or keeps state between calls.
package constraint

import "svw.info/sudoku-tutor/internal/domain"

// Candidates returns the possible digits for the cell: the empty set for a
// filled cell, otherwise {1..9} minus the values present in the cell's row,
// column, and 3×3 box.
func Candidates(g *domain.Grid, row, col int) domain.CandidateSet {
	if g.Values[row][col] != 0 {
		return 0
	}
	s := domain.AllCandidates
	for i := 0; i < 9; i++ {
		s.Remove(g.Values[row][i])
		s.Remove(g.Values[i][col])
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			s.Remove(g.Values[br+dr][bc+dc])
		}
	}
	return s
}

// AllCandidates recomputes candidate sets for every cell from scratch.
// Filled cells get the empty set.
func AllCandidates(g *domain.Grid) *[9][9]domain.CandidateSet {
	var out [9][9]domain.CandidateSet
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[r][c] = Candidates(g, r, c)
		}
	}
	return &out
}

// IsValid reports whether no row, column, or box contains a duplicate
// non-zero value. Empty grids are vacuously valid.
func IsValid(g *domain.Grid) bool {
	return len(Conflicts(g)) == 0
}

// IsSolved reports whether every cell is filled and the grid is valid.
func IsSolved(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Values[r][c] == 0 {
				return false
			}
		}
	}
	return IsValid(g)
}

// Conflicts lists the cells whose value duplicates an earlier value in the
// same row, column, or box.
func Conflicts(g *domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g.Values[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return conf
}
