package technique

import (
	"fmt"

	"svw.info/sudoku-tutor/internal/domain"
)

// findNakedSingle returns the first empty cell, scanning row-major, whose
// candidate set has exactly one member.
func findNakedSingle(g *domain.Grid, cand *[9][9]domain.CandidateSet) (domain.Technique, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Values[r][c] != 0 {
				continue
			}
			v, ok := cand[r][c].Single()
			if !ok {
				continue
			}
			return domain.Technique{
				Name:        "Naked Single",
				Description: fmt.Sprintf("Cell (%d, %d) can only contain %d", r+1, c+1, v),
				Cells:       []domain.CellCoord{{Row: r, Col: c}},
				Explanation: fmt.Sprintf("Cell (%d, %d) has only one possible value: %d", r+1, c+1, v),
			}, true
		}
	}
	return domain.Technique{}, false
}

// findHiddenSingle looks for a digit with exactly one legal cell within a
// unit, checking rows first, then columns, then boxes.
func findHiddenSingle(g *domain.Grid, cand *[9][9]domain.CandidateSet) (domain.Technique, bool) {
	// rows
	for r := 0; r < 9; r++ {
		for v := uint8(1); v <= 9; v++ {
			if valueInRow(g, r, v) {
				continue
			}
			pos, n := onlyCellInRow(g, cand, r, v)
			if n != 1 {
				continue
			}
			return domain.Technique{
				Name:        "Hidden Single (Row)",
				Description: fmt.Sprintf("Value %d can only go in cell (%d, %d) in row %d", v, pos.Row+1, pos.Col+1, r+1),
				Cells:       []domain.CellCoord{pos},
				Explanation: fmt.Sprintf("In row %d, value %d can only be placed in cell (%d, %d)", r+1, v, pos.Row+1, pos.Col+1),
			}, true
		}
	}
	// columns
	for c := 0; c < 9; c++ {
		for v := uint8(1); v <= 9; v++ {
			if valueInCol(g, c, v) {
				continue
			}
			pos, n := onlyCellInCol(g, cand, c, v)
			if n != 1 {
				continue
			}
			return domain.Technique{
				Name:        "Hidden Single (Column)",
				Description: fmt.Sprintf("Value %d can only go in cell (%d, %d) in column %d", v, pos.Row+1, pos.Col+1, c+1),
				Cells:       []domain.CellCoord{pos},
				Explanation: fmt.Sprintf("In column %d, value %d can only be placed in cell (%d, %d)", c+1, v, pos.Row+1, pos.Col+1),
			}, true
		}
	}
	// boxes
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			for v := uint8(1); v <= 9; v++ {
				if valueInBox(g, br, bc, v) {
					continue
				}
				pos, n := onlyCellInBox(g, cand, br, bc, v)
				if n != 1 {
					continue
				}
				return domain.Technique{
					Name:        "Hidden Single (Box)",
					Description: fmt.Sprintf("Value %d can only go in cell (%d, %d) in box", v, pos.Row+1, pos.Col+1),
					Cells:       []domain.CellCoord{pos},
					Explanation: fmt.Sprintf("In the 3x3 box, value %d can only be placed in cell (%d, %d)", v, pos.Row+1, pos.Col+1),
				}, true
			}
		}
	}
	return domain.Technique{}, false
}

func valueInRow(g *domain.Grid, r int, v uint8) bool {
	for c := 0; c < 9; c++ {
		if g.Values[r][c] == v {
			return true
		}
	}
	return false
}

func valueInCol(g *domain.Grid, c int, v uint8) bool {
	for r := 0; r < 9; r++ {
		if g.Values[r][c] == v {
			return true
		}
	}
	return false
}

func valueInBox(g *domain.Grid, br, bc int, v uint8) bool {
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g.Values[br+dr][bc+dc] == v {
				return true
			}
		}
	}
	return false
}

func onlyCellInRow(g *domain.Grid, cand *[9][9]domain.CandidateSet, r int, v uint8) (domain.CellCoord, int) {
	var pos domain.CellCoord
	n := 0
	for c := 0; c < 9; c++ {
		if g.Values[r][c] == 0 && cand[r][c].Has(v) {
			pos = domain.CellCoord{Row: r, Col: c}
			n++
		}
	}
	return pos, n
}

func onlyCellInCol(g *domain.Grid, cand *[9][9]domain.CandidateSet, c int, v uint8) (domain.CellCoord, int) {
	var pos domain.CellCoord
	n := 0
	for r := 0; r < 9; r++ {
		if g.Values[r][c] == 0 && cand[r][c].Has(v) {
			pos = domain.CellCoord{Row: r, Col: c}
			n++
		}
	}
	return pos, n
}

func onlyCellInBox(g *domain.Grid, cand *[9][9]domain.CandidateSet, br, bc int, v uint8) (domain.CellCoord, int) {
	var pos domain.CellCoord
	n := 0
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			r, c := br+dr, bc+dc
			if g.Values[r][c] == 0 && cand[r][c].Has(v) {
				pos = domain.CellCoord{Row: r, Col: c}
				n++
			}
		}
	}
	return pos, n
}
