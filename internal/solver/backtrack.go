package solver

import "errors"

// ErrNoSolution reports that exhaustive search found no complete assignment.
var ErrNoSolution = errors.New("puzzle has no solution")

// BacktrackingSolver is a straightforward recursive solver: first empty cell
// in row-major order, values tried 1..9 ascending, no ordering heuristics.
// The fixed order makes the found solution deterministic when several exist.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers shared by Solve/CountSolutions (in other files) ---

func isSafe(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
