package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPuzzle reports malformed puzzle input: wrong dimensions or a
// value outside 0..9. Rejected before any solving attempt.
var ErrInvalidPuzzle = errors.New("invalid puzzle input")

// NewGrid builds a Grid from a 9×9 matrix (0 = empty), marking every
// non-zero cell as a given.
func NewGrid(values [9][9]uint8) (Grid, error) {
	var g Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := values[r][c]
			if v > 9 {
				return Grid{}, fmt.Errorf("%w: value %d at r=%d c=%d", ErrInvalidPuzzle, v, r, c)
			}
			g.Values[r][c] = v
			g.Given[r][c] = v != 0
		}
	}
	return g, nil
}

// NewGridFromMatrix builds a Grid from dynamically shaped input, rejecting
// anything that is not exactly 9 rows of 9 values in 0..9.
func NewGridFromMatrix(matrix [][]int) (Grid, error) {
	if len(matrix) != 9 {
		return Grid{}, fmt.Errorf("%w: expected 9 rows, got %d", ErrInvalidPuzzle, len(matrix))
	}
	var g Grid
	for r, row := range matrix {
		if len(row) != 9 {
			return Grid{}, fmt.Errorf("%w: row %d has %d values", ErrInvalidPuzzle, r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return Grid{}, fmt.Errorf("%w: value %d at r=%d c=%d", ErrInvalidPuzzle, v, r, c)
			}
			g.Values[r][c] = uint8(v)
			g.Given[r][c] = v != 0
		}
	}
	return g, nil
}

// NumFilled counts non-zero cells.
func (g *Grid) NumFilled() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Matrix returns the values as a row-major [][]int, the shape consumed by
// presentation layers.
func (g *Grid) Matrix() [][]int {
	out := make([][]int, 9)
	for r := 0; r < 9; r++ {
		out[r] = make([]int, 9)
		for c := 0; c < 9; c++ {
			out[r][c] = int(g.Values[r][c])
		}
	}
	return out
}

// Format renders the grid for terminal output, with box separators and
// dots for empty cells.
func (g *Grid) Format() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if v := g.Values[r][c]; v == 0 {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", v)
			}
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
