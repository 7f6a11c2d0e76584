package solver

import (
	"context"
	"time"

	"svw.info/sudoku-tutor/internal/domain"
	"svw.info/sudoku-tutor/internal/ports"
)

// Solve returns the first complete assignment found, leaving the input grid
// untouched. Givens carry over to the result.
func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := g.Values
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isSafe(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrNoSolution
	}
	out := &domain.Grid{Values: grid, Given: g.Given}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
