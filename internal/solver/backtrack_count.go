package solver

import (
	"context"
	"time"

	"svw.info/sudoku-tutor/internal/domain"
	"svw.info/sudoku-tutor/internal/ports"
)

// CountSolutions keeps searching after the first complete assignment and
// aborts the whole search once limit solutions have been seen. limit bounds
// the worst case for grids with many solutions; uniqueness testing uses 2.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	grid := g.Values
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= limit
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
	_ = dfs()
	if err := ctx.Err(); err != nil {
		return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
