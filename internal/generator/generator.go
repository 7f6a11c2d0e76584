// Package generator builds puzzles with a unique solution: a complete random
// grid seeded from the three diagonal boxes, then cells carved out while the
// uniqueness oracle holds.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-tutor/internal/domain"
	"svw.info/sudoku-tutor/internal/ports"
)

// carveBudget bounds the removal phase so pathological shuffles degrade to a
// puzzle with fewer cells removed instead of blocking an interactive caller.
const carveBudget = 900 * time.Millisecond

// fillAttempts caps retries of the diagonal-seed-plus-completion phase.
// Valid diagonal boxes always admit a completion, so more than one attempt
// is not expected outside of cancellation.
const fillAttempts = 100

var errFillFailed = errors.New("could not build a complete grid")

// UniqueGenerator creates puzzles with a unique solution using the provided
// solver as both completion search and uniqueness oracle.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// Generate creates a puzzle from seed at the target difficulty. The result
// is valid, uniquely solvable, and has at most difficulty.RemovalTarget()
// cells removed; fewer when no further removal preserves uniqueness.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	nodes := 0

	// 1) complete grid: random diagonal boxes, completed by backtracking.
	var full domain.Grid
	filled := false
	for attempt := 0; attempt < fillAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		var grid domain.Grid
		fillDiagonalBoxes(rng, &grid)
		solved, st, err := g.Solver.Solve(ctx, &grid)
		nodes += st.Nodes
		if err != nil {
			continue // retry with freshly shuffled boxes
		}
		full = *solved
		filled = true
		break
	}
	if !filled {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errFillFailed
	}

	// 2) carve cells in shuffled order while the puzzle stays unique.
	puz := full
	target := diff.RemovalTarget()
	deadline := start.Add(carveBudget)
	removed := 0
	for _, pos := range rng.Perm(81) {
		if removed >= target || time.Now().After(deadline) {
			break
		}
		r, c := pos/9, pos%9
		old := puz.Values[r][c]
		puz.Values[r][c] = 0
		count, st, err := g.Solver.CountSolutions(ctx, &puz, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if count == 1 {
			removed++
		} else {
			puz.Values[r][c] = old
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			puz.Given[r][c] = puz.Values[r][c] != 0
		}
	}

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: diff,
		Grid:       puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillDiagonalBoxes fills the three diagonal 3×3 boxes with independent
// random permutations of 1..9. They share no row, column, or box, so any
// combination is mutually consistent.
func fillDiagonalBoxes(rng *rand.Rand, g *domain.Grid) {
	for _, base := range []int{0, 3, 6} {
		perm := rng.Perm(9)
		for i, v := range perm {
			g.Values[base+i/3][base+i%3] = uint8(v + 1)
		}
	}
}
