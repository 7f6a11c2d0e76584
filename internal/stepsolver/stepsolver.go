// Package stepsolver solves a puzzle step by step, recording the named
// techniques applied, and falls back to exhaustive search once logical
// deduction stalls.
package stepsolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudoku-tutor/internal/constraint"
	"svw.info/sudoku-tutor/internal/domain"
	"svw.info/sudoku-tutor/internal/ports"
	"svw.info/sudoku-tutor/internal/technique"
)

// ErrUnsolvable reports that neither technique detection nor exhaustive
// backtracking could complete the grid. Fatal to the solve call; the caller
// decides whether to surface or discard.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// Solver runs the detect/apply loop with a backtracking fallback.
type Solver struct {
	Fallback ports.Solver
}

// New wires a step solver around the given fallback solver.
func New(fallback ports.Solver) *Solver {
	return &Solver{Fallback: fallback}
}

// SolveWithTechniques solves a copy of g, returning the completed grid and
// the ordered technique sequence. The sequence ends where logical deduction
// stopped; cells filled by the fallback are not explained step by step.
func (s *Solver) SolveWithTechniques(ctx context.Context, g *domain.Grid) (*domain.Grid, []domain.Technique, ports.Stats, error) {
	start := time.Now()
	grid := *g
	var steps []domain.Technique
	nodes := 0

	for !constraint.IsSolved(&grid) {
		if err := ctx.Err(); err != nil {
			return nil, nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		cand := constraint.AllCandidates(&grid)
		t, ok := technique.Detect(&grid, cand)
		if ok && apply(&grid, cand, t) {
			steps = append(steps, t)
			continue
		}
		// No technique, or a detected technique placed nothing: hand the
		// rest over to exhaustive search.
		solved, st, err := s.Fallback.Solve(ctx, &grid)
		nodes += st.Nodes
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctxErr
			}
			return nil, nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)},
				fmt.Errorf("%w: %v", ErrUnsolvable, err)
		}
		grid = *solved
		break
	}
	return &grid, steps, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Hint recomputes candidates and returns the next technique without
// mutating the grid. Deterministic: repeated calls on an unchanged grid
// return the identical technique.
func (s *Solver) Hint(ctx context.Context, g *domain.Grid) (domain.Technique, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Technique{}, false, err
	}
	grid := *g
	cand := constraint.AllCandidates(&grid)
	t, ok := technique.Detect(&grid, cand)
	return t, ok, nil
}

// apply fills every affected cell whose candidate set has collapsed to
// exactly one value and reports whether anything changed.
func apply(g *domain.Grid, cand *[9][9]domain.CandidateSet, t domain.Technique) bool {
	changed := false
	for _, cc := range t.Cells {
		if g.Values[cc.Row][cc.Col] != 0 {
			continue
		}
		v, ok := cand[cc.Row][cc.Col].Single()
		if !ok {
			continue
		}
		g.Values[cc.Row][cc.Col] = v
		changed = true
	}
	return changed
}
