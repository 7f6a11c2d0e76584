package stepsolver

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"svw.info/sudoku-tutor/internal/constraint"
	"svw.info/sudoku-tutor/internal/domain"
	"svw.info/sudoku-tutor/internal/solver"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestSolveWithTechniquesCompletesClassicPuzzle(t *testing.T) {
	g := domain.Grid{Values: sample}
	ss := New(solver.NewBacktrackingSolver())

	out, steps, _, err := ss.SolveWithTechniques(context.Background(), &g)
	if err != nil {
		t.Fatalf("SolveWithTechniques failed: %v", err)
	}
	if !constraint.IsSolved(out) {
		t.Fatalf("result not solved")
	}
	if g.Values != sample {
		t.Fatalf("input grid was mutated")
	}
	// the classic puzzle yields at least one logical step before any fallback
	if len(steps) == 0 {
		t.Fatalf("no techniques recorded")
	}
	for _, s := range steps {
		if s.Name == "" || len(s.Cells) == 0 {
			t.Fatalf("malformed technique record: %+v", s)
		}
	}
}

func TestSolveWithTechniquesAlreadySolved(t *testing.T) {
	g := domain.Grid{Values: sample}
	bt := solver.NewBacktrackingSolver()
	full, _, err := bt.Solve(context.Background(), &g)
	if err != nil {
		t.Fatalf("prep solve failed: %v", err)
	}

	ss := New(bt)
	out, steps, _, err := ss.SolveWithTechniques(context.Background(), full)
	if err != nil {
		t.Fatalf("solved grid errored: %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("solved grid produced %d steps", len(steps))
	}
	if out.Values != full.Values {
		t.Fatalf("solved grid changed")
	}
}

func TestSolveWithTechniquesUnsolvable(t *testing.T) {
	// Valid grid (no duplicates) where (0,8) has no candidates.
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g.Values[0][c] = uint8(c + 1)
	}
	g.Values[5][8] = 9

	ss := New(solver.NewBacktrackingSolver())
	_, _, _, err := ss.SolveWithTechniques(context.Background(), &g)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("expected ErrUnsolvable, got %v", err)
	}
}

func TestHintIsIdempotentAndNonMutating(t *testing.T) {
	g := domain.Grid{Values: sample}
	ss := New(solver.NewBacktrackingSolver())

	first, ok1, err := ss.Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	second, ok2, err := ss.Hint(context.Background(), &g)
	if err != nil {
		t.Fatalf("second Hint failed: %v", err)
	}
	if !ok1 || !ok2 {
		t.Fatalf("hint not found: %v %v", ok1, ok2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("hints differ:\n%+v\n%+v", first, second)
	}
	if g.Values != sample {
		t.Fatalf("Hint mutated the grid")
	}
}

func TestHintNotFoundWhenOnlyBacktrackingHelps(t *testing.T) {
	// An empty grid admits no singles; only search can make progress.
	var g domain.Grid
	ss := New(solver.NewBacktrackingSolver())
	if _, ok, err := ss.Hint(context.Background(), &g); err != nil || ok {
		t.Fatalf("Hint = (ok=%v, err=%v), want not found", ok, err)
	}
}
