package ports

import (
	"context"
	"time"

	"svw.info/sudoku-tutor/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds complete assignments for a grid. CountSolutions explores past
// the first solution and aborts once limit solutions have been found; with
// limit 2 it is the uniqueness oracle.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
}

// StepSolver solves a puzzle while recording the named techniques applied,
// falling back to exhaustive search when logical deduction stalls. Hint is a
// read-only peek at the next technique.
type StepSolver interface {
	SolveWithTechniques(ctx context.Context, g *domain.Grid) (*domain.Grid, []domain.Technique, Stats, error)
	Hint(ctx context.Context, g *domain.Grid) (domain.Technique, bool, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
