package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-tutor/internal/constraint"
	"svw.info/sudoku-tutor/internal/domain"
	"svw.info/sudoku-tutor/internal/ports"
)

// Service is the narrow call surface consumed by presentation layers (HTTP
// adapter, CLI, tests). The engine is stateless over grid snapshots; the
// caller owns the single long-lived mutable copy.
type Service struct {
	Solver     ports.Solver
	StepSolver ports.StepSolver
	Generator  ports.Generator
	Validator  ports.Validator
	Storage    ports.Storage
}

func NewService(s ports.Solver, ss ports.StepSolver, g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, StepSolver: ss, Generator: g, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// LoadPuzzle validates raw matrix input and returns a grid with non-zero
// cells marked as givens. Malformed input is rejected before any solving.
func (u *Service) LoadPuzzle(matrix [][]int) (domain.Grid, error) {
	return domain.NewGridFromMatrix(matrix)
}

// Solve finds a complete assignment without technique narration.
func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

// SolveWithTechniques solves step by step, recording named techniques.
func (u *Service) SolveWithTechniques(ctx context.Context, g *domain.Grid) (*domain.Grid, []domain.Technique, ports.Stats, error) {
	if u.StepSolver == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	return u.StepSolver.SolveWithTechniques(ctx, g)
}

// Hint returns the next technique without mutating the grid.
func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Technique, bool, error) {
	if u.StepSolver == nil {
		return domain.Technique{}, false, errNotConfigured
	}
	return u.StepSolver.Hint(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// IsValid and IsSolved are pure checks; they need no wiring.
func (u *Service) IsValid(g *domain.Grid) bool  { return constraint.IsValid(g) }
func (u *Service) IsSolved(g *domain.Grid) bool { return constraint.IsSolved(g) }

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
