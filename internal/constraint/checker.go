package constraint

import (
	"context"

	"svw.info/sudoku-tutor/internal/domain"
)

// Checker adapts the pure constraint functions to the Validator port.
type Checker struct{}

func NewChecker() *Checker { return &Checker{} }

func (c *Checker) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	conf := Conflicts(g)
	return len(conf) == 0, conf, nil
}
