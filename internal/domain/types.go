package domain

// Grid holds current cell values and which cells are immutable givens.
// It is a value type: engine calls receive and return snapshots rather than
// sharing one long-lived mutable instance.
type Grid struct {
	Values [9][9]uint8 `json:"grid"`
	Given  [9][9]bool  `json:"given,omitempty"`
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Technique is an immutable record of one applied or suggested solving step.
// Eliminated lists candidate values removed from the affected cells; it is
// empty for placement techniques such as singles.
type Technique struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Cells       []CellCoord `json:"cells"`
	Eliminated  []uint8     `json:"eliminated,omitempty"`
	Explanation string      `json:"explanation"`
}

// Puzzle is a generated or persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       Grid       `json:"grid"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
