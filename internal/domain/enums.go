package domain

import "strings"

// Difficulty labels how many cells generation tries to remove from a
// complete grid.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// RemovalTarget is the number of cells generation attempts to clear for the
// difficulty. Carving stops early when no further removal keeps the solution
// unique, so the target is an upper bound, not a guarantee.
func (d Difficulty) RemovalTarget() int {
	switch d {
	case Easy:
		return 30
	case Medium:
		return 40
	case Hard:
		return 50
	case Expert:
		return 60
	default:
		return 40
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}
