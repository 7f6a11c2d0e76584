// Package technique scans a grid plus freshly recomputed candidates for the
// highest-priority applicable solving technique.
package technique

import "svw.info/sudoku-tutor/internal/domain"

// Detector locates one instance of a named technique, or reports not-found.
// Detectors must not mutate the grid or the candidate sets.
type Detector struct {
	Name string
	Find func(g *domain.Grid, cand *[9][9]domain.CandidateSet) (domain.Technique, bool)
}

// Ordered is the fixed priority list. Unimplemented techniques keep their
// slot so future detectors slide in between hidden singles and the
// backtracking fallback without reordering.
var Ordered = []Detector{
	{Name: "Naked Single", Find: findNakedSingle},
	{Name: "Hidden Single", Find: findHiddenSingle},
	{Name: "Naked Pair", Find: notImplemented},
	{Name: "Hidden Pair", Find: notImplemented},
	{Name: "Pointing Pair", Find: notImplemented},
	{Name: "Box/Line Reduction", Find: notImplemented},
}

// Detect runs the detectors in priority order and returns the first
// technique found across the whole grid, if any.
func Detect(g *domain.Grid, cand *[9][9]domain.CandidateSet) (domain.Technique, bool) {
	for _, d := range Ordered {
		if t, ok := d.Find(g, cand); ok {
			return t, true
		}
	}
	return domain.Technique{}, false
}
