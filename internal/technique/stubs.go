package technique

import "svw.info/sudoku-tutor/internal/domain"

// notImplemented backs the reserved priority slots (naked/hidden pairs,
// pointing pairs, box/line reduction). They always report not-found until a
// real detector replaces them.
func notImplemented(_ *domain.Grid, _ *[9][9]domain.CandidateSet) (domain.Technique, bool) {
	return domain.Technique{}, false
}
