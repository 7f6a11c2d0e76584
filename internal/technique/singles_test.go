package technique

import (
	"testing"

	"svw.info/sudoku-tutor/internal/constraint"
	"svw.info/sudoku-tutor/internal/domain"
)

var solvedSample = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestNakedSingleOnLastEmptyCell(t *testing.T) {
	g := domain.Grid{Values: solvedSample}
	g.Values[4][4] = 0 // row/col/box hold the other eight digits

	cand := constraint.AllCandidates(&g)
	tech, ok := Detect(&g, cand)
	if !ok {
		t.Fatalf("no technique found")
	}
	if tech.Name != "Naked Single" {
		t.Fatalf("got %q, want Naked Single", tech.Name)
	}
	if len(tech.Cells) != 1 || tech.Cells[0] != (domain.CellCoord{Row: 4, Col: 4}) {
		t.Fatalf("wrong affected cells: %v", tech.Cells)
	}
	if v, _ := cand[4][4].Single(); v != 5 {
		t.Fatalf("missing digit = %d, want 5", v)
	}
}

func TestHiddenSingleInRow(t *testing.T) {
	// Constrain 9 out of every row-0 cell except (0,0): box exclusions via
	// (1,3) and (2,6), column exclusions via (4,1) and (7,2).
	var g domain.Grid
	g.Values[1][3] = 9
	g.Values[2][6] = 9
	g.Values[4][1] = 9
	g.Values[7][2] = 9

	cand := constraint.AllCandidates(&g)
	tech, ok := Detect(&g, cand)
	if !ok {
		t.Fatalf("no technique found")
	}
	if tech.Name != "Hidden Single (Row)" {
		t.Fatalf("got %q, want Hidden Single (Row)", tech.Name)
	}
	if len(tech.Cells) != 1 || tech.Cells[0] != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("wrong affected cells: %v", tech.Cells)
	}
}

func TestNakedSingleOutranksHiddenSingle(t *testing.T) {
	// Same hidden-single layout plus a naked single far away; the naked
	// single must win on priority even though it scans later cells.
	g := domain.Grid{Values: solvedSample}
	g.Values[8][8] = 0

	cand := constraint.AllCandidates(&g)
	tech, ok := Detect(&g, cand)
	if !ok || tech.Name != "Naked Single" {
		t.Fatalf("got (%q,%v), want Naked Single first", tech.Name, ok)
	}
}

func TestOrderingContractKeepsStubSlots(t *testing.T) {
	want := []string{
		"Naked Single",
		"Hidden Single",
		"Naked Pair",
		"Hidden Pair",
		"Pointing Pair",
		"Box/Line Reduction",
	}
	if len(Ordered) != len(want) {
		t.Fatalf("detector list has %d entries, want %d", len(Ordered), len(want))
	}
	for i, d := range Ordered {
		if d.Name != want[i] {
			t.Fatalf("slot %d = %q, want %q", i, d.Name, want[i])
		}
	}
}

func TestStubsReportNotFound(t *testing.T) {
	var g domain.Grid
	cand := constraint.AllCandidates(&g)
	for _, d := range Ordered[2:] {
		if _, ok := d.Find(&g, cand); ok {
			t.Fatalf("stub %q reported a technique", d.Name)
		}
	}
}

func TestNoTechniqueOnEmptyGrid(t *testing.T) {
	var g domain.Grid
	cand := constraint.AllCandidates(&g)
	if tech, ok := Detect(&g, cand); ok {
		t.Fatalf("unexpected technique on empty grid: %+v", tech)
	}
}
