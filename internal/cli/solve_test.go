package cli

import (
	"errors"
	"strings"
	"testing"

	"svw.info/sudoku-tutor/internal/domain"
)

const classic = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestParsePuzzleFlatString(t *testing.T) {
	g, err := parsePuzzle(classic)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if g.Values[0][0] != 5 || g.Values[8][8] != 9 {
		t.Fatalf("corner values wrong: %d %d", g.Values[0][0], g.Values[8][8])
	}
	if !g.Given[0][0] || g.Given[0][2] {
		t.Fatalf("given flags wrong")
	}
}

func TestParsePuzzleGridShaped(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 81; i += 9 {
		row := classic[i : i+9]
		sb.WriteString(strings.ReplaceAll(row, "0", "."))
		sb.WriteString("\n")
	}
	g, err := parsePuzzle(sb.String())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if g.NumFilled() != 30 {
		t.Fatalf("givens = %d, want 30", g.NumFilled())
	}
}

func TestParsePuzzleRejectsBadInput(t *testing.T) {
	if _, err := parsePuzzle("12345"); !errors.Is(err, domain.ErrInvalidPuzzle) {
		t.Fatalf("short input: got %v", err)
	}
	if _, err := parsePuzzle(strings.Repeat("x", 81)); !errors.Is(err, domain.ErrInvalidPuzzle) {
		t.Fatalf("junk input: got %v", err)
	}
}
