package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-tutor/internal/domain"
	"svw.info/sudoku-tutor/internal/solver"
	"svw.info/sudoku-tutor/internal/stepsolver"
)

var solveFile string

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle, explaining each technique",
		Long: `Solve a puzzle given as 81 characters (rows concatenated, 0 or .
for empty cells), either as an argument or via --file.

Example:
  sudoku-tutor solve 530070000600195000098000060800060003400803001700020006060000280000419005000080079`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Read the puzzle from a file")
	rootCmd.AddCommand(solveCmd)
}

// parsePuzzle accepts 81 digits with 0 or . for empty cells; whitespace and
// newlines are ignored so grid-shaped files work too.
func parsePuzzle(s string) (domain.Grid, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '.':
			return '0'
		case r == ' ' || r == '\n' || r == '\r' || r == '\t' || r == '|' || r == '-' || r == '+':
			return -1
		default:
			return r
		}
	}, s)
	if len(cleaned) != 81 {
		return domain.Grid{}, fmt.Errorf("%w: expected 81 cells, got %d", domain.ErrInvalidPuzzle, len(cleaned))
	}
	var values [9][9]uint8
	for i, r := range cleaned {
		if r < '0' || r > '9' {
			return domain.Grid{}, fmt.Errorf("%w: unexpected character %q", domain.ErrInvalidPuzzle, r)
		}
		values[i/9][i%9] = uint8(r - '0')
	}
	return domain.NewGrid(values)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var input string
	switch {
	case solveFile != "":
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return err
		}
		input = string(data)
	case len(args) == 1:
		input = args[0]
	default:
		return fmt.Errorf("provide a puzzle argument or --file")
	}

	g, err := parsePuzzle(input)
	if err != nil {
		return err
	}

	ss := stepsolver.New(solver.NewBacktrackingSolver())
	solved, steps, st, err := ss.SolveWithTechniques(cmd.Context(), &g)
	if err != nil {
		return err
	}

	for i, t := range steps {
		fmt.Printf("%2d. %s: %s\n", i+1, t.Name, t.Description)
	}
	if len(steps) > 0 {
		fmt.Println()
	}
	if st.Nodes > 0 {
		fmt.Printf("Remaining cells filled by backtracking (%d nodes).\n\n", st.Nodes)
	}
	fmt.Println(solved.Format())
	return nil
}
