package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-tutor/internal/domain"
	"svw.info/sudoku-tutor/internal/generator"
	"svw.info/sudoku-tutor/internal/solver"
)

var (
	genCount      int
	genDifficulty string
	genSeed       int64
	genSolution   bool
	genTimeout    time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more uniquely solvable Sudoku puzzles.

Examples:
  sudoku-tutor gen --difficulty easy
  sudoku-tutor gen -n 5 --difficulty expert
  sudoku-tutor gen --seed 12345 --solution`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genCount, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 = time-based)")
	genCmd.Flags().BoolVar(&genSolution, "solution", false, "Also print the solution")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	diff := domain.ParseDifficulty(genDifficulty)
	bt := solver.NewBacktrackingSolver()
	gen := generator.NewUniqueGenerator(bt)

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for i := 0; i < genCount; i++ {
		ctx, cancel := context.WithTimeout(cmd.Context(), genTimeout)
		p, st, err := gen.Generate(ctx, seed+int64(i), diff)
		cancel()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		fmt.Printf("Puzzle #%d (%s, givens: %d, seed: %d):\n", i+1, diff, p.Grid.NumFilled(), p.Seed)
		fmt.Println(p.Grid.Format())
		if genSolution {
			solved, _, err := bt.Solve(cmd.Context(), &p.Grid)
			if err != nil {
				return fmt.Errorf("solving generated puzzle: %w", err)
			}
			fmt.Println("\nSolution:")
			fmt.Println(solved.Format())
		}
		if genCount > 1 || genSolution {
			fmt.Printf("\n(%d nodes, %v)\n\n", st.Nodes, st.Duration.Round(time.Millisecond))
		}
	}
	return nil
}
