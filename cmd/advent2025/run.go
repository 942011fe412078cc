package main

import (
	"github.com/spf13/cobra"

	"github.com/frostworks/advent2025/solve"
)

func runCmd() *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a single day",
		RunE: func(*cobra.Command, []string) error {
			s, err := solverFor(day)
			if err != nil {
				return err
			}
			input, err := solve.ReadInput(inputDir, day)
			if err != nil {
				return err
			}

			return solve.Run(s, input)
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 1, "day to solve (1-25)")

	return cmd
}
