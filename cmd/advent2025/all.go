package main

import (
	"github.com/spf13/cobra"

	"github.com/frostworks/advent2025/solve"
)

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every implemented day in order",
		RunE: func(*cobra.Command, []string) error {
			for _, s := range solvers {
				input, err := solve.ReadInput(inputDir, s.Day())
				if err != nil {
					return err
				}
				if err := solve.Run(s, input); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
