package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	inputDir string
	verbose  bool
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "advent2025",
		Short:         "Advent of Code 2025 puzzle solvers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "inputs", "directory holding dayNN.txt puzzle inputs")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(runCmd())
	cmd.AddCommand(allCmd())

	return cmd
}
