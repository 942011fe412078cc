// Package day10 solves the button panel puzzle, one machine per
// input line. Part 1 finds each machine's minimum number of distinct
// button presses reaching its target light pattern (package toggle)
// and sums them. Part 2 finds each machine's minimum total presses
// meeting its joltage requirements exactly (package linopt) and sums
// those. A machine with no answer aborts the whole day, mirroring
// how a missing solution invalidates the puzzle answer.
package day10

import (
	"github.com/pkg/errors"

	"github.com/frostworks/advent2025/linopt"
	"github.com/frostworks/advent2025/machine"
	"github.com/frostworks/advent2025/solve"
	"github.com/frostworks/advent2025/toggle"
)

// Solver implements solve.Solver for day 10.
type Solver struct{}

// New returns the day 10 solver.
func New() *Solver { return &Solver{} }

// Day returns 10.
func (*Solver) Day() int { return 10 }

// Part1 sums the minimal toggle press counts across machines.
func (*Solver) Part1(input string) (uint64, error) {
	machines, err := machine.ParseAll(input)
	if err != nil {
		return 0, err
	}

	var total uint64
	for i, m := range machines {
		presses, err := toggle.MinPresses(m)
		if err != nil {
			return 0, errors.Wrapf(err, "machine %d", i+1)
		}
		total += uint64(presses)
	}

	return total, nil
}

// Part2 sums the minimal joltage press totals across machines. Each
// machine is an independent exact optimization, so they run on the
// shared worker pool; results come back in input order.
func (*Solver) Part2(input string) (uint64, error) {
	machines, err := machine.ParseAll(input)
	if err != nil {
		return 0, err
	}

	presses, err := solve.Map(machines, func(m machine.Machine) (uint64, error) {
		return linopt.Minimize(m)
	})
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, p := range presses {
		total += p
	}

	return total, nil
}
