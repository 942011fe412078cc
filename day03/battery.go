// Package day03 solves the battery bank puzzle: each line is a string
// of digit-labelled batteries, and the goal is the largest k-digit
// number obtainable by picking k batteries left to right. Part 1 uses
// k=2 per bank, part 2 k=12, summing over all banks.
package day03

import (
	"strings"

	"github.com/pkg/errors"
)

// Solver implements solve.Solver for day 3.
type Solver struct{}

// New returns the day 3 solver.
func New() *Solver { return &Solver{} }

// Day returns 3.
func (*Solver) Day() int { return 3 }

// Part1 sums each bank's highest 2-digit joltage.
func (*Solver) Part1(input string) (uint64, error) {
	return sumHighestJoltage(input, 2)
}

// Part2 sums each bank's highest 12-digit joltage.
func (*Solver) Part2(input string) (uint64, error) {
	return sumHighestJoltage(input, 12)
}

func sumHighestJoltage(input string, digits int) (uint64, error) {
	var total uint64
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b, err := newBank(line)
		if err != nil {
			return 0, err
		}
		total += b.highestJoltage(digits)
	}

	return total, nil
}

// bank is an ordered row of single-digit batteries.
type bank []byte

func newBank(line string) (bank, error) {
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return nil, errors.Errorf("invalid battery %q in bank %q", line[i], line)
		}
	}

	return bank(line), nil
}

// takeHighest removes and returns the highest battery that still
// leaves enough batteries to its right for the remaining picks.
// Everything up to and including the pick is consumed.
func (b *bank) takeHighest(remaining int) byte {
	pool := (*b)[:len(*b)-remaining+1]
	bestIdx := 0
	for i, c := range pool {
		if c > pool[bestIdx] {
			bestIdx = i
		}
	}
	best := pool[bestIdx]
	*b = (*b)[bestIdx+1:]

	return best
}

// highestJoltage greedily assembles the largest number with the given
// digit count. The greedy choice is exact: a larger leading digit
// always beats any arrangement of the remaining picks.
func (b bank) highestJoltage(digits int) uint64 {
	var joltage uint64
	for remaining := digits; remaining > 0; remaining-- {
		joltage = joltage*10 + uint64(b.takeHighest(remaining)-'0')
	}

	return joltage
}
