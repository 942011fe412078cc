// Package day06 solves the math worksheet puzzle: rows of numbers
// with a final row of + or * operators, one per column group. Part 1
// folds each whitespace-separated column with its operator. Part 2
// re-reads the sheet character column by character column, so numbers
// are written vertically and blank columns separate the groups.
package day06

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Solver implements solve.Solver for day 6.
type Solver struct{}

// New returns the day 6 solver.
func New() *Solver { return &Solver{} }

// Day returns 6.
func (*Solver) Day() int { return 6 }

type operation int

const (
	opAdd operation = iota
	opMultiply
)

// Part1 folds column i of the number rows with operator i and sums
// the per-column results.
func (*Solver) Part1(input string) (uint64, error) {
	lines := nonEmptyLines(input)
	if len(lines) < 2 {
		return 0, errors.New("worksheet needs number rows and an operator row")
	}
	ops, err := parseOperations(lines[len(lines)-1])
	if err != nil {
		return 0, err
	}

	rows := make([][]uint64, 0, len(lines)-1)
	for _, line := range lines[:len(lines)-1] {
		fields := strings.Fields(line)
		row := make([]uint64, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return 0, errors.Wrapf(err, "invalid number %q", f)
			}
			row = append(row, n)
		}
		rows = append(rows, row)
	}

	var total uint64
	for i, op := range ops {
		result := identity(op)
		for _, row := range rows {
			if i >= len(row) {
				return 0, errors.Errorf("row has no column %d", i)
			}
			result = apply(op, result, row[i])
		}
		total += result
	}

	return total, nil
}

// Part2 reads numbers down each character column; a column with no
// digits closes the current group. Group i folds with operator i.
func (*Solver) Part2(input string) (uint64, error) {
	lines := rawLines(input)
	if len(lines) < 2 {
		return 0, errors.New("worksheet needs number rows and an operator row")
	}
	ops, err := parseOperations(lines[len(lines)-1])
	if err != nil {
		return 0, err
	}

	dataRows := lines[:len(lines)-1]
	maxWidth := 0
	for _, row := range dataRows {
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
	}

	groups := make([][]uint64, len(ops))
	target := 0
	for col := 0; col < maxWidth; col++ {
		var digits strings.Builder
		for _, row := range dataRows {
			if col < len(row) && row[col] != ' ' {
				digits.WriteByte(row[col])
			}
		}
		n, err := strconv.ParseUint(digits.String(), 10, 64)
		if err != nil || n == 0 {
			// Blank column (no digits, or all zeros): group separator.
			target++
			continue
		}
		if target < len(groups) {
			groups[target] = append(groups[target], n)
		}
	}

	var total uint64
	for i, group := range groups {
		result := identity(ops[i])
		for _, n := range group {
			result = apply(ops[i], result, n)
		}
		total += result
	}

	return total, nil
}

func parseOperations(line string) ([]operation, error) {
	fields := strings.Fields(line)
	ops := make([]operation, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "+":
			ops = append(ops, opAdd)
		case "*":
			ops = append(ops, opMultiply)
		default:
			return nil, errors.Errorf("invalid operation %q", f)
		}
	}

	return ops, nil
}

func identity(op operation) uint64 {
	if op == opMultiply {
		return 1
	}

	return 0
}

func apply(op operation, acc, n uint64) uint64 {
	if op == opMultiply {
		return acc * n
	}

	return acc + n
}

// nonEmptyLines trims the input and drops blank lines; used by part 1
// where alignment does not matter.
func nonEmptyLines(input string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}

	return out
}

// rawLines keeps leading/trailing spaces inside lines intact; part 2
// depends on exact column positions.
func rawLines(input string) []string {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}

	return out
}
