package solve

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Solver is one day's puzzle solver. Part1 and Part2 must be pure
// functions of the input text: deterministic, no retained state, and
// failures (including "no answer exists for this input") reported as
// errors rather than panics.
type Solver interface {
	// Day returns the calendar day this solver answers, 1-based.
	Day() int

	// Part1 computes the first-part answer for the given input.
	Part1(input string) (uint64, error)

	// Part2 computes the second-part answer for the given input.
	Part2(input string) (uint64, error)
}

// Run solves both parts of one day against the given input, printing
// each answer and logging how long it took.
func Run(s Solver, input string) error {
	fmt.Printf("Day %02d\n", s.Day())
	fmt.Println("====================")

	start := time.Now()
	part1, err := s.Part1(input)
	if err != nil {
		return errors.Wrapf(err, "day %02d part 1", s.Day())
	}
	logrus.WithField("elapsed", time.Since(start)).Debug("part 1 finished")
	fmt.Printf("Part 1 solution: %d, took: %v\n", part1, time.Since(start))

	start = time.Now()
	part2, err := s.Part2(input)
	if err != nil {
		return errors.Wrapf(err, "day %02d part 2", s.Day())
	}
	logrus.WithField("elapsed", time.Since(start)).Debug("part 2 finished")
	fmt.Printf("Part 2 solution: %d, took: %v\n", part2, time.Since(start))
	fmt.Println()

	return nil
}

// ReadInput loads the puzzle input for a day from dir, following the
// inputs/dayNN.txt naming convention.
func ReadInput(dir string, day int) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading input for day %02d", day)
	}

	return string(data), nil
}
