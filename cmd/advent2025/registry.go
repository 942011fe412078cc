package main

import (
	"github.com/pkg/errors"

	"github.com/frostworks/advent2025/day01"
	"github.com/frostworks/advent2025/day02"
	"github.com/frostworks/advent2025/day03"
	"github.com/frostworks/advent2025/day04"
	"github.com/frostworks/advent2025/day05"
	"github.com/frostworks/advent2025/day06"
	"github.com/frostworks/advent2025/day07"
	"github.com/frostworks/advent2025/day08"
	"github.com/frostworks/advent2025/day09"
	"github.com/frostworks/advent2025/day10"
	"github.com/frostworks/advent2025/day11"
	"github.com/frostworks/advent2025/day12"
	"github.com/frostworks/advent2025/solve"
)

// solvers lists every implemented day, in calendar order.
var solvers = []solve.Solver{
	day01.New(),
	day02.New(),
	day03.New(),
	day04.New(),
	day05.New(),
	day06.New(),
	day07.New(),
	day08.New(),
	day09.New(),
	day10.New(),
	day11.New(),
	day12.New(),
}

// solverFor returns the solver registered for day, if any.
func solverFor(day int) (solve.Solver, error) {
	for _, s := range solvers {
		if s.Day() == day {
			return s, nil
		}
	}

	return nil, errors.Errorf("no solver implemented for day %d", day)
}
