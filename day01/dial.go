// Package day01 solves the safe dial puzzle: a 100-position dial
// starting at 50, turned left or right by a list of instructions.
// Part 1 counts how often a turn lands exactly on zero; part 2 counts
// every click past zero, including full rotations.
package day01

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Solver implements solve.Solver for day 1.
type Solver struct{}

// New returns the day 1 solver.
func New() *Solver { return &Solver{} }

// Day returns 1.
func (*Solver) Day() int { return 1 }

// Part1 counts the turns that end on position zero.
func (*Solver) Part1(input string) (uint64, error) {
	d, err := parseDial(input)
	if err != nil {
		return 0, err
	}

	return d.countZeroLandings(), nil
}

// Part2 counts every click that passes or lands on zero.
func (*Solver) Part2(input string) (uint64, error) {
	d, err := parseDial(input)
	if err != nil {
		return 0, err
	}

	return d.countZeroCrossings(), nil
}

const (
	dialSize      = 100
	startPosition = 50
)

// dial is the safe dial: current position and the remaining turn
// instructions (negative = left, positive = right).
type dial struct {
	pos   int
	turns []int
}

func parseDial(input string) (*dial, error) {
	var turns []int
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < 2 {
			return nil, errors.Errorf("invalid instruction %q", line)
		}
		steps, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid step count in %q", line)
		}
		switch line[0] {
		case 'L':
			turns = append(turns, -steps)
		case 'R':
			turns = append(turns, steps)
		default:
			return nil, errors.Errorf("invalid direction %q", line)
		}
	}

	return &dial{pos: startPosition, turns: turns}, nil
}

// next returns the position after applying one turn, wrapping on the
// 100-position ring.
func (d *dial) next(turn int) int {
	p := (d.pos + turn) % dialSize
	if p < 0 {
		p += dialSize
	}

	return p
}

// countZeroLandings applies every turn and counts landings on zero.
func (d *dial) countZeroLandings() uint64 {
	var count uint64
	for _, turn := range d.turns {
		d.pos = d.next(turn)
		if d.pos == 0 {
			count++
		}
	}

	return count
}

// crossings counts how many times a single turn passes or lands on
// zero: one per complete rotation, plus one for a partial move that
// wraps around or stops exactly at zero.
func (d *dial) crossings(turn int) uint64 {
	if turn == 0 {
		return 0
	}

	abs := turn
	if abs < 0 {
		abs = -abs
	}
	count := uint64(abs / dialSize)

	remaining := abs % dialSize
	if remaining == 0 {
		return count
	}

	newPos := d.next(turn)
	if turn > 0 {
		// Moving right: crossed zero if we wrapped or stopped on it.
		if newPos <= d.pos {
			count++
		}
	} else {
		// Moving left: crossed zero if we wrapped or stopped on it,
		// unless the move started at zero (the first click already
		// leaves it).
		if (newPos > d.pos || newPos == 0) && d.pos > 0 {
			count++
		}
	}

	return count
}

// countZeroCrossings applies every turn, summing zero crossings.
func (d *dial) countZeroCrossings() uint64 {
	var count uint64
	for _, turn := range d.turns {
		count += d.crossings(turn)
		d.pos = d.next(turn)
	}

	return count
}
