// Package day07 solves the tachyon manifold puzzle: a beam enters at
// S and travels straight down; each splitter (^) replaces a beam with
// two beams one column left and right. Part 1 counts splits; part 2
// tracks how many superposed particles occupy each beam column and
// sums the counts at the bottom.
package day07

import (
	"strings"

	"github.com/frostworks/advent2025/geom"
)

// Solver implements solve.Solver for day 7.
type Solver struct{}

// New returns the day 7 solver.
func New() *Solver { return &Solver{} }

// Day returns 7.
func (*Solver) Day() int { return 7 }

// Part1 counts beam splits on the way down.
func (*Solver) Part1(input string) (uint64, error) {
	return parseManifold(input).countSplits(), nil
}

// Part2 counts the particles across all beams at the bottom.
func (*Solver) Part2(input string) (uint64, error) {
	return parseManifold(input).countParticles(), nil
}

// manifold is the splitter layout: start position, splitter set, and
// total row count.
type manifold struct {
	start     geom.Vec2
	splitters map[geom.Vec2]struct{}
	height    int64
}

func parseManifold(input string) *manifold {
	m := &manifold{splitters: make(map[geom.Vec2]struct{})}
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	m.height = int64(len(lines))
	for y, line := range lines {
		for x, c := range line {
			switch c {
			case '^':
				m.splitters[geom.V2(int64(x), int64(y))] = struct{}{}
			case 'S':
				m.start = geom.V2(int64(x), int64(y))
			}
		}
	}

	return m
}

// countSplits advances a set of beam columns row by row; each beam
// hitting a splitter counts once and forks left and right.
func (m *manifold) countSplits() uint64 {
	beams := map[int64]struct{}{m.start.X: {}}
	var splits uint64
	for row := m.start.Y; row < m.height; row++ {
		next := make(map[int64]struct{}, len(beams))
		for beam := range beams {
			if _, hit := m.splitters[geom.V2(beam, row)]; hit {
				splits++
				next[beam-1] = struct{}{}
				next[beam+1] = struct{}{}
			} else {
				next[beam] = struct{}{}
			}
		}
		beams = next
	}

	return splits
}

// countParticles tracks the particle count per beam column; a split
// sends the full count both ways, superposing with whatever already
// flows there.
func (m *manifold) countParticles() uint64 {
	particles := map[int64]uint64{m.start.X: 1}
	for row := m.start.Y; row < m.height; row++ {
		next := make(map[int64]uint64, len(particles))
		for beam, count := range particles {
			if _, hit := m.splitters[geom.V2(beam, row)]; hit {
				next[beam-1] += count
				next[beam+1] += count
			} else {
				next[beam] += count
			}
		}
		particles = next
	}

	var total uint64
	for _, count := range particles {
		total += count
	}

	return total
}
