// Package day04 solves the paper roll warehouse puzzle: rolls sit on
// a grid and a forklift can only reach a roll with fewer than four of
// its eight neighbors occupied. Part 1 counts reachable rolls; part 2
// repeatedly removes reachable rolls until none are left and counts
// how many were taken.
package day04

import (
	"strings"

	"github.com/frostworks/advent2025/geom"
)

// Solver implements solve.Solver for day 4.
type Solver struct{}

// New returns the day 4 solver.
func New() *Solver { return &Solver{} }

// Day returns 4.
func (*Solver) Day() int { return 4 }

// Part1 counts the rolls a forklift can reach right now.
func (*Solver) Part1(input string) (uint64, error) {
	g := parseGrid(input)
	var count uint64
	for p := range g.rolls {
		if g.accessible(p) {
			count++
		}
	}

	return count, nil
}

// Part2 removes accessible rolls wave by wave until the layout stops
// changing, then reports how many rolls were removed.
func (*Solver) Part2(input string) (uint64, error) {
	g := parseGrid(input)
	before := len(g.rolls)
	g.removeAllAccessible()

	return uint64(before - len(g.rolls)), nil
}

// rollGrid is the set of occupied roll positions.
type rollGrid struct {
	rolls map[geom.Vec2]struct{}
}

func parseGrid(input string) *rollGrid {
	g := &rollGrid{rolls: make(map[geom.Vec2]struct{})}
	for y, line := range strings.Split(input, "\n") {
		for x, c := range line {
			if c == '@' {
				g.rolls[geom.V2(int64(x), int64(y))] = struct{}{}
			}
		}
	}

	return g
}

// accessible reports whether a forklift can reach the roll at p:
// fewer than four of its eight neighbors are occupied.
func (g *rollGrid) accessible(p geom.Vec2) bool {
	occupied := 0
	for _, n := range p.Neighbors8() {
		if _, ok := g.rolls[n]; ok {
			occupied++
		}
	}

	return occupied < 4
}

// removeAccessible removes every currently accessible roll at once,
// so one wave's removals do not unlock rolls within the same wave.
func (g *rollGrid) removeAccessible() {
	wave := make([]geom.Vec2, 0)
	for p := range g.rolls {
		if g.accessible(p) {
			wave = append(wave, p)
		}
	}
	for _, p := range wave {
		delete(g.rolls, p)
	}
}

// removeAllAccessible runs removal waves until a fixed point.
func (g *rollGrid) removeAllAccessible() {
	for {
		before := len(g.rolls)
		g.removeAccessible()
		if len(g.rolls) == before {
			return
		}
	}
}
