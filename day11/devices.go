// Package day11 solves the device graph puzzle: each line names a
// device and the devices it feeds. Part 1 counts distinct paths from
// "you" to "out". Part 2 counts paths from "svr" to "out" that visit
// both "dac" and "fft", composed from per-segment path counts since
// every such path passes through the two stations in one of two
// orders.
package day11

import (
	"strings"

	"github.com/pkg/errors"
)

// Solver implements solve.Solver for day 11.
type Solver struct{}

// New returns the day 11 solver.
func New() *Solver { return &Solver{} }

// Day returns 11.
func (*Solver) Day() int { return 11 }

// Part1 counts distinct paths from "you" to "out".
func (*Solver) Part1(input string) (uint64, error) {
	g, err := parseGraph(input)
	if err != nil {
		return 0, err
	}

	return g.countPaths("you", "out"), nil
}

// Part2 counts "svr" → "out" paths that pass through both "dac" and
// "fft", in either order.
func (*Solver) Part2(input string) (uint64, error) {
	g, err := parseGraph(input)
	if err != nil {
		return 0, err
	}

	dacToOut := g.countPaths("dac", "out")
	fftToOut := g.countPaths("fft", "out")
	dacToFft := g.countPaths("dac", "fft")
	fftToDac := g.countPaths("fft", "dac")
	svrToFft := g.countPaths("svr", "fft")
	svrToDac := g.countPaths("svr", "dac")

	viaDacThenFft := svrToDac * dacToFft * fftToOut
	viaFftThenDac := svrToFft * fftToDac * dacToOut

	return viaDacThenFft + viaFftThenDac, nil
}

// graph is the device adjacency list.
type graph struct {
	succ map[string][]string
}

func parseGraph(input string) (*graph, error) {
	g := &graph{succ: make(map[string][]string)}
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.Errorf("invalid device line %q", line)
		}
		g.succ[strings.TrimSpace(name)] = strings.Fields(rest)
	}

	return g, nil
}

// countPaths counts distinct start→end paths with a memoized DFS.
// The device graph is a DAG, so each node's count is fixed once
// computed.
func (g *graph) countPaths(start, end string) uint64 {
	memo := make(map[string]uint64, len(g.succ))
	var walk func(node string) uint64
	walk = func(node string) uint64 {
		if node == end {
			return 1
		}
		if n, ok := memo[node]; ok {
			return n
		}
		var n uint64
		for _, next := range g.succ[node] {
			n += walk(next)
		}
		memo[node] = n

		return n
	}

	return walk(start)
}
