// Package day08 solves the junction box puzzle: 3D connector
// positions are wired together closest-pair first, merging the boxes
// that contain them. Part 1 stops after a fixed number of connection
// attempts and multiplies the three largest box sizes; part 2 keeps
// wiring until one box remains and multiplies the x-coordinates of
// the final merging pair.
package day08

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/frostworks/advent2025/geom"
)

// Solver implements solve.Solver for day 8.
type Solver struct{}

// New returns the day 8 solver.
func New() *Solver { return &Solver{} }

// Day returns 8.
func (*Solver) Day() int { return 8 }

// part1Connections is how many closest pairs part 1 processes on the
// real puzzle input.
const part1Connections = 1000

// Part1 connects the first 1000 closest pairs and scores the room.
func (*Solver) Part1(input string) (uint64, error) {
	room, err := parseRoom(input)
	if err != nil {
		return 0, err
	}

	return room.connectAndScore(part1Connections)
}

// Part2 wires until a single box remains and reports the product of
// the x-coordinates of the last pair that caused a merge.
func (*Solver) Part2(input string) (uint64, error) {
	room, err := parseRoom(input)
	if err != nil {
		return 0, err
	}

	return room.connectAll()
}

// junctionRoom is a collection of junction boxes; every connector
// starts in its own box.
type junctionRoom struct {
	boxes [][]geom.Vec3
}

func parseRoom(input string) (*junctionRoom, error) {
	room := &junctionRoom{}
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		v, err := geom.ParseVec3(line)
		if err != nil {
			return nil, err
		}
		room.boxes = append(room.boxes, []geom.Vec3{v})
	}

	return room, nil
}

// allConnectors flattens every box into one list, in box order.
func (r *junctionRoom) allConnectors() []geom.Vec3 {
	var out []geom.Vec3
	for _, box := range r.boxes {
		out = append(out, box...)
	}

	return out
}

// findBox returns the index of the box containing v, or -1.
func (r *junctionRoom) findBox(v geom.Vec3) int {
	for i, box := range r.boxes {
		for _, c := range box {
			if c == v {
				return i
			}
		}
	}

	return -1
}

// merge moves every connector of box from into box to (from's
// connectors first, preserving relative order) and drops from.
func (r *junctionRoom) merge(from, to int) {
	merged := make([]geom.Vec3, 0, len(r.boxes[from])+len(r.boxes[to]))
	merged = append(merged, r.boxes[from]...)
	merged = append(merged, r.boxes[to]...)
	r.boxes[to] = merged
	r.boxes = append(r.boxes[:from], r.boxes[from+1:]...)
}

// connectAndScore processes the first maxPairs closest pairs, merging
// boxes as needed, then returns the product of the three largest box
// sizes (or of all boxes when fewer remain).
func (r *junctionRoom) connectAndScore(maxPairs int) (uint64, error) {
	pairs := closestPairs(r.allConnectors())
	for i, p := range pairs {
		if i >= maxPairs {
			break
		}
		from, to := r.findBox(p.a), r.findBox(p.b)
		if from < 0 || to < 0 {
			return 0, errors.Errorf("connector %v or %v not in any box", p.a, p.b)
		}
		if from != to {
			r.merge(from, to)
		}
	}

	sort.Slice(r.boxes, func(i, j int) bool { return len(r.boxes[i]) > len(r.boxes[j]) })
	score := uint64(1)
	for i, box := range r.boxes {
		if i >= 3 {
			break
		}
		score *= uint64(len(box))
	}

	return score, nil
}

// connectAll keeps merging closest pairs until one box remains and
// returns the x-coordinate product of the final merging pair.
func (r *junctionRoom) connectAll() (uint64, error) {
	pairs := closestPairs(r.allConnectors())
	var lastA, lastB geom.Vec3
	for _, p := range pairs {
		if len(r.boxes) == 1 {
			break
		}
		from, to := r.findBox(p.a), r.findBox(p.b)
		if from < 0 || to < 0 {
			return 0, errors.Errorf("connector %v or %v not in any box", p.a, p.b)
		}
		if from != to {
			r.merge(from, to)
			lastA, lastB = p.a, p.b
		}
	}

	return uint64(lastA.X * lastB.X), nil
}

// pair is one candidate connection between two connectors.
type pair struct {
	a, b geom.Vec3
}

// closestPairs lists every unordered connector pair sorted by squared
// distance, closest first. Stable sort keeps equal-distance pairs in
// generation order so runs are reproducible.
func closestPairs(connectors []geom.Vec3) []pair {
	pairs := make([]pair, 0, len(connectors)*(len(connectors)-1)/2)
	for i := 0; i < len(connectors); i++ {
		for j := i + 1; j < len(connectors); j++ {
			pairs = append(pairs, pair{a: connectors[i], b: connectors[j]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].a.SquareDistance(pairs[i].b) < pairs[j].a.SquareDistance(pairs[j].b)
	})

	return pairs
}
