// Package day09 solves the tile floor puzzle: red tiles are the
// vertices of a rectilinear polygon. Part 1 finds the largest
// rectangle spanned by any two red tiles. Part 2 additionally
// requires the rectangle to cross no polygon edge, so it lies
// entirely on red or green tiles.
package day09

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/frostworks/advent2025/geom"
)

// Solver implements solve.Solver for day 9.
type Solver struct{}

// New returns the day 9 solver.
func New() *Solver { return &Solver{} }

// Day returns 9.
func (*Solver) Day() int { return 9 }

// Part1 returns the area of the largest rectangle spanned by two red
// tiles, boundaries included.
func (*Solver) Part1(input string) (uint64, error) {
	floor, err := parseFloor(input)
	if err != nil {
		return 0, err
	}
	rects := floor.rectangles()
	if len(rects) == 0 {
		return 0, errors.New("no rectangle can be formed")
	}

	return rectArea(rects[0].a, rects[0].b), nil
}

// Part2 returns the area of the largest such rectangle that crosses
// no polygon edge.
func (*Solver) Part2(input string) (uint64, error) {
	floor, err := parseFloor(input)
	if err != nil {
		return 0, err
	}
	a, b, err := floor.largestEnclosed()
	if err != nil {
		return 0, err
	}

	return rectArea(a, b), nil
}

// tileFloor is the ordered list of red tiles; consecutive tiles (and
// last→first) form the polygon's axis-aligned edges.
type tileFloor struct {
	reds []geom.Vec2
}

// ErrDiagonalEdge is returned when consecutive red tiles share
// neither coordinate; the floor plan promises rectilinear edges.
var ErrDiagonalEdge = errors.New("day09: polygon edge is neither horizontal nor vertical")

func parseFloor(input string) (*tileFloor, error) {
	floor := &tileFloor{}
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		xStr, yStr, ok := strings.Cut(strings.TrimSpace(line), ",")
		if !ok {
			return nil, errors.Errorf("invalid tile %q", line)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(xStr), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid tile %q", line)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(yStr), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid tile %q", line)
		}
		floor.reds = append(floor.reds, geom.V2(x, y))
	}

	return floor, nil
}

type rect struct {
	a, b geom.Vec2
}

// rectangles lists every red tile pair ordered by spanned area,
// largest first (stable, so equal areas keep generation order).
func (f *tileFloor) rectangles() []rect {
	rects := make([]rect, 0, len(f.reds)*(len(f.reds)-1)/2)
	for i := 0; i < len(f.reds); i++ {
		for j := i + 1; j < len(f.reds); j++ {
			rects = append(rects, rect{a: f.reds[i], b: f.reds[j]})
		}
	}
	sort.SliceStable(rects, func(i, j int) bool {
		return rectArea(rects[i].a, rects[i].b) > rectArea(rects[j].a, rects[j].b)
	})

	return rects
}

// largestEnclosed returns the corners of the largest rectangle that
// crosses no polygon edge.
func (f *tileFloor) largestEnclosed() (geom.Vec2, geom.Vec2, error) {
	for _, r := range f.rectangles() {
		ok, err := f.enclosed(r)
		if err != nil {
			return geom.Vec2{}, geom.Vec2{}, err
		}
		if ok {
			return r.a, r.b, nil
		}
	}

	return geom.Vec2{}, geom.Vec2{}, errors.New("no non-crossing rectangle found")
}

// enclosed reports whether the rectangle crosses any polygon edge. An
// edge only disqualifies when it passes strictly through the
// rectangle's interior; edges along the boundary are fine.
func (f *tileFloor) enclosed(r rect) (bool, error) {
	xmin, xmax := minMax(r.a.X, r.b.X)
	ymin, ymax := minMax(r.a.Y, r.b.Y)

	n := len(f.reds)
	for i, red := range f.reds {
		next := f.reds[(i+1)%n]
		switch {
		case red.X == next.X: // vertical edge
			ylmin, ylmax := minMax(red.Y, next.Y)
			if xmin < red.X && xmax > red.X && !(ymin >= ylmax || ymax <= ylmin) {
				return false, nil
			}
		case red.Y == next.Y: // horizontal edge
			xlmin, xlmax := minMax(red.X, next.X)
			if ymin < red.Y && ymax > red.Y && !(xmin >= xlmax || xmax <= xlmin) {
				return false, nil
			}
		default:
			return false, errors.Wrapf(ErrDiagonalEdge, "between %v and %v", red, next)
		}
	}

	return true, nil
}

// rectArea is the inclusive tile count of the rectangle spanned by
// two opposing corners.
func rectArea(a, b geom.Vec2) uint64 {
	w := abs(b.X-a.X) + 1
	h := abs(b.Y-a.Y) + 1

	return uint64(w) * uint64(h)
}

func minMax(a, b int64) (int64, int64) {
	if a < b {
		return a, b
	}

	return b, a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
