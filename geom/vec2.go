package geom

import "fmt"

// Unit directions on the 2D grid. Y grows downward, matching text
// input where line 0 is the top row.
var (
	Up        = Vec2{0, -1}
	Down      = Vec2{0, 1}
	Left      = Vec2{-1, 0}
	Right     = Vec2{1, 0}
	UpLeft    = Vec2{-1, -1}
	UpRight   = Vec2{1, -1}
	DownLeft  = Vec2{-1, 1}
	DownRight = Vec2{1, 1}
)

// Adjacent4 lists the orthogonal neighbor offsets.
var Adjacent4 = [4]Vec2{Up, Down, Left, Right}

// Adjacent8 lists the orthogonal plus diagonal neighbor offsets.
var Adjacent8 = [8]Vec2{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

// Vec2 is an integer point or displacement on a 2D grid.
type Vec2 struct {
	X, Y int64
}

// V2 constructs a Vec2.
func V2(x, y int64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o component-wise.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o component-wise.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Neighbors4 returns the four orthogonal neighbors of v.
func (v Vec2) Neighbors4() [4]Vec2 {
	var out [4]Vec2
	for i, d := range Adjacent4 {
		out[i] = v.Add(d)
	}

	return out
}

// Neighbors8 returns the eight surrounding neighbors of v.
func (v Vec2) Neighbors8() [8]Vec2 {
	var out [8]Vec2
	for i, d := range Adjacent8 {
		out[i] = v.Add(d)
	}

	return out
}

func (v Vec2) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }
