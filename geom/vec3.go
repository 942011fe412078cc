package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadVec3 is returned when a "x,y,z" string cannot be parsed.
var ErrBadVec3 = errors.New("geom: malformed 3D vector")

// Vec3 is an integer point or displacement in 3D space.
type Vec3 struct {
	X, Y, Z int64
}

// V3 constructs a Vec3.
func V3(x, y, z int64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + o component-wise.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o component-wise.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// SquareDistance returns the squared Euclidean distance between v and o.
// Squared form keeps everything in integers; relative order is the same.
func (v Vec3) SquareDistance(o Vec3) int64 {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z

	return dx*dx + dy*dy + dz*dz
}

func (v Vec3) String() string { return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z) }

// ParseVec3 parses a comma-separated "x,y,z" triple.
func ParseVec3(s string) (Vec3, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return Vec3{}, fmt.Errorf("%w: %q", ErrBadVec3, s)
	}
	var coords [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("%w: %q", ErrBadVec3, s)
		}
		coords[i] = n
	}

	return Vec3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
