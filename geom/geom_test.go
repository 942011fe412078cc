package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frostworks/advent2025/geom"
)

func TestVec2_Arithmetic(t *testing.T) {
	v := geom.V2(3, -2)
	require.Equal(t, geom.V2(4, 0), v.Add(geom.V2(1, 2)))
	require.Equal(t, geom.V2(2, -4), v.Sub(geom.V2(1, 2)))
	require.Equal(t, "(3, -2)", v.String())
}

func TestVec2_Neighbors(t *testing.T) {
	origin := geom.V2(0, 0)

	n4 := origin.Neighbors4()
	require.Len(t, n4, 4)
	seen := make(map[geom.Vec2]struct{})
	for _, n := range n4 {
		require.Equal(t, int64(1), absV2(n))
		seen[n] = struct{}{}
	}
	require.Len(t, seen, 4)

	n8 := origin.Neighbors8()
	require.Len(t, n8, 8)
	seen = make(map[geom.Vec2]struct{})
	for _, n := range n8 {
		seen[n] = struct{}{}
	}
	require.Len(t, seen, 8)
	require.NotContains(t, seen, origin)
}

func absV2(v geom.Vec2) int64 {
	a := v.X
	if a < 0 {
		a = -a
	}
	b := v.Y
	if b < 0 {
		b = -b
	}

	return a + b
}

func TestVec3_SquareDistance(t *testing.T) {
	a := geom.V3(1, 2, 3)
	b := geom.V3(4, 2, -1)
	require.Equal(t, int64(25), a.SquareDistance(b))
	require.Equal(t, int64(25), b.SquareDistance(a))
	require.Equal(t, int64(0), a.SquareDistance(a))
}

func TestParseVec3(t *testing.T) {
	v, err := geom.ParseVec3(" 4, -2 , 17 ")
	require.NoError(t, err)
	require.Equal(t, geom.V3(4, -2, 17), v)

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		_, err := geom.ParseVec3(bad)
		require.ErrorIs(t, err, geom.ErrBadVec3, "input %q", bad)
	}
}
