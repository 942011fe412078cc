package day08

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frostworks/advent2025/geom"
)

const fixture = "0,0,0\n1,0,0\n10,0,0\n11,0,0\n"

func TestConnectAndScore_LimitedPairs(t *testing.T) {
	room, err := parseRoom(fixture)
	require.NoError(t, err)

	// The two closest pairs form two boxes of two connectors each.
	score, err := room.connectAndScore(2)
	require.NoError(t, err)
	require.Equal(t, uint64(4), score)
}

func TestPart1_AllPairsCollapse(t *testing.T) {
	// With only six candidate pairs the 1000-connection cap never
	// binds, so everything ends up in one box of four.
	got, err := New().Part1(fixture)
	require.NoError(t, err)
	require.Equal(t, uint64(4), got)
}

func TestPart2(t *testing.T) {
	// The final merge joins (1,0,0) and (10,0,0).
	got, err := New().Part2(fixture)
	require.NoError(t, err)
	require.Equal(t, uint64(10), got)
}

func TestClosestPairs_Order(t *testing.T) {
	pairs := closestPairs([]geom.Vec3{
		geom.V3(0, 0, 0),
		geom.V3(5, 0, 0),
		geom.V3(6, 0, 0),
	})
	require.Len(t, pairs, 3)
	require.Equal(t, geom.V3(5, 0, 0), pairs[0].a)
	require.Equal(t, geom.V3(6, 0, 0), pairs[0].b)
}

func TestMerge(t *testing.T) {
	room := &junctionRoom{boxes: [][]geom.Vec3{
		{geom.V3(1, 1, 1)},
		{geom.V3(2, 2, 2)},
		{geom.V3(3, 3, 3)},
	}}
	room.merge(2, 0)
	require.Len(t, room.boxes, 2)
	require.Equal(t, []geom.Vec3{geom.V3(3, 3, 3), geom.V3(1, 1, 1)}, room.boxes[0])
}

func TestParseRoom_Invalid(t *testing.T) {
	_, err := parseRoom("1,2\n")
	require.ErrorIs(t, err, geom.ErrBadVec3)
}
