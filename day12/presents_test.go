package day12

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	// The shape definitions before the blank line are ignored; only
	// the final section lists grids. The 30x30 grid has a hundred
	// 3x3 blocks for six presents, the 2x2 grid has none.
	input := "0:\n###\n###\n###\n\n30x30: 1 1 1 1 1 1\n2x2: 1 0 0 0 0 0\n"
	got, err := New().Part1(input)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)
}

func TestPart1_TruncationOrder(t *testing.T) {
	// 7x5 counts 7/3*5/3 = 3 blocks; dividing width and height
	// separately would give only 2 and reject this grid.
	got, err := New().Part1("7x5: 3 0 0 0 0 0\n")
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)
}

func TestPart2(t *testing.T) {
	got, err := New().Part2("anything")
	require.NoError(t, err)
	require.Equal(t, uint64(0), got)
}

func TestParseGrid(t *testing.T) {
	g, err := parseGrid("40x11: 3 0 2 0 0 1")
	require.NoError(t, err)
	require.Equal(t, uint64(40), g.width)
	require.Equal(t, uint64(11), g.height)
	require.Equal(t, [presentKinds]uint64{3, 0, 2, 0, 0, 1}, g.presents)
}

func TestParseGrid_Invalid(t *testing.T) {
	for _, bad := range []string{
		"40x11",
		"40: 1 1 1 1 1 1",
		"ax11: 1 1 1 1 1 1",
		"40x11: 1 2 3",
		"40x11: 1 1 1 1 1 x",
	} {
		_, err := parseGrid(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestSimpleFit(t *testing.T) {
	cases := []struct {
		name string
		grid presentGrid
		want bool
	}{
		{name: "plenty of room", grid: presentGrid{width: 9, height: 9, presents: [presentKinds]uint64{1, 1, 1}}, want: true},
		{name: "exactly full", grid: presentGrid{width: 3, height: 9, presents: [presentKinds]uint64{3}}, want: true},
		{name: "one too many", grid: presentGrid{width: 3, height: 9, presents: [presentKinds]uint64{4}}, want: false},
		{name: "too narrow for a block", grid: presentGrid{width: 2, height: 90, presents: [presentKinds]uint64{1}}, want: false},
		{name: "leftover height still counts", grid: presentGrid{width: 7, height: 5, presents: [presentKinds]uint64{3}}, want: true},
		{name: "leftover height caps out", grid: presentGrid{width: 7, height: 5, presents: [presentKinds]uint64{4}}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.grid.simpleFit())
		})
	}
}
