package day05

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = "3-5\n10-14\n4-8\n\n1\n4\n12\n20\n"

func TestPart1(t *testing.T) {
	// Of the listed ingredients only 4 and 12 are inside a range.
	got, err := New().Part1(fixture)
	require.NoError(t, err)
	require.Equal(t, uint64(2), got)
}

func TestPart2(t *testing.T) {
	// 3-5 and 4-8 merge into 3-8 (6 ids) plus 10-14 (5 ids).
	got, err := New().Part2(fixture)
	require.NoError(t, err)
	require.Equal(t, uint64(11), got)
}

func TestParseInventory_MissingSeparator(t *testing.T) {
	_, err := parseInventory("3-5\n10-14")
	require.Error(t, err)
}

func TestTotalPossibleFresh(t *testing.T) {
	cases := []struct {
		name   string
		ranges []span
		want   uint64
	}{
		{name: "disjoint", ranges: []span{{1, 2}, {5, 6}}, want: 4},
		{name: "touching", ranges: []span{{1, 3}, {3, 6}}, want: 6},
		{name: "nested", ranges: []span{{1, 10}, {3, 5}}, want: 10},
		{name: "unsorted overlap", ranges: []span{{8, 12}, {1, 9}}, want: 12},
		{name: "single id", ranges: []span{{7, 7}}, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := &inventory{freshRanges: tc.ranges}
			require.Equal(t, tc.want, inv.totalPossibleFresh())
		})
	}
}
