package day10

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frostworks/advent2025/machine"
)

const fixture = "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}\n[#] (0) {2}\n"

func TestPart1(t *testing.T) {
	// Panel one needs two presses, panel two a single press.
	got, err := New().Part1(fixture)
	require.NoError(t, err)
	require.Equal(t, uint64(3), got)
}

func TestPart2(t *testing.T) {
	// Panel one's joltage optimum is 10, panel two's is 2.
	got, err := New().Part2(fixture)
	require.NoError(t, err)
	require.Equal(t, uint64(12), got)
}

func TestPart1_MalformedInput(t *testing.T) {
	_, err := New().Part1("not a machine")
	require.ErrorIs(t, err, machine.ErrMalformedLine)
}

func TestPart1_UnreachablePanelFailsWholeDay(t *testing.T) {
	_, err := New().Part1("[#] (1) {0,1}")
	require.Error(t, err)
	require.Contains(t, err.Error(), "machine 1")
}
