package day11

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPart1(t *testing.T) {
	// you→a→out, you→b→out, you→b→a→out.
	got, err := New().Part1("you: a b\na: out\nb: a out\n")
	require.NoError(t, err)
	require.Equal(t, uint64(3), got)
}

func TestPart2_SingleChain(t *testing.T) {
	// svr→a→dac→b→fft→out visits both stations in one order only.
	got, err := New().Part2("svr: a\na: dac\ndac: b\nb: fft\nfft: out\n")
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)
}

func TestPart2_BothOrders(t *testing.T) {
	// A fan-out between dac and fft doubles the dac-first count; the
	// fft-first order has no path and contributes nothing.
	input := "svr: dac\ndac: a b\na: fft\nb: fft\nfft: out\n"
	got, err := New().Part2(input)
	require.NoError(t, err)
	require.Equal(t, uint64(2), got)
}

func TestCountPaths(t *testing.T) {
	g, err := parseGraph("s: a b\na: t\nb: t\nt:")
	require.NoError(t, err)
	require.Equal(t, uint64(2), g.countPaths("s", "t"))
	require.Equal(t, uint64(0), g.countPaths("t", "s"))
	require.Equal(t, uint64(1), g.countPaths("a", "a"))
}

func TestParseGraph_Invalid(t *testing.T) {
	_, err := parseGraph("no separator here")
	require.Error(t, err)
}
