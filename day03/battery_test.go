package day03

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighestJoltage_TwoDigits(t *testing.T) {
	cases := []struct {
		line string
		want uint64
	}{
		{line: "987654321111111", want: 98},
		{line: "811111111111119", want: 89},
		{line: "123456789", want: 89},
		{line: "987654321", want: 98},
		{line: "999999999999998", want: 99},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			b, err := newBank(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.want, b.highestJoltage(2))
		})
	}
}

func TestHighestJoltage_TwelveDigits(t *testing.T) {
	cases := []struct {
		line string
		want uint64
	}{
		{line: "987654321111111", want: 987654321111},
		{line: "811111111111119", want: 811111111119},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			b, err := newBank(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.want, b.highestJoltage(12))
		})
	}
}

func TestPart1(t *testing.T) {
	got, err := New().Part1("987654321111111\n811111111111119\n")
	require.NoError(t, err)
	require.Equal(t, uint64(187), got)
}

func TestPart2(t *testing.T) {
	got, err := New().Part2("987654321111111\n811111111111119\n")
	require.NoError(t, err)
	require.Equal(t, uint64(987654321111+811111111119), got)
}

func TestNewBank_InvalidBattery(t *testing.T) {
	_, err := newBank("12a4")
	require.Error(t, err)
}
