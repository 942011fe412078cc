package solve_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frostworks/advent2025/solve"
)

type fakeSolver struct {
	day       int
	part2Fail error
}

func (s *fakeSolver) Day() int { return s.day }

func (*fakeSolver) Part1(input string) (uint64, error) {
	return uint64(len(input)), nil
}

func (s *fakeSolver) Part2(string) (uint64, error) {
	if s.part2Fail != nil {
		return 0, s.part2Fail
	}

	return 42, nil
}

func TestRun(t *testing.T) {
	require.NoError(t, solve.Run(&fakeSolver{day: 3}, "abc"))
}

func TestRun_WrapsPartError(t *testing.T) {
	fail := errors.New("no answer")
	err := solve.Run(&fakeSolver{day: 7, part2Fail: fail}, "abc")
	require.ErrorIs(t, err, fail)
	require.Contains(t, err.Error(), "day 07 part 2")
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day05.txt"), []byte("payload\n"), 0o644))

	got, err := solve.ReadInput(dir, 5)
	require.NoError(t, err)
	require.Equal(t, "payload\n", got)
}

func TestReadInput_Missing(t *testing.T) {
	_, err := solve.ReadInput(t.TempDir(), 9)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
