package solve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frostworks/advent2025/solve"
)

func TestMap_PreservesOrder(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	got, err := solve.Map(items, func(n int) (int, error) {
		return n * 2, nil
	})
	require.NoError(t, err)
	require.Len(t, got, len(items))
	for i, v := range got {
		require.Equal(t, i*2, v)
	}
}

func TestMap_Empty(t *testing.T) {
	got, err := solve.Map(nil, func(int) (int, error) { return 0, nil })
	require.NoError(t, err)
	require.Empty(t, got)
}

var errBadItem = errors.New("bad item")

func TestMap_PropagatesSentinel(t *testing.T) {
	items := []int{1, 2, 3, 4}
	_, err := solve.Map(items, func(n int) (int, error) {
		if n == 3 {
			return 0, errBadItem
		}
		return n, nil
	})
	require.ErrorIs(t, err, errBadItem)
}
