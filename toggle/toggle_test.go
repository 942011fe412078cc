package toggle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frostworks/advent2025/machine"
	"github.com/frostworks/advent2025/toggle"
)

// panelMachine is the six-button reference panel; the known minimum is
// two presses, (1,3) xor (2,3) = {1,2}.
func panelMachine(t *testing.T) machine.Machine {
	t.Helper()
	m, err := machine.Parse("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	require.NoError(t, err)

	return m
}

func TestMinPresses_ReferencePanel(t *testing.T) {
	got, err := toggle.MinPresses(panelMachine(t))
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

func TestMinPresses_AlgorithmsAgree(t *testing.T) {
	cases := []struct {
		name string
		line string
		want int
	}{
		{name: "reference panel", line: "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}", want: 2},
		{name: "single button", line: "[#] (0) {1}", want: 1},
		{name: "needs every button", line: "[###] (0) (1) (2) {1,1,1}", want: 3},
		{name: "already solved", line: "[...] (0) (1) {0,0}", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := machine.Parse(tc.line)
			require.NoError(t, err)

			bf, err := toggle.MinPresses(m, toggle.WithAlgorithm(toggle.BruteForce))
			require.NoError(t, err)
			mitm, err := toggle.MinPresses(m, toggle.WithAlgorithm(toggle.MeetInMiddle))
			require.NoError(t, err)

			require.Equal(t, tc.want, bf)
			require.Equal(t, bf, mitm)
		})
	}
}

func TestMinPresses_Unreachable(t *testing.T) {
	// The only button toggles light 1, never light 0.
	m := machine.Machine{Lights: 0b01, Buttons: []uint64{0b10}}
	_, err := toggle.MinPresses(m)
	require.ErrorIs(t, err, toggle.ErrUnreachable)
}

func TestMinPresses_NoButtons(t *testing.T) {
	t.Run("dark target", func(t *testing.T) {
		got, err := toggle.MinPresses(machine.Machine{})
		require.NoError(t, err)
		require.Equal(t, 0, got)
	})
	t.Run("lit target", func(t *testing.T) {
		_, err := toggle.MinPresses(machine.Machine{Lights: 1})
		require.ErrorIs(t, err, toggle.ErrUnreachable)
	})
}

func TestMinPresses_DuplicateButtons(t *testing.T) {
	// Two identical buttons cancel; the single press still wins.
	m := machine.Machine{Lights: 0b11, Buttons: []uint64{0b11, 0b11}}
	got, err := toggle.MinPresses(m)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestMinPresses_TooManyButtons(t *testing.T) {
	m := machine.Machine{Buttons: make([]uint64, 41)}
	_, err := toggle.MinPresses(m)
	require.ErrorIs(t, err, toggle.ErrTooManyButtons)
}

func TestMinPresses_BruteForceLimit(t *testing.T) {
	m := machine.Machine{Buttons: make([]uint64, 17)}
	_, err := toggle.MinPresses(m, toggle.WithAlgorithm(toggle.BruteForce))
	require.ErrorIs(t, err, toggle.ErrTooManyButtons)

	// Auto switches to meet-in-the-middle for the same panel; an
	// all-zero 17-button panel with a dark target is trivially solved.
	got, err := toggle.MinPresses(m)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestMinPresses_UnknownAlgorithm(t *testing.T) {
	m := machine.Machine{Buttons: []uint64{1}, Lights: 1}
	_, err := toggle.MinPresses(m, toggle.WithAlgorithm(toggle.Algorithm(99)))
	require.ErrorIs(t, err, toggle.ErrUnknownAlgorithm)
}

func TestMinPresses_MeetInMiddleWidePanel(t *testing.T) {
	// 20 buttons, each toggling its own light; the target needs
	// exactly the even-indexed half.
	m := machine.Machine{}
	for i := 0; i < 20; i++ {
		m.Buttons = append(m.Buttons, 1<<uint(i))
		if i%2 == 0 {
			m.Lights |= 1 << uint(i)
		}
	}

	got, err := toggle.MinPresses(m)
	require.NoError(t, err)
	require.Equal(t, 10, got)
}
