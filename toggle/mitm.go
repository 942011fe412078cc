package toggle

import (
	"github.com/frostworks/advent2025/machine"
)

// meetInMiddle splits the buttons into two halves, tabulates the
// lightest selection per reachable fold of the first half, then scans
// the second half: a right-half fold r combines with exactly the
// left-half folds equal to target XOR r. Cost drops from O(2^B) to
// O(2^(B/2)) enumeration plus hash lookups.
func meetInMiddle(m machine.Machine) (int, error) {
	half := len(m.Buttons) / 2
	left, right := m.Buttons[:half], m.Buttons[half:]

	// Lightest left-half selection per fold value.
	minLeft := make(map[uint64]int, 1<<uint(len(left)))
	leftLimit := uint64(1) << uint(len(left))
	for sel := uint64(0); sel < leftLimit; sel++ {
		fold := xorFold(left, sel)
		w := machine.Weight(sel)
		if cur, ok := minLeft[fold]; !ok || w < cur {
			minLeft[fold] = w
		}
	}

	best := -1
	rightLimit := uint64(1) << uint(len(right))
	for sel := uint64(0); sel < rightLimit; sel++ {
		need := m.Lights ^ xorFold(right, sel)
		lw, ok := minLeft[need]
		if !ok {
			continue
		}
		if w := lw + machine.Weight(sel); best < 0 || w < best {
			best = w
		}
	}
	if best < 0 {
		return 0, ErrUnreachable
	}

	return best, nil
}

// xorFold folds the masks of the buttons selected in sel.
func xorFold(buttons []uint64, sel uint64) uint64 {
	var fold uint64
	for i, b := range buttons {
		if sel&(1<<uint(i)) != 0 {
			fold ^= b
		}
	}

	return fold
}
