package toggle

import (
	"fmt"

	"github.com/frostworks/advent2025/machine"
)

// MinPresses returns the minimum number of buttons that must be
// selected (each at most once) so that XOR-folding their toggle masks
// equals m.Lights. It returns ErrUnreachable when no subset reaches
// the target.
func MinPresses(m machine.Machine, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := len(m.Buttons)
	if b > maxButtons {
		return 0, fmt.Errorf("%w: %d buttons (max %d)", ErrTooManyButtons, b, maxButtons)
	}

	algo := o.Algorithm
	if algo == Auto {
		if b <= bruteForceMax {
			algo = BruteForce
		} else {
			algo = MeetInMiddle
		}
	}

	switch algo {
	case BruteForce:
		if b > bruteForceMax {
			return 0, fmt.Errorf("%w: %d buttons exceeds brute-force limit %d", ErrTooManyButtons, b, bruteForceMax)
		}

		return bruteForce(m)
	case MeetInMiddle:
		return meetInMiddle(m)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, o.Algorithm)
	}
}

// bruteForce scans every press selection and keeps the lightest one
// that reaches the target pattern.
func bruteForce(m machine.Machine) (int, error) {
	best := -1
	limit := uint64(1) << uint(len(m.Buttons))
	for sel := uint64(0); sel < limit; sel++ {
		if m.PressAll(sel) != m.Lights {
			continue
		}
		if w := machine.Weight(sel); best < 0 || w < best {
			best = w
		}
	}
	if best < 0 {
		return 0, ErrUnreachable
	}

	return best, nil
}
