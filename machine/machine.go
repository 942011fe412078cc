package machine

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Sentinel errors for machine parsing.
var (
	// ErrMalformedLine is returned when a machine line does not match
	// the [bits] (idx,...) ... {int,...} shape.
	ErrMalformedLine = errors.New("machine: malformed machine line")

	// ErrIndexRange is returned when a button references a bit index
	// outside the supported 0..63 mask width.
	ErrIndexRange = errors.New("machine: bit index out of range")
)

// MaxBits is the widest supported light/counter index. Masks are
// uint64, so any referenced index must be below this.
const MaxBits = 64

// Machine is one parsed button panel: the target light pattern, the
// per-button bit sets, and the per-counter joltage requirements.
//
// Button count is assumed small (≤16 for the brute-force toggle
// search; see package toggle for the wider meet-in-the-middle path).
type Machine struct {
	// Lights is the target light pattern; bit i set means light i
	// must end up on.
	Lights uint64

	// Buttons holds one bit set per button, in input order. Button i
	// occupies bit i of a press selection.
	Buttons []uint64

	// Joltage holds the required press sum per counter, in counter
	// order. Counter targets may need the full 64-bit range.
	Joltage []uint64
}

// PressAll XOR-folds the toggle masks of every button selected in
// sel (bit i of sel = button i pressed) and returns the resulting
// light pattern.
func (m Machine) PressAll(sel uint64) uint64 {
	var lights uint64
	for i, b := range m.Buttons {
		if sel&(1<<uint(i)) != 0 {
			lights ^= b
		}
	}

	return lights
}

// Incident reports whether button i increments counter c.
func (m Machine) Incident(i, c int) bool {
	if c >= MaxBits {
		return false
	}

	return m.Buttons[i]&(1<<uint(c)) != 0
}

// Parse parses a single machine line. All failures wrap
// ErrMalformedLine (or ErrIndexRange for out-of-width indices).
func Parse(line string) (Machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Machine{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	lights, err := parseLights(fields[0])
	if err != nil {
		return Machine{}, err
	}

	buttons := make([]uint64, 0, len(fields)-2)
	for _, f := range fields[1 : len(fields)-1] {
		mask, err := parseButton(f)
		if err != nil {
			return Machine{}, err
		}
		buttons = append(buttons, mask)
	}

	joltage, err := parseJoltage(fields[len(fields)-1])
	if err != nil {
		return Machine{}, err
	}

	return Machine{Lights: lights, Buttons: buttons, Joltage: joltage}, nil
}

// ParseAll parses one machine per non-empty input line.
func ParseAll(input string) ([]Machine, error) {
	var machines []Machine
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		machines = append(machines, m)
	}

	return machines, nil
}

// parseLights decodes "[.##.]" into a bit mask, bit i per character i.
func parseLights(s string) (uint64, error) {
	inner, ok := strip(s, "[", "]")
	if !ok || len(inner) > MaxBits {
		return 0, fmt.Errorf("%w: light pattern %q", ErrMalformedLine, s)
	}
	var mask uint64
	for i, c := range inner {
		switch c {
		case '#':
			mask |= 1 << uint(i)
		case '.':
		default:
			return 0, fmt.Errorf("%w: light pattern %q", ErrMalformedLine, s)
		}
	}

	return mask, nil
}

// parseButton decodes "(1,3)" into a bit mask. An empty group "()" is
// a button that toggles nothing.
func parseButton(s string) (uint64, error) {
	inner, ok := strip(s, "(", ")")
	if !ok {
		return 0, fmt.Errorf("%w: button %q", ErrMalformedLine, s)
	}
	if inner == "" {
		return 0, nil
	}
	var mask uint64
	for _, p := range strings.Split(inner, ",") {
		idx, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: button %q", ErrMalformedLine, s)
		}
		if idx >= MaxBits {
			return 0, fmt.Errorf("%w: index %d in button %q", ErrIndexRange, idx, s)
		}
		mask |= 1 << uint(idx)
	}

	return mask, nil
}

// parseJoltage decodes "{3,5,4,7}" into the per-counter requirement list.
func parseJoltage(s string) ([]uint64, error) {
	inner, ok := strip(s, "{", "}")
	if !ok || inner == "" {
		return nil, fmt.Errorf("%w: joltage list %q", ErrMalformedLine, s)
	}
	parts := strings.Split(inner, ",")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: joltage list %q", ErrMalformedLine, s)
		}
		out = append(out, n)
	}

	return out, nil
}

// strip removes a mandatory prefix and suffix, reporting whether both
// were present.
func strip(s, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) || len(s) < len(prefix)+len(suffix) {
		return "", false
	}

	return s[len(prefix) : len(s)-len(suffix)], true
}

// Weight returns the number of set bits in a press selection; kept
// here so both solver packages share one definition of toggle weight.
func Weight(sel uint64) int { return bits.OnesCount64(sel) }
