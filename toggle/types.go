package toggle

import "errors"

// Algorithm selects the search strategy used by MinPresses.
type Algorithm int

const (
	// Auto picks BruteForce for B ≤ 16 buttons and MeetInMiddle above.
	Auto Algorithm = iota

	// BruteForce enumerates all 2^B press selections.
	BruteForce

	// MeetInMiddle splits the buttons in half and merges the halves'
	// XOR-folds through a lookup table.
	MeetInMiddle
)

// bruteForceMax is the largest button count BruteForce will accept;
// 2^16 subsets keeps the exhaustive scan well under a millisecond.
const bruteForceMax = 16

// maxButtons caps the supported panel width. Press selections are
// uint64 bit sets and the meet-in-the-middle table stays small far
// below this, so the cap is about input sanity, not capability.
const maxButtons = 40

// Sentinel errors for the toggle search.
var (
	// ErrUnreachable is returned when no subset of buttons XOR-folds
	// to the target light pattern. It is a first-class outcome, not a
	// fault: callers aggregate it into "no answer for this machine".
	ErrUnreachable = errors.New("toggle: light pattern unreachable")

	// ErrTooManyButtons is returned when the panel exceeds maxButtons,
	// or exceeds bruteForceMax with BruteForce forced explicitly.
	ErrTooManyButtons = errors.New("toggle: too many buttons")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside
	// the defined set.
	ErrUnknownAlgorithm = errors.New("toggle: unknown algorithm")
)

// Options holds the tunables for MinPresses.
type Options struct {
	// Algorithm selects the search strategy; Auto by default.
	Algorithm Algorithm
}

// Option configures MinPresses via functional arguments.
type Option func(*Options)

// DefaultOptions returns the default MinPresses configuration.
func DefaultOptions() Options {
	return Options{Algorithm: Auto}
}

// WithAlgorithm forces a specific search strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}
