package linopt

import (
	"errors"
	"time"
)

// Sentinel errors for the linear minimizer.
var (
	// ErrInfeasible is returned when no non-negative integer press
	// assignment satisfies every counter equality. Like
	// toggle.ErrUnreachable it is a first-class outcome the caller
	// branches on, not a fault.
	ErrInfeasible = errors.New("linopt: no feasible assignment")

	// ErrOverflow is returned when a press total cannot be
	// represented in 64 bits. This is a fatal configuration error:
	// sums are never allowed to wrap silently.
	ErrOverflow = errors.New("linopt: press total exceeds uint64 range")

	// ErrDeadlineExceeded is returned when the optional soft deadline
	// expires before the search proves an optimum.
	ErrDeadlineExceeded = errors.New("linopt: deadline exceeded")
)

// Options holds the tunables for Minimize.
type Options struct {
	// Deadline, if non-zero, is a soft time budget for the search.
	// Checks are sparse so the hot path stays branch-free; the search
	// either proves an optimum in time or fails with
	// ErrDeadlineExceeded. It never returns a weaker bound.
	Deadline time.Time
}

// Option configures Minimize via functional arguments.
type Option func(*Options)

// DefaultOptions returns the default Minimize configuration:
// no deadline.
func DefaultOptions() Options {
	return Options{}
}

// WithDeadline sets a soft time budget for the search.
func WithDeadline(t time.Time) Option {
	return func(o *Options) { o.Deadline = t }
}
