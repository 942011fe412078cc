package solve

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item on a worker pool bounded by GOMAXPROCS,
// returning results in input order. Each item is handled by an
// independent task with no shared state, so results stay attributable
// to their source index no matter which worker finishes first. The
// first error cancels the batch and is returned as-is so callers can
// still match sentinel values with errors.Is.
func Map[T, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(item)
			if err != nil {
				return err
			}
			out[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
