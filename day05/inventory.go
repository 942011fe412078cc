// Package day05 solves the ingredient freshness puzzle: a block of
// inclusive freshness ranges, a blank line, then a list of ingredient
// IDs. Part 1 counts listed ingredients falling in any range; part 2
// merges overlapping ranges and sums how many IDs they cover in total.
package day05

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Solver implements solve.Solver for day 5.
type Solver struct{}

// New returns the day 5 solver.
func New() *Solver { return &Solver{} }

// Day returns 5.
func (*Solver) Day() int { return 5 }

// Part1 counts the listed ingredients inside any fresh range.
func (*Solver) Part1(input string) (uint64, error) {
	inv, err := parseInventory(input)
	if err != nil {
		return 0, err
	}

	return inv.countFresh(), nil
}

// Part2 sums the sizes of the fresh ranges after merging overlaps.
func (*Solver) Part2(input string) (uint64, error) {
	inv, err := parseInventory(input)
	if err != nil {
		return 0, err
	}

	return inv.totalPossibleFresh(), nil
}

// span is an inclusive ID range.
type span struct {
	start, end uint64
}

type inventory struct {
	freshRanges []span
	ingredients []uint64
}

func parseInventory(input string) (*inventory, error) {
	rangesPart, listPart, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, errors.New("missing blank line between ranges and ingredient list")
	}

	inv := &inventory{}
	for _, line := range strings.Split(rangesPart, "\n") {
		startStr, endStr, ok := strings.Cut(strings.TrimSpace(line), "-")
		if !ok {
			return nil, errors.Errorf("invalid range %q", line)
		}
		start, err := strconv.ParseUint(startStr, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid range %q", line)
		}
		end, err := strconv.ParseUint(endStr, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid range %q", line)
		}
		inv.freshRanges = append(inv.freshRanges, span{start: start, end: end})
	}
	for _, line := range strings.Split(listPart, "\n") {
		id, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ingredient %q", line)
		}
		inv.ingredients = append(inv.ingredients, id)
	}

	return inv, nil
}

func (inv *inventory) isFresh(id uint64) bool {
	for _, r := range inv.freshRanges {
		if id >= r.start && id <= r.end {
			return true
		}
	}

	return false
}

func (inv *inventory) countFresh() uint64 {
	var count uint64
	for _, id := range inv.ingredients {
		if inv.isFresh(id) {
			count++
		}
	}

	return count
}

// totalPossibleFresh merges overlapping ranges and sums their
// inclusive lengths.
func (inv *inventory) totalPossibleFresh() uint64 {
	ranges := make([]span, len(inv.freshRanges))
	copy(ranges, inv.freshRanges)
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })

	var merged []span
	for _, r := range ranges {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if r.start <= last.end {
				if r.end > last.end {
					last.end = r.end
				}
				continue
			}
		}
		merged = append(merged, r)
	}

	var total uint64
	for _, r := range merged {
		total += r.end - r.start + 1
	}

	return total
}
