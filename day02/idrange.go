// Package day02 solves the invalid product ID puzzle: comma-separated
// inclusive ID ranges are scanned for IDs built from repetition.
// Part 1 flags IDs whose decimal form is one half repeated twice;
// part 2 flags any ID that is some substring repeated at least twice.
package day02

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/frostworks/advent2025/solve"
)

// Solver implements solve.Solver for day 2.
type Solver struct{}

// New returns the day 2 solver.
func New() *Solver { return &Solver{} }

// Day returns 2.
func (*Solver) Day() int { return 2 }

// Part1 sums the IDs whose decimal form is two equal halves.
func (*Solver) Part1(input string) (uint64, error) {
	ranges, err := parseRanges(input)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, r := range ranges {
		for _, id := range r.invalidIDs(halvesEqual) {
			total += id
		}
	}

	return total, nil
}

// Part2 sums the IDs that are any substring repeated, scanning ranges
// in parallel since each is independent.
func (*Solver) Part2(input string) (uint64, error) {
	ranges, err := parseRanges(input)
	if err != nil {
		return 0, err
	}
	sums, err := solve.Map(ranges, func(r idRange) (uint64, error) {
		var sum uint64
		for _, id := range r.invalidIDs(isRepeated) {
			sum += id
		}

		return sum, nil
	})
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, s := range sums {
		total += s
	}

	return total, nil
}

// idRange is an inclusive range of product IDs.
type idRange struct {
	start, end uint64
}

func parseRanges(input string) ([]idRange, error) {
	var ranges []idRange
	for _, part := range strings.Split(strings.TrimSpace(input), ",") {
		part = strings.TrimSpace(part)
		startStr, endStr, ok := strings.Cut(part, "-")
		if !ok {
			return nil, errors.Errorf("invalid range %q", part)
		}
		start, err := strconv.ParseUint(startStr, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid range start %q", part)
		}
		end, err := strconv.ParseUint(endStr, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid range end %q", part)
		}
		ranges = append(ranges, idRange{start: start, end: end})
	}

	return ranges, nil
}

// invalidIDs collects the IDs in the range matching the given
// invalidity rule.
func (r idRange) invalidIDs(invalid func(uint64) bool) []uint64 {
	var ids []uint64
	for id := r.start; id <= r.end; id++ {
		if invalid(id) {
			ids = append(ids, id)
		}
		if id == r.end {
			break // avoid wrapping at the uint64 ceiling
		}
	}

	return ids
}

// halvesEqual reports whether the ID's decimal form has even length
// with both halves identical.
func halvesEqual(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	if len(s)%2 != 0 {
		return false
	}
	half := len(s) / 2

	return s[:half] == s[half:]
}

// isRepeated reports whether the ID's decimal form is some substring
// repeated two or more times.
func isRepeated(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	for subLen := 1; subLen <= len(s)/2; subLen++ {
		if len(s)%subLen != 0 {
			continue
		}
		if strings.Repeat(s[:subLen], len(s)/subLen) == s {
			return true
		}
	}

	return false
}
