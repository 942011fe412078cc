// Package solve defines the thin contract every daily solver
// implements — parse input, answer part 1 and part 2 — plus the glue
// shared by all days: a timed runner, puzzle input loading, and a
// bounded parallel map for days whose per-item work is independent.
package solve
