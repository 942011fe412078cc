// Package advent2025 collects one solver per day of the 2025 advent
// puzzle calendar, sharing only a thin "parse input → part 1 / part 2
// answer" contract.
//
// Most days are self-contained string or grid processing. The one
// subsystem with real algorithmic depth is the day-10 button panel:
// an exact subset search over light toggles and an exact integer
// linear minimizer over counter requirements. Those live in their own
// packages so they can be tested and reused independently of the
// puzzle glue.
//
// Layout:
//
//	machine/  — parsed button-panel model shared by both day-10 solvers
//	toggle/   — minimum-press subset search (brute force + meet-in-the-middle)
//	linopt/   — exact integer minimizer (branch-and-bound over an LP relaxation)
//	solve/    — Solver contract, timed runner, input loading, parallel map
//	geom/     — small integer 2D/3D vector helpers for the grid days
//	day01/…day12/ — the daily solvers
//	cmd/      — the advent2025 command-line entry point
//
// Every solver is a pure, deterministic function of its input text:
// no shared state, no I/O outside solve.ReadInput, and failures are
// sentinel errors rather than panics.
package advent2025
