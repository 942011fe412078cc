// Package linopt finds the minimum total number of button presses
// (non-negative integers, one count per button, unbounded above)
// satisfying a machine's counter equalities: for every counter c, the
// press counts of the buttons incident on c must sum to exactly the
// joltage requirement of c.
//
// Minimize is exact: it returns the provably global minimum or
// ErrInfeasible, never a heuristic approximation.
//
// Algorithm outline (branch-and-bound over an LP relaxation):
//  1. Drop counters with requirement 0 and no incident buttons;
//     a nonzero requirement with no incident buttons is immediately
//     infeasible.
//  2. Bound each press count from above by the smallest requirement
//     among the counters its button touches (coefficients are 0/1 and
//     all terms are non-negative), making the search region finite.
//  3. At each node, solve the continuous relaxation with a two-phase
//     primal simplex. The relaxed objective is only ever used as a
//     lower bound and to pick a branching variable; incumbents are
//     verified in exact integer arithmetic before being accepted.
//  4. Branch on the most fractional press count (x ≤ ⌊v⌋ / x ≥ ⌈v⌉),
//     prune any node whose rounded-up bound cannot beat the incumbent,
//     and stop outright once the incumbent meets the root bound.
//
// Because every constraint coefficient is 0 or 1, the relaxation is
// tight and pruning converges quickly, but correctness never relies
// on that: the search is exhaustive over the bounded region.
//
// All integer accumulation is 64-bit with explicit carry checks; a
// press total too large for uint64 surfaces as ErrOverflow rather
// than wrapping. An optional soft deadline (WithDeadline) aborts long
// searches with ErrDeadlineExceeded — it never degrades an answer.
package linopt
