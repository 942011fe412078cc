// Package toggle finds the minimum number of distinct button presses
// whose combined toggle reaches a machine's target light pattern.
//
// Each button may be pressed at most once and toggles its bit set via
// XOR, so a press selection is a subset of buttons and the reached
// pattern is the XOR-fold of the selected masks. MinPresses returns
// the smallest selection size that reaches the target, or
// ErrUnreachable when no subset does.
//
// Two exact algorithms are provided:
//
//   - BruteForce — enumerate all 2^B subsets. O(2^B · B) time; the
//     default for the puzzle's documented bound of B ≤ 16 buttons.
//   - MeetInMiddle — enumerate each half of the buttons, index the
//     first half's folds by pattern, and merge. O(2^(B/2)) space and
//     near-linear merge; used automatically when B grows past the
//     brute-force-friendly range.
//
// Both are pure and deterministic; repeated calls on the same machine
// return the same minimum. Any witness subset achieving the minimum
// is acceptable, so only the weight is reported.
package toggle
