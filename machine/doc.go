// Package machine models one button-panel puzzle instance and parses
// its text encoding.
//
// A machine line has the form
//
//	[<bits>] (<idx,idx,...>) (<idx,idx,...>) ... {<int,int,...>}
//
// where <bits> is the target light pattern over {'#','.'} (bit i set
// iff character i is '#'), each parenthesized group is one button's
// zero-based bit-index set, and the brace group is the per-counter
// joltage requirement list.
//
// A button's index set is read two ways depending on the sub-problem:
// as a toggle mask over lights (XOR semantics, package toggle) or as
// an incidence set over counters (unit increments per press, package
// linopt). It is stored once and interpreted per caller.
//
// Machines are immutable after Parse; both solver packages treat them
// as read-only values with no shared state between instances.
package machine
