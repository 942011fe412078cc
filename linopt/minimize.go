package linopt

import (
	"fmt"
	"math"
	"math/bits"
	"time"

	"github.com/frostworks/advent2025/machine"
)

// integralityEps is the tolerance for treating a relaxed press count
// as integral. Candidates are re-verified exactly, so this only
// influences when we attempt an incumbent, never its validity.
//
// Pruning is a different matter: node lower bounds come from the
// float64 simplex objective, so requirements must stay within
// float64's exact integer range (below 2^53) for the rounded bound to
// be safe. Incumbent totals are still summed in uint64 regardless.
const integralityEps = 1e-6

// Minimize returns the minimum total number of presses over all
// non-negative integer assignments satisfying every counter equality
// of m, or ErrInfeasible when no such assignment exists.
func Minimize(m machine.Machine, opts ...Option) (uint64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e, err := newEngine(m, o)
	if err != nil {
		return 0, err
	}

	return e.search()
}

// engine holds the per-solve constraint system and search state.
// Nothing survives between Minimize calls.
type engine struct {
	nButtons int
	rows     [][]int  // active counters → incident button indices
	req      []uint64 // requirement per active counter

	deadline    time.Time
	useDeadline bool
	steps       int

	best        uint64
	haveBest    bool
	sawOverflow bool
}

// node is one branch-and-bound subproblem: a box of per-button press
// bounds. The root box is [0, ub] with ub derived from the smallest
// requirement each button touches.
type node struct {
	lb, ub []uint64
}

// relaxation is the outcome of solving one node's LP.
type relaxation struct {
	infeasible bool
	lower      uint64    // rounded-up objective bound for the node
	integral   bool      // relaxed solution is (numerically) integral
	candidate  []uint64  // integral press counts, set when integral
	x          []float64 // relaxed press counts (absolute, lb included)
	branchVar  int       // most fractional variable, set when !integral
}

func newEngine(m machine.Machine, o Options) (*engine, error) {
	e := &engine{
		nButtons:    len(m.Buttons),
		deadline:    o.Deadline,
		useDeadline: !o.Deadline.IsZero(),
	}

	for c, target := range m.Joltage {
		var incident []int
		for i := range m.Buttons {
			if m.Incident(i, c) {
				incident = append(incident, i)
			}
		}
		if len(incident) == 0 {
			if target != 0 {
				return nil, fmt.Errorf("%w: counter %d requires %d but no button increments it", ErrInfeasible, c, target)
			}
			continue // vacuously satisfied, drop the row
		}
		e.rows = append(e.rows, incident)
		e.req = append(e.req, target)
	}

	return e, nil
}

// rootBox builds the root node. Every press count is capped by the
// smallest requirement among the counters its button touches: with
// 0/1 coefficients and non-negative terms, pressing past any single
// target already breaks that equality. Buttons touching no counter
// only cost, so they are pinned to zero.
func (e *engine) rootBox() node {
	ub := make([]uint64, e.nButtons)
	touched := make([]bool, e.nButtons)
	for r, incident := range e.rows {
		for _, i := range incident {
			if !touched[i] || e.req[r] < ub[i] {
				ub[i] = e.req[r]
				touched[i] = true
			}
		}
	}

	return node{lb: make([]uint64, e.nButtons), ub: ub}
}

// search runs depth-first branch-and-bound and returns the optimum.
func (e *engine) search() (uint64, error) {
	stack := []node{e.rootBox()}
	var rootBound uint64
	haveRoot := false

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := e.checkDeadline(); err != nil {
			return 0, err
		}

		rel := e.relax(n)
		if rel.infeasible {
			continue
		}
		if !haveRoot {
			rootBound = rel.lower
			haveRoot = true
		}
		if e.haveBest && rel.lower >= e.best {
			continue
		}

		if rel.integral && e.offer(rel.candidate) {
			if e.best <= rootBound {
				// The incumbent meets the global lower bound; no open
				// node can improve on it.
				return e.best, nil
			}
			continue
		}

		j, split, ok := e.splitPoint(n, rel)
		if !ok {
			// Single-point box already rejected exactly; nothing to
			// split.
			continue
		}

		// Down child (x_j ≤ split) is pushed first so the up child,
		// which moves toward satisfying the equalities, pops first.
		down := node{lb: cloneBounds(n.lb), ub: cloneBounds(n.ub)}
		down.ub[j] = split
		stack = append(stack, down)

		up := node{lb: cloneBounds(n.lb), ub: cloneBounds(n.ub)}
		up.lb[j] = split + 1
		stack = append(stack, up)
	}

	switch {
	case e.haveBest:
		return e.best, nil
	case e.sawOverflow:
		return 0, ErrOverflow
	default:
		return 0, ErrInfeasible
	}
}

// splitPoint picks the variable and value to branch on: the most
// fractional relaxed press count, split at its floor. When the
// relaxation was integral (a rounding-rejected candidate), any still
// movable variable is split at the middle of its range instead. Both
// children are strictly smaller boxes, so the search terminates.
func (e *engine) splitPoint(n node, rel relaxation) (j int, split uint64, ok bool) {
	j = rel.branchVar
	if !rel.integral {
		split = uint64(math.Floor(rel.x[j]))
		if split < n.lb[j] {
			split = n.lb[j]
		}
		if split >= n.ub[j] {
			split = n.ub[j] - 1
		}

		return j, split, true
	}
	for i := 0; i < e.nButtons; i++ {
		if n.lb[i] < n.ub[i] {
			return i, n.lb[i] + (n.ub[i]-n.lb[i])/2, true
		}
	}

	return 0, 0, false
}

func cloneBounds(b []uint64) []uint64 {
	out := make([]uint64, len(b))
	copy(out, b)

	return out
}

// relax solves the node's continuous relaxation. Press counts are
// shifted by their lower bounds (x = lb + y, 0 ≤ y ≤ ub−lb) so the LP
// is in standard form; one extra row per button carries the upper
// bound (y_i + s_i = ub_i − lb_i).
func (e *engine) relax(n node) relaxation {
	b := e.nButtons
	nRows := len(e.rows) + b
	nCols := 2 * b // y_0..y_{b-1}, then one slack per bound row

	p := &lp{
		rows: nRows,
		cols: nCols,
		a:    make([][]float64, nRows),
		rhs:  make([]float64, nRows),
		c:    make([]float64, nCols),
	}
	for i := range p.a {
		p.a[i] = make([]float64, nCols)
	}
	for j := 0; j < b; j++ {
		p.c[j] = 1
	}

	// Activity rows: Σ y over incident buttons = req − Σ lb.
	for r, incident := range e.rows {
		var fixed uint64
		for _, i := range incident {
			s, carry := bits.Add64(fixed, n.lb[i], 0)
			if carry != 0 {
				return relaxation{infeasible: true}
			}
			fixed = s
		}
		if fixed > e.req[r] {
			return relaxation{infeasible: true}
		}
		for _, i := range incident {
			p.a[r][i] = 1
		}
		p.rhs[r] = float64(e.req[r] - fixed)
	}

	// Bound rows: y_i + s_i = ub_i − lb_i.
	for i := 0; i < b; i++ {
		if n.lb[i] > n.ub[i] {
			return relaxation{infeasible: true}
		}
		row := len(e.rows) + i
		p.a[row][i] = 1
		p.a[row][b+i] = 1
		p.rhs[row] = float64(n.ub[i] - n.lb[i])
	}

	y, obj, status := p.solve()
	if status != lpOptimal {
		return relaxation{infeasible: true}
	}

	// Node objective = Σ lb + relaxed Σ y, rounded up to an integer
	// bound. Overflow here means every assignment in this box has an
	// unrepresentable total.
	var fixedTotal uint64
	for _, v := range n.lb {
		s, carry := bits.Add64(fixedTotal, v, 0)
		if carry != 0 {
			e.sawOverflow = true
			return relaxation{infeasible: true}
		}
		fixedTotal = s
	}
	ceilObj := math.Ceil(obj - integralityEps)
	if ceilObj < 0 {
		ceilObj = 0
	}
	lower, carry := bits.Add64(fixedTotal, uint64(ceilObj), 0)
	if carry != 0 {
		e.sawOverflow = true
		return relaxation{infeasible: true}
	}

	rel := relaxation{lower: lower, x: make([]float64, b), integral: true}
	bestFrac := 0.0
	for i := 0; i < b; i++ {
		rel.x[i] = float64(n.lb[i]) + y[i]
		frac := y[i] - math.Floor(y[i])
		dist := math.Min(frac, 1-frac)
		if dist > integralityEps {
			rel.integral = false
		}
		if dist > bestFrac {
			bestFrac = dist
			rel.branchVar = i
		}
	}

	if rel.integral {
		rel.candidate = make([]uint64, b)
		for i := 0; i < b; i++ {
			v := n.lb[i] + uint64(math.Round(y[i]))
			if v > n.ub[i] {
				v = n.ub[i]
			}
			rel.candidate[i] = v
		}
	}

	return rel
}

// offer verifies a candidate assignment with exact integer arithmetic
// and installs it as the incumbent when it satisfies every equality
// with a strictly better total. Reports whether the candidate was
// accepted as feasible.
func (e *engine) offer(x []uint64) bool {
	for r, incident := range e.rows {
		var sum uint64
		for _, i := range incident {
			s, carry := bits.Add64(sum, x[i], 0)
			if carry != 0 {
				return false
			}
			sum = s
		}
		if sum != e.req[r] {
			return false
		}
	}

	var total uint64
	for _, v := range x {
		s, carry := bits.Add64(total, v, 0)
		if carry != 0 {
			e.sawOverflow = true
			return false
		}
		total = s
	}

	if !e.haveBest || total < e.best {
		e.best = total
		e.haveBest = true
	}

	return true
}

// checkDeadline performs a sparse deadline test (every 64 nodes,
// including the first).
func (e *engine) checkDeadline() error {
	if !e.useDeadline {
		return nil
	}
	if e.steps&63 == 0 && time.Now().After(e.deadline) {
		return ErrDeadlineExceeded
	}
	e.steps++

	return nil
}
