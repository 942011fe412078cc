package linopt

import "math"

// lpEps is the feasibility/optimality tolerance of the simplex.
// Requirements in the puzzle domain are small integers, so an
// absolute tolerance is sufficient.
const lpEps = 1e-7

type lpStatus int

const (
	lpOptimal lpStatus = iota
	lpInfeasible
)

// lp is a dense standard-form linear program:
//
//	minimize  c·x  subject to  a·x = rhs,  x ≥ 0,  rhs ≥ 0.
//
// Problem sizes here are tiny (tens of rows and columns), so a plain
// dense tableau with freshly computed reduced costs per pivot is both
// simple and fast enough.
type lp struct {
	rows, cols int
	a          [][]float64 // rows × cols
	rhs        []float64   // len rows, non-negative
	c          []float64   // len cols
}

// solve runs two-phase primal simplex with Bland's rule (smallest
// index entering and leaving), which terminates without cycling.
// On lpOptimal it returns the structural solution and objective.
func (p *lp) solve() (x []float64, obj float64, status lpStatus) {
	n := p.cols
	total := n + p.rows // artificial columns appended after structural ones

	tab := make([][]float64, p.rows)
	basis := make([]int, p.rows)
	for i := 0; i < p.rows; i++ {
		tab[i] = make([]float64, total+1)
		copy(tab[i], p.a[i])
		tab[i][n+i] = 1
		tab[i][total] = p.rhs[i]
		basis[i] = n + i
	}

	// Phase 1: minimize the artificial sum to find a feasible basis.
	cost1 := make([]float64, total)
	for j := n; j < total; j++ {
		cost1[j] = 1
	}
	if iterate(tab, basis, cost1, total) > lpEps {
		return nil, 0, lpInfeasible
	}
	tab, basis = driveOutArtificials(tab, basis, n)

	// Phase 2: the real objective. Artificial columns are barred from
	// entering (enterLimit = n) and none is basic after driveOut, so
	// they stay at zero.
	cost2 := make([]float64, total)
	copy(cost2, p.c)
	obj = iterate(tab, basis, cost2, n)

	x = make([]float64, n)
	for i, bj := range basis {
		if bj < n {
			x[bj] = tab[i][len(tab[i])-1]
		}
	}

	return x, obj, lpOptimal
}

// iterate pivots until no entering column with index < enterLimit has
// a negative reduced cost, then returns the objective value of the
// current basis.
func iterate(tab [][]float64, basis []int, cost []float64, enterLimit int) float64 {
	m := len(tab)
	rhsCol := len(tab[0]) - 1
	for {
		// Entering column: smallest index with negative reduced cost.
		enter := -1
		for j := 0; j < enterLimit; j++ {
			if isBasic(basis, j) {
				continue
			}
			r := cost[j]
			for i := 0; i < m; i++ {
				r -= cost[basis[i]] * tab[i][j]
			}
			if r < -lpEps {
				enter = j
				break
			}
		}
		if enter < 0 {
			break
		}

		// Leaving row: minimum ratio, smallest basis index on ties.
		leave := -1
		bestRatio := math.Inf(1)
		for i := 0; i < m; i++ {
			if tab[i][enter] <= lpEps {
				continue
			}
			ratio := tab[i][rhsCol] / tab[i][enter]
			if ratio < bestRatio-lpEps ||
				(ratio < bestRatio+lpEps && (leave < 0 || basis[i] < basis[leave])) {
				bestRatio = ratio
				leave = i
			}
		}
		if leave < 0 {
			// No binding row: the column is unbounded. Cannot occur
			// for these programs (every variable sits in a bound
			// row), so stop with the current basis.
			break
		}
		pivot(tab, basis, leave, enter)
	}

	obj := 0.0
	for i := 0; i < m; i++ {
		obj += cost[basis[i]] * tab[i][rhsCol]
	}

	return obj
}

// driveOutArtificials pivots any artificial variable still basic at
// level zero onto a structural column, dropping rows that turn out to
// be redundant. Afterwards no artificial is basic.
func driveOutArtificials(tab [][]float64, basis []int, n int) ([][]float64, []int) {
	outTab := make([][]float64, 0, len(tab))
	outBasis := make([]int, 0, len(basis))
	for i := 0; i < len(tab); i++ {
		if basis[i] >= n {
			pivoted := false
			for j := 0; j < n; j++ {
				if math.Abs(tab[i][j]) > lpEps && !isBasic(basis, j) {
					pivot(tab, basis, i, j)
					pivoted = true
					break
				}
			}
			if !pivoted {
				// Row is a linear combination of the others: drop it.
				continue
			}
		}
		outTab = append(outTab, tab[i])
		outBasis = append(outBasis, basis[i])
	}

	return outTab, outBasis
}

// pivot makes column enter basic in row leave.
func pivot(tab [][]float64, basis []int, leave, enter int) {
	width := len(tab[leave])
	pv := tab[leave][enter]
	for j := 0; j < width; j++ {
		tab[leave][j] /= pv
	}
	for i := range tab {
		if i == leave {
			continue
		}
		f := tab[i][enter]
		if f == 0 {
			continue
		}
		for j := 0; j < width; j++ {
			tab[i][j] -= f * tab[leave][j]
		}
	}
	basis[leave] = enter
}

func isBasic(basis []int, j int) bool {
	for _, b := range basis {
		if b == j {
			return true
		}
	}

	return false
}
