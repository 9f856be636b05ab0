// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// SSSP computes single-source shortest-path distances from src with the
// Bellman-Ford recurrence expressed over the min-plus semiring:
//
//	d = d min (d min.+ A)
//
// d starts with d(src) = 0 and only ever decreases. The loop stops as soon
// as a round leaves d unchanged. If the n-th round still changes d, a
// negative cycle is reachable from src and ErrNegativeCycle is returned.
//
// With WithMaxIterations(k) at most k rounds run and the result is the
// k-hop bounded distance vector; negative-cycle detection then only
// applies if k ≥ n.
//
// Unreachable vertices have no entry. Negative edge weights are allowed.
//
// Complexity: O(n·(n + nnz(A))) kernel work in the worst case.
func SSSP[T algebra.Number](a *sparse.Matrix[T], src int, opts ...Option) (*sparse.Vector[T], error) {
	const method = "SSSP"
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n, err := squareDim(method, a)
	if err != nil {
		return nil, err
	}
	if err = checkSource(method, src, n); err != nil {
		return nil, err
	}

	d, err := sparse.NewVector[T](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err = d.SetElement(src, 0); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	rounds := n
	if o.MaxIterations > 0 && o.MaxIterations < rounds {
		rounds = o.MaxIterations
	}
	minPlus := algebra.MinPlus[T]()
	minOp := algebra.Min[T]()
	desc := sparse.NewDescriptor(sparse.WithLogger(o.Log))

	for round := 1; round <= rounds; round++ {
		if err = o.cancelled(method); err != nil {
			return nil, err
		}
		prev, err := d.Dup()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if err = sparse.VxM(d, nil, &minOp, minPlus, d, a, desc); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", method, round, err)
		}
		moved, err := changed(prev, d, desc)
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", method, round, err)
		}
		o.Log.V(1).Info("relaxation round", "algorithm", method, "round", round, "reached", d.Nvals(), "changed", moved)
		if !moved {
			return d, nil
		}
		if round == n {
			return nil, fmt.Errorf("%s: source %d: %w", method, src, ErrNegativeCycle)
		}
	}

	return d, nil
}

// changed reports whether cur differs from prev, given that cur was
// derived from prev by a monotone update that never removes entries.
// A new entry shows up in the count; an updated one in the element-wise
// inequality folded with lor.
func changed[T comparable](prev, cur *sparse.Vector[T], desc *sparse.Descriptor) (bool, error) {
	if prev.Nvals() != cur.Nvals() {
		return true, nil
	}
	diff, err := sparse.NewVector[bool](cur.Size())
	if err != nil {
		return false, err
	}
	if err = sparse.VectorEWiseMult(diff, nil, nil, algebra.NotEqual[T](), prev, cur, desc); err != nil {
		return false, err
	}
	var some bool
	if err = sparse.VectorReduce(&some, nil, algebra.LorMonoid(), diff, desc); err != nil {
		return false, err
	}

	return some, nil
}
