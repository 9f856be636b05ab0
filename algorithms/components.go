// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// ConnectedComponents labels every vertex with the smallest vertex index
// of its (weakly) connected component. Edge direction is ignored: labels
// flow along A and along Aᵀ in every round.
//
//	labels = labels min (labels min.first A)
//	labels = labels min (labels min.first Aᵀ)
//
// The loop ends at the first round that changes nothing. WithMaxIterations
// caps the number of rounds; a capped run returns the partial labeling.
func ConnectedComponents[T comparable](a *sparse.Matrix[T], opts ...Option) (*sparse.Vector[int], error) {
	const method = "ConnectedComponents"
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n, err := squareDim(method, a)
	if err != nil {
		return nil, err
	}

	labels, err := sparse.NewVector[int](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	if err = labels.Build(ids, ids, n, algebra.Second[int, int]()); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	minFirst := algebra.MinFirst[int, T]()
	minOp := algebra.Min[int]()
	forward := sparse.NewDescriptor(sparse.WithLogger(o.Log))
	backward := sparse.NewDescriptor(sparse.WithTransposeB(), sparse.WithLogger(o.Log))

	// Every round either lowers some label or terminates, and a label can
	// drop at most n-1 times along a chain, so n rounds always suffice.
	rounds := n
	if o.MaxIterations > 0 && o.MaxIterations < rounds {
		rounds = o.MaxIterations
	}
	for round := 1; round <= rounds; round++ {
		if err = o.cancelled(method); err != nil {
			return nil, err
		}
		prev, err := labels.Dup()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if err = sparse.VxM(labels, nil, &minOp, minFirst, labels, a, forward); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", method, round, err)
		}
		if err = sparse.VxM(labels, nil, &minOp, minFirst, labels, a, backward); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", method, round, err)
		}
		moved, err := changed(prev, labels, forward)
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", method, round, err)
		}
		o.Log.V(1).Info("label round", "algorithm", method, "round", round, "changed", moved)
		if !moved {
			break
		}
	}

	return labels, nil
}

// ComponentCount returns the number of distinct labels in a vector
// produced by ConnectedComponents.
func ComponentCount(labels *sparse.Vector[int]) (int, error) {
	idx, vals, err := labels.ExtractTuples()
	if err != nil {
		return 0, fmt.Errorf("ComponentCount: %w", err)
	}
	count := 0
	for k, i := range idx {
		// A component's representative is labelled with itself.
		if vals[k] == i {
			count++
		}
	}

	return count, nil
}
