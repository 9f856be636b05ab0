// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// BFSLevels returns the hop distance from src to every reachable vertex of
// the graph with adjacency matrix A. Unreachable vertices have no entry.
//
// Steps per level d:
//  1. levels<q> = d: every frontier vertex is stamped with its depth.
//  2. q<¬levels,replace> = q lor.first A: the next frontier is the set of
//     out-neighbors that carry no level yet.
//  3. Stop when the frontier is empty, or after MaxDepth.
//
// Time complexity: O(depth·n + nnz(A)) kernel work.
func BFSLevels[T comparable](a *sparse.Matrix[T], src int, opts ...Option) (*sparse.Vector[int], error) {
	const method = "BFSLevels"
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

	levels, err := sparse.NewVector[int](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	q, err := sparse.NewVector[bool](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err = q.SetElement(src, true); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	lorFirst := algebra.NewSemiring("lor_first", algebra.LorMonoid(), algebra.First[bool, T]())
	stamp := sparse.NewDescriptor(sparse.WithLogger(o.Log))
	expand := sparse.NewDescriptor(sparse.WithMaskComplement(), sparse.WithReplace(), sparse.WithLogger(o.Log))

	for depth := 0; ; depth++ {
		if err = o.cancelled(method); err != nil {
			return nil, err
		}
		frontier := q.Nvals()
		if frontier == 0 {
			break
		}
		o.OnLevel(depth, frontier)
		o.Log.V(1).Info("bfs level", "algorithm", method, "depth", depth, "frontier", frontier)

		if err = sparse.VectorAssignValue(levels, q.StructureMask(), nil, depth, sparse.All(), stamp); err != nil {
			return nil, fmt.Errorf("%s: depth %d: %w", method, depth, err)
		}
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			break
		}
		if err = sparse.VxM(q, levels.StructureMask(), nil, lorFirst, q, a, expand); err != nil {
			return nil, fmt.Errorf("%s: depth %d: %w", method, depth, err)
		}
	}

	return levels, nil
}

// BFSParents returns the BFS tree rooted at src as a parent vector:
// parents(src) = src and parents(v) is the predecessor of v for every other
// reached vertex. Among several candidate parents on the previous level the
// smallest index wins, so the tree is deterministic.
//
// The frontier q carries each vertex's own index as its value, so
// q min.first A yields, for every newly reached vertex, the least frontier
// index adjacent to it.
func BFSParents[T comparable](a *sparse.Matrix[T], src int, opts ...Option) (*sparse.Vector[int], error) {
	const method = "BFSParents"
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

	parents, err := sparse.NewVector[int](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	q, err := sparse.NewVector[int](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err = parents.SetElement(src, src); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err = q.SetElement(src, src); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	minFirst := algebra.MinFirst[int, T]()
	second := algebra.Second[int, int]()
	expand := sparse.NewDescriptor(sparse.WithMaskComplement(), sparse.WithReplace(), sparse.WithLogger(o.Log))
	record := sparse.NewDescriptor(sparse.WithLogger(o.Log))

	for depth := 0; ; depth++ {
		if err = o.cancelled(method); err != nil {
			return nil, err
		}
		frontier := q.Nvals()
		if frontier == 0 {
			break
		}
		o.OnLevel(depth, frontier)
		o.Log.V(1).Info("bfs level", "algorithm", method, "depth", depth, "frontier", frontier)
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			break
		}

		if err = sparse.VxM(q, parents.StructureMask(), nil, minFirst, q, a, expand); err != nil {
			return nil, fmt.Errorf("%s: depth %d: %w", method, depth, err)
		}
		if err = sparse.VectorAssign(parents, q.StructureMask(), nil, q, sparse.All(), record); err != nil {
			return nil, fmt.Errorf("%s: depth %d: %w", method, depth, err)
		}
		if err = relabel(q, second); err != nil {
			return nil, fmt.Errorf("%s: depth %d: %w", method, depth, err)
		}
	}

	return parents, nil
}

// relabel rewrites q in place so that q(i) = i for every stored i.
func relabel(q *sparse.Vector[int], dup algebra.BinaryOp[int, int, int]) error {
	idx, _, err := q.ExtractTuples()
	if err != nil {
		return err
	}
	if err = q.Clear(); err != nil {
		return err
	}

	return q.Build(idx, idx, len(idx), dup)
}
