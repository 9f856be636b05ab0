// SPDX-License-Identifier: MIT

// Package sparse provides sparse vectors and matrices together with the
// masked, accumulated kernels of a generalized sparse linear-algebra
// engine: multiply (MxM, VxM, MxV), element-wise add and multiply, apply,
// reduce, extract, assign, transpose and Kronecker product, each
// parameterized by an algebra from package algebra.
//
// # Containers
//
// Vector[T] and Matrix[T] have a fixed shape chosen at construction
// (changeable only through Resize) and store entries sorted by position.
// A matrix is a lazily grown list of rows, each sorted by column. nvals
// always equals the number of stored positions.
//
//	m, _ := sparse.NewMatrix[float64](10, 10)
//	_ = m.SetElement(1, 5, 6.0)
//	v, err := m.ExtractElement(3, 3) // errors.Is(err, sparse.ErrNoValue)
//
// # Kernels
//
// Every kernel writes into its first argument and accepts, in order: an
// optional mask view (nil for none), an optional accumulator (nil for
// none), the algebra, the inputs, and an optional *Descriptor (nil for
// defaults):
//
//	err := sparse.MxM(c, nil, nil, algebra.MinPlus[int](), a, b, nil)
//
// The result T is merged as follows: Z = T (or C ⊕ T with an accumulator);
// positions allowed by the mask take Z; the rest keep C, or are cleared
// when the descriptor asks for replace. A kernel either fully succeeds or
// leaves its output unchanged.
//
// # Masks
//
// StructureMask, ComplementMask and ValueMask derive read-only views from
// a container. Out-of-bounds positions read false under every variant. A
// view is pinned to the source's version: mutate the source and the view
// goes stale (ErrStaleView). Derive a fresh view after each mutation.
//
// # Concurrency
//
// Each container guards itself with a sync.RWMutex. Kernels lock all of
// their participants in a global order, the output exclusively and the
// inputs shared, so concurrent kernels never deadlock and an input may
// alias the output. Each kernel itself runs on the calling goroutine.
//
// # Errors
//
// Failures are sentinel errors (ErrInvalidIndex, ErrDimensionMismatch,
// ...) wrapped with call-site context; branch with errors.Is, or use
// KindOf to tell usage errors from execution errors.
package sparse
