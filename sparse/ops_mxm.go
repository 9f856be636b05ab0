// SPDX-License-Identifier: MIT
// Package sparse: generalized multiplication kernels (MxM, VxM, MxV).
//
// MAIN DESCRIPTION
//
//	C<M> = C ⊕ (A ⊗.⊕ B), where ⊗ is the semiring multiply and ⊕ its add.
//
// Implementation (row-at-a-time SAXPY, Gustavson):
//
//	for each row i of A:
//	  acc := empty sorted run
//	  for each stored a(i,k):
//	    for each stored b(k,j):
//	      acc[j] = acc[j] ⊕ (a(i,k) ⊗ b(k,j))   // binary search, insert if new
//	  T(i,:) = acc
//
// The accumulator run stays sorted by column after every insertion; that
// is what makes the output row valid without a final sort. Every kernel
// here checks its product with assertRows/assertRun before writeback, so a
// broken run surfaces as ErrInvalidObject instead of corrupting C.
//
// Transposed operands are handled without materializing A or B:
//   - Aᵀ·B   scatters row k of A against row k of B.
//   - A·Bᵀ   takes sorted dot products of rows of A with rows of B.
//   - Aᵀ·Bᵀ  runs Gustavson over B's rows (multiply arguments kept in
//     A, B order) and transposes the product.
//
// Complexity: O(flops · log(row nnz)) time, O(nnz(T)) extra space.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
)

// MxM computes C<M> = C ⊕ A·B over semiring s.
// desc may transpose A and/or B, complement the mask and request replace.
//
// Errors: ErrNullPointer/ErrUninitializedObject for bad arguments,
// ErrDimensionMismatch when shapes do not compose, ErrStaleView for a
// stale mask, ErrPanic when an operator panics. C is unchanged on error.
func MxM[T, A, B comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[A, B, T], a *Matrix[A], b *Matrix[B], desc *Descriptor) (err error) {
	const kernel = "MxM"
	if err := validateArgs(kernel, arg("C", c), arg("A", a), arg("B", b)); err != nil {
		return err
	}
	if err := validateAlgebra(kernel, "semiring", s.Valid()); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(c, a, b, matrixMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := matrixMaskErr(kernel, mask); err != nil {
		return err
	}
	ta, tb := desc.TransposeA(), desc.TransposeB()
	ar, ac := dimsOf(a, ta)
	br, bc := dimsOf(b, tb)
	if ac != br || c.nrows != ar || c.ncols != bc {
		return dimErrorf(kernel, "C is %dx%d, A is %dx%d, B is %dx%d", c.nrows, c.ncols, ar, ac, br, bc)
	}

	var t [][]entry[T]
	switch {
	case !ta && !tb:
		t = gustavson(a.rows, b.rows, s.MultOp().Func(), s.AddMonoid().Op().Func())
	case ta && !tb:
		t = scatterTransposedA(a.rows, b.rows, ar, s.MultOp().Func(), s.AddMonoid().Op().Func())
	case !ta && tb:
		t = dotRows(a.rows, b.rows, s.MultOp().Func(), s.AddMonoid().Op().Func())
	default:
		t = gustavsonTransposedBoth(a.rows, b.rows, ar, s.MultOp().Func(), s.AddMonoid().Op().Func())
	}

	if err := assertRows(kernel, t, c.nrows, c.ncols); err != nil {
		return err
	}
	commitMatrix(c, t, matrixMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "semiring", s.Name(), "shape", [2]int{c.nrows, c.ncols}, "nvals", c.nvals)

	return nil
}

// gustavson multiplies row-major A by row-major B.
func gustavson[A, B, T any](aRows [][]entry[A], bRows [][]entry[B], mult func(A, B) T, add func(T, T) T) [][]entry[T] {
	t := make([][]entry[T], len(aRows))
	for i, arow := range aRows {
		var acc []entry[T]
		for _, aik := range arow {
			for _, bkj := range rowAt(bRows, aik.idx) {
				acc, _ = upsertWith(acc, bkj.idx, mult(aik.val, bkj.val), add)
			}
		}
		t[i] = acc
	}

	return t
}

// scatterTransposedA computes Aᵀ·B: every a(k,i) meets row k of B and is
// scattered into output row i.
func scatterTransposedA[A, B, T any](aRows [][]entry[A], bRows [][]entry[B], outRows int,
	mult func(A, B) T, add func(T, T) T) [][]entry[T] {
	t := make([][]entry[T], outRows)
	for k, arow := range aRows {
		brow := rowAt(bRows, k)
		if len(brow) == 0 {
			continue
		}
		for _, aki := range arow {
			acc := t[aki.idx]
			for _, bkj := range brow {
				acc, _ = upsertWith(acc, bkj.idx, mult(aki.val, bkj.val), add)
			}
			t[aki.idx] = acc
		}
	}

	return t
}

// dotRows computes A·Bᵀ: output (i,j) is the dot product of row i of A and
// row j of B. Iterating j in ascending order keeps each output row sorted.
func dotRows[A, B, T any](aRows [][]entry[A], bRows [][]entry[B], mult func(A, B) T, add func(T, T) T) [][]entry[T] {
	t := make([][]entry[T], len(aRows))
	for i, arow := range aRows {
		if len(arow) == 0 {
			continue
		}
		var out []entry[T]
		for j, brow := range bRows {
			if v, ok := dot(arow, brow, mult, add); ok {
				out = append(out, entry[T]{idx: j, val: v})
			}
		}
		t[i] = out
	}

	return t
}

// gustavsonTransposedBoth computes Aᵀ·Bᵀ = (B·A)ᵀ while still calling
// mult(a, b) with A's element first.
func gustavsonTransposedBoth[A, B, T any](aRows [][]entry[A], bRows [][]entry[B], outRows int,
	mult func(A, B) T, add func(T, T) T) [][]entry[T] {
	r := make([][]entry[T], len(bRows))
	for j, brow := range bRows {
		var acc []entry[T]
		for _, bjk := range brow {
			for _, aki := range rowAt(aRows, bjk.idx) {
				acc, _ = upsertWith(acc, aki.idx, mult(aki.val, bjk.val), add)
			}
		}
		r[j] = acc
	}

	return transposeRows(r, outRows)
}

// VxM computes w<m> = w ⊕ uᵀ·A over semiring s. desc.TransposeB reads A
// transposed.
func VxM[T, A, B comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[A, B, T], u *Vector[A], a *Matrix[B], desc *Descriptor) (err error) {
	const kernel = "VxM"
	if err := validateArgs(kernel, arg("w", w), arg("u", u), arg("A", a)); err != nil {
		return err
	}
	if err := validateAlgebra(kernel, "semiring", s.Valid()); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(w, u, a, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	tb := desc.TransposeB()
	ar, ac := dimsOf(a, tb)
	if u.size != ar || w.size != ac {
		return dimErrorf(kernel, "w has %d, u has %d, A is %dx%d", w.size, u.size, ar, ac)
	}

	mult, add := s.MultOp().Func(), s.AddMonoid().Op().Func()
	var t []entry[T]
	if !tb {
		for _, ui := range u.entries {
			for _, aij := range a.row(ui.idx) {
				t, _ = upsertWith(t, aij.idx, mult(ui.val, aij.val), add)
			}
		}
	} else {
		// (uᵀ·Aᵀ)(j) = Σ_i u(i)·A(j,i): one dot per stored row of A.
		for j, arow := range a.rows {
			if v, ok := dot(u.entries, arow, mult, add); ok {
				t = append(t, entry[T]{idx: j, val: v})
			}
		}
	}

	if err := assertRun(kernel, t, w.size); err != nil {
		return err
	}
	commitVector(w, t, vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "semiring", s.Name(), "size", w.size, "nvals", len(w.entries))

	return nil
}

// MxV computes w<m> = w ⊕ A·u over semiring s. desc.TransposeA reads A
// transposed.
func MxV[T, A, B comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[A, B, T], a *Matrix[A], u *Vector[B], desc *Descriptor) (err error) {
	const kernel = "MxV"
	if err := validateArgs(kernel, arg("w", w), arg("A", a), arg("u", u)); err != nil {
		return err
	}
	if err := validateAlgebra(kernel, "semiring", s.Valid()); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(w, a, u, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	ta := desc.TransposeA()
	ar, ac := dimsOf(a, ta)
	if u.size != ac || w.size != ar {
		return dimErrorf(kernel, "w has %d, A is %dx%d, u has %d", w.size, ar, ac, u.size)
	}

	mult, add := s.MultOp().Func(), s.AddMonoid().Op().Func()
	var t []entry[T]
	if !ta {
		for i, arow := range a.rows {
			if v, ok := dot(arow, u.entries, mult, add); ok {
				t = append(t, entry[T]{idx: i, val: v})
			}
		}
	} else {
		// (Aᵀ·u)(i) = Σ_j A(j,i)·u(j): scatter row j of A for every stored u(j).
		for _, uj := range u.entries {
			for _, aji := range a.row(uj.idx) {
				t, _ = upsertWith(t, aji.idx, mult(aji.val, uj.val), add)
			}
		}
	}

	if err := assertRun(kernel, t, w.size); err != nil {
		return err
	}
	commitVector(w, t, vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "semiring", s.Name(), "size", w.size, "nvals", len(w.entries))

	return nil
}

// assertRows checks that every product row is a sorted in-bounds run before
// it reaches the writeback stage. A violation is an engine bug, reported as
// ErrInvalidObject; the output is not touched.
func assertRows[T any](kernel string, t [][]entry[T], nrows, ncols int) error {
	if len(t) > nrows {
		return fmt.Errorf("%s: product has %d rows, output %d: %w", kernel, len(t), nrows, ErrInvalidObject)
	}
	for i, run := range t {
		if !isSortedRun(run, ncols) {
			return fmt.Errorf("%s: product row %d is not a sorted run: %w", kernel, i, ErrInvalidObject)
		}
	}

	return nil
}

// assertRun is assertRows for a single vector product.
func assertRun[T any](kernel string, t []entry[T], size int) error {
	if !isSortedRun(t, size) {
		return fmt.Errorf("%s: product is not a sorted run: %w", kernel, ErrInvalidObject)
	}

	return nil
}
