// SPDX-License-Identifier: MIT
// Package sparse: element-wise kernels.
//
//   - EWiseAdd*: union merge. A position stored in only one operand passes
//     through unchanged; a position stored in both is combined.
//   - EWiseMult*: intersection merge. Only positions stored in both
//     operands produce output.
//
// Both are two-pointer merges over sorted runs, O(nnz(A)+nnz(B)) per row.
// The operator flavors (binary op, monoid, semiring) differ only in which
// function is used to combine: the op itself, the monoid's op, or the
// semiring's add (for EWiseAdd) / multiply (for EWiseMult).

package sparse

import (
	"github.com/katalvlaran/gblas/algebra"
)

// EWiseAdd computes C<M> = C ⊕ (A ∪op B).
func EWiseAdd[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[T, T, T], a, b *Matrix[T], desc *Descriptor) error {
	if err := validateAlgebra("EWiseAdd", "op", op.Valid()); err != nil {
		return err
	}

	return ewiseAddMatrix("EWiseAdd", op.Name(), c, mask, accum, op.Func(), a, b, desc)
}

// EWiseAddMonoid is EWiseAdd combining shared positions with m's operator.
func EWiseAddMonoid[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	m algebra.Monoid[T], a, b *Matrix[T], desc *Descriptor) error {
	if err := validateAlgebra("EWiseAddMonoid", "monoid", m.Valid()); err != nil {
		return err
	}

	return ewiseAddMatrix("EWiseAddMonoid", m.Name(), c, mask, accum, m.Op().Func(), a, b, desc)
}

// EWiseAddSemiring is EWiseAdd combining shared positions with s's add.
func EWiseAddSemiring[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[T, T, T], a, b *Matrix[T], desc *Descriptor) error {
	if err := validateAlgebra("EWiseAddSemiring", "semiring", s.Valid()); err != nil {
		return err
	}

	return ewiseAddMatrix("EWiseAddSemiring", s.Name(), c, mask, accum, s.AddMonoid().Op().Func(), a, b, desc)
}

func ewiseAddMatrix[T comparable](kernel, opName string, c *Matrix[T], mask MatrixMask,
	accum *algebra.BinaryOp[T, T, T], f func(T, T) T, a, b *Matrix[T], desc *Descriptor) (err error) {
	if err := validateArgs(kernel, arg("C", c), arg("A", a), arg("B", b)); err != nil {
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
	av, bv := orient(a, desc.TransposeA()), orient(b, desc.TransposeB())
	if av.nrows != bv.nrows || av.ncols != bv.ncols || c.nrows != av.nrows || c.ncols != av.ncols {
		return dimErrorf(kernel, "C is %dx%d, A is %dx%d, B is %dx%d",
			c.nrows, c.ncols, av.nrows, av.ncols, bv.nrows, bv.ncols)
	}

	t := make([][]entry[T], max(len(av.rows), len(bv.rows)))
	for r := range t {
		t[r] = unionMerge(av.row(r), bv.row(r), f)
	}

	commitMatrix(c, t, matrixMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", c.nvals)

	return nil
}

// EWiseMult computes C<M> = C ⊕ (A ∩op B). The operand domains may differ.
func EWiseMult[T, A, B comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[A, B, T], a *Matrix[A], b *Matrix[B], desc *Descriptor) error {
	if err := validateAlgebra("EWiseMult", "op", op.Valid()); err != nil {
		return err
	}

	return ewiseMultMatrix("EWiseMult", op.Name(), c, mask, accum, op.Func(), a, b, desc)
}

// EWiseMultMonoid is EWiseMult combining with m's operator.
func EWiseMultMonoid[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	m algebra.Monoid[T], a, b *Matrix[T], desc *Descriptor) error {
	if err := validateAlgebra("EWiseMultMonoid", "monoid", m.Valid()); err != nil {
		return err
	}

	return ewiseMultMatrix("EWiseMultMonoid", m.Name(), c, mask, accum, m.Op().Func(), a, b, desc)
}

// EWiseMultSemiring is EWiseMult combining with s's multiply.
func EWiseMultSemiring[T, A, B comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[A, B, T], a *Matrix[A], b *Matrix[B], desc *Descriptor) error {
	if err := validateAlgebra("EWiseMultSemiring", "semiring", s.Valid()); err != nil {
		return err
	}

	return ewiseMultMatrix("EWiseMultSemiring", s.Name(), c, mask, accum, s.MultOp().Func(), a, b, desc)
}

func ewiseMultMatrix[T, A, B comparable](kernel, opName string, c *Matrix[T], mask MatrixMask,
	accum *algebra.BinaryOp[T, T, T], f func(A, B) T, a *Matrix[A], b *Matrix[B], desc *Descriptor) (err error) {
	if err := validateArgs(kernel, arg("C", c), arg("A", a), arg("B", b)); err != nil {
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
	av, bv := orient(a, desc.TransposeA()), orient(b, desc.TransposeB())
	if av.nrows != bv.nrows || av.ncols != bv.ncols || c.nrows != av.nrows || c.ncols != av.ncols {
		return dimErrorf(kernel, "C is %dx%d, A is %dx%d, B is %dx%d",
			c.nrows, c.ncols, av.nrows, av.ncols, bv.nrows, bv.ncols)
	}

	t := make([][]entry[T], min(len(av.rows), len(bv.rows)))
	for r := range t {
		t[r] = intersectMerge(av.row(r), bv.row(r), f)
	}

	commitMatrix(c, t, matrixMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", c.nvals)

	return nil
}

// ---------- vectors ----------

// VectorEWiseAdd computes w<m> = w ⊕ (u ∪op v).
func VectorEWiseAdd[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[T, T, T], u, v *Vector[T], desc *Descriptor) error {
	if err := validateAlgebra("VectorEWiseAdd", "op", op.Valid()); err != nil {
		return err
	}

	return ewiseAddVector("VectorEWiseAdd", op.Name(), w, mask, accum, op.Func(), u, v, desc)
}

// VectorEWiseAddMonoid is VectorEWiseAdd combining with m's operator.
func VectorEWiseAddMonoid[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	m algebra.Monoid[T], u, v *Vector[T], desc *Descriptor) error {
	if err := validateAlgebra("VectorEWiseAddMonoid", "monoid", m.Valid()); err != nil {
		return err
	}

	return ewiseAddVector("VectorEWiseAddMonoid", m.Name(), w, mask, accum, m.Op().Func(), u, v, desc)
}

// VectorEWiseAddSemiring is VectorEWiseAdd combining with s's add.
func VectorEWiseAddSemiring[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[T, T, T], u, v *Vector[T], desc *Descriptor) error {
	if err := validateAlgebra("VectorEWiseAddSemiring", "semiring", s.Valid()); err != nil {
		return err
	}

	return ewiseAddVector("VectorEWiseAddSemiring", s.Name(), w, mask, accum, s.AddMonoid().Op().Func(), u, v, desc)
}

func ewiseAddVector[T comparable](kernel, opName string, w *Vector[T], mask VectorMask,
	accum *algebra.BinaryOp[T, T, T], f func(T, T) T, u, v *Vector[T], desc *Descriptor) (err error) {
	if err := validateArgs(kernel, arg("w", w), arg("u", u), arg("v", v)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(w, u, v, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	if u.size != v.size || w.size != u.size {
		return dimErrorf(kernel, "w has %d, u has %d, v has %d", w.size, u.size, v.size)
	}

	commitVector(w, unionMerge(u.entries, v.entries, f), vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", len(w.entries))

	return nil
}

// VectorEWiseMult computes w<m> = w ⊕ (u ∩op v).
func VectorEWiseMult[T, A, B comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[A, B, T], u *Vector[A], v *Vector[B], desc *Descriptor) error {
	if err := validateAlgebra("VectorEWiseMult", "op", op.Valid()); err != nil {
		return err
	}

	return ewiseMultVector("VectorEWiseMult", op.Name(), w, mask, accum, op.Func(), u, v, desc)
}

// VectorEWiseMultMonoid is VectorEWiseMult combining with m's operator.
func VectorEWiseMultMonoid[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	m algebra.Monoid[T], u, v *Vector[T], desc *Descriptor) error {
	if err := validateAlgebra("VectorEWiseMultMonoid", "monoid", m.Valid()); err != nil {
		return err
	}

	return ewiseMultVector("VectorEWiseMultMonoid", m.Name(), w, mask, accum, m.Op().Func(), u, v, desc)
}

// VectorEWiseMultSemiring is VectorEWiseMult combining with s's multiply.
func VectorEWiseMultSemiring[T, A, B comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[A, B, T], u *Vector[A], v *Vector[B], desc *Descriptor) error {
	if err := validateAlgebra("VectorEWiseMultSemiring", "semiring", s.Valid()); err != nil {
		return err
	}

	return ewiseMultVector("VectorEWiseMultSemiring", s.Name(), w, mask, accum, s.MultOp().Func(), u, v, desc)
}

func ewiseMultVector[T, A, B comparable](kernel, opName string, w *Vector[T], mask VectorMask,
	accum *algebra.BinaryOp[T, T, T], f func(A, B) T, u *Vector[A], v *Vector[B], desc *Descriptor) (err error) {
	if err := validateArgs(kernel, arg("w", w), arg("u", u), arg("v", v)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(w, u, v, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	if u.size != v.size || w.size != u.size {
		return dimErrorf(kernel, "w has %d, u has %d, v has %d", w.size, u.size, v.size)
	}

	commitVector(w, intersectMerge(u.entries, v.entries, f), vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", len(w.entries))

	return nil
}
