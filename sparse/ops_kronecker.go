// SPDX-License-Identifier: MIT
// Package sparse: Kronecker products.
//
// For A (ma×na) and B (mb×nb) the product is (ma·mb)×(na·nb) with
//
//	T(ia·mb+ib, ja·nb+jb) = op(A(ia,ja), B(ib,jb))
//
// for every pair of stored entries. Output rows are produced already sorted:
// within row ia·mb+ib the column ja·nb+jb increases with ja, then jb.

package sparse

import (
	"github.com/katalvlaran/gblas/algebra"
)

// Kronecker computes C<M> = C ⊕ kron(A, B) with a binary operator.
func Kronecker[T, A, B comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[A, B, T], a *Matrix[A], b *Matrix[B], desc *Descriptor) error {
	if err := validateAlgebra("Kronecker", "op", op.Valid()); err != nil {
		return err
	}

	return kroneckerMatrix("Kronecker", op.Name(), c, mask, accum, op.Func(), a, b, desc)
}

// KroneckerMonoid computes C<M> = C ⊕ kron(A, B) with a monoid's operator.
func KroneckerMonoid[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	m algebra.Monoid[T], a, b *Matrix[T], desc *Descriptor) error {
	if err := validateAlgebra("KroneckerMonoid", "monoid", m.Valid()); err != nil {
		return err
	}

	return kroneckerMatrix("KroneckerMonoid", m.Name(), c, mask, accum, m.Op().Func(), a, b, desc)
}

// KroneckerSemiring computes C<M> = C ⊕ kron(A, B) with a semiring's multiply.
func KroneckerSemiring[T, A, B comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[A, B, T], a *Matrix[A], b *Matrix[B], desc *Descriptor) error {
	if err := validateAlgebra("KroneckerSemiring", "semiring", s.Valid()); err != nil {
		return err
	}

	return kroneckerMatrix("KroneckerSemiring", s.Name(), c, mask, accum, s.MultOp().Func(), a, b, desc)
}

func kroneckerMatrix[T, A, B comparable](kernel, opName string, c *Matrix[T], mask MatrixMask,
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
	if c.nrows != av.nrows*bv.nrows || c.ncols != av.ncols*bv.ncols {
		return dimErrorf(kernel, "C is %dx%d, kron(%dx%d, %dx%d) is %dx%d",
			c.nrows, c.ncols, av.nrows, av.ncols, bv.nrows, bv.ncols,
			av.nrows*bv.nrows, av.ncols*bv.ncols)
	}

	mb, nb := bv.nrows, bv.ncols
	var t [][]entry[T]
	for ia, arow := range av.rows {
		if len(arow) == 0 {
			continue
		}
		for ib, brow := range bv.rows {
			if len(brow) == 0 {
				continue
			}
			r := ia*mb + ib
			if r >= len(t) {
				t = append(t, make([][]entry[T], r+1-len(t))...)
			}
			out := make([]entry[T], 0, len(arow)*len(brow))
			for _, ea := range arow {
				for _, eb := range brow {
					out = append(out, entry[T]{idx: ea.idx*nb + eb.idx, val: f(ea.val, eb.val)})
				}
			}
			t[r] = out
		}
	}

	commitMatrix(c, t, matrixMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", c.nvals)

	return nil
}

// VectorKronecker computes w<m> = w ⊕ kron(u, v), where
// T(iu·size(v)+iv) = op(u(iu), v(iv)).
func VectorKronecker[T, A, B comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[A, B, T], u *Vector[A], v *Vector[B], desc *Descriptor) error {
	if err := validateAlgebra("VectorKronecker", "op", op.Valid()); err != nil {
		return err
	}

	return kroneckerVector("VectorKronecker", op.Name(), w, mask, accum, op.Func(), u, v, desc)
}

// VectorKroneckerMonoid is VectorKronecker with a monoid's operator.
func VectorKroneckerMonoid[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	m algebra.Monoid[T], u, v *Vector[T], desc *Descriptor) error {
	if err := validateAlgebra("VectorKroneckerMonoid", "monoid", m.Valid()); err != nil {
		return err
	}

	return kroneckerVector("VectorKroneckerMonoid", m.Name(), w, mask, accum, m.Op().Func(), u, v, desc)
}

// VectorKroneckerSemiring is VectorKronecker with a semiring's multiply.
func VectorKroneckerSemiring[T, A, B comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	s algebra.Semiring[A, B, T], u *Vector[A], v *Vector[B], desc *Descriptor) error {
	if err := validateAlgebra("VectorKroneckerSemiring", "semiring", s.Valid()); err != nil {
		return err
	}

	return kroneckerVector("VectorKroneckerSemiring", s.Name(), w, mask, accum, s.MultOp().Func(), u, v, desc)
}

func kroneckerVector[T, A, B comparable](kernel, opName string, w *Vector[T], mask VectorMask,
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
	if w.size != u.size*v.size {
		return dimErrorf(kernel, "w has %d, kron(%d, %d) has %d", w.size, u.size, v.size, u.size*v.size)
	}

	t := make([]entry[T], 0, len(u.entries)*len(v.entries))
	for _, eu := range u.entries {
		for _, ev := range v.entries {
			t = append(t, entry[T]{idx: eu.idx*v.size + ev.idx, val: f(eu.val, ev.val)})
		}
	}

	commitVector(w, t, vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", len(w.entries))

	return nil
}
