// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/gblas/algebra"
)

// Apply computes C<M> = C ⊕ op(A). The pattern of T equals the pattern of
// A (transposed when desc.TransposeA is set).
func Apply[T, A comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.UnaryOp[A, T], a *Matrix[A], desc *Descriptor) error {
	if err := validateAlgebra("Apply", "op", op.Valid()); err != nil {
		return err
	}

	return applyMatrix("Apply", op.Name(), c, mask, accum, op.Func(), a, desc)
}

// Apply1st computes C<M> = C ⊕ op(value, A): the scalar is bound to the
// operator's first operand.
func Apply1st[T, S, A comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[S, A, T], value S, a *Matrix[A], desc *Descriptor) error {
	if err := validateAlgebra("Apply1st", "op", op.Valid()); err != nil {
		return err
	}
	f := op.Func()

	return applyMatrix("Apply1st", op.Name(), c, mask, accum, func(x A) T { return f(value, x) }, a, desc)
}

// Apply2nd computes C<M> = C ⊕ op(A, value): the scalar is bound to the
// operator's second operand.
func Apply2nd[T, A, S comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[A, S, T], a *Matrix[A], value S, desc *Descriptor) error {
	if err := validateAlgebra("Apply2nd", "op", op.Valid()); err != nil {
		return err
	}
	f := op.Func()

	return applyMatrix("Apply2nd", op.Name(), c, mask, accum, func(x A) T { return f(x, value) }, a, desc)
}

func applyMatrix[T, A comparable](kernel, opName string, c *Matrix[T], mask MatrixMask,
	accum *algebra.BinaryOp[T, T, T], f func(A) T, a *Matrix[A], desc *Descriptor) (err error) {
	if err := validateArgs(kernel, arg("C", c), arg("A", a)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(c, a, matrixMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := matrixMaskErr(kernel, mask); err != nil {
		return err
	}
	av := orient(a, desc.TransposeA())
	if c.nrows != av.nrows || c.ncols != av.ncols {
		return dimErrorf(kernel, "C is %dx%d, A is %dx%d", c.nrows, c.ncols, av.nrows, av.ncols)
	}

	t := make([][]entry[T], len(av.rows))
	for r, run := range av.rows {
		t[r] = mapRun(run, f)
	}

	commitMatrix(c, t, matrixMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", c.nvals)

	return nil
}

// VectorApply computes w<m> = w ⊕ op(u).
func VectorApply[T, A comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.UnaryOp[A, T], u *Vector[A], desc *Descriptor) error {
	if err := validateAlgebra("VectorApply", "op", op.Valid()); err != nil {
		return err
	}

	return applyVector("VectorApply", op.Name(), w, mask, accum, op.Func(), u, desc)
}

// VectorApply1st computes w<m> = w ⊕ op(value, u).
func VectorApply1st[T, S, A comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[S, A, T], value S, u *Vector[A], desc *Descriptor) error {
	if err := validateAlgebra("VectorApply1st", "op", op.Valid()); err != nil {
		return err
	}
	f := op.Func()

	return applyVector("VectorApply1st", op.Name(), w, mask, accum, func(x A) T { return f(value, x) }, u, desc)
}

// VectorApply2nd computes w<m> = w ⊕ op(u, value).
func VectorApply2nd[T, A, S comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[A, S, T], u *Vector[A], value S, desc *Descriptor) error {
	if err := validateAlgebra("VectorApply2nd", "op", op.Valid()); err != nil {
		return err
	}
	f := op.Func()

	return applyVector("VectorApply2nd", op.Name(), w, mask, accum, func(x A) T { return f(x, value) }, u, desc)
}

func applyVector[T, A comparable](kernel, opName string, w *Vector[T], mask VectorMask,
	accum *algebra.BinaryOp[T, T, T], f func(A) T, u *Vector[A], desc *Descriptor) (err error) {
	if err := validateArgs(kernel, arg("w", w), arg("u", u)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(w, u, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	if w.size != u.size {
		return dimErrorf(kernel, "w has %d, u has %d", w.size, u.size)
	}

	commitVector(w, mapRun(u.entries, f), vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", len(w.entries))

	return nil
}
