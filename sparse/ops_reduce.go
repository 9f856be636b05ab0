// SPDX-License-Identifier: MIT
// Package sparse: reductions.
//
// Reduce and VectorReduce fold every stored entry into a scalar, starting
// from the monoid identity. ReduceBinaryOp and ReduceMonoid fold each row
// of a matrix (each column under desc.TransposeA) into one vector entry;
// a row with no stored entries produces no output entry.
//
// The fold order is storage order. The result is order-independent only
// when the supplied operator is associative and commutative; that is a
// precondition on the caller, not something checked here.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
)

// Reduce folds all entries of A with m and stores the result in *val, or
// accum(*val, result) when accum is non-nil. An empty matrix reduces to
// m.Identity().
func Reduce[T comparable](val *T, accum *algebra.BinaryOp[T, T, T], m algebra.Monoid[T],
	a *Matrix[T], desc *Descriptor) (err error) {
	const kernel = "Reduce"
	if val == nil {
		return fmt.Errorf("%s: val: %w", kernel, ErrNullPointer)
	}
	if err := validateArgs(kernel, arg("A", a)); err != nil {
		return err
	}
	if err := validateAlgebra(kernel, "monoid", m.Valid()); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(nil, a)
	defer unlock()
	defer recoverPanic(kernel, &err)

	f := m.Op().Func()
	acc := m.Identity()
	for _, run := range a.rows {
		for _, e := range run {
			acc = f(acc, e.val)
		}
	}
	if accum != nil {
		acc = accum.Apply(*val, acc)
	}
	*val = acc
	trace(desc, kernel, "monoid", m.Name(), "nvals", a.nvals)

	return nil
}

// VectorReduce folds all entries of u with m into *val (see Reduce).
func VectorReduce[T comparable](val *T, accum *algebra.BinaryOp[T, T, T], m algebra.Monoid[T],
	u *Vector[T], desc *Descriptor) (err error) {
	const kernel = "VectorReduce"
	if val == nil {
		return fmt.Errorf("%s: val: %w", kernel, ErrNullPointer)
	}
	if err := validateArgs(kernel, arg("u", u)); err != nil {
		return err
	}
	if err := validateAlgebra(kernel, "monoid", m.Valid()); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(nil, u)
	defer unlock()
	defer recoverPanic(kernel, &err)

	f := m.Op().Func()
	acc := m.Identity()
	for _, e := range u.entries {
		acc = f(acc, e.val)
	}
	if accum != nil {
		acc = accum.Apply(*val, acc)
	}
	*val = acc
	trace(desc, kernel, "monoid", m.Name(), "nvals", len(u.entries))

	return nil
}

// ReduceBinaryOp computes w<m> = w ⊕ [op-fold of each row of A].
// The first stored value of a row seeds its fold.
func ReduceBinaryOp[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	op algebra.BinaryOp[T, T, T], a *Matrix[T], desc *Descriptor) error {
	if err := validateAlgebra("ReduceBinaryOp", "op", op.Valid()); err != nil {
		return err
	}
	f := op.Func()

	return reduceRows("ReduceBinaryOp", op.Name(), w, mask, accum, func(run []entry[T]) T {
		acc := run[0].val
		for _, e := range run[1:] {
			acc = f(acc, e.val)
		}
		return acc
	}, a, desc)
}

// ReduceMonoid computes w<m> = w ⊕ [m-fold of each row of A], each fold
// starting from m.Identity().
func ReduceMonoid[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	m algebra.Monoid[T], a *Matrix[T], desc *Descriptor) error {
	if err := validateAlgebra("ReduceMonoid", "monoid", m.Valid()); err != nil {
		return err
	}
	f := m.Op().Func()

	return reduceRows("ReduceMonoid", m.Name(), w, mask, accum, func(run []entry[T]) T {
		acc := m.Identity()
		for _, e := range run {
			acc = f(acc, e.val)
		}
		return acc
	}, a, desc)
}

func reduceRows[T comparable](kernel, opName string, w *Vector[T], mask VectorMask,
	accum *algebra.BinaryOp[T, T, T], fold func([]entry[T]) T, a *Matrix[T], desc *Descriptor) (err error) {
	if err := validateArgs(kernel, arg("w", w), arg("A", a)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(w, a, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	av := orient(a, desc.TransposeA())
	if w.size != av.nrows {
		return dimErrorf(kernel, "w has %d, A has %d rows", w.size, av.nrows)
	}

	var t []entry[T]
	for r, run := range av.rows {
		if len(run) > 0 {
			t = append(t, entry[T]{idx: r, val: fold(run)})
		}
	}

	commitVector(w, t, vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "op", opName, "nvals", len(w.entries))

	return nil
}
