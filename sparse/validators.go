// SPDX-License-Identifier: MIT
// Package sparse: argument validation and input orientation shared by the
// kernels. Every check here runs before the first mutation.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
)

// checker is implemented by *Matrix[T] and *Vector[T]; check is nil-safe.
type checker interface {
	check() error
}

// argCheck names one container argument for error context.
type argCheck struct {
	name string
	c    checker
}

func arg(name string, c checker) argCheck { return argCheck{name: name, c: c} }

// validateArgs reports the first nil or uninitialized container.
func validateArgs(kernel string, args ...argCheck) error {
	for _, a := range args {
		if err := a.c.check(); err != nil {
			return fmt.Errorf("%s: %s: %w", kernel, a.name, err)
		}
	}

	return nil
}

// validateAlgebra reports a zero-value operator, monoid or semiring.
func validateAlgebra(kernel, what string, valid bool) error {
	if !valid {
		return fmt.Errorf("%s: %s: %w", kernel, what, ErrUninitializedObject)
	}

	return nil
}

// validateAccum accepts nil (no accumulator) and rejects a non-nil zero op.
func validateAccum[T any](kernel string, accum *algebra.BinaryOp[T, T, T]) error {
	if accum != nil && !accum.Valid() {
		return fmt.Errorf("%s: accum: %w", kernel, ErrUninitializedObject)
	}

	return nil
}

// matrixMaskErr reports a broken or stale matrix mask. Caller holds the
// kernel lock set, which includes the mask source.
func matrixMaskErr(kernel string, mask MatrixMask) error {
	if mask == nil {
		return nil
	}
	if err := mask.errLocked(); err != nil {
		return fmt.Errorf("%s: mask: %w", kernel, err)
	}

	return nil
}

// vectorMaskErr is matrixMaskErr for vector masks.
func vectorMaskErr(kernel string, mask VectorMask) error {
	if mask == nil {
		return nil
	}
	if err := mask.errLocked(); err != nil {
		return fmt.Errorf("%s: mask: %w", kernel, err)
	}

	return nil
}

// rowsView is a read-only row-major reading of a matrix input, possibly
// transposed. Untransposed views share the container's rows and must
// never be handed to an output; transposed views are scratch copies.
type rowsView[T any] struct {
	rows  [][]entry[T]
	nrows int
	ncols int
}

func (v rowsView[T]) row(r int) []entry[T] { return rowAt(v.rows, r) }

// orient returns m as stored, sharing its rows, or a transposed copy
// built in O(nnz) scratch. MxM, VxM and MxV never call it with transpose
// set; they walk the stored rows directly. The container itself is never
// modified. Caller holds m's lock.
func orient[T comparable](m *Matrix[T], transpose bool) rowsView[T] {
	if !transpose {
		return rowsView[T]{rows: m.rows, nrows: m.nrows, ncols: m.ncols}
	}

	return rowsView[T]{rows: transposeRows(m.rows, m.ncols), nrows: m.ncols, ncols: m.nrows}
}

// dimsOf returns m's shape as the kernel sees it.
func dimsOf[T comparable](m *Matrix[T], transpose bool) (int, int) {
	if transpose {
		return m.ncols, m.nrows
	}

	return m.nrows, m.ncols
}

// trace logs a finished kernel at V(2).
func trace(d *Descriptor, kernel string, kv ...any) {
	if log := d.Logger().V(2); log.Enabled() {
		log.Info("kernel done", append([]any{"kernel", kernel}, kv...)...)
	}
}
