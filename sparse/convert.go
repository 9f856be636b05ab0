// SPDX-License-Identifier: MIT
// Package sparse: bridge to gonum dense types.
//
// DenseOf / DenseVectorOf scatter stored entries into a zero-filled
// gonum matrix/vector; implicit positions read as 0. MatrixFromDense /
// VectorFromDense store every non-zero element. These are the interop
// points for callers that already hold gonum data, and the dense
// reference used to cross-check kernels.

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gblas/algebra"
)

// DenseOf returns m as a gonum *mat.Dense.
func DenseOf[T algebra.Number](m *Matrix[T]) (*mat.Dense, error) {
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("DenseOf: %w", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	d := mat.NewDense(m.nrows, m.ncols, nil)
	for r, run := range m.rows {
		for _, e := range run {
			d.Set(r, e.idx, float64(e.val))
		}
	}

	return d, nil
}

// MatrixFromDense stores every non-zero element of d in a new Matrix.
// Values are converted to T with Go's numeric conversion rules.
func MatrixFromDense[T algebra.Number](d mat.Matrix) (*Matrix[T], error) {
	if d == nil {
		return nil, fmt.Errorf("MatrixFromDense: %w", ErrNullPointer)
	}
	nr, nc := d.Dims()
	m, err := NewMatrix[T](nr, nc)
	if err != nil {
		return nil, fmt.Errorf("MatrixFromDense: %w", err)
	}
	for r := 0; r < nr; r++ {
		var run []entry[T]
		for c := 0; c < nc; c++ {
			if x := d.At(r, c); x != 0 {
				run = append(run, entry[T]{idx: c, val: T(x)})
			}
		}
		if len(run) > 0 {
			m.growTo(r)
			m.rows[r] = run
			m.nvals += len(run)
		}
	}

	return m, nil
}

// DenseVectorOf returns v as a gonum *mat.VecDense.
func DenseVectorOf[T algebra.Number](v *Vector[T]) (*mat.VecDense, error) {
	if err := v.check(); err != nil {
		return nil, fmt.Errorf("DenseVectorOf: %w", err)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	d := mat.NewVecDense(v.size, nil)
	for _, e := range v.entries {
		d.SetVec(e.idx, float64(e.val))
	}

	return d, nil
}

// VectorFromDense stores every non-zero element of d in a new Vector.
func VectorFromDense[T algebra.Number](d mat.Vector) (*Vector[T], error) {
	if d == nil {
		return nil, fmt.Errorf("VectorFromDense: %w", ErrNullPointer)
	}
	v, err := NewVector[T](d.Len())
	if err != nil {
		return nil, fmt.Errorf("VectorFromDense: %w", err)
	}
	for i := 0; i < d.Len(); i++ {
		if x := d.AtVec(i); x != 0 {
			v.entries = append(v.entries, entry[T]{idx: i, val: T(x)})
		}
	}

	return v, nil
}
