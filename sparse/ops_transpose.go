// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/gblas/algebra"
)

// Transpose computes C<M> = C ⊕ Aᵀ, materializing the transpose. With
// desc.TransposeA the input is read transposed first, so the result is A.
//
// Complexity: O(nnz(A) + ncols(A)) time and space.
func Transpose[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	a *Matrix[T], desc *Descriptor) (err error) {
	const kernel = "Transpose"
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
	// Reading A transposed and transposing again yields A itself.
	tr, tc := dimsOf(a, !desc.TransposeA())
	if c.nrows != tr || c.ncols != tc {
		return dimErrorf(kernel, "C is %dx%d, result is %dx%d", c.nrows, c.ncols, tr, tc)
	}

	var t [][]entry[T]
	if desc.TransposeA() {
		t = make([][]entry[T], len(a.rows))
		for r, run := range a.rows {
			t[r] = cloneRun(run)
		}
	} else {
		t = transposeRows(a.rows, a.ncols)
	}

	commitMatrix(c, t, matrixMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "nvals", c.nvals)

	return nil
}
