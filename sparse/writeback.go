// SPDX-License-Identifier: MIT
// Package sparse: the writeback stage shared by every kernel.
//
// Given the kernel's intermediate result T:
//  1. Z = T, or Z = C ∪ T combined through accum when an accumulator is
//     supplied (positions only in C keep C, positions only in T take T).
//  2. Where the mask (after an optional complement) allows, C takes Z;
//     absent in Z means the entry is deleted.
//  3. Elsewhere C keeps its old value, unless replace is set, in which
//     case the position is cleared.
//
// With no mask every position is allowed and replace has no effect.
// The new storage is computed completely before it is swapped in, so a
// panic inside a user operator leaves C untouched.

package sparse

import "github.com/katalvlaran/gblas/algebra"

// commitMatrix runs the writeback stage for a matrix output. t is indexed
// by output row and may be shorter than nrows. Its runs must be fresh.
// Caller holds c's write lock.
func commitMatrix[T comparable](c *Matrix[T], t [][]entry[T], mask func(r, col int) bool,
	accum *algebra.BinaryOp[T, T, T], replace bool) {
	if mask == nil && accum == nil {
		c.replaceRows(t)
		return
	}

	n := max(len(c.rows), len(t))
	out := make([][]entry[T], n)
	for r := 0; r < n; r++ {
		old, z := rowAt(c.rows, r), rowAt(t, r)
		if accum != nil {
			z = unionMerge(old, z, accum.Func())
		}
		if mask == nil {
			out[r] = z
			continue
		}
		row := r
		out[r] = maskRun(old, z, func(col int) bool { return mask(row, col) }, replace)
	}
	c.replaceRows(out)
}

// commitVector runs the writeback stage for a vector output.
// Caller holds w's write lock.
func commitVector[T comparable](w *Vector[T], t []entry[T], mask func(i int) bool,
	accum *algebra.BinaryOp[T, T, T], replace bool) {
	z := t
	if accum != nil {
		z = unionMerge(w.entries, t, accum.Func())
	}
	if mask != nil {
		z = maskRun(w.entries, z, mask, replace)
	}
	w.entries = z
	w.touch()
}
