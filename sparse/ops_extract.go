// SPDX-License-Identifier: MIT

package sparse

import (
	"slices"

	"github.com/katalvlaran/gblas/algebra"
)

// Extract computes C<M> = C ⊕ A(rows, cols), i.e. T(i,j) = A(rows[i], cols[j]).
// C must be len(rows)×len(cols). Listed indices out of A's range fail with
// ErrInvalidIndex; lists may repeat positions.
func Extract[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	a *Matrix[T], rows, cols Indices, desc *Descriptor) (err error) {
	const kernel = "Extract"
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
	ri, err := rows.resolve(av.nrows)
	if err != nil {
		return kernelErrorf(kernel, err)
	}
	ci, err := cols.resolve(av.ncols)
	if err != nil {
		return kernelErrorf(kernel, err)
	}
	if c.nrows != len(ri) || c.ncols != len(ci) {
		return dimErrorf(kernel, "C is %dx%d, selection is %dx%d", c.nrows, c.ncols, len(ri), len(ci))
	}

	pick := columnPicker[T](cols.IsAll(), ci)
	t := make([][]entry[T], len(ri))
	for i, src := range ri {
		t[i] = pick(av.row(src))
	}

	commitMatrix(c, t, matrixMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "rows", rows.String(), "cols", cols.String(), "nvals", c.nvals)

	return nil
}

// columnPicker returns a function that maps a source run to the output run
// selected by targets (output position k reads source position targets[k]).
func columnPicker[T any](all bool, targets []int) func([]entry[T]) []entry[T] {
	if all {
		return cloneRun[T]
	}
	bySource := make(map[int][]int, len(targets))
	for out, src := range targets {
		bySource[src] = append(bySource[src], out)
	}

	return func(run []entry[T]) []entry[T] {
		var out []entry[T]
		for _, e := range run {
			for _, k := range bySource[e.idx] {
				out = append(out, entry[T]{idx: k, val: e.val})
			}
		}
		slices.SortFunc(out, func(x, y entry[T]) int { return x.idx - y.idx })
		return out
	}
}

// VectorExtract computes w<m> = w ⊕ u(idx).
func VectorExtract[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	u *Vector[T], idx Indices, desc *Descriptor) (err error) {
	const kernel = "VectorExtract"
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
	ii, err := idx.resolve(u.size)
	if err != nil {
		return kernelErrorf(kernel, err)
	}
	if w.size != len(ii) {
		return dimErrorf(kernel, "w has %d, selection has %d", w.size, len(ii))
	}

	t := columnPicker[T](idx.IsAll(), ii)(u.entries)
	commitVector(w, t, vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "idx", idx.String(), "nvals", len(w.entries))

	return nil
}

// ExtractCol computes w<m> = w ⊕ A(rows, col). Under desc.TransposeA it
// reads a row of A instead.
func ExtractCol[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	a *Matrix[T], rows Indices, col int, desc *Descriptor) (err error) {
	const kernel = "ExtractCol"
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
	ar, ac := dimsOf(a, desc.TransposeA())
	if col < 0 || col >= ac {
		return kernelErrorf(kernel, ErrInvalidIndex)
	}
	ri, err := rows.resolve(ar)
	if err != nil {
		return kernelErrorf(kernel, err)
	}
	if w.size != len(ri) {
		return dimErrorf(kernel, "w has %d, selection has %d", w.size, len(ri))
	}

	// Gather the column as a run indexed by source row.
	var column []entry[T]
	if desc.TransposeA() {
		column = cloneRun(a.row(col))
	} else {
		for r, run := range a.rows {
			if pos, ok := search(run, col); ok {
				column = append(column, entry[T]{idx: r, val: run[pos].val})
			}
		}
	}

	t := columnPicker[T](rows.IsAll(), ri)(column)
	commitVector(w, t, vectorMaskFunc(mask, desc), accum, desc.Replace())
	trace(desc, kernel, "rows", rows.String(), "col", col, "nvals", len(w.entries))

	return nil
}
