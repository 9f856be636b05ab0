// SPDX-License-Identifier: MIT
// Package sparse: assignment kernels.
//
// MAIN DESCRIPTION
//
//	C<M>(rows, cols) = C(rows, cols) ⊕ A
//
// Implementation:
//
//	Stage 1: Z starts as a copy of C.
//	Stage 2: without accum, every position of the region rows×cols is
//	         cleared in Z; then each A(i,j) is written to Z(rows[i], cols[j]).
//	         With accum, A(i,j) is folded into Z as accum(Z, A) where Z is
//	         stored, and written as-is otherwise; region positions absent
//	         from A keep C's value.
//	Stage 3: the mask applies to the whole of C: allowed positions take Z,
//	         the rest keep C (or are cleared under replace).
//
// Duplicate indices in a list are applied in list order, so the last
// writer wins without accum and every write accumulates with it.
//
// AssignCol / AssignRow take a vector mask over the targeted column / row;
// positions outside that column / row are never touched.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
)

// Assign computes C<M>(rows, cols) = C(rows, cols) ⊕ A.
// A must be len(rows)×len(cols) (after desc.TransposeA).
func Assign[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	a *Matrix[T], rows, cols Indices, desc *Descriptor) (err error) {
	const kernel = "Assign"
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
	ri, ci, err := resolveRegion(kernel, c, rows, cols)
	if err != nil {
		return err
	}
	av := orient(a, desc.TransposeA())
	if av.nrows != len(ri) || av.ncols != len(ci) {
		return dimErrorf(kernel, "A is %dx%d, region is %dx%d", av.nrows, av.ncols, len(ri), len(ci))
	}

	z := regionBase(c, ri, ci, cols.IsAll(), accum == nil)
	write := regionWriter(accum)
	for i, r := range ri {
		for _, e := range av.row(i) {
			z[r] = write(z[r], ci[e.idx], e.val)
		}
	}

	commitMatrix(c, z, matrixMaskFunc(mask, desc), nil, desc.Replace())
	trace(desc, kernel, "rows", rows.String(), "cols", cols.String(), "nvals", c.nvals)

	return nil
}

// AssignValue computes C<M>(rows, cols) = C(rows, cols) ⊕ value for every
// position of the region.
func AssignValue[T comparable](c *Matrix[T], mask MatrixMask, accum *algebra.BinaryOp[T, T, T],
	value T, rows, cols Indices, desc *Descriptor) (err error) {
	const kernel = "AssignValue"
	if err := validateArgs(kernel, arg("C", c)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(c, matrixMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := matrixMaskErr(kernel, mask); err != nil {
		return err
	}
	ri, ci, err := resolveRegion(kernel, c, rows, cols)
	if err != nil {
		return err
	}

	z := regionBase(c, ri, ci, cols.IsAll(), accum == nil)
	write := regionWriter(accum)
	for _, r := range ri {
		for _, col := range ci {
			z[r] = write(z[r], col, value)
		}
	}

	commitMatrix(c, z, matrixMaskFunc(mask, desc), nil, desc.Replace())
	trace(desc, kernel, "rows", rows.String(), "cols", cols.String(), "nvals", c.nvals)

	return nil
}

// AssignCol computes C<m>(rows, col) = C(rows, col) ⊕ u. The mask is a
// vector over C's rows and only affects column col.
func AssignCol[T comparable](c *Matrix[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	u *Vector[T], rows Indices, col int, desc *Descriptor) (err error) {
	const kernel = "AssignCol"
	if err := validateArgs(kernel, arg("C", c), arg("u", u)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(c, u, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	if col < 0 || col >= c.ncols {
		return kernelErrorf(kernel, fmt.Errorf("col %d not in [0,%d): %w", col, c.ncols, ErrInvalidIndex))
	}
	ri, err := rows.resolve(c.nrows)
	if err != nil {
		return kernelErrorf(kernel, err)
	}
	if u.size != len(ri) {
		return dimErrorf(kernel, "u has %d, selection has %d", u.size, len(ri))
	}

	// Work on column col as a run indexed by row.
	var old []entry[T]
	for r, run := range c.rows {
		if pos, ok := search(run, col); ok {
			old = append(old, entry[T]{idx: r, val: run[pos].val})
		}
	}
	z := scatterRun(old, ri, u.entries, accum, rows.IsAll())
	final := z
	if allowed := vectorMaskFunc(mask, desc); allowed != nil {
		final = maskRun(old, z, allowed, desc.Replace())
	}

	// Rebuild only the rows whose (r, col) cell is touched.
	next := make([][]entry[T], max(len(c.rows), lastIdx(final)+1))
	copy(next, c.rows)
	touched := make(map[int]struct{}, len(old)+len(final))
	for _, e := range old {
		touched[e.idx] = struct{}{}
	}
	for _, e := range final {
		touched[e.idx] = struct{}{}
	}
	for r := range touched {
		run, _ := remove(cloneRun(next[r]), col)
		if pos, ok := search(final, r); ok {
			run, _ = upsert(run, col, final[pos].val)
		}
		next[r] = run
	}
	c.replaceRows(next)
	trace(desc, kernel, "rows", rows.String(), "col", col, "nvals", c.nvals)

	return nil
}

// AssignRow computes C<m>(row, cols) = C(row, cols) ⊕ u. The mask is a
// vector over C's columns and only affects row row.
func AssignRow[T comparable](c *Matrix[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	u *Vector[T], row int, cols Indices, desc *Descriptor) (err error) {
	const kernel = "AssignRow"
	if err := validateArgs(kernel, arg("C", c), arg("u", u)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(c, u, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	if row < 0 || row >= c.nrows {
		return kernelErrorf(kernel, fmt.Errorf("row %d not in [0,%d): %w", row, c.nrows, ErrInvalidIndex))
	}
	ci, err := cols.resolve(c.ncols)
	if err != nil {
		return kernelErrorf(kernel, err)
	}
	if u.size != len(ci) {
		return dimErrorf(kernel, "u has %d, selection has %d", u.size, len(ci))
	}

	old := c.row(row)
	z := scatterRun(old, ci, u.entries, accum, cols.IsAll())
	final := z
	if allowed := vectorMaskFunc(mask, desc); allowed != nil {
		final = maskRun(old, z, allowed, desc.Replace())
	}

	next := make([][]entry[T], max(len(c.rows), row+1))
	copy(next, c.rows)
	next[row] = final
	c.replaceRows(next)
	trace(desc, kernel, "row", row, "cols", cols.String(), "nvals", c.nvals)

	return nil
}

// VectorAssign computes w<m>(idx) = w(idx) ⊕ u.
func VectorAssign[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	u *Vector[T], idx Indices, desc *Descriptor) (err error) {
	const kernel = "VectorAssign"
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
	ii, err := idx.resolve(w.size)
	if err != nil {
		return kernelErrorf(kernel, err)
	}
	if u.size != len(ii) {
		return dimErrorf(kernel, "u has %d, selection has %d", u.size, len(ii))
	}

	z := scatterRun(w.entries, ii, u.entries, accum, idx.IsAll())
	commitVector(w, z, vectorMaskFunc(mask, desc), nil, desc.Replace())
	trace(desc, kernel, "idx", idx.String(), "nvals", len(w.entries))

	return nil
}

// VectorAssignValue computes w<m>(idx) = w(idx) ⊕ value.
func VectorAssignValue[T comparable](w *Vector[T], mask VectorMask, accum *algebra.BinaryOp[T, T, T],
	value T, idx Indices, desc *Descriptor) (err error) {
	const kernel = "VectorAssignValue"
	if err := validateArgs(kernel, arg("w", w)); err != nil {
		return err
	}
	if err := validateAccum(kernel, accum); err != nil {
		return err
	}

	unlock := lockSet(w, vectorMaskSource(mask))
	defer unlock()
	defer recoverPanic(kernel, &err)

	if err := vectorMaskErr(kernel, mask); err != nil {
		return err
	}
	ii, err := idx.resolve(w.size)
	if err != nil {
		return kernelErrorf(kernel, err)
	}

	dense := make([]entry[T], len(ii))
	for k := range ii {
		dense[k] = entry[T]{idx: k, val: value}
	}
	z := scatterRun(w.entries, ii, dense, accum, idx.IsAll())
	commitVector(w, z, vectorMaskFunc(mask, desc), nil, desc.Replace())
	trace(desc, kernel, "idx", idx.String(), "nvals", len(w.entries))

	return nil
}

// ---------- helpers ----------

// resolveRegion validates the row and column selections against C.
func resolveRegion[T comparable](kernel string, c *Matrix[T], rows, cols Indices) ([]int, []int, error) {
	ri, err := rows.resolve(c.nrows)
	if err != nil {
		return nil, nil, kernelErrorf(kernel, err)
	}
	ci, err := cols.resolve(c.ncols)
	if err != nil {
		return nil, nil, kernelErrorf(kernel, err)
	}

	return ri, ci, nil
}

// regionBase copies C's rows into a fresh Z. Rows named in ri are deep
// copied (they are about to be written); when clearRegion is set the
// region ri×ci is removed from them first.
func regionBase[T comparable](c *Matrix[T], ri, ci []int, allCols, clearRegion bool) [][]entry[T] {
	z := make([][]entry[T], c.nrows)
	copy(z, c.rows)

	var colSet map[int]struct{}
	if clearRegion && !allCols {
		colSet = make(map[int]struct{}, len(ci))
		for _, col := range ci {
			colSet[col] = struct{}{}
		}
	}
	done := make(map[int]struct{}, len(ri))
	for _, r := range ri {
		if _, ok := done[r]; ok {
			continue
		}
		done[r] = struct{}{}
		switch {
		case !clearRegion:
			z[r] = cloneRun(z[r])
		case allCols:
			z[r] = nil
		default:
			var kept []entry[T]
			for _, e := range z[r] {
				if _, hit := colSet[e.idx]; !hit {
					kept = append(kept, e)
				}
			}
			z[r] = kept
		}
	}

	return z
}

// regionWriter returns the per-position write used inside the region.
func regionWriter[T any](accum *algebra.BinaryOp[T, T, T]) func([]entry[T], int, T) []entry[T] {
	if accum == nil {
		return func(run []entry[T], idx int, v T) []entry[T] {
			run, _ = upsert(run, idx, v)
			return run
		}
	}
	f := accum.Func()

	return func(run []entry[T], idx int, v T) []entry[T] {
		run, _ = upsertWith(run, idx, v, f)
		return run
	}
}

// scatterRun writes src (indexed 0..len(targets)-1) into a copy of base at
// positions targets[k], following the region rules of Assign. base is
// never modified.
func scatterRun[T any](base []entry[T], targets []int, src []entry[T],
	accum *algebra.BinaryOp[T, T, T], all bool) []entry[T] {
	var z []entry[T]
	switch {
	case accum != nil:
		z = cloneRun(base)
	case all:
		z = nil
	default:
		hit := make(map[int]struct{}, len(targets))
		for _, t := range targets {
			hit[t] = struct{}{}
		}
		for _, e := range base {
			if _, ok := hit[e.idx]; !ok {
				z = append(z, e)
			}
		}
	}

	write := regionWriter(accum)
	for _, e := range src {
		z = write(z, targets[e.idx], e.val)
	}

	return z
}

// lastIdx returns the last position of a run, or -1 when it is empty.
func lastIdx[T any](run []entry[T]) int {
	if len(run) == 0 {
		return -1
	}

	return run[len(run)-1].idx
}
