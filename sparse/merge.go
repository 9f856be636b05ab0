// SPDX-License-Identifier: MIT
// Package sparse: sorted-run primitives shared by every kernel.
//
// A run is a slice of entries strictly increasing by idx. All functions
// here return freshly allocated runs and never modify their inputs, so
// kernel results never alias container storage.

package sparse

// unionMerge returns the union of x and y. Positions present in exactly
// one run pass through unchanged; shared positions become f(x, y).
// Two-pointer merge: O(len(x)+len(y)).
func unionMerge[T any](x, y []entry[T], f func(T, T) T) []entry[T] {
	out := make([]entry[T], 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i].idx < y[j].idx:
			out = append(out, x[i])
			i++
		case x[i].idx > y[j].idx:
			out = append(out, y[j])
			j++
		default:
			out = append(out, entry[T]{idx: x[i].idx, val: f(x[i].val, y[j].val)})
			i++
			j++
		}
	}
	out = append(out, x[i:]...)
	out = append(out, y[j:]...)

	return out
}

// intersectMerge returns f(x, y) at positions present in both runs.
func intersectMerge[A, B, T any](x []entry[A], y []entry[B], f func(A, B) T) []entry[T] {
	var out []entry[T]
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i].idx < y[j].idx:
			i++
		case x[i].idx > y[j].idx:
			j++
		default:
			out = append(out, entry[T]{idx: x[i].idx, val: f(x[i].val, y[j].val)})
			i++
			j++
		}
	}

	return out
}

// dot folds mult over the intersection of x and y with add. ok is false
// when the runs share no position, in which case no output entry exists.
func dot[A, B, T any](x []entry[A], y []entry[B], mult func(A, B) T, add func(T, T) T) (sum T, ok bool) {
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i].idx < y[j].idx:
			i++
		case x[i].idx > y[j].idx:
			j++
		default:
			p := mult(x[i].val, y[j].val)
			if ok {
				sum = add(sum, p)
			} else {
				sum, ok = p, true
			}
			i++
			j++
		}
	}

	return sum, ok
}

// mapRun applies f to every value, keeping positions.
func mapRun[A, T any](x []entry[A], f func(A) T) []entry[T] {
	if len(x) == 0 {
		return nil
	}
	out := make([]entry[T], len(x))
	for k, e := range x {
		out[k] = entry[T]{idx: e.idx, val: f(e.val)}
	}

	return out
}

// cloneRun copies a run.
func cloneRun[T any](x []entry[T]) []entry[T] {
	if len(x) == 0 {
		return nil
	}

	return append([]entry[T](nil), x...)
}

// maskRun combines the old output run with the candidate run z under a
// mask predicate:
//   - allowed positions take z's entry (absent in z means deleted);
//   - other positions keep old's entry, or lose it when replace is set.
func maskRun[T any](old, z []entry[T], allowed func(idx int) bool, replace bool) []entry[T] {
	out := make([]entry[T], 0, max(len(old), len(z)))
	i, j := 0, 0
	for i < len(old) || j < len(z) {
		switch {
		case j == len(z) || (i < len(old) && old[i].idx < z[j].idx):
			if !replace && !allowed(old[i].idx) {
				out = append(out, old[i])
			}
			i++
		case i == len(old) || z[j].idx < old[i].idx:
			if allowed(z[j].idx) {
				out = append(out, z[j])
			}
			j++
		default:
			if allowed(z[j].idx) {
				out = append(out, z[j])
			} else if !replace {
				out = append(out, old[i])
			}
			i++
			j++
		}
	}

	return out
}

// rowAt returns rows[r], or nil when rows is shorter than r+1.
func rowAt[T any](rows [][]entry[T], r int) []entry[T] {
	if r < len(rows) {
		return rows[r]
	}

	return nil
}

// transposeRows returns the column-major reading of rows as new rows:
// out[c] lists (r, v) for every stored (r, c, v), sorted by r.
func transposeRows[T any](rows [][]entry[T], ncols int) [][]entry[T] {
	counts := make([]int, ncols)
	for _, run := range rows {
		for _, e := range run {
			counts[e.idx]++
		}
	}
	out := make([][]entry[T], ncols)
	for c, n := range counts {
		if n > 0 {
			out[c] = make([]entry[T], 0, n)
		}
	}
	for r, run := range rows {
		for _, e := range run {
			out[e.idx] = append(out[e.idx], entry[T]{idx: r, val: e.val})
		}
	}

	return out
}

// isSortedRun reports whether run is strictly increasing by idx and every
// idx lies in [0, limit).
func isSortedRun[T any](run []entry[T], limit int) bool {
	for k, e := range run {
		if e.idx < 0 || e.idx >= limit {
			return false
		}
		if k > 0 && run[k-1].idx >= e.idx {
			return false
		}
	}

	return true
}
