// SPDX-License-Identifier: MIT
// Package sparse: Matrix implementation.
//
// Storage is row-major: rows[r] holds row r's entries sorted by column.
// The row list grows lazily, so len(rows) <= nrows and a row that was
// never written costs nothing. nvals always equals the sum of the row
// lengths; every mutation path below maintains it explicitly.
//
// Element access is a binary search inside one row, insertion shifts the
// row tail. A compressed format would be faster for bulk algebra; kernels
// compensate by producing whole rows at once and swapping them in.

package sparse

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/gblas/algebra"
)

// Method tags used in error context.
const (
	ctxSetElement     = "SetElement"
	ctxSetElementDup  = "SetElementDup"
	ctxRemoveElement  = "RemoveElement"
	ctxExtractElement = "ExtractElement"
)

// Matrix is a sparse nrows×ncols matrix.
// Create it with NewMatrix; the zero value is uninitialized.
type Matrix[T comparable] struct {
	mu      sync.RWMutex
	id      uint64
	version uint64
	nrows   int
	ncols   int
	nvals   int
	rows    [][]entry[T]
}

var _ lockable = (*Matrix[int])(nil)

// NewMatrix returns an empty nrows×ncols matrix.
// Returns ErrInvalidValue if either dimension is <= 0.
func NewMatrix[T comparable](nrows, ncols int) (*Matrix[T], error) {
	if nrows <= 0 || ncols <= 0 {
		return nil, fmt.Errorf("NewMatrix(%d,%d): dimensions must be > 0: %w", nrows, ncols, ErrInvalidValue)
	}

	return &Matrix[T]{id: newID(), nrows: nrows, ncols: ncols}, nil
}

func (m *Matrix[T]) lockID() uint64       { return m.id }
func (m *Matrix[T]) mutex() *sync.RWMutex { return &m.mu }

func (m *Matrix[T]) check() error {
	if m == nil {
		return ErrNullPointer
	}
	if m.id == 0 {
		return ErrUninitializedObject
	}

	return nil
}

func (m *Matrix[T]) touch() { m.version++ }

// row returns row r, or nil if it was never materialized.
func (m *Matrix[T]) row(r int) []entry[T] {
	if r < len(m.rows) {
		return m.rows[r]
	}

	return nil
}

// growTo materializes rows up to and including r.
func (m *Matrix[T]) growTo(r int) {
	if r >= len(m.rows) {
		m.rows = append(m.rows, make([][]entry[T], r+1-len(m.rows))...)
	}
}

// replaceRows swaps in freshly computed storage and recounts nvals.
// Trailing empty rows are trimmed so storage stays proportional to content.
func (m *Matrix[T]) replaceRows(rows [][]entry[T]) {
	n := 0
	last := -1
	for r, run := range rows {
		n += len(run)
		if len(run) > 0 {
			last = r
		}
	}
	m.rows = rows[:last+1]
	m.nvals = n
	m.touch()
}

// Dup returns a deep copy with a fresh identity.
func (m *Matrix[T]) Dup() (*Matrix[T], error) {
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("Matrix.Dup: %w", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := &Matrix[T]{id: newID(), nrows: m.nrows, ncols: m.ncols, nvals: m.nvals}
	out.rows = make([][]entry[T], len(m.rows))
	for r, run := range m.rows {
		out.rows[r] = slices.Clone(run)
	}

	return out, nil
}

// Nrows returns the number of rows, or 0 for an invalid matrix.
func (m *Matrix[T]) Nrows() int {
	r, _ := m.Dims()
	return r
}

// Ncols returns the number of columns, or 0 for an invalid matrix.
func (m *Matrix[T]) Ncols() int {
	_, c := m.Dims()
	return c
}

// Dims returns (nrows, ncols), or (0, 0) for an invalid matrix.
func (m *Matrix[T]) Dims() (int, int) {
	if m.check() != nil {
		return 0, 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.nrows, m.ncols
}

// Nvals returns the number of stored entries, or 0 for an invalid matrix.
func (m *Matrix[T]) Nvals() int {
	if m.check() != nil {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.nvals
}

// Resize changes the declared shape. Shrinking drops every entry whose row
// or column falls outside the new bounds and lowers nvals by exactly the
// number dropped; growing only moves the bounds.
func (m *Matrix[T]) Resize(nrows, ncols int) error {
	if err := m.check(); err != nil {
		return fmt.Errorf("Matrix.Resize: %w", err)
	}
	if nrows <= 0 || ncols <= 0 {
		return fmt.Errorf("Matrix.Resize(%d,%d): dimensions must be > 0: %w", nrows, ncols, ErrInvalidValue)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if nrows < len(m.rows) {
		for _, run := range m.rows[nrows:] {
			m.nvals -= len(run)
		}
		clear(m.rows[nrows:])
		m.rows = m.rows[:nrows]
	}
	if ncols < m.ncols {
		for r := range m.rows {
			var dropped int
			m.rows[r], dropped = truncateAt(m.rows[r], ncols)
			m.nvals -= dropped
		}
	}
	m.nrows, m.ncols = nrows, ncols
	m.touch()

	return nil
}

// Clear removes every entry; the shape is unchanged.
func (m *Matrix[T]) Clear() error {
	if err := m.check(); err != nil {
		return fmt.Errorf("Matrix.Clear: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = nil
	m.nvals = 0
	m.touch()

	return nil
}

func (m *Matrix[T]) inBounds(r, c int) bool {
	return r >= 0 && r < m.nrows && c >= 0 && c < m.ncols
}

// SetElement stores x at (r, c), overwriting any previous value.
// nvals grows only when a new position is populated.
func (m *Matrix[T]) SetElement(r, c int, x T) error {
	if err := m.check(); err != nil {
		return elementErrorf(ctxSetElement, r, c, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.inBounds(r, c) {
		return elementErrorf(ctxSetElement, r, c, ErrInvalidIndex)
	}
	m.growTo(r)
	var inserted bool
	if m.rows[r], inserted = upsert(m.rows[r], c, x); inserted {
		m.nvals++
	}
	m.touch()

	return nil
}

// SetElementDup stores x at (r, c); an existing value v becomes dup(v, x).
// A panic in dup is reported as ErrPanic with v left in place.
func (m *Matrix[T]) SetElementDup(r, c int, x T, dup algebra.BinaryOp[T, T, T]) (err error) {
	if err := m.check(); err != nil {
		return elementErrorf(ctxSetElementDup, r, c, err)
	}
	if !dup.Valid() {
		return elementErrorf(ctxSetElementDup, r, c, ErrUninitializedObject)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	defer recoverPanic("Matrix.SetElementDup", &err)

	if !m.inBounds(r, c) {
		return elementErrorf(ctxSetElementDup, r, c, ErrInvalidIndex)
	}
	m.growTo(r)
	var inserted bool
	if m.rows[r], inserted = upsertWith(m.rows[r], c, x, dup.Func()); inserted {
		m.nvals++
	}
	m.touch()

	return nil
}

// RemoveElement deletes the entry at (r, c). Removing a missing entry is a
// no-op, not an error.
func (m *Matrix[T]) RemoveElement(r, c int) error {
	if err := m.check(); err != nil {
		return elementErrorf(ctxRemoveElement, r, c, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.inBounds(r, c) {
		return elementErrorf(ctxRemoveElement, r, c, ErrInvalidIndex)
	}
	if r >= len(m.rows) {
		return nil
	}
	var removed bool
	if m.rows[r], removed = remove(m.rows[r], c); removed {
		m.nvals--
		m.touch()
	}

	return nil
}

// ExtractElement returns the value stored at (r, c).
// Returns ErrInvalidIndex out of bounds and ErrNoValue if nothing is stored.
func (m *Matrix[T]) ExtractElement(r, c int) (T, error) {
	var zero T
	if err := m.check(); err != nil {
		return zero, elementErrorf(ctxExtractElement, r, c, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.inBounds(r, c) {
		return zero, elementErrorf(ctxExtractElement, r, c, ErrInvalidIndex)
	}
	run := m.row(r)
	pos, found := search(run, c)
	if !found {
		return zero, elementErrorf(ctxExtractElement, r, c, ErrNoValue)
	}

	return run[pos].val, nil
}

// ExtractTuples returns every stored (row, col, value) in storage order:
// rows ascending, columns ascending within a row.
func (m *Matrix[T]) ExtractTuples() (rows, cols []int, vals []T, err error) {
	if err := m.check(); err != nil {
		return nil, nil, nil, fmt.Errorf("Matrix.ExtractTuples: %w", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows = make([]int, 0, m.nvals)
	cols = make([]int, 0, m.nvals)
	vals = make([]T, 0, m.nvals)
	for r, run := range m.rows {
		for _, e := range run {
			rows = append(rows, r)
			cols = append(cols, e.idx)
			vals = append(vals, e.val)
		}
	}

	return rows, cols, vals, nil
}

// Build loads the first n (row, col, value) triplets into an empty matrix.
// Triplets that hit the same position are folded in input order as
// dup(existing, new), so the result depends on input order only through
// dup's associativity and commutativity.
//
// Errors:
//   - ErrOutputNotEmpty if the matrix already holds entries.
//   - ErrInvalidValue if n < 0 or any slice is shorter than n.
//   - ErrUninitializedObject if dup is the zero operator.
//   - ErrIndexOutOfBounds if any triplet lies outside the matrix.
//   - ErrPanic if dup panics.
//
// All triplets are validated before storage is touched, so a failed Build
// leaves the matrix empty.
//
// Complexity: O(n log n) for the stable sort, O(n) extra space.
func (m *Matrix[T]) Build(rowIdx, colIdx []int, values []T, n int, dup algebra.BinaryOp[T, T, T]) (err error) {
	if err := m.check(); err != nil {
		return fmt.Errorf("Matrix.Build: %w", err)
	}
	if n < 0 || len(rowIdx) < n || len(colIdx) < n || len(values) < n {
		return fmt.Errorf("Matrix.Build: n=%d, len(rows)=%d, len(cols)=%d, len(values)=%d: %w",
			n, len(rowIdx), len(colIdx), len(values), ErrInvalidValue)
	}
	if !dup.Valid() {
		return fmt.Errorf("Matrix.Build: dup: %w", ErrUninitializedObject)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	defer recoverPanic("Matrix.Build", &err)

	if m.nvals != 0 {
		return fmt.Errorf("Matrix.Build: nvals=%d: %w", m.nvals, ErrOutputNotEmpty)
	}

	// Stage 1: validate every triplet and bucket it by row.
	counts := make([]int, m.nrows)
	maxRow := -1
	for k := 0; k < n; k++ {
		if !m.inBounds(rowIdx[k], colIdx[k]) {
			return fmt.Errorf("Matrix.Build: triplet %d at (%d,%d) outside %dx%d: %w",
				k, rowIdx[k], colIdx[k], m.nrows, m.ncols, ErrIndexOutOfBounds)
		}
		counts[rowIdx[k]]++
		maxRow = max(maxRow, rowIdx[k])
	}

	// Stage 2: per-row fold. Bucketing preserves input order inside a row,
	// which foldTriplets' stable sort relies on.
	colBuckets := make([][]int, maxRow+1)
	valBuckets := make([][]T, maxRow+1)
	for r := 0; r <= maxRow; r++ {
		if counts[r] > 0 {
			colBuckets[r] = make([]int, 0, counts[r])
			valBuckets[r] = make([]T, 0, counts[r])
		}
	}
	for k := 0; k < n; k++ {
		r := rowIdx[k]
		colBuckets[r] = append(colBuckets[r], colIdx[k])
		valBuckets[r] = append(valBuckets[r], values[k])
	}

	rows := make([][]entry[T], maxRow+1)
	f := dup.Func()
	for r := range rows {
		if len(colBuckets[r]) > 0 {
			rows[r] = foldTriplets(colBuckets[r], valBuckets[r], f)
		}
	}
	m.replaceRows(rows)

	return nil
}

// Pattern returns a bool matrix with true at every stored position.
func (m *Matrix[T]) Pattern() (*Matrix[bool], error) {
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("Matrix.Pattern: %w", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := &Matrix[bool]{id: newID(), nrows: m.nrows, ncols: m.ncols, nvals: m.nvals}
	out.rows = make([][]entry[bool], len(m.rows))
	for r, run := range m.rows {
		if len(run) == 0 {
			continue
		}
		out.rows[r] = make([]entry[bool], len(run))
		for k, e := range run {
			out.rows[r][k] = entry[bool]{idx: e.idx, val: true}
		}
	}

	return out, nil
}

// String renders the matrix row by row, e.g.
//
//	Matrix[3x3 nvals=2]{0:[1:5] 2:[0:7]}
func (m *Matrix[T]) String() string {
	if m.check() != nil {
		return "Matrix<invalid>"
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix[%dx%d nvals=%d]{", m.nrows, m.ncols, m.nvals)
	first := true
	for r, run := range m.rows {
		if len(run) == 0 {
			continue
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%d:[", r)
		for k, e := range run {
			if k > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d:%v", e.idx, e.val)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('}')

	return sb.String()
}
