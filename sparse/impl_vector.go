// SPDX-License-Identifier: MIT
// Package sparse: Vector implementation.
//
// Storage: one run of (index, value) entries, strictly increasing by index.
// Lookup is a binary search; insertion shifts the tail (sorted-array insert).
//
// Concurrency: every exported method takes the vector's own RWMutex; kernels
// that involve several containers lock them through lockSet instead and use
// the unexported, lock-free helpers.

package sparse

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/gblas/algebra"
)

// Vector is a sparse vector of fixed (but resizable) size.
// Create it with NewVector; the zero value is uninitialized.
type Vector[T comparable] struct {
	mu      sync.RWMutex
	id      uint64
	version uint64
	size    int
	entries []entry[T]
}

// Compile-time assertion: vectors take part in kernel lock sets.
var _ lockable = (*Vector[int])(nil)

// NewVector returns an empty vector of the given size.
// Returns ErrInvalidValue if size <= 0.
func NewVector[T comparable](size int) (*Vector[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewVector(%d): size must be > 0: %w", size, ErrInvalidValue)
	}

	return &Vector[T]{id: newID(), size: size}, nil
}

func (v *Vector[T]) lockID() uint64       { return v.id }
func (v *Vector[T]) mutex() *sync.RWMutex { return &v.mu }

// check reports ErrNullPointer / ErrUninitializedObject. The id is
// immutable after construction, so it can be read without the lock.
func (v *Vector[T]) check() error {
	if v == nil {
		return ErrNullPointer
	}
	if v.id == 0 {
		return ErrUninitializedObject
	}

	return nil
}

// touch records a mutation. Callers hold the write lock.
func (v *Vector[T]) touch() { v.version++ }

// Dup returns a deep copy with a fresh identity.
func (v *Vector[T]) Dup() (*Vector[T], error) {
	if err := v.check(); err != nil {
		return nil, fmt.Errorf("Vector.Dup: %w", err)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	return &Vector[T]{id: newID(), size: v.size, entries: slices.Clone(v.entries)}, nil
}

// Size returns the declared length, or 0 for an invalid vector.
func (v *Vector[T]) Size() int {
	if v.check() != nil {
		return 0
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.size
}

// Nvals returns the number of stored entries, or 0 for an invalid vector.
func (v *Vector[T]) Nvals() int {
	if v.check() != nil {
		return 0
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.entries)
}

// Resize changes the declared size. Shrinking drops every entry whose
// index is no longer in range.
func (v *Vector[T]) Resize(size int) error {
	if err := v.check(); err != nil {
		return fmt.Errorf("Vector.Resize: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("Vector.Resize(%d): size must be > 0: %w", size, ErrInvalidValue)
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	if size < v.size {
		v.entries, _ = truncateAt(v.entries, size)
	}
	v.size = size
	v.touch()

	return nil
}

// Clear removes every entry; the size is unchanged.
func (v *Vector[T]) Clear() error {
	if err := v.check(); err != nil {
		return fmt.Errorf("Vector.Clear: %w", err)
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	v.entries = nil
	v.touch()

	return nil
}

// SetElement stores x at i, overwriting any previous value.
func (v *Vector[T]) SetElement(i int, x T) error {
	if err := v.check(); err != nil {
		return vectorErrorf("SetElement", i, err)
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	if i < 0 || i >= v.size {
		return vectorErrorf("SetElement", i, ErrInvalidIndex)
	}
	v.entries, _ = upsert(v.entries, i, x)
	v.touch()

	return nil
}

// SetElementDup stores x at i; if a value is already stored there it is
// replaced by dup(old, x). A panic in dup is reported as ErrPanic and the
// stored value is left as it was.
func (v *Vector[T]) SetElementDup(i int, x T, dup algebra.BinaryOp[T, T, T]) (err error) {
	if err := v.check(); err != nil {
		return vectorErrorf("SetElementDup", i, err)
	}
	if !dup.Valid() {
		return vectorErrorf("SetElementDup", i, ErrUninitializedObject)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	defer recoverPanic("Vector.SetElementDup", &err)

	if i < 0 || i >= v.size {
		return vectorErrorf("SetElementDup", i, ErrInvalidIndex)
	}
	v.entries, _ = upsertWith(v.entries, i, x, dup.Func())
	v.touch()

	return nil
}

// RemoveElement deletes the entry at i. Removing a missing entry is a no-op.
func (v *Vector[T]) RemoveElement(i int) error {
	if err := v.check(); err != nil {
		return vectorErrorf("RemoveElement", i, err)
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	if i < 0 || i >= v.size {
		return vectorErrorf("RemoveElement", i, ErrInvalidIndex)
	}
	var removed bool
	if v.entries, removed = remove(v.entries, i); removed {
		v.touch()
	}

	return nil
}

// ExtractElement returns the value stored at i.
// Returns ErrInvalidIndex out of range and ErrNoValue if nothing is stored.
func (v *Vector[T]) ExtractElement(i int) (T, error) {
	var zero T
	if err := v.check(); err != nil {
		return zero, vectorErrorf("ExtractElement", i, err)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	if i < 0 || i >= v.size {
		return zero, vectorErrorf("ExtractElement", i, ErrInvalidIndex)
	}
	pos, found := search(v.entries, i)
	if !found {
		return zero, vectorErrorf("ExtractElement", i, ErrNoValue)
	}

	return v.entries[pos].val, nil
}

// ExtractTuples returns every stored index and value in ascending index order.
func (v *Vector[T]) ExtractTuples() ([]int, []T, error) {
	if err := v.check(); err != nil {
		return nil, nil, fmt.Errorf("Vector.ExtractTuples: %w", err)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	idx := make([]int, len(v.entries))
	vals := make([]T, len(v.entries))
	for k, e := range v.entries {
		idx[k], vals[k] = e.idx, e.val
	}

	return idx, vals, nil
}

// Build loads the first n (index, value) pairs into an empty vector.
// Pairs that hit the same index are folded in input order as
// dup(existing, new).
//
// Errors:
//   - ErrOutputNotEmpty if the vector already holds entries.
//   - ErrInvalidValue if n < 0 or a slice is shorter than n.
//   - ErrUninitializedObject if dup is the zero operator.
//   - ErrIndexOutOfBounds if any index is out of range.
//   - ErrPanic if dup panics.
//
// Every pair is validated before anything is written: on error the vector
// is left empty.
func (v *Vector[T]) Build(indices []int, values []T, n int, dup algebra.BinaryOp[T, T, T]) (err error) {
	if err := v.check(); err != nil {
		return fmt.Errorf("Vector.Build: %w", err)
	}
	if n < 0 || len(indices) < n || len(values) < n {
		return fmt.Errorf("Vector.Build: n=%d, len(indices)=%d, len(values)=%d: %w",
			n, len(indices), len(values), ErrInvalidValue)
	}
	if !dup.Valid() {
		return fmt.Errorf("Vector.Build: dup: %w", ErrUninitializedObject)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	defer recoverPanic("Vector.Build", &err)

	if len(v.entries) != 0 {
		return fmt.Errorf("Vector.Build: nvals=%d: %w", len(v.entries), ErrOutputNotEmpty)
	}
	for k := 0; k < n; k++ {
		if indices[k] < 0 || indices[k] >= v.size {
			return fmt.Errorf("Vector.Build: triplet %d index %d not in [0,%d): %w",
				k, indices[k], v.size, ErrIndexOutOfBounds)
		}
	}

	v.entries = foldTriplets(indices[:n], values[:n], dup.Func())
	v.touch()

	return nil
}

// foldTriplets sorts (idx, val) pairs by index, stable so that duplicates
// keep input order, and folds duplicates left to right with f.
func foldTriplets[T any](indices []int, values []T, f func(T, T) T) []entry[T] {
	tmp := make([]entry[T], len(indices))
	for k := range indices {
		tmp[k] = entry[T]{idx: indices[k], val: values[k]}
	}
	slices.SortStableFunc(tmp, func(a, b entry[T]) int { return a.idx - b.idx })

	out := tmp[:0]
	for _, e := range tmp {
		if last := len(out) - 1; last >= 0 && out[last].idx == e.idx {
			out[last].val = f(out[last].val, e.val)
			continue
		}
		out = append(out, e)
	}

	return slices.Clip(out)
}

// Pattern returns a bool vector with true at every stored position.
func (v *Vector[T]) Pattern() (*Vector[bool], error) {
	if err := v.check(); err != nil {
		return nil, fmt.Errorf("Vector.Pattern: %w", err)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := &Vector[bool]{id: newID(), size: v.size, entries: make([]entry[bool], len(v.entries))}
	for k, e := range v.entries {
		out.entries[k] = entry[bool]{idx: e.idx, val: true}
	}

	return out, nil
}

// String renders the vector as "Vector[size nvals]{i:v ...}".
func (v *Vector[T]) String() string {
	if v.check() != nil {
		return "Vector<invalid>"
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Vector[%d nvals=%d]{", v.size, len(v.entries))
	for k, e := range v.entries {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%v", e.idx, e.val)
	}
	sb.WriteByte('}')

	return sb.String()
}
