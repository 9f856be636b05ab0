// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"fmt"
	"slices"
	"sync/atomic"
)

// entry is one stored (position, value) pair. In a vector idx is the
// element index; in a matrix row it is the column.
type entry[T any] struct {
	idx int
	val T
}

// nextID hands out process-unique container ids. Zero is reserved for
// "never constructed", which is how zero-value containers are detected.
var nextID atomic.Uint64

func newID() uint64 { return nextID.Add(1) }

// search locates idx in a sorted run. It returns the insertion point and
// whether the entry exists.
func search[T any](run []entry[T], idx int) (int, bool) {
	return slices.BinarySearchFunc(run, idx, func(e entry[T], target int) int {
		return cmp.Compare(e.idx, target)
	})
}

// upsert stores v at idx, keeping run sorted. It reports whether a new
// entry was inserted (as opposed to an overwrite).
func upsert[T any](run []entry[T], idx int, v T) ([]entry[T], bool) {
	pos, found := search(run, idx)
	if found {
		run[pos].val = v
		return run, false
	}

	return slices.Insert(run, pos, entry[T]{idx: idx, val: v}), true
}

// upsertWith is upsert, except that an existing value is combined as
// f(old, v) instead of being overwritten.
func upsertWith[T any](run []entry[T], idx int, v T, f func(T, T) T) ([]entry[T], bool) {
	pos, found := search(run, idx)
	if found {
		run[pos].val = f(run[pos].val, v)
		return run, false
	}

	return slices.Insert(run, pos, entry[T]{idx: idx, val: v}), true
}

// remove deletes idx from run and reports whether it was present.
func remove[T any](run []entry[T], idx int) ([]entry[T], bool) {
	pos, found := search(run, idx)
	if !found {
		return run, false
	}

	return slices.Delete(run, pos, pos+1), true
}

// truncateAt drops every entry with idx >= limit and returns how many were
// dropped.
func truncateAt[T any](run []entry[T], limit int) ([]entry[T], int) {
	pos, _ := search(run, limit)
	dropped := len(run) - pos
	clear(run[pos:])

	return run[:pos], dropped
}

// Indices selects positions along one dimension for Extract and Assign:
// either every position (All) or an explicit list (List). Lists may repeat
// and need not be sorted. The zero value is an empty list.
type Indices struct {
	all  bool
	list []int
}

// All selects every position of the dimension it is applied to.
func All() Indices { return Indices{all: true} }

// List selects the given positions, in order.
func List(idx ...int) Indices { return Indices{list: slices.Clone(idx)} }

// IsAll reports whether ix is the All selector.
func (ix Indices) IsAll() bool { return ix.all }

// Len returns the number of selected positions against a dimension of n.
func (ix Indices) Len(n int) int {
	if ix.all {
		return n
	}

	return len(ix.list)
}

// resolve materializes the selection against a dimension of n and
// validates every listed position.
func (ix Indices) resolve(n int) ([]int, error) {
	if ix.all {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out, nil
	}
	for k, i := range ix.list {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("index list[%d]=%d not in [0,%d): %w", k, i, n, ErrInvalidIndex)
		}
	}

	return ix.list, nil
}

// String renders the selector for logs.
func (ix Indices) String() string {
	if ix.all {
		return "All"
	}

	return fmt.Sprint(ix.list)
}
