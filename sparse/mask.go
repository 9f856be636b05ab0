// SPDX-License-Identifier: MIT
// Package sparse: mask views.
//
// A mask view is a read-only boolean relation derived from a container's
// occupancy. It references its source (never owns it) and pins the
// source's version at derivation time:
//   - Structural: true iff an entry is stored at the position.
//   - Complement: the negation of Structural for in-bounds positions.
//   - Value: true iff an entry is stored and differs from T's zero value.
//
// Positions outside the source's bounds report false under every variant,
// including Complement. Complement() and Structure() always re-derive from
// the source container, so chained derivations never compound:
// m.Complement().Complement() is still a complement view.
//
// Liveness: once the source is mutated the view is stale. A stale view
// reports false everywhere, Err returns ErrStaleView, and every kernel
// handed a stale view fails with ErrStaleView before writing anything.

package sparse

import "fmt"

// MatrixMask is a read-only (row, col) -> bool view over a matrix.
// Only this package implements it; obtain one from Matrix.StructureMask,
// Matrix.ComplementMask or Matrix.ValueMask.
type MatrixMask interface {
	// At reports the mask value at (row, col).
	At(row, col int) bool
	// Dims returns the source's current shape.
	Dims() (nrows, ncols int)
	// Complement re-derives a complement view from the source.
	Complement() MatrixMask
	// Structure re-derives a structural view from the source.
	Structure() MatrixMask
	// Err returns nil for a live view, ErrStaleView after the source was
	// mutated, or the source's own validity error.
	Err() error

	source() lockable
	errLocked() error
	reportLocked(row, col int, structural bool) bool
}

// VectorMask is a read-only index -> bool view over a vector.
type VectorMask interface {
	At(i int) bool
	Size() int
	Complement() VectorMask
	Structure() VectorMask
	Err() error

	source() lockable
	errLocked() error
	reportLocked(i int, structural bool) bool
}

// viewFlags selects the view variant.
type viewFlags struct {
	complement bool
	valued     bool
}

// ---------- matrix views ----------

type matrixView[T comparable] struct {
	src     *Matrix[T]
	version uint64
	flags   viewFlags
}

var _ MatrixMask = matrixView[int]{}

func (m *Matrix[T]) deriveMask(flags viewFlags) MatrixMask {
	if err := m.check(); err != nil {
		return brokenMatrixMask{err: err}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	return matrixView[T]{src: m, version: m.version, flags: flags}
}

// StructureMask returns a view that is true wherever m stores a value.
func (m *Matrix[T]) StructureMask() MatrixMask { return m.deriveMask(viewFlags{}) }

// ComplementMask returns a view that is true at every in-bounds position
// where m stores nothing.
func (m *Matrix[T]) ComplementMask() MatrixMask {
	return m.deriveMask(viewFlags{complement: true})
}

// ValueMask returns a view that is true wherever m stores a non-zero value.
// A descriptor built WithStructuralMask downgrades it to a structural view.
func (m *Matrix[T]) ValueMask() MatrixMask { return m.deriveMask(viewFlags{valued: true}) }

func (v matrixView[T]) source() lockable { return v.src }

func (v matrixView[T]) errLocked() error {
	if v.src.version != v.version {
		return fmt.Errorf("matrix mask pinned at version %d, source at %d: %w",
			v.version, v.src.version, ErrStaleView)
	}

	return nil
}

func (v matrixView[T]) reportLocked(r, c int, structural bool) bool {
	m := v.src
	if !m.inBounds(r, c) {
		return false
	}
	run := m.row(r)
	pos, present := search(run, c)
	if present && v.flags.valued && !structural {
		var zero T
		present = run[pos].val != zero
	}

	return present != v.flags.complement
}

func (v matrixView[T]) At(r, c int) bool {
	v.src.mu.RLock()
	defer v.src.mu.RUnlock()

	if v.errLocked() != nil {
		return false
	}

	return v.reportLocked(r, c, false)
}

func (v matrixView[T]) Dims() (int, int) { return v.src.Dims() }

func (v matrixView[T]) Complement() MatrixMask {
	return matrixView[T]{src: v.src, version: v.version, flags: viewFlags{complement: true, valued: v.flags.valued}}
}

func (v matrixView[T]) Structure() MatrixMask {
	return matrixView[T]{src: v.src, version: v.version}
}

func (v matrixView[T]) Err() error {
	v.src.mu.RLock()
	defer v.src.mu.RUnlock()

	return v.errLocked()
}

// brokenMatrixMask stands in for a view derived from an invalid container.
type brokenMatrixMask struct{ err error }

func (b brokenMatrixMask) At(int, int) bool                 { return false }
func (b brokenMatrixMask) Dims() (int, int)                 { return 0, 0 }
func (b brokenMatrixMask) Complement() MatrixMask           { return b }
func (b brokenMatrixMask) Structure() MatrixMask            { return b }
func (b brokenMatrixMask) Err() error                       { return b.err }
func (b brokenMatrixMask) source() lockable                 { return nil }
func (b brokenMatrixMask) errLocked() error                 { return b.err }
func (b brokenMatrixMask) reportLocked(int, int, bool) bool { return false }

// ---------- vector views ----------

type vectorView[T comparable] struct {
	src     *Vector[T]
	version uint64
	flags   viewFlags
}

var _ VectorMask = vectorView[int]{}

func (v *Vector[T]) deriveMask(flags viewFlags) VectorMask {
	if err := v.check(); err != nil {
		return brokenVectorMask{err: err}
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	return vectorView[T]{src: v, version: v.version, flags: flags}
}

// StructureMask returns a view that is true wherever v stores a value.
func (v *Vector[T]) StructureMask() VectorMask { return v.deriveMask(viewFlags{}) }

// ComplementMask returns a view that is true at every in-bounds index
// where v stores nothing.
func (v *Vector[T]) ComplementMask() VectorMask {
	return v.deriveMask(viewFlags{complement: true})
}

// ValueMask returns a view that is true wherever v stores a non-zero value.
func (v *Vector[T]) ValueMask() VectorMask { return v.deriveMask(viewFlags{valued: true}) }

func (w vectorView[T]) source() lockable { return w.src }

func (w vectorView[T]) errLocked() error {
	if w.src.version != w.version {
		return fmt.Errorf("vector mask pinned at version %d, source at %d: %w",
			w.version, w.src.version, ErrStaleView)
	}

	return nil
}

func (w vectorView[T]) reportLocked(i int, structural bool) bool {
	if i < 0 || i >= w.src.size {
		return false
	}
	pos, present := search(w.src.entries, i)
	if present && w.flags.valued && !structural {
		var zero T
		present = w.src.entries[pos].val != zero
	}

	return present != w.flags.complement
}

func (w vectorView[T]) At(i int) bool {
	w.src.mu.RLock()
	defer w.src.mu.RUnlock()

	if w.errLocked() != nil {
		return false
	}

	return w.reportLocked(i, false)
}

func (w vectorView[T]) Size() int { return w.src.Size() }

func (w vectorView[T]) Complement() VectorMask {
	return vectorView[T]{src: w.src, version: w.version, flags: viewFlags{complement: true, valued: w.flags.valued}}
}

func (w vectorView[T]) Structure() VectorMask {
	return vectorView[T]{src: w.src, version: w.version}
}

func (w vectorView[T]) Err() error {
	w.src.mu.RLock()
	defer w.src.mu.RUnlock()

	return w.errLocked()
}

type brokenVectorMask struct{ err error }

func (b brokenVectorMask) At(int) bool                 { return false }
func (b brokenVectorMask) Size() int                   { return 0 }
func (b brokenVectorMask) Complement() VectorMask      { return b }
func (b brokenVectorMask) Structure() VectorMask       { return b }
func (b brokenVectorMask) Err() error                  { return b.err }
func (b brokenVectorMask) source() lockable            { return nil }
func (b brokenVectorMask) errLocked() error            { return b.err }
func (b brokenVectorMask) reportLocked(int, bool) bool { return false }

// ---------- kernel-side evaluation ----------

// matrixMaskFunc resolves mask and descriptor into the predicate used by
// the writeback stage. A nil result means "no mask": every position is
// written. The predicate reads the source without locking; callers hold
// the kernel lock set.
func matrixMaskFunc(mask MatrixMask, d *Descriptor) func(r, c int) bool {
	if mask == nil {
		return nil
	}
	structural, comp := d.StructuralMask(), d.MaskComplement()

	return func(r, c int) bool { return mask.reportLocked(r, c, structural) != comp }
}

// vectorMaskFunc is matrixMaskFunc for vector masks.
func vectorMaskFunc(mask VectorMask, d *Descriptor) func(i int) bool {
	if mask == nil {
		return nil
	}
	structural, comp := d.StructuralMask(), d.MaskComplement()

	return func(i int) bool { return mask.reportLocked(i, structural) != comp }
}

// matrixMaskSource returns the mask's container, or a nil interface.
func matrixMaskSource(mask MatrixMask) lockable {
	if mask == nil {
		return nil
	}

	return mask.source()
}

// vectorMaskSource returns the mask's container, or a nil interface.
func vectorMaskSource(mask VectorMask) lockable {
	if mask == nil {
		return nil
	}

	return mask.source()
}
