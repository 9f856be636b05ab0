// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// CheckInvariants verifies the storage invariants of m: every row sorted
// strictly by column, every position inside the bounds, and nvals equal
// to the number of stored entries. Used by tests after every kernel.
func CheckInvariants[T comparable](m *Matrix[T]) error {
	if err := m.check(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.rows) > m.nrows {
		return fmt.Errorf("%d materialized rows exceed nrows=%d", len(m.rows), m.nrows)
	}
	n := 0
	for r, run := range m.rows {
		if !isSortedRun(run, m.ncols) {
			return fmt.Errorf("row %d unsorted or out of bounds: %v", r, run)
		}
		n += len(run)
	}
	if n != m.nvals {
		return fmt.Errorf("nvals=%d but %d entries stored", m.nvals, n)
	}

	return nil
}

// CheckVectorInvariants is CheckInvariants for vectors.
func CheckVectorInvariants[T comparable](v *Vector[T]) error {
	if err := v.check(); err != nil {
		return err
	}
	v.mu.RLock()
	defer v.mu.RUnlock()

	if !isSortedRun(v.entries, v.size) {
		return fmt.Errorf("entries unsorted or out of bounds: %v", v.entries)
	}

	return nil
}

// MaterializedRows reports how many row slots m currently allocates.
func MaterializedRows[T comparable](m *Matrix[T]) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.rows)
}
