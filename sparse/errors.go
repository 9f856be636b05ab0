// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set and error-kind classification.
//
// Two kinds of failure exist:
//   - Usage errors: the caller supplied something invalid (bad dimension,
//     index out of range, nil container, non-empty build target, ...).
//     They are detected before any mutation.
//   - Execution errors: an internal or resource condition surfaced while an
//     algorithm was running (out-of-bounds triplet during Build, recovered
//     panic from a user operator, ...).
//
// All kernels return these sentinels, optionally wrapped with call-site
// context via %w. Callers branch with errors.Is, or with KindOf when only
// the class matters. No kernel panics on user-triggered conditions.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
)

// Usage errors.
var (
	// ErrUninitializedObject indicates a zero-value container or algebra
	// object that was never produced by a constructor.
	ErrUninitializedObject = errors.New("sparse: uninitialized object")

	// ErrNullPointer indicates a nil container, nil index list where one is
	// required, or nil output scalar.
	ErrNullPointer = errors.New("sparse: null pointer")

	// ErrInvalidValue indicates a miscellaneous invalid argument, e.g. a
	// zero dimension or a negative triplet count.
	ErrInvalidValue = errors.New("sparse: invalid value")

	// ErrInvalidIndex indicates a position outside the container bounds in
	// an element accessor or an index list.
	ErrInvalidIndex = errors.New("sparse: invalid index")

	// ErrDomainMismatch indicates an algebra requested for a domain it is
	// not defined over. It is the algebra package's sentinel, re-exported.
	ErrDomainMismatch = algebra.ErrDomainMismatch

	// ErrDimensionMismatch indicates operands whose shapes do not compose.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutputNotEmpty indicates Build on a container that already holds
	// entries.
	ErrOutputNotEmpty = errors.New("sparse: output not empty")

	// ErrNoValue indicates an in-bounds position with nothing stored.
	ErrNoValue = errors.New("sparse: no value")

	// ErrStaleView indicates a mask view whose source container was mutated
	// after the view was derived.
	ErrStaleView = errors.New("sparse: stale mask view")
)

// Execution errors.
var (
	// ErrOutOfMemory indicates an allocation that could not be satisfied.
	ErrOutOfMemory = errors.New("sparse: out of memory")

	// ErrInsufficientSpace indicates an output buffer too small for the result.
	ErrInsufficientSpace = errors.New("sparse: insufficient space")

	// ErrInvalidObject indicates a container left invalid by a prior failure.
	ErrInvalidObject = errors.New("sparse: invalid object")

	// ErrIndexOutOfBounds indicates an out-of-range position detected while an
	// algorithm was running (e.g. a bad triplet inside Build).
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrPanic indicates a recovered panic, typically from a user operator.
	ErrPanic = errors.New("sparse: panic")
)

// Kind classifies an error.
type Kind uint8

const (
	// KindUnknown is reported for nil and foreign errors.
	KindUnknown Kind = iota
	// KindUsage is reported for caller mistakes.
	KindUsage
	// KindExecution is reported for internal or resource conditions.
	KindExecution
)

// String returns "usage", "execution" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindExecution:
		return "execution"
	default:
		return "unknown"
	}
}

var (
	usageErrors = []error{
		ErrUninitializedObject, ErrNullPointer, ErrInvalidValue, ErrInvalidIndex,
		ErrDomainMismatch, ErrDimensionMismatch, ErrOutputNotEmpty, ErrNoValue,
		ErrStaleView,
	}
	executionErrors = []error{
		ErrOutOfMemory, ErrInsufficientSpace, ErrInvalidObject,
		ErrIndexOutOfBounds, ErrPanic,
	}
)

// KindOf reports the class of err by matching it against the sentinels.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, s := range usageErrors {
		if errors.Is(err, s) {
			return KindUsage
		}
	}
	for _, s := range executionErrors {
		if errors.Is(err, s) {
			return KindExecution
		}
	}

	return KindUnknown
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool { return KindOf(err) == KindUsage }

// IsExecution reports whether err is an execution error.
func IsExecution(err error) bool { return KindOf(err) == KindExecution }

// ---------- wrapping helpers ----------

// kernelErrorf prefixes err with the kernel name.
func kernelErrorf(kernel string, err error) error {
	return fmt.Errorf("%s: %w", kernel, err)
}

// dimErrorf reports a dimension mismatch with the offending shapes.
func dimErrorf(kernel, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", kernel, fmt.Sprintf(format, args...), ErrDimensionMismatch)
}

// elementErrorf reports an element accessor failure at (row, col).
func elementErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// vectorErrorf reports an element accessor failure at index i.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// recoverPanic converts a panic into ErrPanic on *err. Kernels and the
// container methods that call a dup operator defer it, so a faulty user
// operator cannot escape with containers half-written.
func recoverPanic(kernel string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: %v: %w", kernel, r, ErrPanic)
	}
}
