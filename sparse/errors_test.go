// SPDX-License-Identifier: MIT

package sparse_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	usage := []error{
		sparse.ErrUninitializedObject, sparse.ErrNullPointer, sparse.ErrInvalidValue,
		sparse.ErrInvalidIndex, sparse.ErrDomainMismatch, sparse.ErrDimensionMismatch,
		sparse.ErrOutputNotEmpty, sparse.ErrNoValue, sparse.ErrStaleView,
	}
	execution := []error{
		sparse.ErrOutOfMemory, sparse.ErrInsufficientSpace, sparse.ErrInvalidObject,
		sparse.ErrIndexOutOfBounds, sparse.ErrPanic,
	}
	for _, err := range usage {
		wrapped := fmt.Errorf("ctx: %w", err)
		require.Equal(t, sparse.KindUsage, sparse.KindOf(wrapped), err.Error())
		require.True(t, sparse.IsUsage(wrapped))
		require.False(t, sparse.IsExecution(wrapped))
	}
	for _, err := range execution {
		require.Equal(t, sparse.KindExecution, sparse.KindOf(fmt.Errorf("ctx: %w", err)), err.Error())
	}
	require.Equal(t, sparse.KindUnknown, sparse.KindOf(nil))
	require.Equal(t, sparse.KindUnknown, sparse.KindOf(errors.New("other")))

	require.Equal(t, "usage", sparse.KindUsage.String())
	require.Equal(t, "execution", sparse.KindExecution.String())
	require.Equal(t, "unknown", sparse.KindUnknown.String())
}

func TestDomainMismatchIsShared(t *testing.T) {
	t.Parallel()

	_, err := algebra.SemiringByName[int]("lor_land")
	require.ErrorIs(t, err, sparse.ErrDomainMismatch)
	require.True(t, sparse.IsUsage(err))
}

func TestErrorContext(t *testing.T) {
	t.Parallel()

	m := mustMatrix[int](t, 2, 2)
	_, err := m.ExtractElement(1, 1)
	require.EqualError(t, err, "Matrix.ExtractElement(1,1): sparse: no value")

	a := mustMatrix[int](t, 2, 3)
	err = sparse.MxM(m, nil, nil, algebra.PlusTimes[int](), a, a, nil)
	require.ErrorContains(t, err, "MxM: C is 2x2, A is 2x3, B is 2x3")
}
