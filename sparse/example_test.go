// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// ExampleMxM computes one step of a shortest-path relaxation with the
// min-plus semiring: C(i,j) = min_k A(i,k) + A(k,j).
func ExampleMxM() {
	a, _ := sparse.NewMatrix[int](3, 3)
	_ = a.SetElement(0, 1, 4)
	_ = a.SetElement(1, 2, 1)
	_ = a.SetElement(0, 2, 9)

	c, _ := sparse.NewMatrix[int](3, 3)
	if err := sparse.MxM(c, nil, nil, algebra.MinPlus[int](), a, a, nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output:
	// Matrix[3x3 nvals=1]{0:[2:5]}
}

// ExampleMatrix_ComplementMask writes only where the mask source is empty.
func ExampleMatrix_ComplementMask() {
	visited, _ := sparse.NewMatrix[bool](1, 4)
	_ = visited.SetElement(0, 1, true)

	c, _ := sparse.NewMatrix[int](1, 4)
	err := sparse.AssignValue(c, visited.ComplementMask(), nil, 7, sparse.All(), sparse.All(), nil)
	fmt.Println(c, err)
	// Output:
	// Matrix[1x4 nvals=3]{0:[0:7 2:7 3:7]} <nil>
}

// ExampleWithLogger traces every kernel at verbosity 2.
func ExampleWithLogger() {
	log := funcr.New(func(prefix, args string) { fmt.Fprintln(os.Stdout, args) }, funcr.Options{Verbosity: 2})
	desc := sparse.NewDescriptor(sparse.WithLogger(log))

	u, _ := sparse.NewVector[int](3)
	_ = u.SetElement(2, 5)
	var sum int
	_ = sparse.VectorReduce(&sum, nil, algebra.PlusMonoid[int](), u, desc)
	fmt.Println(sum)
	// Output:
	// "level"=2 "msg"="kernel done" "kernel"="VectorReduce" "monoid"="plus" "nvals"=1
	// 5
}
