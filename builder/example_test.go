package builder_test

import (
	"fmt"

	"github.com/katalvlaran/gblas/builder"
)

// ExampleBuildMatrix composes two fixtures into one block-diagonal
// adjacency matrix.
func ExampleBuildMatrix() {
	m, err := builder.BuildMatrix[int](
		[]builder.BuilderOption{builder.WithDirected(), builder.WithConstantWeight(2)},
		builder.Path(2), builder.Star(3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)
	// Output:
	// Matrix[5x5 nvals=3]{0:[1:2] 2:[3:2 4:2]}
}
