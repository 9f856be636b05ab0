// SPDX-License-Identifier: MIT

// Benchmarks for the multiplication paths and the union merge, on
// deterministic random fills.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// benchSizes are the square dimensions to benchmark.
var benchSizes = []int{128, 512}

// benchDensity keeps the fills sparse enough that every path stays sparse.
const benchDensity = 0.02

func BenchmarkMxM(b *testing.B) {
	paths := []struct {
		name string
		opts []sparse.Option
	}{
		{"A*B", nil},
		{"At*B", []sparse.Option{sparse.WithTransposeA()}},
		{"A*Bt", []sparse.Option{sparse.WithTransposeB()}},
		{"At*Bt", []sparse.Option{sparse.WithTransposeA(), sparse.WithTransposeB()}},
	}
	for _, n := range benchSizes {
		rng := rand.New(rand.NewSource(1337))
		a := randomMatrix(b, rng, n, n, benchDensity)
		bm := randomMatrix(b, rng, n, n, benchDensity)
		for _, p := range paths {
			desc := sparse.NewDescriptor(p.opts...)
			b.Run(fmt.Sprintf("%s/n=%d", p.name, n), func(b *testing.B) {
				c := mustMatrix[int](b, n, n)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := sparse.MxM(c, nil, nil, algebra.PlusTimes[int](), a, bm, desc); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkEWiseAdd(b *testing.B) {
	for _, n := range benchSizes {
		rng := rand.New(rand.NewSource(4242))
		a := randomMatrix(b, rng, n, n, benchDensity)
		bm := randomMatrix(b, rng, n, n, benchDensity)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			c := mustMatrix[int](b, n, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := sparse.EWiseAdd(c, nil, nil, algebra.Plus[int](), a, bm, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
