// Package matrix_test provides benchmarks for the multiplication kernels,
// using deterministic random operands.
package matrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 127, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkB bool
)

func benchOperands(b *testing.B, n int) (*matrix.Dense, *matrix.Dense) {
	b.Helper()
	g := MustGenerator(b, 1337)
	return MustRandom(b, g, n), MustRandom(b, g, n)
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchOperands(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkStrassen(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, cutoff := range []int{16, 64} {
			b.Run(fmt.Sprintf("n=%d/cutoff=%d", n, cutoff), func(b *testing.B) {
				A, B := benchOperands(b, n)
				e := matrix.NewEngine(matrix.WithCutoff(cutoff))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := e.Multiply(context.Background(), A, B)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkStrassen_Pooled(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchOperands(b, n)
			e := matrix.NewEngine(matrix.WithCutoff(32), matrix.WithAllocator(matrix.NewPoolAllocator()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := e.Multiply(context.Background(), A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = m.Rows() == n
				_ = m.Release()
			}
		})
	}
}

func BenchmarkStrassen_Parallel(b *testing.B) {
	b.ReportAllocs()
	A, B := benchOperands(b, 256)
	e := matrix.NewEngine(matrix.WithCutoff(32), matrix.WithParallelism(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := e.Multiply(context.Background(), A, B)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkCombineInPlace_Quadrant(b *testing.B) {
	b.ReportAllocs()
	A, _ := benchOperands(b, 512)
	src := MustDense(b, 256, 256)
	q, err := matrix.Quadrant(A, 1, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = matrix.CombineInPlace(matrix.OpAdd, src, q); err != nil {
			b.Fatal(err)
		}
	}
	sinkB = err == nil
}
