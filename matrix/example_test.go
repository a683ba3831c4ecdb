// SPDX-License-Identifier: MIT

package matrix_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/strassen/matrix"
)

// ExampleStrassen multiplies two 2×2 matrices down to scalar products.
func ExampleStrassen() {
	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]int64{{5, 6}, {7, 8}})

	p, err := matrix.Strassen(a, b, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer p.Release()
	fmt.Print(p)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleEngine_Multiply shows odd dimensions and the naive cross-check.
func ExampleEngine_Multiply() {
	g, _ := matrix.NewGenerator(3, matrix.DefaultBound)
	a, _ := g.NewRandom(5, 5)
	b, _ := g.NewRandom(5, 5)

	e := matrix.NewEngine(matrix.WithCutoff(1))
	s, _ := e.Multiply(context.Background(), a, b)
	n, _ := matrix.Mul(a, b)
	fmt.Println(s.Rows(), s.Cols(), matrix.Equal(s, n))

	// Output:
	// 5 5 true
}

// ExampleQuadrant takes a zero-copy quadrant and writes through it.
func ExampleQuadrant() {
	m, _ := matrix.NewFromRows([][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	br, _ := matrix.Quadrant(m, 1, 1)
	_ = br.Set(0, 0, 0)
	fmt.Print(br)
	fmt.Println(br.Stride())

	// Output:
	// [0, 12]
	// [15, 16]
	// 4
}

// ExampleFormat prints the block layout.
func ExampleFormat() {
	m, _ := matrix.NewFromRows([][]int64{{1, -2}, {3, 4}})
	_ = matrix.Format(os.Stdout, m)

	// Output:
	// ===============================
	// columns: 2
	// rows: 2
	// 1,-2
	// 3,4
	// ==================================
}
