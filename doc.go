// Package strassen is a small laboratory for square integer matrix
// multiplication: the direct triple loop next to Strassen's
// divide-and-conquer algorithm, cross-checked against each other.
//
// What is inside?
//
//	A dependency-light library and a command that bring together:
//		• Owners & views: row-major storage with an explicit stride, zero-copy quadrants
//		• Allocators: heap, size-class pool, byte budget with counters
//		• Kernels: element-wise combine, zero padding, direct multiplication
//		• Strassen engine: seven products per level, bounded top-level fan-out
//		• Cross-check harness and CLI
//
// Layout:
//
//	matrix/       Dense/View storage, allocators, kernels and the Strassen Engine
//	crosscheck/   naive vs Strassen verification with timings
//	cmd/strassen/ command-line driver (kingpin flags, Prometheus text dump)
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]int64{{5, 6}, {7, 8}})
//	p, _ := matrix.Strassen(a, b, 1) // [[19 22] [43 50]]
//	defer p.Release()
//
//	go install github.com/katalvlaran/strassen/cmd/strassen@latest
package strassen
