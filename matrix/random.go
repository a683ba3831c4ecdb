// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Deterministic random operands for tests, benchmarks and the CLI.
//   - Randomness is carried by an explicit Generator; no package-level state.
//
// Concurrency:
//   - A Generator wraps math/rand.Rand and is NOT goroutine-safe. Give each
//     goroutine its own Generator.

package matrix

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Generator produces integers whose magnitude is below a power-of-two bound,
// with the sign chosen by an independent coin flip.
type Generator struct {
	rng   *rand.Rand
	bound int64
}

// NewGenerator returns a Generator seeded with seed (0 ⇒ defaultRNGSeed)
// drawing magnitudes from [0, bound).
// Errors: ErrBadBound unless bound is a positive power of two.
func NewGenerator(seed, bound int64) (*Generator, error) {
	if bound <= 0 || bound&(bound-1) != 0 {
		return nil, fmt.Errorf("NewGenerator(bound=%d): %w", bound, ErrBadBound)
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return &Generator{rng: rand.New(rand.NewSource(seed)), bound: bound}, nil
}

// Bound returns the exclusive magnitude bound.
func (g *Generator) Bound() int64 { return g.bound }

// Int returns one value in (-bound, bound).
// The magnitude is drawn first, then the sign; a zero magnitude stays zero.
func (g *Generator) Int() int64 {
	v := g.rng.Int63n(g.bound)
	if g.rng.Float64() < 0.5 {
		return v
	}

	return -v
}

// Fill overwrites every entry of m (owner or view) with g.Int(), row by row.
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: Time O(r*c), Space O(1).
func (g *Generator) Fill(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFill, err)
	}
	d, s := m.raw(), m.Stride()
	for i := 0; i < m.Rows(); i++ {
		row := d[i*s : i*s+m.Cols()]
		for j := range row {
			row[j] = g.Int()
		}
	}

	return nil
}

// NewRandom returns a heap rows×cols owner filled by g.
// Errors: ErrInvalidDimensions.
func (g *Generator) NewRandom(rows, cols int) (*Dense, error) {
	m, err := Allocate(Heap, rows, cols)
	if err != nil {
		return nil, err
	}
	if err = g.Fill(m); err != nil {
		return nil, err
	}

	return m, nil
}
