// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public operations return these sentinels (optionally wrapped with
// an operation tag via matrixErrorf) and tests match them via errors.Is.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced by validators, checked in tests):
// nil/released -> invalid dimensions -> square -> shape mismatch -> parity.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Combine on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOddShape signals a quadrant request on a matrix with an odd row or
	// column count.
	ErrOddShape = errors.New("matrix: quadrant requires even dimensions")

	// ErrBadShape is returned when a window does not fit inside its parent.
	ErrBadShape = errors.New("matrix: invalid window")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrReleased indicates use of an owner after Release, use of a view whose
	// owner was released, or a second Release of the same owner.
	ErrReleased = errors.New("matrix: matrix already released")

	// ErrUnknownOp is returned when an elementwise Op is not one of the defined operations.
	ErrUnknownOp = errors.New("matrix: unknown elementwise operation")

	// ErrBadCutoff is returned when a Strassen cutoff is below 1.
	ErrBadCutoff = errors.New("matrix: cutoff must be >= 1")

	// ErrBadBound is returned when a random bound is not a positive power of two.
	ErrBadBound = errors.New("matrix: bound must be a positive power of two")

	// ErrAllocation indicates that backing storage could not be obtained.
	ErrAllocation = errors.New("matrix: allocation failed")
)

// Operation tags for matrixErrorf (no magic strings at call sites).
const (
	opAllocate = "Allocate"
	opCopy     = "Copy"
	opCombine  = "Combine"
	opInPlace  = "CombineInPlace"
	opCopyInto = "CopyInto"
	opPad      = "Pad"
	opTrim     = "Trim"
	opQuadrant = "Quadrant"
	opWindow   = "Window"
	opMul      = "Mul"
	opStrassen = "Strassen"
	opFill     = "Fill"
	opFormat   = "Format"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
