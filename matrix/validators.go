// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/release/shape/parity checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with their operation tag.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Square → SameShape).
//   - All checks are O(1), pure and allocation-free on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is a usable matrix: non-nil (including typed nil
// pointers) and backed by storage that has not been released.
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *View:
		if v == nil || v.owner == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}
	if m.root().released.Load() {
		return validatorErrorf("ValidateNotNil", ErrReleased)
	}

	return nil
}

// ValidateSameShape checks that a and b have identical rows and columns.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks Rows == Cols. Assumes m is non-nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateStrassenOperands – Composite: NotNil → Square(left) → SameShape.
// The recursive path only supports square operands of equal dimension.
func ValidateStrassenOperands(left, right Matrix) error {
	if err := ValidateNotNil(left); err != nil {
		return validatorErrorf("ValidateStrassenOperands", err)
	}
	if err := ValidateNotNil(right); err != nil {
		return validatorErrorf("ValidateStrassenOperands", err)
	}
	if err := ValidateSquare(left); err != nil {
		return validatorErrorf("ValidateStrassenOperands", err)
	}
	if err := ValidateSameShape(left, right); err != nil {
		return validatorErrorf("ValidateStrassenOperands", err)
	}

	return nil
}

// ValidateEven – Composite: NotNil → even Rows and Cols.
func ValidateEven(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateEven", err)
	}
	if m.Rows()%2 != 0 || m.Cols()%2 != 0 {
		return validatorErrorf("ValidateEven", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrOddShape))
	}

	return nil
}

// ValidateCutoff checks that a Strassen cutoff is at least 1.
func ValidateCutoff(cutoff int) error {
	if cutoff < 1 {
		return validatorErrorf("ValidateCutoff", ErrBadCutoff)
	}

	return nil
}
