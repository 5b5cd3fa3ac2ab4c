// SPDX-License-Identifier: MIT
// Package: validate
//
// Purpose:
//   - Provide a single, canonical source of truth for input checks shared by
//     the sigmoid, cost, gradient and descent entry points.
//   - Keep formula kernels minimal by delegating nil/empty/length checks here.
//   - Report the offending parameter name with every failure.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on failure.
//   - Checks run before any arithmetic, so a failing call computes nothing.
//
// Note:
//   - Composite validators follow a fixed sequence:
//     x → y → w → b → len(x)==len(y) → per-row feature length.
//   - Element names are indexed ("x[2]", "x[2][1]") for precise reporting.

package validate

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

var (
	// ErrInvalidArgument is returned for a nil or empty required input.
	ErrInvalidArgument = errors.New("validate: invalid argument")

	// ErrSizeMismatch is returned when x/y lengths differ, or a feature
	// vector length differs from the weight vector length.
	ErrSizeMismatch = errors.New("validate: size mismatch")
)

// ArgumentError names the parameter that failed a check.
// It unwraps to ErrInvalidArgument or ErrSizeMismatch.
type ArgumentError struct {
	Param  string // offending parameter, e.g. "x" or "x[3]"
	Reason string // human-readable condition, e.g. "is null or empty"
	Err    error  // sentinel
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Err, e.Param, e.Reason)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ArgumentError) Unwrap() error { return e.Err }

func invalid(param, reason string) error {
	return &ArgumentError{Param: param, Reason: reason, Err: ErrInvalidArgument}
}

func mismatch(param, reason string) error {
	return &ArgumentError{Param: param, Reason: reason, Err: ErrSizeMismatch}
}

// Scalar ensures a required scalar is present.
func Scalar(v *apd.Decimal, name string) error {
	if v == nil {
		return invalid(name, "is null")
	}

	return nil
}

// Vector ensures a required sequence is non-empty and holds no nil element.
// Complexity: O(len(v)).
func Vector(v []*apd.Decimal, name string) error {
	if len(v) == 0 {
		return invalid(name, "is null or empty")
	}
	for i, e := range v {
		if e == nil {
			return invalid(fmt.Sprintf("%s[%d]", name, i), "is null")
		}
	}

	return nil
}

// Matrix ensures a required feature matrix is non-empty, has no nil element,
// and every row holds exactly n features.
// Complexity: O(m·n).
func Matrix(x [][]*apd.Decimal, n int, name string) error {
	if len(x) == 0 {
		return invalid(name, "is null or empty")
	}
	for i, row := range x {
		if len(row) != n {
			return mismatch(fmt.Sprintf("%s[%d]", name, i),
				fmt.Sprintf("has %d features, want %d", len(row), n))
		}
		for j, e := range row {
			if e == nil {
				return invalid(fmt.Sprintf("%s[%d][%d]", name, i, j), "is null")
			}
		}
	}

	return nil
}

// SameLen ensures the example count of x matches the target count of y.
func SameLen(nx, ny int) error {
	if nx != ny {
		return mismatch("x, y", fmt.Sprintf("have different sizes (%d != %d)", nx, ny))
	}

	return nil
}

// Linear validates single-feature inputs: x → y → w → b → len(x)==len(y).
func Linear(x, y []*apd.Decimal, w, b *apd.Decimal) error {
	if err := Vector(x, "x"); err != nil {
		return err
	}
	if err := Vector(y, "y"); err != nil {
		return err
	}
	if err := Scalar(w, "w"); err != nil {
		return err
	}
	if err := Scalar(b, "b"); err != nil {
		return err
	}

	return SameLen(len(x), len(y))
}

// Logistic validates multi-feature inputs:
// x non-empty → y → w → b → len(x)==len(y) → rows of len(w).
func Logistic(x [][]*apd.Decimal, y, w []*apd.Decimal, b *apd.Decimal) error {
	if len(x) == 0 {
		return invalid("x", "is null or empty")
	}
	if err := Vector(y, "y"); err != nil {
		return err
	}
	if err := Vector(w, "w"); err != nil {
		return err
	}
	if err := Scalar(b, "b"); err != nil {
		return err
	}
	if err := SameLen(len(x), len(y)); err != nil {
		return err
	}

	return Matrix(x, len(w), "x")
}
