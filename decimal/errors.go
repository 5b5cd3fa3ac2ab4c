// SPDX-License-Identifier: MIT

package decimal

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "decimal: ..." so it can be grepped in logs.
// Callers match with errors.Is; context is added by wrapping with %w.
var (
	// ErrDivisionByZero is returned when a formula divides by a zero sample
	// count. Validation upstream makes it unreachable in practice.
	ErrDivisionByZero = errors.New("decimal: division by zero")

	// ErrInexact is returned by a strict Policy when rounding to the
	// configured precision would lose digits.
	ErrInexact = errors.New("decimal: inexact result under strict policy")

	// ErrNonFinite signals that a native float64 bridge (exp, ln) produced
	// NaN or ±Inf, which has no decimal image.
	ErrNonFinite = errors.New("decimal: NaN or Inf encountered")

	// ErrParse indicates a string that is not a finite decimal literal.
	ErrParse = errors.New("decimal: cannot parse value")

	// ErrLengthMismatch indicates operands of different lengths (Dot).
	ErrLengthMismatch = errors.New("decimal: length mismatch")
)

// CellError locates a literal of ParseMatrix that failed to parse.
type CellError struct {
	Row, Col int
	Err      error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("decimal: row %d, column %d: %v", e.Row, e.Col, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// decimalErrorf wraps err with the operation tag.
func decimalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
