// SPDX-License-Identifier: MIT

package decimal

import (
	"errors"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is the numeric type of every value in decigrad.
type Decimal = apd.Decimal

// exact performs Add/Sub/Mul without rounding (precision 0 = unlimited).
var exact = apd.BaseContext.WithPrecision(0)

// Add returns x + y exactly.
func Add(x, y *Decimal) (*Decimal, error) {
	d := new(Decimal)
	if _, err := exact.Add(d, x, y); err != nil {
		return nil, decimalErrorf("Add", err)
	}

	return d, nil
}

// Sub returns x - y exactly.
func Sub(x, y *Decimal) (*Decimal, error) {
	d := new(Decimal)
	if _, err := exact.Sub(d, x, y); err != nil {
		return nil, decimalErrorf("Sub", err)
	}

	return d, nil
}

// Mul returns x * y exactly.
func Mul(x, y *Decimal) (*Decimal, error) {
	d := new(Decimal)
	if _, err := exact.Mul(d, x, y); err != nil {
		return nil, decimalErrorf("Mul", err)
	}

	return d, nil
}

// Neg returns -x as a new value.
func Neg(x *Decimal) *Decimal {
	return new(Decimal).Neg(x)
}

// Sum adds xs in index order, exactly. An empty slice sums to zero.
func Sum(xs []*Decimal) (*Decimal, error) {
	acc := new(Decimal)
	for _, x := range xs {
		if _, err := exact.Add(acc, acc, x); err != nil {
			return nil, decimalErrorf("Sum", err)
		}
	}

	return acc, nil
}

// Dot returns Σ a[j]*b[j] exactly, accumulated in index order.
// Returns ErrLengthMismatch if len(a) != len(b).
func Dot(a, b []*Decimal) (*Decimal, error) {
	if len(a) != len(b) {
		return nil, decimalErrorf("Dot", ErrLengthMismatch)
	}
	acc := new(Decimal)
	term := new(Decimal)
	for j := range a {
		if _, err := exact.Mul(term, a[j], b[j]); err != nil {
			return nil, decimalErrorf("Dot", err)
		}
		if _, err := exact.Add(acc, acc, term); err != nil {
			return nil, decimalErrorf("Dot", err)
		}
	}

	return acc, nil
}

// NativeExp evaluates e^x in float64 and casts the result back.
// The cast uses the shortest decimal that round-trips the float64.
func NativeExp(x *Decimal) (*Decimal, error) {
	return native("NativeExp", x, math.Exp)
}

// NativeLn evaluates ln(x) in float64 and casts the result back.
// ln(0) is -Inf and fails with ErrNonFinite.
func NativeLn(x *Decimal) (*Decimal, error) {
	return native("NativeLn", x, math.Log)
}

// native hands x to fn as float64. Magnitudes beyond the float64 range
// arrive as ±Inf, so exp and ln see the same limits a double would.
func native(op string, x *Decimal, fn func(float64) float64) (*Decimal, error) {
	f, err := x.Float64()
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, decimalErrorf(op, err)
	}
	r := fn(f)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, decimalErrorf(op, ErrNonFinite)
	}

	return FromFloat64(r)
}
