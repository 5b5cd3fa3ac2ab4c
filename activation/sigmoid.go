// SPDX-License-Identifier: MIT

// Package activation implements the logistic sigmoid in decimal arithmetic.
//
//	sigmoid(z) = 1 / (1 + e^(-z))
//
// e^(-z) is computed by the native float64 exponential and cast back into
// the decimal domain; the division runs at the policy precision and the
// result has its trailing zeros stripped. No clamping is performed:
// for very negative z the exponential overflows and the result saturates
// to 0, for very positive z it underflows and the result is exactly 1.
package activation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/validate"
)

var one = decimal.FromInt64(1)

// Sigmoid returns 1/(1+e^(-z)) under policy p.
//
// Errors:
//   - validate.ErrInvalidArgument if z is nil.
//
// Example:
//
//	half, _ := activation.Sigmoid(decimal.MustParse("0"), decimal.DefaultPolicy())
//	// half == 0.5
func Sigmoid(z *decimal.Decimal, p decimal.Policy) (*decimal.Decimal, error) {
	if err := validate.Scalar(z, "z"); err != nil {
		return nil, err
	}

	e, err := decimal.NativeExp(decimal.Neg(z))
	if errors.Is(err, decimal.ErrNonFinite) {
		// e^(-z) overflowed float64: 1/(1+∞) saturates to 0.
		return decimal.FromInt64(0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("Sigmoid: %w", err)
	}

	lower, err := decimal.Add(one, e)
	if err != nil {
		return nil, fmt.Errorf("Sigmoid: %w", err)
	}

	s, err := p.Quo(one, lower)
	if err != nil {
		return nil, fmt.Errorf("Sigmoid: %w", err)
	}

	return s, nil
}
