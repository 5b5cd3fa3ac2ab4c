// SPDX-License-Identifier: MIT

package cost

import (
	"fmt"

	"github.com/katalvlaran/decigrad/activation"
	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/engine"
	"github.com/katalvlaran/decigrad/validate"
)

// Operation tags for error wrapping.
const (
	opLinear   = "cost.Linear"
	opLogistic = "cost.Logistic"
)

var one = decimal.FromInt64(1)

// Linear computes Σ (w·x_i + b − y_i)² / (2m).
//
// Errors:
//   - validate.ErrInvalidArgument for nil/empty x, y or nil w, b.
//   - validate.ErrSizeMismatch when len(x) != len(y).
//
// Example:
//
//	Linear([1 2 3 4], [2 3 4 5], 2, 1) == 3.75
//	Linear([1 2 3 4], [2 3 4 5], 4, 3) == 50.75
func Linear(x, y []*decimal.Decimal, w, b *decimal.Decimal, opts ...engine.Option) (*decimal.Decimal, error) {
	if err := validate.Linear(x, y, w, b); err != nil {
		return nil, err
	}
	o := engine.Gather(opts...)
	m := len(x)

	terms, err := engine.MapExamples(m, o.Workers(), func(i int) (*decimal.Decimal, error) {
		return linearTerm(x[i], y[i], w, b)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLinear, err)
	}

	return finish(opLinear, terms, 2*m, o.Policy())
}

// linearTerm returns (w·x + b − y)², exactly.
func linearTerm(x, y, w, b *decimal.Decimal) (*decimal.Decimal, error) {
	wx, err := decimal.Mul(w, x)
	if err != nil {
		return nil, err
	}
	pred, err := decimal.Add(wx, b)
	if err != nil {
		return nil, err
	}
	diff, err := decimal.Sub(pred, y)
	if err != nil {
		return nil, err
	}

	return decimal.Mul(diff, diff)
}

// Logistic computes Σ [−y_i·ln(ŷ_i) − (1−y_i)·ln(1−ŷ_i)] / m with
// ŷ_i = sigmoid(x_i·w + b).
//
// Implementation:
//   - Stage 1: validate shapes (x rows must have len(w) features).
//   - Stage 2: per example, exact dot product, sigmoid under the policy,
//     native ln of ŷ and 1−ŷ. A log term whose coefficient (y_i or 1−y_i)
//     is exactly zero contributes zero and is not evaluated.
//   - Stage 3: sum in index order, divide by m, strip trailing zeros.
//
// Errors:
//   - validate sentinels from Stage 1.
//   - decimal.ErrNonFinite when a needed ln argument saturated to 0.
func Logistic(x [][]*decimal.Decimal, y, w []*decimal.Decimal, b *decimal.Decimal, opts ...engine.Option) (*decimal.Decimal, error) {
	if err := validate.Logistic(x, y, w, b); err != nil {
		return nil, err
	}
	o := engine.Gather(opts...)
	p := o.Policy()

	terms, err := engine.MapExamples(len(x), o.Workers(), func(i int) (*decimal.Decimal, error) {
		return logisticTerm(x[i], y[i], w, b, p)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLogistic, err)
	}

	return finish(opLogistic, terms, len(x), p)
}

// logisticTerm returns −y·ln(ŷ) − (1−y)·ln(1−ŷ) for one example.
func logisticTerm(xi []*decimal.Decimal, y *decimal.Decimal, w []*decimal.Decimal, b *decimal.Decimal, p decimal.Policy) (*decimal.Decimal, error) {
	dot, err := decimal.Dot(xi, w)
	if err != nil {
		return nil, err
	}
	z, err := decimal.Add(dot, b)
	if err != nil {
		return nil, err
	}
	f, err := activation.Sigmoid(z, p)
	if err != nil {
		return nil, err
	}

	term := new(decimal.Decimal)
	if !y.IsZero() {
		lnF, err := decimal.NativeLn(f)
		if err != nil {
			return nil, err
		}
		pos, err := decimal.Mul(decimal.Neg(y), lnF)
		if err != nil {
			return nil, err
		}
		term = pos
	}

	oneMinusY, err := decimal.Sub(one, y)
	if err != nil {
		return nil, err
	}
	if oneMinusY.IsZero() {
		return term, nil
	}
	oneMinusF, err := decimal.Sub(one, f)
	if err != nil {
		return nil, err
	}
	lnRest, err := decimal.NativeLn(oneMinusF)
	if err != nil {
		return nil, err
	}
	neg, err := decimal.Mul(oneMinusY, lnRest)
	if err != nil {
		return nil, err
	}

	return decimal.Sub(term, neg)
}

// finish sums terms in index order and performs the single rounding step.
func finish(op string, terms []*decimal.Decimal, divisor int, p decimal.Policy) (*decimal.Decimal, error) {
	sum, err := decimal.Sum(terms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	j, err := p.DivCount(sum, divisor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return j, nil
}
