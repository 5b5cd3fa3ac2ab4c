// SPDX-License-Identifier: MIT

// Package gradient computes the partial derivatives of the cost functions
// with respect to the model parameters.
//
// Each per-example prediction error is exact; the error-weighted sums are
// accumulated in index order and divided once by the sample count under
// the engine policy.
package gradient

import (
	"fmt"

	"github.com/katalvlaran/decigrad/activation"
	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/engine"
	"github.com/katalvlaran/decigrad/validate"
)

const (
	opLinear   = "gradient.Linear"
	opLogistic = "gradient.Logistic"
)

// Linear returns (∂J/∂w, ∂J/∂b) of the squared-error cost:
//
//	err_i = w·x_i + b − y_i
//	dw    = Σ err_i·x_i / m
//	db    = Σ err_i / m
//
// Validation matches cost.Linear.
func Linear(x, y []*decimal.Decimal, w, b *decimal.Decimal, opts ...engine.Option) (dw, db *decimal.Decimal, err error) {
	if err = validate.Linear(x, y, w, b); err != nil {
		return nil, nil, err
	}
	o := engine.Gather(opts...)
	p := o.Policy()
	m := len(x)

	errs, err := engine.MapExamples(m, o.Workers(), func(i int) (*decimal.Decimal, error) {
		wx, err := decimal.Mul(w, x[i])
		if err != nil {
			return nil, err
		}
		pred, err := decimal.Add(wx, b)
		if err != nil {
			return nil, err
		}
		return decimal.Sub(pred, y[i])
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLinear, err)
	}

	sumW, err := weightedSum(errs, func(i int) *decimal.Decimal { return x[i] })
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLinear, err)
	}
	sumB, err := decimal.Sum(errs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLinear, err)
	}

	if dw, err = p.DivCount(sumW, m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLinear, err)
	}
	if db, err = p.DivCount(sumB, m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLinear, err)
	}

	return dw, db, nil
}

// Logistic returns (∂J/∂b, ∂J/∂w) of the cross-entropy cost. The bias
// derivative comes first.
//
//	err_i = sigmoid(x_i·w + b) − y_i
//	dw[j] = Σ err_i·x_i[j] / m
//	db    = Σ err_i / m
//
// dw has len(w) components. With engine.WithDropZeroGradients the
// components equal to zero are removed instead, so dw may be shorter.
func Logistic(x [][]*decimal.Decimal, y, w []*decimal.Decimal, b *decimal.Decimal, opts ...engine.Option) (db *decimal.Decimal, dw []*decimal.Decimal, err error) {
	if err = validate.Logistic(x, y, w, b); err != nil {
		return nil, nil, err
	}
	o := engine.Gather(opts...)
	p := o.Policy()
	m, n := len(x), len(w)

	errs, err := engine.MapExamples(m, o.Workers(), func(i int) (*decimal.Decimal, error) {
		dot, err := decimal.Dot(x[i], w)
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
		return decimal.Sub(f, y[i])
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLogistic, err)
	}

	dw = make([]*decimal.Decimal, 0, n)
	for j := 0; j < n; j++ {
		sum, err := weightedSum(errs, func(i int) *decimal.Decimal { return x[i][j] })
		if err != nil {
			return nil, nil, fmt.Errorf("%s: feature %d: %w", opLogistic, j, err)
		}
		g, err := p.DivCount(sum, m)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: feature %d: %w", opLogistic, j, err)
		}
		if o.DropZeroGradients() && g.IsZero() {
			continue
		}
		dw = append(dw, g)
	}

	sumB, err := decimal.Sum(errs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLogistic, err)
	}
	if db, err = p.DivCount(sumB, m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opLogistic, err)
	}

	return db, dw, nil
}

// weightedSum returns Σ errs[i]·at(i) exactly, in index order.
func weightedSum(errs []*decimal.Decimal, at func(i int) *decimal.Decimal) (*decimal.Decimal, error) {
	acc := new(decimal.Decimal)
	for i, e := range errs {
		t, err := decimal.Mul(e, at(i))
		if err != nil {
			return nil, err
		}
		if acc, err = decimal.Add(acc, t); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
