// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"

	"github.com/katalvlaran/decigrad/activation"
	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/validate"
)

var (
	threshold = decimal.MustParse(DefaultThreshold)
	zero      = decimal.FromInt64(0)
	one       = decimal.FromInt64(1)
)

// PredictLinear returns w·x_i + b for every x_i, exactly.
func PredictLinear(x []*decimal.Decimal, w, b *decimal.Decimal) ([]*decimal.Decimal, error) {
	if err := validate.Vector(x, "x"); err != nil {
		return nil, err
	}
	if err := validate.Scalar(w, "w"); err != nil {
		return nil, err
	}
	if err := validate.Scalar(b, "b"); err != nil {
		return nil, err
	}

	out := make([]*decimal.Decimal, len(x))
	for i, xi := range x {
		wx, err := decimal.Mul(w, xi)
		if err != nil {
			return nil, err
		}
		if out[i], err = decimal.Add(wx, b); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// PredictLogistic returns sigmoid(x_i·w + b) for every row of x.
func PredictLogistic(x [][]*decimal.Decimal, w []*decimal.Decimal, b *decimal.Decimal, opts ...Option) ([]*decimal.Decimal, error) {
	if len(x) == 0 {
		return nil, &validate.ArgumentError{Param: "x", Reason: "is null or empty", Err: validate.ErrInvalidArgument}
	}
	if err := validate.Vector(w, "w"); err != nil {
		return nil, err
	}
	if err := validate.Scalar(b, "b"); err != nil {
		return nil, err
	}
	if err := validate.Matrix(x, len(w), "x"); err != nil {
		return nil, err
	}

	p := gather(opts).Engine().Policy()
	out := make([]*decimal.Decimal, len(x))
	for i, row := range x {
		dot, err := decimal.Dot(row, w)
		if err != nil {
			return nil, err
		}
		z, err := decimal.Add(dot, b)
		if err != nil {
			return nil, err
		}
		if out[i], err = activation.Sigmoid(z, p); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return out, nil
}

// Classify maps probabilities to labels: 1 if p ≥ t, else 0.
// A nil t uses DefaultThreshold.
func Classify(probs []*decimal.Decimal, t *decimal.Decimal) ([]*decimal.Decimal, error) {
	if err := validate.Vector(probs, "probs"); err != nil {
		return nil, err
	}
	if t == nil {
		t = threshold
	}

	out := make([]*decimal.Decimal, len(probs))
	for i, p := range probs {
		if p.Cmp(t) >= 0 {
			out[i] = decimal.Clone(one)
		} else {
			out[i] = decimal.Clone(zero)
		}
	}

	return out, nil
}

// Accuracy returns the fraction of labels equal to y, under the policy.
func Accuracy(labels, y []*decimal.Decimal, opts ...Option) (*decimal.Decimal, error) {
	if err := validate.Vector(labels, "labels"); err != nil {
		return nil, err
	}
	if err := validate.Vector(y, "y"); err != nil {
		return nil, err
	}
	if len(labels) != len(y) {
		return nil, &validate.ArgumentError{
			Param:  "labels, y",
			Reason: fmt.Sprintf("have different sizes (%d != %d)", len(labels), len(y)),
			Err:    validate.ErrSizeMismatch,
		}
	}

	hits := int64(0)
	for i := range labels {
		if decimal.Equal(labels[i], y[i]) {
			hits++
		}
	}

	return gather(opts).Engine().Policy().DivCount(decimal.FromInt64(hits), len(y))
}
