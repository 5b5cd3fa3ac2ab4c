// SPDX-License-Identifier: MIT

package regression

import (
	"github.com/katalvlaran/decigrad/activation"
	"github.com/katalvlaran/decigrad/cost"
	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/descent"
	"github.com/katalvlaran/decigrad/gradient"
	"github.com/katalvlaran/decigrad/validate"
)

// LinearModel is a trained single-feature model and its cost history.
type LinearModel struct {
	W, B    *decimal.Decimal
	History []*decimal.Decimal
}

// LogisticModel is a trained n-feature classifier and its cost history.
type LogisticModel struct {
	W       []*decimal.Decimal
	B       *decimal.Decimal
	History []*decimal.Decimal
}

// Sigmoid returns 1/(1+e^(-z)).
func Sigmoid(z *decimal.Decimal, opts ...Option) (*decimal.Decimal, error) {
	return activation.Sigmoid(z, gather(opts).Engine().Policy())
}

// LinearCost returns Σ (w·x_i + b − y_i)² / (2m).
func LinearCost(x, y []*decimal.Decimal, w, b *decimal.Decimal, opts ...Option) (*decimal.Decimal, error) {
	return cost.Linear(x, y, w, b, gather(opts).evaluator...)
}

// LogisticCost returns the mean cross-entropy of sigmoid(x·w + b) against y.
func LogisticCost(x [][]*decimal.Decimal, y, w []*decimal.Decimal, b *decimal.Decimal, opts ...Option) (*decimal.Decimal, error) {
	return cost.Logistic(x, y, w, b, gather(opts).evaluator...)
}

// LinearGradient returns (dw, db).
func LinearGradient(x, y []*decimal.Decimal, w, b *decimal.Decimal, opts ...Option) (dw, db *decimal.Decimal, err error) {
	return gradient.Linear(x, y, w, b, gather(opts).evaluator...)
}

// LogisticGradient returns (db, dw); note the bias derivative comes first.
func LogisticGradient(x [][]*decimal.Decimal, y, w []*decimal.Decimal, b *decimal.Decimal, opts ...Option) (db *decimal.Decimal, dw []*decimal.Decimal, err error) {
	return gradient.Logistic(x, y, w, b, gather(opts).evaluator...)
}

// RunLinear fits w·x + b to y by gradient descent.
//
// x, y, w0, b0 and alpha are validated before the first iteration.
// With iterations == 0 the model equals (w0, b0) and History is empty.
func RunLinear(x, y []*decimal.Decimal, w0, b0, alpha *decimal.Decimal, iterations uint64, opts ...Option) (LinearModel, error) {
	if err := validate.Linear(x, y, w0, b0); err != nil {
		return LinearModel{}, err
	}
	if err := validate.Scalar(alpha, "alpha"); err != nil {
		return LinearModel{}, err
	}

	o := gather(opts)
	obj := LinearObjective{X: x, Y: y, Opts: o.evaluator}
	res, err := descent.Run(obj, descent.Params{W: []*decimal.Decimal{w0}, B: b0}, alpha, iterations, o.run...)
	if err != nil {
		return LinearModel{}, err
	}

	return LinearModel{W: res.Params.W[0], B: res.Params.B, History: res.History}, nil
}

// RunLogistic fits sigmoid(x·w + b) to binary labels y by gradient descent.
//
// x, y, w0, b0 and alpha are validated before the first iteration; every
// row of x must have len(w0) features.
func RunLogistic(x [][]*decimal.Decimal, y, w0 []*decimal.Decimal, b0, alpha *decimal.Decimal, iterations uint64, opts ...Option) (LogisticModel, error) {
	if err := validate.Logistic(x, y, w0, b0); err != nil {
		return LogisticModel{}, err
	}
	if err := validate.Scalar(alpha, "alpha"); err != nil {
		return LogisticModel{}, err
	}

	o := gather(opts)
	obj := LogisticObjective{X: x, Y: y, Opts: o.evaluator}
	res, err := descent.Run(obj, descent.Params{W: w0, B: b0}, alpha, iterations, o.run...)
	if err != nil {
		return LogisticModel{}, err
	}

	return LogisticModel{W: res.Params.W, B: res.Params.B, History: res.History}, nil
}
