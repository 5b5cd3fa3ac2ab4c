// SPDX-License-Identifier: MIT

// Package baseline trains the same models in float64 with gonum/mat.
//
// It exists to measure how far binary floating point drifts from the
// decimal result on a given dataset: Compare reports the largest absolute
// parameter difference between a baseline Model and a decimal run.
package baseline

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/decigrad/decimal"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for baseline training.
var (
	// ErrShape is returned for empty inputs or mismatched dimensions.
	ErrShape = errors.New("baseline: invalid shape")

	// ErrDiverged is returned when a parameter stops being finite.
	ErrDiverged = errors.New("baseline: parameters diverged")
)

// Model is a float64 parameter set and its cost history.
type Model struct {
	W       []float64
	B       float64
	History []float64
}

// FromDecimal converts a decimal table into a dense design matrix and target vector.
func FromDecimal(x [][]*decimal.Decimal, y []*decimal.Decimal) (*mat.Dense, *mat.VecDense, error) {
	if len(x) == 0 || len(x) != len(y) || len(x[0]) == 0 {
		return nil, nil, fmt.Errorf("%w: %d rows, %d targets", ErrShape, len(x), len(y))
	}
	m, n := len(x), len(x[0])
	X := mat.NewDense(m, n, nil)
	Y := mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		if len(x[i]) != n {
			return nil, nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrShape, i, len(x[i]), n)
		}
		for j := 0; j < n; j++ {
			f, err := decimal.Float64(x[i][j])
			if err != nil {
				return nil, nil, err
			}
			X.Set(i, j, f)
		}
		f, err := decimal.Float64(y[i])
		if err != nil {
			return nil, nil, err
		}
		Y.SetVec(i, f)
	}

	return X, Y, nil
}

// Linear fits X·w + b to y from zero parameters.
func Linear(X *mat.Dense, y *mat.VecDense, alpha float64, iterations, historyLimit int) (Model, error) {
	return fit(X, y, alpha, iterations, historyLimit, identity, squaredError)
}

// Logistic fits sigmoid(X·w + b) to y from zero parameters.
func Logistic(X *mat.Dense, y *mat.VecDense, alpha float64, iterations, historyLimit int) (Model, error) {
	return fit(X, y, alpha, iterations, historyLimit, sigmoid, crossEntropy)
}

func identity(z float64) float64 { return z }

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// squaredError returns Σ(p−y)²/(2m).
func squaredError(p, y *mat.VecDense) float64 {
	var e mat.VecDense
	e.SubVec(p, y)
	return mat.Dot(&e, &e) / float64(2*y.Len())
}

// crossEntropy returns Σ[−y·ln p − (1−y)·ln(1−p)]/m.
func crossEntropy(p, y *mat.VecDense) float64 {
	sum := 0.0
	for i := 0; i < y.Len(); i++ {
		pi, yi := p.AtVec(i), y.AtVec(i)
		if yi != 0 {
			sum -= yi * math.Log(pi)
		}
		if yi != 1 {
			sum -= (1 - yi) * math.Log(1-pi)
		}
	}
	return sum / float64(y.Len())
}

func fit(X *mat.Dense, y *mat.VecDense, alpha float64, iterations, historyLimit int,
	act func(float64) float64, cost func(p, y *mat.VecDense) float64) (Model, error) {
	m, n := X.Dims()
	if m == 0 || n == 0 || y.Len() != m {
		return Model{}, fmt.Errorf("%w: X is %dx%d, y has %d", ErrShape, m, n, y.Len())
	}

	w := mat.NewVecDense(n, nil)
	b := 0.0
	history := make([]float64, 0, max(0, min(iterations, historyLimit)))

	predict := func() *mat.VecDense {
		p := mat.NewVecDense(m, nil)
		p.MulVec(X, w)
		raw := p.RawVector().Data
		for i := range raw {
			raw[i] = act(raw[i] + b)
		}
		return p
	}

	var e, dw mat.VecDense
	for i := 0; i < iterations; i++ {
		e.SubVec(predict(), y)
		dw.MulVec(X.T(), &e)
		dw.ScaleVec(1/float64(m), &dw)
		db := mat.Sum(&e) / float64(m)

		w.AddScaledVec(w, -alpha, &dw)
		b -= alpha * db
		if !finite(b) || !allFinite(w.RawVector().Data) {
			return Model{}, fmt.Errorf("%w at iteration %d", ErrDiverged, i)
		}

		if i < historyLimit {
			history = append(history, cost(predict(), y))
		}
	}

	return Model{W: mat.Col(nil, 0, w), B: b, History: history}, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func allFinite(fs []float64) bool {
	for _, f := range fs {
		if !finite(f) {
			return false
		}
	}
	return true
}

// Report is the gap between a baseline and a decimal run.
type Report struct {
	MaxAbsW float64 // max_j |w_float[j] − w_decimal[j]|
	AbsB    float64 // |b_float − b_decimal|
}

// Compare measures how far m is from the decimal parameters (w, b).
func Compare(m Model, w []*decimal.Decimal, b *decimal.Decimal) (Report, error) {
	if len(w) != len(m.W) {
		return Report{}, fmt.Errorf("%w: %d weights vs %d", ErrShape, len(m.W), len(w))
	}
	var r Report
	for j := range w {
		f, err := decimal.Float64(w[j])
		if err != nil {
			return Report{}, err
		}
		r.MaxAbsW = math.Max(r.MaxAbsW, math.Abs(m.W[j]-f))
	}
	fb, err := decimal.Float64(b)
	if err != nil {
		return Report{}, err
	}
	r.AbsB = math.Abs(m.B - fb)

	return r, nil
}
