// SPDX-License-Identifier: MIT

package descent

import (
	"context"
	"errors"

	"github.com/katalvlaran/decigrad/decimal"
)

// Sentinel errors for descent execution.
var (
	// ErrObjectiveNil is returned if a nil Objective is passed to Run.
	ErrObjectiveNil = errors.New("descent: objective is nil")
)

// DefaultHistoryLimit caps the number of recorded cost values.
const DefaultHistoryLimit uint64 = 100000

// Params is one point in parameter space: a weight vector and a bias.
// Single-feature models use a one-element W.
type Params struct {
	W []*decimal.Decimal
	B *decimal.Decimal
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	return Params{W: decimal.CloneSlice(p.W), B: decimal.Clone(p.B)}
}

// Gradient holds the partial derivatives at a Params point.
type Gradient struct {
	DW []*decimal.Decimal
	DB *decimal.Decimal
}

// Objective is the model being minimized. Implementations must be pure:
// the same Params always yield the same values.
type Objective interface {
	// Gradient returns ∂J/∂w and ∂J/∂b at p.
	Gradient(p Params) (Gradient, error)
	// Cost returns J at p.
	Cost(p Params) (*decimal.Decimal, error)
}

// Result is the outcome of a run:
//   - Params: the parameters after the last update.
//   - History: J after each of the first min(iterations, HistoryLimit) updates.
type Result struct {
	Params  Params
	History []*decimal.Decimal
}

// Progress is the snapshot handed to an Observer.
// Cost is the most recently recorded cost, or nil when none was recorded.
type Progress struct {
	Iteration  uint64
	Iterations uint64
	Cost       *decimal.Decimal
}

// Observer receives periodic progress, roughly ten times per run.
type Observer func(Progress)

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the parameters and callbacks of a run.
type Options struct {
	// Ctx is checked before every iteration; cancellation aborts the run.
	Ctx context.Context

	// HistoryLimit bounds len(Result.History). Zero records nothing.
	HistoryLimit uint64

	// OnProgress is called every ceil(iterations/10) iterations.
	OnProgress Observer
}

// DefaultOptions returns:
//   - context.Background()
//   - HistoryLimit == DefaultHistoryLimit
//   - a no-op observer
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		HistoryLimit: DefaultHistoryLimit,
		OnProgress:   func(Progress) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHistoryLimit records at most n cost values.
func WithHistoryLimit(n uint64) Option {
	return func(o *Options) { o.HistoryLimit = n }
}

// WithObserver registers a progress callback.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}
