// SPDX-License-Identifier: MIT

package regression

import (
	"context"

	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/descent"
	"github.com/katalvlaran/decigrad/engine"
)

// DefaultThreshold is the probability at or above which Classify answers 1.
const DefaultThreshold = "0.5"

// Option configures a facade call. Evaluator settings reach the cost and
// gradient functions; run settings reach the descent driver.
type Option func(*Options)

// Options collects the forwarded settings.
type Options struct {
	evaluator []engine.Option
	run       []descent.Option
}

func gather(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Engine returns the effective evaluator configuration.
func (o Options) Engine() engine.Options { return engine.Gather(o.evaluator...) }

// WithPolicy sets the decimal policy for every rounding step.
func WithPolicy(p decimal.Policy) Option {
	return func(o *Options) { o.evaluator = append(o.evaluator, engine.WithPolicy(p)) }
}

// WithWorkers evaluates up to n examples concurrently per cost or gradient call.
func WithWorkers(n int) Option {
	e := engine.WithWorkers(n)
	return func(o *Options) { o.evaluator = append(o.evaluator, e) }
}

// WithDropZeroGradients enables the legacy zero-component removal of the
// logistic gradient. Training with it fails with validate.ErrSizeMismatch
// as soon as a component is dropped.
func WithDropZeroGradients() Option {
	return func(o *Options) { o.evaluator = append(o.evaluator, engine.WithDropZeroGradients()) }
}

// WithHistoryLimit records at most n cost values during training.
func WithHistoryLimit(n uint64) Option {
	return func(o *Options) { o.run = append(o.run, descent.WithHistoryLimit(n)) }
}

// WithObserver receives training progress.
func WithObserver(fn descent.Observer) Option {
	return func(o *Options) { o.run = append(o.run, descent.WithObserver(fn)) }
}

// WithContext allows a training run to be cancelled between iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.run = append(o.run, descent.WithContext(ctx)) }
}
