// SPDX-License-Identifier: MIT

// Package engine holds the configuration shared by the cost and gradient
// evaluators and the per-example map they are built on.
//
// Options are functional (Option func(*Options)); defaults are documented
// constants. A zero-length option list reproduces the textbook engine:
// 20-digit half-up policy, one worker, full-length gradients.
package engine

import "github.com/katalvlaran/decigrad/decimal"

// DefaultWorkers evaluates examples sequentially on the calling goroutine.
const DefaultWorkers = 1

// DefaultDropZeroGradients keeps zero-valued weight-gradient components.
const DefaultDropZeroGradients = false

const panicWorkersInvalid = "engine: WithWorkers: workers must be >= 1"

// Option configures an evaluator call.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	policy            decimal.Policy
	workers           int
	dropZeroGradients bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		policy:            decimal.DefaultPolicy(),
		workers:           DefaultWorkers,
		dropZeroGradients: DefaultDropZeroGradients,
	}
}

// Gather applies opts over DefaultOptions. Nil options are skipped.
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Policy returns the arithmetic policy.
func (o Options) Policy() decimal.Policy { return o.policy }

// Workers returns the per-example fan-out limit.
func (o Options) Workers() int { return o.workers }

// DropZeroGradients reports whether zero weight-gradient components are removed.
func (o Options) DropZeroGradients() bool { return o.dropZeroGradients }

// WithPolicy sets the arithmetic policy used for every rounding step.
func WithPolicy(p decimal.Policy) Option {
	return func(o *Options) { o.policy = p }
}

// WithWorkers evaluates up to n examples concurrently inside one call.
// The reduction stays sequential, so results do not depend on n.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithDropZeroGradients restores the legacy logistic-gradient behavior of
// removing weight-gradient components that normalize to exactly zero.
// The returned vector may then be shorter than the weight vector.
func WithDropZeroGradients() Option {
	return func(o *Options) { o.dropZeroGradients = true }
}
