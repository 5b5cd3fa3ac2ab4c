// SPDX-License-Identifier: MIT

package descent

import (
	"fmt"

	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/validate"
)

// Run performs batch gradient descent on obj starting from init.
//
// Each iteration i ∈ [0, iterations):
//  1. g := obj.Gradient(current)
//  2. next.W[j] = current.W[j] − alpha·g.DW[j], next.B = current.B − alpha·g.DB
//     (exact; no rounding is applied to the update)
//  3. if i < HistoryLimit, append obj.Cost(next) to the history
//  4. if i mod ceil(iterations/10) == 0, call OnProgress
//
// iterations == 0 returns a copy of init and an empty history.
// The caller's init is never mutated.
//
// Errors:
//   - ErrObjectiveNil if obj is nil.
//   - validate.ErrInvalidArgument if alpha, init.W or init.B is missing.
//   - validate.ErrSizeMismatch if a gradient's DW length differs from W.
//   - any error from obj, wrapped with the iteration index.
//   - the context error if Ctx is cancelled.
//
// Complexity: O(iterations · cost of obj).
func Run(obj Objective, init Params, alpha *decimal.Decimal, iterations uint64, opts ...Option) (Result, error) {
	if obj == nil {
		return Result{}, ErrObjectiveNil
	}
	if err := validate.Scalar(alpha, "alpha"); err != nil {
		return Result{}, err
	}
	if err := validate.Vector(init.W, "w"); err != nil {
		return Result{}, err
	}
	if err := validate.Scalar(init.B, "b"); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	current := init.Clone()
	history := make([]*decimal.Decimal, 0, min(iterations, o.HistoryLimit))
	if iterations == 0 {
		return Result{Params: current, History: history}, nil
	}

	interval := (iterations + 9) / 10
	for i := uint64(0); i < iterations; i++ {
		if err := o.Ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("descent: iteration %d: %w", i, err)
		}

		g, err := obj.Gradient(current)
		if err != nil {
			return Result{}, fmt.Errorf("descent: iteration %d: %w", i, err)
		}
		next, err := step(current, g, alpha)
		if err != nil {
			return Result{}, fmt.Errorf("descent: iteration %d: %w", i, err)
		}
		current = next

		if i < o.HistoryLimit {
			j, err := obj.Cost(current)
			if err != nil {
				return Result{}, fmt.Errorf("descent: iteration %d: %w", i, err)
			}
			history = append(history, j)
		}

		if i%interval == 0 {
			var last *decimal.Decimal
			if len(history) > 0 {
				last = history[len(history)-1]
			}
			o.OnProgress(Progress{Iteration: i, Iterations: iterations, Cost: last})
		}
	}

	return Result{Params: current, History: history}, nil
}

// step returns p − alpha·g as a fresh Params.
func step(p Params, g Gradient, alpha *decimal.Decimal) (Params, error) {
	if len(g.DW) != len(p.W) {
		return Params{}, &validate.ArgumentError{
			Param:  "dw",
			Reason: fmt.Sprintf("has %d components, want %d", len(g.DW), len(p.W)),
			Err:    validate.ErrSizeMismatch,
		}
	}
	if err := validate.Scalar(g.DB, "db"); err != nil {
		return Params{}, err
	}

	w := make([]*decimal.Decimal, len(p.W))
	for j := range p.W {
		if err := validate.Scalar(g.DW[j], fmt.Sprintf("dw[%d]", j)); err != nil {
			return Params{}, err
		}
		delta, err := decimal.Mul(alpha, g.DW[j])
		if err != nil {
			return Params{}, err
		}
		if w[j], err = decimal.Sub(p.W[j], delta); err != nil {
			return Params{}, err
		}
	}

	delta, err := decimal.Mul(alpha, g.DB)
	if err != nil {
		return Params{}, err
	}
	b, err := decimal.Sub(p.B, delta)
	if err != nil {
		return Params{}, err
	}

	return Params{W: w, B: b}, nil
}
