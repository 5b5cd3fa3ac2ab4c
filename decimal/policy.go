// SPDX-License-Identifier: MIT

// Package decimal: the rounding policy. This file defines:
//   - documented defaults (single source of truth),
//   - Policy and its functional options,
//   - Finalize / Quo / DivCount, the only operations that round.
//
// Design goals:
//   - Deterministic behavior: no global state; every formula receives a Policy.
//   - Exact intermediates: rounding happens once, at the end of a formula.
//   - Canonical output: trailing zeros are stripped after rounding.

package decimal

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of significant digits kept by Finalize.
	DefaultPrecision uint32 = 20

	// DefaultRounding is round-half-up, the rule a by-hand calculation uses.
	DefaultRounding = apd.RoundHalfUp

	// DefaultStrict disables the inexact trap: rounding silently drops digits.
	DefaultStrict = false
)

const (
	panicPrecisionInvalid = "decimal: WithPrecision: precision must be > 0"
	panicRoundingInvalid  = "decimal: WithRounding: unknown rounding mode"
)

// roundings lists the rounding modes accepted by WithRounding/ParseRounding.
var roundings = map[apd.Rounder]struct{}{
	apd.RoundDown:     {},
	apd.RoundHalfUp:   {},
	apd.RoundHalfEven: {},
	apd.RoundCeiling:  {},
	apd.RoundFloor:    {},
	apd.RoundHalfDown: {},
	apd.RoundUp:       {},
	apd.Round05Up:     {},
}

// Policy is the arithmetic contract shared by every formula.
//
// A Policy is a small value; copy it freely. The zero value is not usable;
// build one with DefaultPolicy or NewPolicy.
type Policy struct {
	// Precision is the number of significant digits of a final result.
	Precision uint32

	// Rounding is the rule applied when a final result has more digits.
	Rounding apd.Rounder

	// Strict turns a lossy rounding into ErrInexact.
	Strict bool
}

// Option mutates a Policy under construction.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Policy)

// DefaultPolicy returns 20 significant digits, half-up, non-strict.
func DefaultPolicy() Policy {
	return Policy{
		Precision: DefaultPrecision,
		Rounding:  DefaultRounding,
		Strict:    DefaultStrict,
	}
}

// NewPolicy builds a Policy from DefaultPolicy and the given options.
func NewPolicy(opts ...Option) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	return p
}

// WithPrecision sets the number of significant digits.
// Panics if digits == 0: an unbounded division never terminates.
func WithPrecision(digits uint32) Option {
	if digits == 0 {
		panic(panicPrecisionInvalid)
	}

	return func(p *Policy) { p.Precision = digits }
}

// WithRounding sets the rounding rule. Panics on a mode apd does not know.
func WithRounding(r apd.Rounder) Option {
	if _, ok := roundings[r]; !ok {
		panic(panicRoundingInvalid)
	}

	return func(p *Policy) { p.Rounding = r }
}

// WithStrict makes every rounding step fail with ErrInexact when digits
// would be lost ("round to fit precision, error if inexact").
func WithStrict() Option {
	return func(p *Policy) { p.Strict = true }
}

// ParseRounding maps a mode name ("half_up", "half-even", "DOWN", ...) to
// an apd.Rounder. Unknown names return ErrParse.
func ParseRounding(name string) (apd.Rounder, error) {
	r := apd.Rounder(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if _, ok := roundings[r]; !ok {
		return "", decimalErrorf("ParseRounding", ErrParse)
	}

	return r, nil
}

// context returns a fresh apd context bound to the policy.
// A fresh value per call keeps Policy safe for concurrent use.
func (p Policy) context() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(p.Precision)
	ctx.Rounding = p.Rounding

	return ctx
}

// Finalize rounds x to the policy precision and strips trailing zeros.
// Implementation:
//   - Stage 1: round into a new value (x is never mutated).
//   - Stage 2: under Strict, reject a lossy rounding with ErrInexact.
//   - Stage 3: Reduce (strip trailing zeros) so equal values share one form.
//
// Complexity: O(digits).
func (p Policy) Finalize(x *Decimal) (*Decimal, error) {
	d := new(Decimal)
	cond, err := p.context().Round(d, x)
	if err != nil {
		return nil, decimalErrorf("Finalize", err)
	}
	if p.Strict && cond.Inexact() {
		return nil, decimalErrorf("Finalize", ErrInexact)
	}
	d.Reduce(d)

	return d, nil
}

// Quo returns x / y rounded to the policy precision, trailing zeros stripped.
// A zero divisor yields ErrDivisionByZero.
func (p Policy) Quo(x, y *Decimal) (*Decimal, error) {
	if y.IsZero() {
		return nil, decimalErrorf("Quo", ErrDivisionByZero)
	}
	d := new(Decimal)
	cond, err := p.context().Quo(d, x, y)
	if err != nil {
		return nil, decimalErrorf("Quo", err)
	}
	if p.Strict && cond.Inexact() {
		return nil, decimalErrorf("Quo", ErrInexact)
	}
	d.Reduce(d)

	return d, nil
}

// DivCount divides an exact accumulator by a sample count. It is the one
// rounding step of every cost and gradient formula.
func (p Policy) DivCount(sum *Decimal, m int) (*Decimal, error) {
	if m == 0 {
		return nil, decimalErrorf("DivCount", ErrDivisionByZero)
	}

	return p.Quo(sum, FromInt64(int64(m)))
}
