// SPDX-License-Identifier: MIT

package descent_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/descent"
	"github.com/katalvlaran/decigrad/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bowl is J(w, b) = Σ (w_j − target)² + b², with ∇ = (2(w_j − target), 2b).
// Everything is exact, so the iterates can be predicted by hand.
type bowl struct {
	target     *decimal.Decimal
	gradCalls  int
	costCalls  int
	failOnCall int
	dropDW     bool
}

var (
	two  = decimal.FromInt64(2)
	boom = errors.New("objective failed")
)

func (o *bowl) Gradient(p descent.Params) (descent.Gradient, error) {
	o.gradCalls++
	if o.failOnCall > 0 && o.gradCalls == o.failOnCall {
		return descent.Gradient{}, boom
	}
	dw := make([]*decimal.Decimal, len(p.W))
	for j, w := range p.W {
		diff, err := decimal.Sub(w, o.target)
		if err != nil {
			return descent.Gradient{}, err
		}
		if dw[j], err = decimal.Mul(two, diff); err != nil {
			return descent.Gradient{}, err
		}
	}
	if o.dropDW {
		dw = dw[:len(dw)-1]
	}
	db, err := decimal.Mul(two, p.B)
	if err != nil {
		return descent.Gradient{}, err
	}
	return descent.Gradient{DW: dw, DB: db}, nil
}

func (o *bowl) Cost(p descent.Params) (*decimal.Decimal, error) {
	o.costCalls++
	terms := make([]*decimal.Decimal, 0, len(p.W)+1)
	for _, w := range p.W {
		diff, err := decimal.Sub(w, o.target)
		if err != nil {
			return nil, err
		}
		sq, err := decimal.Mul(diff, diff)
		if err != nil {
			return nil, err
		}
		terms = append(terms, sq)
	}
	bb, err := decimal.Mul(p.B, p.B)
	if err != nil {
		return nil, err
	}
	return decimal.Sum(append(terms, bb))
}

func d(s string) *decimal.Decimal { return decimal.MustParse(s) }

func start() descent.Params {
	return descent.Params{W: []*decimal.Decimal{d("0"), d("10")}, B: d("1")}
}

// TestRun_ZeroIterations returns a copy of init and no history.
func TestRun_ZeroIterations(t *testing.T) {
	obj := &bowl{target: d("3")}
	init := start()
	res, err := descent.Run(obj, init, d("0.1"), 0)
	require.NoError(t, err)
	assert.Empty(t, res.History)
	assert.Equal(t, decimal.Strings(init.W), decimal.Strings(res.Params.W))
	assert.Equal(t, init.B.String(), res.Params.B.String())
	assert.Zero(t, obj.gradCalls)

	res.Params.W[0].SetInt64(99)
	assert.Equal(t, "0", init.W[0].String(), "result must not alias init")
}

// TestRun_ExactUpdates follows two hand-computed steps with alpha 0.25:
// w ← w − 0.5(w − 3), b ← b/2.
func TestRun_ExactUpdates(t *testing.T) {
	obj := &bowl{target: d("3")}
	init := start()
	res, err := descent.Run(obj, init, d("0.25"), 2)
	require.NoError(t, err)

	// exact arithmetic keeps the scale of the operands (2.2500), so compare values
	require.Len(t, res.Params.W, 2)
	assert.True(t, decimal.Equal(d("2.25"), res.Params.W[0]), res.Params.W[0].String())
	assert.True(t, decimal.Equal(d("4.75"), res.Params.W[1]), res.Params.W[1].String())
	assert.True(t, decimal.Equal(d("0.25"), res.Params.B), res.Params.B.String())

	require.Len(t, res.History, 2)
	// after step 1: w = [1.5, 6.5], b = 0.5 → 2.25 + 12.25 + 0.25
	assert.True(t, decimal.Equal(d("14.75"), res.History[0]), res.History[0].String())
	// after step 2: (0.75)² + (1.75)² + (0.25)²
	assert.True(t, decimal.Equal(d("3.6875"), res.History[1]), res.History[1].String())

	assert.Equal(t, "0", init.W[0].String(), "init must not be mutated")
	assert.Equal(t, "1", init.B.String())
}

// TestDefaultOptions pins the default history cap and hooks.
func TestDefaultOptions(t *testing.T) {
	assert.EqualValues(t, 100000, descent.DefaultHistoryLimit)
	o := descent.DefaultOptions()
	assert.Equal(t, descent.DefaultHistoryLimit, o.HistoryLimit)
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.OnProgress)
}

// TestRun_HistoryLimit records exactly min(iterations, limit) costs.
func TestRun_HistoryLimit(t *testing.T) {
	cases := []struct {
		iterations, limit uint64
		want              int
	}{
		{25, 10, 10},
		{5, 10, 5},
		{7, 0, 0},
		{10, 10, 10},
	}
	for _, tc := range cases {
		obj := &bowl{target: d("1")}
		res, err := descent.Run(obj, start(), d("0.1"), tc.iterations, descent.WithHistoryLimit(tc.limit))
		require.NoError(t, err)
		assert.Len(t, res.History, tc.want)
		assert.Equal(t, tc.want, obj.costCalls, "cost is evaluated only when recorded")
		assert.EqualValues(t, tc.iterations, obj.gradCalls)
	}
}

// TestRun_ObserverSchedule fires at multiples of ceil(N/10).
func TestRun_ObserverSchedule(t *testing.T) {
	cases := []struct {
		iterations uint64
		want       []uint64
	}{
		{100, []uint64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}},
		{25, []uint64{0, 3, 6, 9, 12, 15, 18, 21, 24}},
		{3, []uint64{0, 1, 2}},
		{1, []uint64{0}},
	}
	for _, tc := range cases {
		var got []uint64
		obs := func(p descent.Progress) {
			assert.Equal(t, tc.iterations, p.Iterations)
			assert.NotNil(t, p.Cost)
			got = append(got, p.Iteration)
		}
		_, err := descent.Run(&bowl{target: d("1")}, start(), d("0.1"), tc.iterations, descent.WithObserver(obs))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "iterations=%d", tc.iterations)
	}
}

// TestRun_ObserverWithoutHistory reports a nil cost when nothing is recorded.
func TestRun_ObserverWithoutHistory(t *testing.T) {
	calls := 0
	obs := func(p descent.Progress) {
		calls++
		assert.Nil(t, p.Cost)
	}
	_, err := descent.Run(&bowl{target: d("1")}, start(), d("0.1"), 20,
		descent.WithHistoryLimit(0), descent.WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, 10, calls)
}

// TestRun_Converges walks toward the bowl minimum.
func TestRun_Converges(t *testing.T) {
	res, err := descent.Run(&bowl{target: d("3")}, start(), d("0.1"), 200)
	require.NoError(t, err)
	for _, w := range res.Params.W {
		f, err := decimal.Float64(w)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, f, 1e-9)
	}
	b, err := decimal.Float64(res.Params.B)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, b, 1e-9)

	for i := 1; i < len(res.History); i++ {
		assert.LessOrEqual(t, res.History[i].Cmp(res.History[i-1]), 0, "cost must not increase at %d", i)
	}
}

// TestRun_Errors covers validation and propagation.
func TestRun_Errors(t *testing.T) {
	_, err := descent.Run(nil, start(), d("0.1"), 1)
	assert.ErrorIs(t, err, descent.ErrObjectiveNil)

	_, err = descent.Run(&bowl{target: d("1")}, start(), nil, 1)
	var ae *validate.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "alpha", ae.Param)

	_, err = descent.Run(&bowl{target: d("1")}, descent.Params{B: d("0")}, d("0.1"), 1)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)

	_, err = descent.Run(&bowl{target: d("1")}, descent.Params{W: start().W}, d("0.1"), 1)
	assert.ErrorIs(t, err, validate.ErrInvalidArgument)

	res, err := descent.Run(&bowl{target: d("1"), failOnCall: 3}, start(), d("0.1"), 10)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "iteration 2")
	assert.Nil(t, res.History, "no partial result")

	_, err = descent.Run(&bowl{target: d("1"), dropDW: true}, start(), d("0.1"), 10)
	assert.ErrorIs(t, err, validate.ErrSizeMismatch)
}

// TestRun_Cancelled stops before the first gradient evaluation.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	obj := &bowl{target: d("1")}
	_, err := descent.Run(obj, start(), d("0.1"), 5, descent.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, obj.gradCalls)
}

// TestSlogObserver writes one structured record per notification.
func TestSlogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := descent.Run(&bowl{target: d("1")}, start(), d("0.1"), 10,
		descent.WithObserver(descent.SlogObserver(logger)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], `msg="gradient descent"`)
	assert.Contains(t, lines[0], "iteration=0")
	assert.Contains(t, lines[0], "of=10")
	assert.Contains(t, lines[0], "cost=")

	buf.Reset()
	descent.SlogObserver(logger)(descent.Progress{Iteration: 4, Iterations: 9})
	assert.Contains(t, buf.String(), "cost=none")
}
