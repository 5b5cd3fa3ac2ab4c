// SPDX-License-Identifier: MIT

package baseline_test

import (
	"testing"

	"github.com/katalvlaran/decigrad/baseline"
	"github.com/katalvlaran/decigrad/dataset"
	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLogistic_Course(t *testing.T) {
	tbl := dataset.CourseLogistic()
	X, y, err := baseline.FromDecimal(tbl.X, tbl.Y)
	require.NoError(t, err)

	m, err := baseline.Logistic(X, y, 0.1, 10000, 100000)
	require.NoError(t, err)
	require.Len(t, m.W, 2)
	assert.InDelta(t, 5.281230291780549, m.W[0], 1e-9)
	assert.InDelta(t, 5.078156075159833, m.W[1], 1e-9)
	assert.InDelta(t, -14.222409982019837, m.B, 1e-9)
	assert.Len(t, m.History, 10000)
	assert.Less(t, m.History[9999], m.History[0])
}

func TestLinear_Line(t *testing.T) {
	tbl := dataset.CourseLinear()
	X, y, err := baseline.FromDecimal(tbl.X, tbl.Y)
	require.NoError(t, err)

	m, err := baseline.Linear(X, y, 0.1, 2000, 10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.W[0], 1e-9)
	assert.InDelta(t, 1.0, m.B, 1e-9)
	assert.Len(t, m.History, 10)

	// zero parameters: J = (4+9+16+25)/8
	first, err := baseline.Linear(X, y, 0, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 6.75, first.History[0], 1e-12)
}

func TestShapes(t *testing.T) {
	_, _, err := baseline.FromDecimal(nil, nil)
	assert.ErrorIs(t, err, baseline.ErrShape)

	ragged := [][]*decimal.Decimal{{decimal.FromInt64(1)}, {decimal.FromInt64(1), decimal.FromInt64(2)}}
	_, _, err = baseline.FromDecimal(ragged, []*decimal.Decimal{decimal.FromInt64(0), decimal.FromInt64(1)})
	assert.ErrorIs(t, err, baseline.ErrShape)

	X := mat.NewDense(2, 1, []float64{1, 2})
	_, err = baseline.Linear(X, mat.NewVecDense(3, nil), 0.1, 1, 1)
	assert.ErrorIs(t, err, baseline.ErrShape)
}

func TestDiverged(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1e150, -1e150})
	y := mat.NewVecDense(2, []float64{1, 0})
	_, err := baseline.Linear(X, y, 1e10, 50, 0)
	assert.ErrorIs(t, err, baseline.ErrDiverged)
}

func TestCompare_DecimalRun(t *testing.T) {
	tbl := dataset.CourseLogistic()
	dm, err := regression.RunLogistic(tbl.X, tbl.Y,
		[]*decimal.Decimal{decimal.FromInt64(0), decimal.FromInt64(0)}, decimal.FromInt64(0),
		decimal.MustParse("0.1"), 200, regression.WithHistoryLimit(0))
	require.NoError(t, err)

	X, y, err := baseline.FromDecimal(tbl.X, tbl.Y)
	require.NoError(t, err)
	fm, err := baseline.Logistic(X, y, 0.1, 200, 0)
	require.NoError(t, err)

	r, err := baseline.Compare(fm, dm.W, dm.B)
	require.NoError(t, err)
	assert.Less(t, r.MaxAbsW, 1e-9)
	assert.Less(t, r.AbsB, 1e-9)

	_, err = baseline.Compare(fm, dm.W[:1], dm.B)
	assert.ErrorIs(t, err, baseline.ErrShape)
}
