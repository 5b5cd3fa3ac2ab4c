// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/decigrad/dataset"
	"github.com/katalvlaran/decigrad/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_WithHeader(t *testing.T) {
	in := "x1, x2, y\n0.5,1.5,0\n3,0.50,1\n"
	tbl, err := dataset.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"x1", "x2", "y"}, tbl.Header)
	assert.Equal(t, 2, tbl.Features())
	require.Len(t, tbl.X, 2)
	assert.Equal(t, []string{"0.5", "1.5"}, decimal.Strings(tbl.X[0]))
	assert.Equal(t, []string{"3", "0.50"}, decimal.Strings(tbl.X[1]), "literal scale is kept")
	assert.Equal(t, []string{"0", "1"}, decimal.Strings(tbl.Y))

	_, err = tbl.Feature()
	assert.ErrorIs(t, err, dataset.ErrNotSingleFeature)
}

func TestRead_NoHeaderSemicolon(t *testing.T) {
	in := "1;2\n2;3\n3;4\n"
	tbl, err := dataset.Read(strings.NewReader(in), dataset.WithHeader(false), dataset.WithComma(';'))
	require.NoError(t, err)
	assert.Nil(t, tbl.Header)

	x, err := tbl.Feature()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, decimal.Strings(x))
	assert.Equal(t, []string{"2", "3", "4"}, decimal.Strings(tbl.Y))
}

func TestRead_Errors(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("x,y\n"))
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrEmpty)

	_, err = dataset.Read(strings.NewReader("y\n1\n"))
	assert.ErrorIs(t, err, dataset.ErrTooFewColumns)

	_, err = dataset.Read(strings.NewReader("x,y\n1,2\nabc,3\n"))
	assert.ErrorIs(t, err, decimal.ErrParse)
	assert.Contains(t, err.Error(), "line 3, column 1")

	_, err = dataset.Read(strings.NewReader("1,2\n3,4\n5,oops\n"), dataset.WithHeader(false))
	assert.ErrorIs(t, err, decimal.ErrParse)
	assert.Contains(t, err.Error(), "line 3, column 2")

	_, err = dataset.Read(strings.NewReader("x,y\n1,NaN\n"))
	assert.ErrorIs(t, err, decimal.ErrParse)

	_, err = dataset.Read(strings.NewReader("x,y\n1,2\n1,2,3\n"))
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,2\n2,3\n"), 0o644))

	tbl, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Len(t, tbl.Y, 2)

	_, err = dataset.Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCourseFixtures(t *testing.T) {
	lin := dataset.CourseLinear()
	x, err := lin.Feature()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, decimal.Strings(x))
	assert.Equal(t, []string{"2", "3", "4", "5"}, decimal.Strings(lin.Y))

	lg := dataset.CourseLogistic()
	assert.Equal(t, 2, lg.Features())
	assert.Len(t, lg.X, 6)
	assert.Equal(t, []string{"1", "2.5"}, decimal.Strings(lg.X[5]))

	// fixtures are fresh on every call
	lg.X[0][0].SetInt64(42)
	assert.Equal(t, "0.5", dataset.CourseLogistic().X[0][0].String())
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	hist := []*decimal.Decimal{decimal.MustParse("0.69314718055994530942"), decimal.MustParse("1E-3")}
	require.NoError(t, dataset.WriteHistory(&buf, hist))
	assert.Equal(t, "iteration,cost\n0,0.69314718055994530942\n1,0.001\n", buf.String())

	buf.Reset()
	require.NoError(t, dataset.WriteHistory(&buf, nil))
	assert.Equal(t, "iteration,cost\n", buf.String())
}
