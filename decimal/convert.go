// SPDX-License-Identifier: MIT

package decimal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Parse reads a finite decimal literal ("3.75", "-1E+1", "0.000120").
// The literal's scale is kept; call Policy.Finalize to canonicalize.
func Parse(s string) (*Decimal, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("Parse %q: %w", s, ErrParse)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("Parse %q: %w", s, ErrParse)
	}

	return d, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
// Intended for tests, examples and fixtures.
func MustParse(s string) *Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// ParseSlice parses every literal of ss, in order.
func ParseSlice(ss []string) ([]*Decimal, error) {
	out := make([]*Decimal, len(ss))
	for i, s := range ss {
		d, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = d
	}

	return out, nil
}

// ParseMatrix parses a row-major table of literals.
// A bad literal is reported as a *CellError with zero-based indices.
func ParseMatrix(rows [][]string) ([][]*Decimal, error) {
	out := make([][]*Decimal, len(rows))
	for i, row := range rows {
		out[i] = make([]*Decimal, len(row))
		for j, s := range row {
			d, err := Parse(s)
			if err != nil {
				return nil, &CellError{Row: i, Col: j, Err: err}
			}
			out[i][j] = d
		}
	}

	return out, nil
}

// FromInt64 returns x as a Decimal with exponent 0.
func FromInt64(x int64) *Decimal {
	return apd.New(x, 0)
}

// FromFloat64 converts f using its shortest round-tripping decimal form,
// so 0.1 becomes exactly 0.1 rather than the binary expansion.
func FromFloat64(f float64) (*Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, decimalErrorf("FromFloat64", ErrNonFinite)
	}
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'E', -1, 64))
	if err != nil {
		return nil, decimalErrorf("FromFloat64", err)
	}

	return d, nil
}

// Float64 returns the nearest float64 of x.
func Float64(x *Decimal) (float64, error) {
	f, err := x.Float64()
	if err != nil {
		return 0, decimalErrorf("Float64", err)
	}

	return f, nil
}

// Equal reports whether a and b hold the same value, whatever their scale:
// 2.50 equals 2.5.
func Equal(a, b *Decimal) bool {
	return a.Cmp(b) == 0
}

// Clone returns an independent copy of x (nil stays nil).
func Clone(x *Decimal) *Decimal {
	if x == nil {
		return nil
	}

	return new(Decimal).Set(x)
}

// CloneSlice deep-copies xs so the copy can never alias caller state.
func CloneSlice(xs []*Decimal) []*Decimal {
	if xs == nil {
		return nil
	}
	out := make([]*Decimal, len(xs))
	for i, x := range xs {
		out[i] = Clone(x)
	}

	return out
}

// Strings renders xs with Decimal.String, for logs and CSV output.
func Strings(xs []*Decimal) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}

	return out
}
