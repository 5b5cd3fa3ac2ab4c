// SPDX-License-Identifier: MIT

package dataset

import "github.com/katalvlaran/decigrad/decimal"

// CourseLinear returns the four-point line y = x + 1.
func CourseLinear() Table {
	return Table{
		Header: []string{"x", "y"},
		X: [][]*decimal.Decimal{
			{decimal.FromInt64(1)}, {decimal.FromInt64(2)}, {decimal.FromInt64(3)}, {decimal.FromInt64(4)},
		},
		Y: []*decimal.Decimal{
			decimal.FromInt64(2), decimal.FromInt64(3), decimal.FromInt64(4), decimal.FromInt64(5),
		},
	}
}

// CourseLogistic returns the six-example, two-feature classification set.
// Gradient descent from zero with alpha 0.1 for 10000 iterations reaches
// w ≈ [5.28, 5.08], b ≈ -14.22.
func CourseLogistic() Table {
	rows := [][]string{
		{"0.5", "1.5"}, {"1", "1"}, {"1.5", "0.5"},
		{"3", "0.5"}, {"2", "2"}, {"1", "2.5"},
	}
	x, err := decimal.ParseMatrix(rows)
	if err != nil {
		panic(err)
	}

	return Table{
		Header: []string{"x1", "x2", "y"},
		X:      x,
		Y: []*decimal.Decimal{
			decimal.FromInt64(0), decimal.FromInt64(0), decimal.FromInt64(0),
			decimal.FromInt64(1), decimal.FromInt64(1), decimal.FromInt64(1),
		},
	}
}
