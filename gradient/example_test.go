// SPDX-License-Identifier: MIT

package gradient_test

import (
	"fmt"

	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/engine"
	"github.com/katalvlaran/decigrad/gradient"
)

// ExampleLinear computes both partial derivatives of the line-fit cost.
func ExampleLinear() {
	x := []*decimal.Decimal{decimal.FromInt64(1), decimal.FromInt64(2), decimal.FromInt64(3), decimal.FromInt64(4)}
	y := []*decimal.Decimal{decimal.FromInt64(2), decimal.FromInt64(3), decimal.FromInt64(4), decimal.FromInt64(5)}

	dw, db, err := gradient.Linear(x, y, decimal.FromInt64(0), decimal.FromInt64(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dw, db)
	// Output:
	// -1E+1 -3.5
}

// ExampleLogistic shows the legacy zero-dropping mode next to the default.
func ExampleLogistic() {
	x := [][]*decimal.Decimal{
		{decimal.FromInt64(1), decimal.FromInt64(2)},
		{decimal.FromInt64(1), decimal.FromInt64(-2)},
	}
	y := []*decimal.Decimal{decimal.FromInt64(0), decimal.FromInt64(0)}
	w := []*decimal.Decimal{decimal.FromInt64(0), decimal.FromInt64(0)}
	b := decimal.FromInt64(0)

	db, dw, _ := gradient.Logistic(x, y, w, b)
	fmt.Println(db, decimal.Strings(dw))

	db, dw, _ = gradient.Logistic(x, y, w, b, engine.WithDropZeroGradients())
	fmt.Println(db, decimal.Strings(dw))
	// Output:
	// 0.5 [0.5 0]
	// 0.5 [0.5]
}
