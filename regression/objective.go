// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"

	"github.com/katalvlaran/decigrad/cost"
	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/descent"
	"github.com/katalvlaran/decigrad/engine"
	"github.com/katalvlaran/decigrad/gradient"
	"github.com/katalvlaran/decigrad/validate"
)

// LinearObjective is the squared-error cost of a single-feature model.
// Params.W must hold exactly one weight.
type LinearObjective struct {
	X, Y []*decimal.Decimal
	Opts []engine.Option
}

func scalarWeight(p descent.Params) (*decimal.Decimal, error) {
	if len(p.W) != 1 {
		return nil, &validate.ArgumentError{
			Param:  "w",
			Reason: fmt.Sprintf("has %d components, want 1", len(p.W)),
			Err:    validate.ErrSizeMismatch,
		}
	}

	return p.W[0], nil
}

// Gradient implements descent.Objective.
func (o LinearObjective) Gradient(p descent.Params) (descent.Gradient, error) {
	w, err := scalarWeight(p)
	if err != nil {
		return descent.Gradient{}, err
	}
	dw, db, err := gradient.Linear(o.X, o.Y, w, p.B, o.Opts...)
	if err != nil {
		return descent.Gradient{}, err
	}

	return descent.Gradient{DW: []*decimal.Decimal{dw}, DB: db}, nil
}

// Cost implements descent.Objective.
func (o LinearObjective) Cost(p descent.Params) (*decimal.Decimal, error) {
	w, err := scalarWeight(p)
	if err != nil {
		return nil, err
	}

	return cost.Linear(o.X, o.Y, w, p.B, o.Opts...)
}

// LogisticObjective is the cross-entropy cost of an n-feature classifier.
type LogisticObjective struct {
	X    [][]*decimal.Decimal
	Y    []*decimal.Decimal
	Opts []engine.Option
}

// Gradient implements descent.Objective.
func (o LogisticObjective) Gradient(p descent.Params) (descent.Gradient, error) {
	db, dw, err := gradient.Logistic(o.X, o.Y, p.W, p.B, o.Opts...)
	if err != nil {
		return descent.Gradient{}, err
	}

	return descent.Gradient{DW: dw, DB: db}, nil
}

// Cost implements descent.Objective.
func (o LogisticObjective) Cost(p descent.Params) (*decimal.Decimal, error) {
	return cost.Logistic(o.X, o.Y, p.W, p.B, o.Opts...)
}
