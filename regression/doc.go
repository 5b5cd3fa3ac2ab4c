// SPDX-License-Identifier: MIT

// Package regression is the public face of decigrad: linear and logistic
// regression trained by batch gradient descent in decimal arithmetic.
//
// 🚀 What it offers:
//
//	Sigmoid           - 1/(1+e^(-z))
//	LinearCost        - squared error / 2m
//	LogisticCost      - mean cross-entropy
//	LinearGradient    - (dw, db)
//	LogisticGradient  - (db, dw)   bias first
//	RunLinear         - fit w·x + b
//	RunLogistic       - fit sigmoid(x·w + b)
//	Predict*/Classify/Accuracy
//
// ✨ Every value is a *decimal.Decimal. Sums and products are exact;
// divisions round to the policy precision (20 digits, half-up by default)
// and have trailing zeros stripped, so 10 is rendered as 1E+1.
//
// ⚙️ Options compose across layers:
//
//	model, err := regression.RunLogistic(x, y, w0, b0, alpha, 10000,
//		regression.WithWorkers(4),
//		regression.WithObserver(descent.SlogObserver(logger)))
//
// LinearObjective and LogisticObjective can also be handed to descent.Run
// directly.
package regression
