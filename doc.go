// SPDX-License-Identifier: MIT

// Package decigrad is a small machine-learning core for linear and logistic
// regression trained by batch gradient descent, computed in arbitrary
// precision decimal arithmetic instead of binary floating point.
//
// 🚀 What is decigrad?
//
//	A deterministic, dependency-light library that brings together:
//		• Decimal policy: 20 significant digits, half-up, trailing zeros stripped
//		• Activation: sigmoid over a native exponential
//		• Cost: squared error and cross-entropy
//		• Gradients: linear (dw, db) and logistic (db, dw)
//		• Descent: exact parameter updates, bounded cost history, progress hooks
//		• Tooling: CSV datasets, cost charts, float64 baseline, CLI
//
// ✨ Why decimal?
//
//   - Reproducible – the same inputs give the same digits on every platform
//   - Exact sums – only divisions round, once per formula
//   - Auditable – 0.1 is 0.1, and 10 prints as 1E+1 rather than 10.000
//   - Parallel when asked – per-example fan-out never changes a result
//
// Packages:
//
//	decimal/    - Policy (precision, rounding, strict), exact helpers, parsing
//	validate/   - input checks naming the offending parameter
//	activation/ - Sigmoid
//	engine/     - shared options and the per-example map
//	cost/       - Linear, Logistic
//	gradient/   - Linear, Logistic
//	descent/    - Run, Objective, observers
//	regression/ - public facade, runners and prediction helpers
//	dataset/    - CSV tables, course fixtures, history export
//	baseline/   - float64 reference trainer on gonum/mat
//	chart/      - cost history plots on gonum/plot
//
// Quick start:
//
//	m, err := regression.RunLogistic(x, y, w0, b0, decimal.MustParse("0.1"), 10000)
//
//	go install github.com/katalvlaran/decigrad/cmd/decigrad@latest
package decigrad
