// SPDX-License-Identifier: MIT

// Package cost evaluates the scalar loss of a regression model over a whole
// dataset, in decimal arithmetic.
//
// 🚀 Two evaluators, one shape:
//
//	Linear   - single feature:  J = Σ (w·x_i + b − y_i)² / (2m)
//	Logistic - n features:      J = Σ [−y_i·ln(ŷ_i) − (1−y_i)·ln(1−ŷ_i)] / m
//	                            ŷ_i = sigmoid(x_i·w + b)
//
// ✨ Guarantees:
//   - inputs are validated before any arithmetic (validate sentinels)
//   - per-example terms are exact; the sum is accumulated in index order
//   - the division by the sample count is the only rounding step
//   - no memoization: every call recomputes from scratch
//
// ⚙️ Usage:
//
//	j, err := cost.Linear(x, y, w, b)                          // defaults
//	j, err := cost.Logistic(X, y, w, b, engine.WithWorkers(4)) // fan-out
package cost
