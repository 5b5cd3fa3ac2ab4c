// SPDX-License-Identifier: MIT

// Package descent drives batch gradient descent over any Objective.
//
// 🚀 The run is an explicit fold: every iteration builds a fresh Params from
// the previous one, so the caller's starting point is never touched and no
// state is shared between iterations.
//
//	p₀ = init
//	pᵢ₊₁ = pᵢ − α·∇J(pᵢ)
//
// ✨ Features:
//   - exact parameter updates; rounding happens only inside the Objective
//   - bounded cost history (WithHistoryLimit, default 100000)
//   - progress hook roughly ten times per run (WithObserver, SlogObserver)
//   - cancellation between iterations (WithContext)
//
// ⚙️ Usage:
//
//	res, err := descent.Run(obj, descent.Params{W: w0, B: b0}, alpha, 10000,
//		descent.WithObserver(descent.SlogObserver(logger)))
package descent
