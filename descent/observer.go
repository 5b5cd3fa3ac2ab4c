// SPDX-License-Identifier: MIT

package descent

import (
	"context"
	"log/slog"
)

// SlogObserver reports progress as structured Info records on logger.
// A nil logger uses slog.Default().
//
//	level=INFO msg="gradient descent" iteration=0 of=1000 cost=0.69
func SlogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}

	return func(p Progress) {
		cost := "none"
		if p.Cost != nil {
			cost = p.Cost.String()
		}
		logger.LogAttrs(context.Background(), slog.LevelInfo, "gradient descent",
			slog.Uint64("iteration", p.Iteration),
			slog.Uint64("of", p.Iterations),
			slog.String("cost", cost),
		)
	}
}
