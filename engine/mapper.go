// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/decigrad/decimal"
	"golang.org/x/sync/errgroup"
)

// ExampleFunc computes one per-example term for example index i.
type ExampleFunc func(i int) (*decimal.Decimal, error)

// MapExamples evaluates fn for i = 0..m-1 and returns the terms by index.
//
// With one worker the loop runs in index order on the calling goroutine.
// With more, an errgroup bounded by SetLimit runs the calls; each goroutine
// writes only its own slot, so the output is independent of scheduling.
// The first error wins and is wrapped with its example index.
//
// Complexity: O(m) calls to fn, O(m) memory.
func MapExamples(m, workers int, fn ExampleFunc) ([]*decimal.Decimal, error) {
	out := make([]*decimal.Decimal, m)
	if workers <= 1 || m <= 1 {
		for i := 0; i < m; i++ {
			v, err := fn(i)
			if err != nil {
				return nil, fmt.Errorf("example %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < m; i++ {
		g.Go(func() error {
			v, err := fn(i)
			if err != nil {
				return fmt.Errorf("example %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
