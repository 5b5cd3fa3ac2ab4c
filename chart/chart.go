// SPDX-License-Identifier: MIT

// Package chart renders a cost history as a line plot with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/decigrad/decimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyHistory is returned when there is nothing to plot.
var ErrEmptyHistory = errors.New("chart: empty cost history")

// Defaults for the rendered figure.
const (
	DefaultFormat = "png"
	DefaultTitle  = "Cost history"
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Option configures CostHistory.
type Option func(*Options)

// Options holds the figure settings.
type Options struct {
	Format        string // any format accepted by plot.WriterTo: png, svg, pdf, ...
	Title         string
	Width, Height vg.Length
}

// DefaultOptions returns a 6x4 inch PNG titled DefaultTitle.
func DefaultOptions() Options {
	return Options{Format: DefaultFormat, Title: DefaultTitle, Width: DefaultWidth, Height: DefaultHeight}
}

// WithFormat selects the output encoding.
func WithFormat(f string) Option { return func(o *Options) { o.Format = f } }

// WithTitle sets the plot title.
func WithTitle(t string) Option { return func(o *Options) { o.Title = t } }

// WithSize sets the figure size.
func WithSize(w, h vg.Length) Option {
	return func(o *Options) { o.Width, o.Height = w, h }
}

// CostHistory draws J against the iteration index and writes the encoded
// figure to w.
func CostHistory(w io.Writer, history []*decimal.Decimal, opts ...Option) error {
	if len(history) == 0 {
		return ErrEmptyHistory
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	pts := make(plotter.XYs, len(history))
	for i, j := range history {
		f, err := decimal.Float64(j)
		if err != nil {
			return fmt.Errorf("chart: history[%d]: %w", i, err)
		}
		pts[i].X = float64(i)
		pts[i].Y = f
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "cost"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	p.Add(line)

	wt, err := p.WriterTo(o.Width, o.Height, o.Format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return nil
}
