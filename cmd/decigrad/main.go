// SPDX-License-Identifier: MIT

// Command decigrad trains a linear or logistic regression model by batch
// gradient descent in decimal arithmetic.
//
//	decigrad -model logistic -alpha 0.1 -iters 10000
//	decigrad -model linear -data line.csv -history cost.csv -plot cost.png -compare
//
// Without -data the built-in course dataset of the chosen model is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/decigrad/baseline"
	"github.com/katalvlaran/decigrad/chart"
	"github.com/katalvlaran/decigrad/dataset"
	"github.com/katalvlaran/decigrad/decimal"
	"github.com/katalvlaran/decigrad/descent"
	"github.com/katalvlaran/decigrad/regression"
)

// Config is the parsed command line.
type Config struct {
	model        string
	dataPath     string
	header       bool
	alpha        string
	iterations   uint64
	b0           string
	precision    uint
	rounding     string
	strict       bool
	workers      int
	historyLimit uint64
	historyPath  string
	plotPath     string
	compare      bool
	verbose      bool
}

var errUnknownModel = errors.New("unknown model")

func main() {
	var config Config
	flag.StringVar(&config.model, "model", "logistic", "Model to train: linear or logistic")
	flag.StringVar(&config.dataPath, "data", "", "CSV dataset, last column is the target (default: built-in course data)")
	flag.BoolVar(&config.header, "header", dataset.DefaultHeader, "First CSV record is a header")
	flag.StringVar(&config.alpha, "alpha", "0.1", "Learning rate")
	flag.Uint64Var(&config.iterations, "iters", 10000, "Number of iterations")
	flag.StringVar(&config.b0, "b0", "0", "Initial bias; weights start at zero")
	flag.UintVar(&config.precision, "precision", uint(decimal.DefaultPrecision), "Significant digits of every division")
	flag.StringVar(&config.rounding, "rounding", string(decimal.DefaultRounding), "Rounding mode (half_up, half_even, down, ...)")
	flag.BoolVar(&config.strict, "strict", decimal.DefaultStrict, "Fail on any inexact division")
	flag.IntVar(&config.workers, "workers", 1, "Examples evaluated concurrently per step")
	flag.Uint64Var(&config.historyLimit, "history-limit", descent.DefaultHistoryLimit, "Maximum recorded cost values")
	flag.StringVar(&config.historyPath, "history", "", "Write the cost history as CSV to this path")
	flag.StringVar(&config.plotPath, "plot", "", "Render the cost history to this image (png, svg, pdf)")
	flag.BoolVar(&config.compare, "compare", false, "Also train a float64 baseline and report the divergence")
	flag.BoolVar(&config.verbose, "v", true, "Log training progress")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("config", "value", fmt.Sprintf("%+v", config))

	if err := run(config, os.Stdout, logger); err != nil {
		logger.Error("decigrad failed", "err", err)
		os.Exit(1)
	}
}

func run(config Config, stdout io.Writer, logger *slog.Logger) error {
	policy, err := newPolicy(config)
	if err != nil {
		return err
	}
	opts, err := options(config, policy, logger)
	if err != nil {
		return err
	}
	alpha, err := decimal.Parse(config.alpha)
	if err != nil {
		return fmt.Errorf("alpha: %w", err)
	}
	b0, err := decimal.Parse(config.b0)
	if err != nil {
		return fmt.Errorf("b0: %w", err)
	}

	tbl, err := load(config)
	if err != nil {
		return err
	}
	logger.Info("loaded dataset", "examples", len(tbl.Y), "features", tbl.Features())

	var (
		w       []*decimal.Decimal
		b       *decimal.Decimal
		history []*decimal.Decimal
	)
	switch config.model {
	case "linear":
		x, err := tbl.Feature()
		if err != nil {
			return err
		}
		m, err := regression.RunLinear(x, tbl.Y, decimal.FromInt64(0), b0, alpha, config.iterations, opts...)
		if err != nil {
			return err
		}
		w, b, history = []*decimal.Decimal{m.W}, m.B, m.History

	case "logistic":
		w0 := make([]*decimal.Decimal, tbl.Features())
		for j := range w0 {
			w0[j] = decimal.FromInt64(0)
		}
		m, err := regression.RunLogistic(tbl.X, tbl.Y, w0, b0, alpha, config.iterations, opts...)
		if err != nil {
			return err
		}
		w, b, history = m.W, m.B, m.History

	default:
		return fmt.Errorf("%w %q", errUnknownModel, config.model)
	}

	if err := printParams(stdout, policy, w, b); err != nil {
		return err
	}
	if len(history) > 0 {
		fmt.Fprintf(stdout, "cost = %s\n", history[len(history)-1])
	}

	if config.model == "logistic" {
		if err := reportAccuracy(stdout, tbl, w, b, opts); err != nil {
			return err
		}
	}
	if err := writeArtifacts(config, history); err != nil {
		return err
	}
	if config.compare {
		return compare(config, stdout, tbl, w, b)
	}

	return nil
}

func newPolicy(config Config) (decimal.Policy, error) {
	rounding, err := decimal.ParseRounding(config.rounding)
	if err != nil {
		return decimal.Policy{}, err
	}
	if config.precision == 0 || config.precision > math.MaxUint32 {
		return decimal.Policy{}, fmt.Errorf("precision must be in [1, %d], got %d", uint32(math.MaxUint32), config.precision)
	}
	policyOpts := []decimal.Option{decimal.WithPrecision(uint32(config.precision)), decimal.WithRounding(rounding)}
	if config.strict {
		policyOpts = append(policyOpts, decimal.WithStrict())
	}

	return decimal.NewPolicy(policyOpts...), nil
}

func options(config Config, policy decimal.Policy, logger *slog.Logger) ([]regression.Option, error) {
	if config.workers < 1 {
		return nil, errors.New("workers must be >= 1")
	}

	opts := []regression.Option{
		regression.WithPolicy(policy),
		regression.WithWorkers(config.workers),
		regression.WithHistoryLimit(config.historyLimit),
	}
	if config.verbose {
		opts = append(opts, regression.WithObserver(descent.SlogObserver(logger)))
	}

	return opts, nil
}

// printParams reports w and b rounded to the policy precision. The trained
// values are exact and can carry more digits or trailing zeros.
func printParams(stdout io.Writer, policy decimal.Policy, w []*decimal.Decimal, b *decimal.Decimal) error {
	shown := make([]string, len(w))
	for j, v := range w {
		f, err := policy.Finalize(v)
		if err != nil {
			return fmt.Errorf("w[%d]: %w", j, err)
		}
		shown[j] = f.String()
	}
	fb, err := policy.Finalize(b)
	if err != nil {
		return fmt.Errorf("b: %w", err)
	}
	fmt.Fprintf(stdout, "w = [%s]\n", strings.Join(shown, ", "))
	fmt.Fprintf(stdout, "b = %s\n", fb)

	return nil
}

func load(config Config) (dataset.Table, error) {
	if config.dataPath != "" {
		return dataset.Load(config.dataPath, dataset.WithHeader(config.header))
	}
	switch config.model {
	case "linear":
		return dataset.CourseLinear(), nil
	case "logistic":
		return dataset.CourseLogistic(), nil
	}

	return dataset.Table{}, fmt.Errorf("%w %q", errUnknownModel, config.model)
}

func reportAccuracy(stdout io.Writer, tbl dataset.Table, w []*decimal.Decimal, b *decimal.Decimal, opts []regression.Option) error {
	probs, err := regression.PredictLogistic(tbl.X, w, b, opts...)
	if err != nil {
		return err
	}
	labels, err := regression.Classify(probs, nil)
	if err != nil {
		return err
	}
	acc, err := regression.Accuracy(labels, tbl.Y, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "accuracy = %s\n", acc)

	return nil
}

func writeArtifacts(config Config, history []*decimal.Decimal) error {
	if config.historyPath != "" {
		if err := writeFile(config.historyPath, func(w io.Writer) error {
			return dataset.WriteHistory(w, history)
		}); err != nil {
			return err
		}
	}
	if config.plotPath != "" {
		format := strings.TrimPrefix(strings.ToLower(filepath.Ext(config.plotPath)), ".")
		if err := writeFile(config.plotPath, func(w io.Writer) error {
			return chart.CostHistory(w, history, chart.WithFormat(format),
				chart.WithTitle(fmt.Sprintf("%s regression", config.model)))
		}); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()

	return fn(f)
}

func compare(config Config, stdout io.Writer, tbl dataset.Table, w []*decimal.Decimal, b *decimal.Decimal) error {
	alpha, err := decimal.Float64(decimal.MustParse(config.alpha))
	if err != nil {
		return err
	}
	b0, err := decimal.Float64(decimal.MustParse(config.b0))
	if err != nil {
		return err
	}
	if b0 != 0 {
		return errors.New("-compare needs -b0 0: the baseline starts from zero")
	}
	X, y, err := baseline.FromDecimal(tbl.X, tbl.Y)
	if err != nil {
		return err
	}

	fit := baseline.Logistic
	if config.model == "linear" {
		fit = baseline.Linear
	}
	m, err := fit(X, y, alpha, int(config.iterations), 0)
	if err != nil {
		return err
	}
	r, err := baseline.Compare(m, w, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "float64 divergence: max|dw| = %g, |db| = %g\n", r.MaxAbsW, r.AbsB)

	return nil
}
