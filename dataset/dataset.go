// SPDX-License-Identifier: MIT

// Package dataset loads training tables from CSV and writes run artifacts.
//
// A table has one example per record; every column but the last is a
// feature and the last column is the target. Cells are parsed as decimal
// literals, so "0.1" stays exactly 0.1.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/decigrad/decimal"
)

// Sentinel errors for table loading.
var (
	// ErrEmpty is returned when the input holds no data record.
	ErrEmpty = errors.New("dataset: no examples")

	// ErrTooFewColumns is returned when a record has no feature column.
	ErrTooFewColumns = errors.New("dataset: need at least one feature and a target column")

	// ErrNotSingleFeature is returned by Table.Feature on multi-feature tables.
	ErrNotSingleFeature = errors.New("dataset: table has more than one feature")
)

// DefaultHeader treats the first record as column names.
const DefaultHeader = true

// DefaultComma is the field delimiter.
const DefaultComma = ','

// Option configures Read.
type Option func(*Options)

// Options holds the CSV dialect.
type Options struct {
	Header bool
	Comma  rune
}

// DefaultOptions returns a header row and comma-separated fields.
func DefaultOptions() Options {
	return Options{Header: DefaultHeader, Comma: DefaultComma}
}

// WithHeader sets whether the first record is a header.
func WithHeader(on bool) Option {
	return func(o *Options) { o.Header = on }
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *Options) { o.Comma = r }
}

// Table is a parsed training set.
type Table struct {
	Header []string // column names; nil when the input had no header
	X      [][]*decimal.Decimal
	Y      []*decimal.Decimal
}

// Features returns the number of feature columns.
func (t Table) Features() int {
	if len(t.X) == 0 {
		return 0
	}

	return len(t.X[0])
}

// Feature returns the single feature column of a one-feature table, the
// shape expected by the linear model.
func (t Table) Feature() ([]*decimal.Decimal, error) {
	if t.Features() != 1 {
		return nil, fmt.Errorf("%w (%d)", ErrNotSingleFeature, t.Features())
	}
	out := make([]*decimal.Decimal, len(t.X))
	for i, row := range t.X {
		out[i] = row[0]
	}

	return out, nil
}

// Read parses a CSV table from r.
//
// Errors:
//   - ErrEmpty if there is no data record.
//   - ErrTooFewColumns if records have fewer than two fields.
//   - decimal.ErrParse for a cell that is not a decimal literal.
//   - csv.ErrFieldCount (wrapped) for ragged records.
func Read(r io.Reader, opts ...Option) (Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("dataset: %w", err)
	}

	var t Table
	if o.Header && len(records) > 0 {
		t.Header, records = records[0], records[1:]
	}
	if len(records) == 0 {
		return Table{}, ErrEmpty
	}
	if len(records[0]) < 2 {
		return Table{}, ErrTooFewColumns
	}

	line := 1
	if t.Header != nil {
		line = 2
	}
	rows, err := decimal.ParseMatrix(records)
	if err != nil {
		var cell *decimal.CellError
		if errors.As(err, &cell) {
			return Table{}, fmt.Errorf("dataset: line %d, column %d: %w", line+cell.Row, cell.Col+1, cell.Err)
		}
		return Table{}, fmt.Errorf("dataset: %w", err)
	}
	last := len(rows[0]) - 1
	t.X = make([][]*decimal.Decimal, len(rows))
	t.Y = make([]*decimal.Decimal, len(rows))
	for i, row := range rows {
		t.X[i], t.Y[i] = row[:last:last], row[last]
	}

	return t, nil
}

// Load reads the CSV file at path.
func Load(path string, opts ...Option) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// WriteHistory writes "iteration,cost" records, one per recorded cost.
func WriteHistory(w io.Writer, history []*decimal.Decimal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"iteration", "cost"}); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	for i, j := range history {
		if err := cw.Write([]string{strconv.Itoa(i), j.String()}); err != nil {
			return fmt.Errorf("dataset: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	return nil
}
