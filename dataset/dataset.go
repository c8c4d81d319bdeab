// Package dataset provides the in-memory tabular structure for analysis
// runs. A Dataset wraps a gota DataFrame: an ordered collection of named,
// homogeneously-typed columns of equal length.
package dataset

import (
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/chpraneeth994/data-analyzer/errors"
)

// Dataset is created by a loader, read by the summary engine and the
// renderer, and discarded at process end. It is never persisted.
type Dataset struct {
	df     dataframe.DataFrame
	source string
}

// New wraps an existing DataFrame. Fails with ErrLoad if the frame itself
// carries a load error.
func New(df dataframe.DataFrame, source string) (*Dataset, error) {
	if err := df.Error(); err != nil {
		return nil, errors.Wrapf(errors.ErrLoad, "invalid frame from %s: %v", source, err)
	}
	return &Dataset{df: df, source: source}, nil
}

// LoadCSV reads a CSV file with a header row into a Dataset, inferring
// column types. Unreadable or malformed input fails with ErrLoad.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrLoad, "opening %s: %v", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	if err := df.Error(); err != nil {
		return nil, errors.Wrapf(errors.ErrLoad, "parsing %s: %v", path, err)
	}

	return &Dataset{df: df, source: path}, nil
}

// Source returns the descriptor this Dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Rows returns the number of rows.
func (d *Dataset) Rows() int {
	return d.df.Nrow()
}

// Cols returns the number of columns.
func (d *Dataset) Cols() int {
	return d.df.Ncol()
}

// Empty reports whether the Dataset holds no rows.
func (d *Dataset) Empty() bool {
	return d.df.Nrow() == 0
}

// Columns returns all column names in order.
func (d *Dataset) Columns() []string {
	return d.df.Names()
}

// NumericColumns returns the names of int and float columns, in order.
func (d *Dataset) NumericColumns() []string {
	names := d.df.Names()
	types := d.df.Types()
	var numeric []string
	for i, t := range types {
		if t == series.Float || t == series.Int {
			numeric = append(numeric, names[i])
		}
	}
	return numeric
}

// CategoricalColumns returns the names of string columns, in order.
func (d *Dataset) CategoricalColumns() []string {
	names := d.df.Names()
	types := d.df.Types()
	var categorical []string
	for i, t := range types {
		if t == series.String {
			categorical = append(categorical, names[i])
		}
	}
	return categorical
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// IsNumeric reports whether the named column exists and is numeric.
func (d *Dataset) IsNumeric(name string) bool {
	names := d.df.Names()
	types := d.df.Types()
	for i, n := range names {
		if n == name {
			return types[i] == series.Float || types[i] == series.Int
		}
	}
	return false
}

// Float extracts a numeric column as float64 values.
func (d *Dataset) Float(name string) ([]float64, error) {
	if !d.HasColumn(name) {
		return nil, errors.Newf("no column %q", name)
	}
	if !d.IsNumeric(name) {
		return nil, errors.Newf("column %q is not numeric", name)
	}
	col := d.df.Col(name)
	if col.Err != nil {
		return nil, errors.Wrapf(col.Err, "extracting column %q", name)
	}
	return col.Float(), nil
}

// Records extracts any column as its string representation.
func (d *Dataset) Records(name string) ([]string, error) {
	if !d.HasColumn(name) {
		return nil, errors.Newf("no column %q", name)
	}
	col := d.df.Col(name)
	if col.Err != nil {
		return nil, errors.Wrapf(col.Err, "extracting column %q", name)
	}
	return col.Records(), nil
}

// Frame exposes the underlying DataFrame for callers that need gota
// operations directly.
func (d *Dataset) Frame() dataframe.DataFrame {
	return d.df
}
