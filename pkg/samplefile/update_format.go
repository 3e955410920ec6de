package samplefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
)

// UpdateFormat copies a sample file from r to w with exactly the given
// columns, in that order. Columns the input lacks are filled with their
// value in defaults; input columns that are not listed are dropped. A
// missing column without a default fails with ErrMissingColumn before any
// output is written. It returns the number of data rows written.
func UpdateFormat(r io.Reader, w io.Writer, columns []string, defaults map[string]string, opts ...Option) (int, error) {
	src, err := Open(r, opts...)
	if err != nil {
		return 0, err
	}

	header := src.Header()
	fill := make(map[string]string)
	var missing []string
	for _, column := range columns {
		if slices.Contains(header, column) {
			continue
		}
		v, ok := defaults[column]
		if !ok {
			missing = append(missing, column)
			continue
		}
		fill[column] = v
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: %v", ErrMissingColumn, missing)
	}

	out := csv.NewWriter(w)
	if err := out.Write(columns); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	rows := 0
	values := make([]string, len(columns))
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, err
		}
		for i, column := range columns {
			if v, ok := fill[column]; ok {
				values[i] = v
				continue
			}
			values[i] = rec.Get(column)
		}
		if err := out.Write(values); err != nil {
			return rows, fmt.Errorf("%w: %v", ErrWrite, err)
		}
		rows++
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return rows, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return rows, nil
}
