package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrymomot/censussample/pkg/census"
	"github.com/dmitrymomot/censussample/pkg/validation"
	"github.com/dmitrymomot/censussample/pkg/validator"
)

// ErrRead is returned when either file cannot be read to the end.
var ErrRead = errors.New("failed to read sample for comparison")

// Option configures a comparison.
type Option func(*options)

type options struct {
	key     string
	ignored []string
}

// WithKey changes the column rows are matched on. It defaults to UPRN.
func WithKey(column string) Option {
	return func(o *options) {
		if column != "" {
			o.key = column
		}
	}
}

// WithIgnoredColumns replaces the columns allowed to change. By default the
// field coordinator and field officer assignments may change.
func WithIgnoredColumns(columns ...string) Option {
	return func(o *options) { o.ignored = columns }
}

// Files checks an updated sample against the original it was derived
// from. Every updated row must match an original row by key, keys must not
// repeat, and no column other than the ignored ones may change. Problems
// are reported as row failures numbered from line 2 of the updated file.
func Files(ctx context.Context, original, updated validation.Source, opts ...Option) (validator.Failures, error) {
	o := &options{
		key:     census.ColUPRN,
		ignored: []string{census.ColFieldCoordinatorID, census.ColFieldOfficerID},
	}
	for _, opt := range opts {
		opt(o)
	}

	byKey, err := index(ctx, original, o.key)
	if err != nil {
		return nil, err
	}

	var columns []string
	for _, c := range updated.Header() {
		if !slices.Contains(o.ignored, c) {
			columns = append(columns, c)
		}
	}

	var failures validator.Failures
	seen := make(map[string]struct{})
	line := validator.HeaderLine
	for {
		if err := ctx.Err(); err != nil {
			return failures, err
		}
		row, err := updated.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return failures, fmt.Errorf("%w: updated file after line %d: %v", ErrRead, line, err)
		}
		line++

		key := row.Get(o.key)
		old, ok := byKey[key]
		if !ok {
			failures.Add(validator.RowFailure(line, o.key, fmt.Sprintf("Could not find %s %q in original sample", o.key, key)))
			continue
		}
		if _, dup := seen[key]; dup {
			failures.Add(validator.RowFailure(line, o.key, fmt.Sprintf("Duplicate %s %q", o.key, key)))
		}
		seen[key] = struct{}{}

		for _, c := range columns {
			if got, want := row.Get(c), old.Get(c); got != want {
				failures.Add(validator.RowFailure(line, c, fmt.Sprintf("Value %q differs from original value %q", got, want)))
			}
		}
	}

	return failures, nil
}

// index keeps the first original row of every key.
func index(ctx context.Context, src validation.Source, key string) (map[string]validator.Record, error) {
	byKey := make(map[string]validator.Record)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return byKey, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: original file: %v", ErrRead, err)
		}
		k := row.Get(key)
		if _, ok := byKey[k]; !ok {
			byKey[k] = row
		}
	}
}
