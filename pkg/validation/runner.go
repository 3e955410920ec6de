package validation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/censussample/pkg/logger"
	"github.com/dmitrymomot/censussample/pkg/runid"
	"github.com/dmitrymomot/censussample/pkg/samplefile"
	"github.com/dmitrymomot/censussample/pkg/validator"
)

// DefaultProgressEvery is the number of rows between progress signals.
const DefaultProgressEvery = 10000

// FirstDataLine is the line number of the first row after the header.
const FirstDataLine = validator.HeaderLine + 1

// Source yields the header and then the data rows of a sample file.
// Next returns io.EOF after the last row.
type Source interface {
	Header() []string
	Next() (validator.Record, error)
}

// Progress is the state of a run at a progress signal.
type Progress struct {
	Rows     int
	Failures int
}

// ProgressFunc receives progress signals. It runs on the scanning
// goroutine; the caller may cancel the run context from inside it.
type ProgressFunc func(Progress)

// Result is the outcome of one validation run.
type Result struct {
	Failures validator.Failures
	Rows     int
}

// Valid reports whether the run found no failures at all.
func (r Result) Valid() bool {
	return r.Failures.IsEmpty()
}

// Fatal reports whether the run stopped at a file or header failure.
func (r Result) Fatal() bool {
	return len(r.Failures) == 1 && r.Failures[0].Scope() != validator.ScopeRow
}

// Option configures a Runner.
type Option func(*Runner)

// WithProgressEvery sets the progress cadence. Values below one disable
// progress signals.
func WithProgressEvery(n int) Option {
	return func(r *Runner) {
		r.every = n
	}
}

func WithProgress(fn ProgressFunc) Option {
	return func(r *Runner) {
		r.progress = fn
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner drives validation runs. A Runner is stateless between runs and
// may be reused; the schema it is handed may not.
type Runner struct {
	every    int
	progress ProgressFunc
	log      *slog.Logger
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		every: DefaultProgressEvery,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("validation"))
	return r
}

// Run validates every row of src against schema in a single pass.
//
// An undecodable or unparsable file yields a single file-level failure and
// a header that does not match the schema a single header failure; no
// rows are read after either. Otherwise every failure of every row is
// collected in line order. The returned error is reserved for problems
// with the run itself: a reused schema, a cancelled context or a read
// error of the underlying stream.
func (r *Runner) Run(ctx context.Context, src Source, schema *validator.Schema) (Result, error) {
	if src == nil {
		return Result{}, ErrNilSource
	}
	if schema == nil {
		return Result{}, ErrNilSchema
	}
	if err := schema.Claim(); err != nil {
		return Result{}, err
	}

	ctx, _ = runid.Ensure(ctx)
	start := time.Now()
	r.log.InfoContext(ctx, "validation started")

	if f := schema.ValidateHeader(src.Header()); f != nil {
		r.log.WarnContext(ctx, "header does not match schema", slog.String("description", f.Description))
		return Result{Failures: validator.Failures{*f}}, nil
	}

	var res Result
	line := validator.HeaderLine
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if f, ok := FileFailure(err); ok {
				r.log.WarnContext(ctx, "sample file is unreadable", logger.Rows(res.Rows), logger.Error(err))
				return Result{Failures: validator.Failures{f}, Rows: res.Rows}, nil
			}
			return res, fmt.Errorf("read row after line %d: %w", line, err)
		}

		line++
		res.Rows++
		res.Failures.Add(schema.ValidateRow(line, row)...)

		if r.every > 0 && res.Rows%r.every == 0 {
			r.log.InfoContext(ctx, "validation progress", logger.Rows(res.Rows), logger.Failures(len(res.Failures)))
			if r.progress != nil {
				r.progress(Progress{Rows: res.Rows, Failures: len(res.Failures)})
			}
		}
	}

	r.log.InfoContext(ctx, "validation finished",
		logger.Rows(res.Rows),
		logger.Failures(len(res.Failures)),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}

// FileFailure converts a record source error that makes the whole file
// unusable into a file-level failure.
func FileFailure(err error) (validator.Failure, bool) {
	switch {
	case errors.Is(err, samplefile.ErrDecode):
		encoding := samplefile.DefaultEncoding
		var decodeErr *samplefile.DecodeError
		if errors.As(err, &decodeErr) && decodeErr.Encoding != "" {
			encoding = decodeErr.Encoding
		}
		return validator.FileFailure(fmt.Sprintf("Invalid file encoding, requires %s, error: %v", encoding, err)), true
	case errors.Is(err, samplefile.ErrMalformed):
		return validator.FileFailure(fmt.Sprintf("Invalid CSV file, error: %v", err)), true
	default:
		return validator.Failure{}, false
	}
}

// Validate runs src against a schema freshly built by newSchema with the
// default Runner.
func Validate(ctx context.Context, src Source, newSchema func() *validator.Schema) (Result, error) {
	return NewRunner().Run(ctx, src, newSchema())
}
