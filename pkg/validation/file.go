package validation

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/censussample/pkg/logger"
	"github.com/dmitrymomot/censussample/pkg/samplefile"
	"github.com/dmitrymomot/censussample/pkg/validator"
)

// ValidateReader opens r as a sample file and validates it against a
// schema built by newSchema. A header that cannot be decoded or parsed
// becomes a file-level failure, like any later row.
func (r *Runner) ValidateReader(ctx context.Context, in io.Reader, newSchema func() *validator.Schema, opts ...samplefile.Option) (Result, error) {
	src, err := samplefile.Open(in, opts...)
	if err != nil {
		if f, ok := FileFailure(err); ok {
			r.log.WarnContext(ctx, "sample file is unreadable", logger.Error(err))
			return Result{Failures: validator.Failures{f}}, nil
		}
		return Result{}, err
	}
	return r.Run(ctx, src, newSchema())
}

// ValidateFile is ValidateReader for a file on disk.
func (r *Runner) ValidateFile(ctx context.Context, path string, newSchema func() *validator.Schema, opts ...samplefile.Option) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	fr := *r
	fr.log = r.log.With(logger.File(path))
	return fr.ValidateReader(ctx, f, newSchema, opts...)
}
