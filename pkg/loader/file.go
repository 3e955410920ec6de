package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/censussample/pkg/samplefile"
	"github.com/dmitrymomot/censussample/pkg/validation"
	"github.com/dmitrymomot/censussample/pkg/validator"
)

// Connect builds the Loader for a sample, opening its publisher and cache.
type Connect func(ctx context.Context) (*Loader, error)

// LoadFile validates the sample at path and loads it only when the run
// found no failures. connect is called after validation passed, so a
// failed run returns its result and ErrInvalidSample without opening any
// connection.
func LoadFile(ctx context.Context, path string, runner *validation.Runner, newSchema func() *validator.Schema, target Target, connect Connect, opts ...samplefile.Option) (validation.Result, int, error) {
	if err := target.validate(); err != nil {
		return validation.Result{}, 0, err
	}
	if connect == nil {
		return validation.Result{}, 0, ErrNilConnect
	}

	res, err := runner.ValidateFile(ctx, path, newSchema, opts...)
	if err != nil {
		return res, 0, err
	}
	if !res.Valid() {
		return res, 0, ErrInvalidSample
	}

	l, err := connect(ctx)
	if err != nil {
		return res, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return res, 0, fmt.Errorf("%w: %v", validation.ErrOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	src, err := samplefile.Open(f, opts...)
	if err != nil {
		return res, 0, err
	}
	n, err := l.Load(ctx, src, target)
	return res, n, err
}
