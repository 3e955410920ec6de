package validation

import "errors"

var (
	ErrNilSource = errors.New("nil record source")
	ErrNilSchema = errors.New("nil schema")
	ErrOpenFile  = errors.New("failed to open sample file")
)
