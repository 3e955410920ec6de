package loader

import "errors"

var (
	ErrIncompleteTarget = errors.New("collection exercise, action plan and collection instrument ids are required")
	ErrInvalidSample    = errors.New("sample file failed validation")
	ErrNilConnect       = errors.New("nil loader connect function")
	ErrRead             = errors.New("failed to read sample row")
	ErrEncode           = errors.New("failed to encode sample unit")
	ErrCache            = errors.New("failed to cache sample unit")
)
