package report

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown report format")
	ErrWrite         = errors.New("failed to write report")
	ErrPrompt        = errors.New("failed to read answer")
)
