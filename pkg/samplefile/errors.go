package samplefile

import (
	"errors"
	"fmt"
)

var (
	ErrNilReader       = errors.New("nil sample reader")
	ErrUnknownEncoding = errors.New("unknown text encoding")

	// ErrDecode is returned when the input is not valid in the expected
	// encoding. It is fatal for a validation run.
	ErrDecode = errors.New("invalid file encoding")

	// ErrMalformed is returned when the CSV framing cannot be parsed.
	ErrMalformed = errors.New("malformed csv")

	ErrRead  = errors.New("failed to read sample file")
	ErrWrite = errors.New("failed to write sample file")

	// ErrMissingColumn is returned by UpdateFormat when the input lacks a
	// column that has no default value.
	ErrMissingColumn = errors.New("sample file is missing a column")
)

// DecodeError describes where undecodable input was found.
type DecodeError struct {
	Encoding string
	Line     int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid byte sequence for %s on line %d", e.Encoding, e.Line)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
