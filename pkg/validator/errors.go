package validator

import "errors"

var (
	// ErrInvalidValue classifies every failure returned by a Rule.
	ErrInvalidValue = errors.New("invalid value")

	// ErrEmptyColumnName is returned when a schema column has no name.
	ErrEmptyColumnName = errors.New("empty column name")

	// ErrDuplicateColumn is returned when a schema declares a column twice.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrNilRule is returned when a schema column lists a nil rule.
	ErrNilRule = errors.New("nil rule")

	// ErrNoColumns is returned when a schema declares no columns at all.
	ErrNoColumns = errors.New("schema has no columns")

	// ErrSchemaReused is returned when a schema that already served a
	// validation run is claimed again. Stateful rules keep the values seen
	// during that run, so a schema must never be shared between runs.
	ErrSchemaReused = errors.New("schema already used by a validation run")
)
