package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// File records a sample file path or bucket key under the key "file".
func File(name string) slog.Attr {
	return slog.String("file", name)
}

// Line records a sample file line number under the key "line".
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}

// Column records a sample column name under the key "column".
func Column(name string) slog.Attr {
	return slog.String("column", name)
}

// Rows records how many data rows were processed.
func Rows(n int) slog.Attr {
	return slog.Int("rows", n)
}

// Failures records how many validation failures were collected.
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RunID records a validation or load run identifier.
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}
