package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/censussample/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestSampleAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"component", logger.Component("validation"), "component", "validation"},
		{"file", logger.File("sample.csv"), "file", "sample.csv"},
		{"line", logger.Line(3), "line", int64(3)},
		{"column", logger.Column("ARID"), "column", "ARID"},
		{"rows", logger.Rows(25000), "rows", int64(25000)},
		{"failures", logger.Failures(2), "failures", int64(2)},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
		{"run id", logger.RunID("abc"), "run_id", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	t.Run("nil run id", func(t *testing.T) {
		assert.True(t, logger.RunID(nil).Equal(slog.Attr{}))
	})
}
