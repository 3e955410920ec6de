package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/censussample/pkg/validator"
)

func TestRecord(t *testing.T) {
	header := []string{"ARID", "UPRN", "REGION"}

	t.Run("reads values by column", func(t *testing.T) {
		r := validator.RecordOf(header, "A1", "123", "E12000001")
		assert.Equal(t, "A1", r.Get("ARID"))
		assert.Equal(t, "E12000001", r.Get("REGION"))
	})

	t.Run("missing columns read as empty", func(t *testing.T) {
		r := validator.RecordOf(header, "A1")
		v, ok := r.Lookup("UPRN")
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.Empty(t, r.Get("NOT_IN_HEADER"))
	})

	t.Run("map fills short rows", func(t *testing.T) {
		r := validator.RecordOf(header, "A1", "123")
		assert.Equal(t, map[string]string{"ARID": "A1", "UPRN": "123", "REGION": ""}, r.Map())
	})

	t.Run("values are copied", func(t *testing.T) {
		values := []string{"A1", "123", "E"}
		r := validator.NewRecord(validator.HeaderIndex(header), values)
		out := r.Values()
		out[0] = "changed"
		assert.Equal(t, "A1", r.Get("ARID"))
	})

	t.Run("repeated header column keeps last position", func(t *testing.T) {
		idx := validator.HeaderIndex([]string{"A", "B", "A"})
		assert.Equal(t, 2, idx["A"])
		r := validator.NewRecord(idx, []string{"first", "b", "last"})
		assert.Equal(t, "last", r.Get("A"))
	})
}
