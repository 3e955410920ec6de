package validator

// Record is one data row of a sample file. Values are addressed by header
// column name; the column index is built once per file and shared by all
// the records read from it.
type Record struct {
	index  map[string]int
	values []string
}

// HeaderIndex maps each header column to its position. When a column name
// repeats, the last position wins.
func HeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}
	return index
}

// NewRecord binds row values to a header index built by HeaderIndex.
func NewRecord(index map[string]int, values []string) Record {
	return Record{index: index, values: values}
}

// RecordOf builds a record from a header and its values. Handy in tests
// and for one-off rows.
func RecordOf(header []string, values ...string) Record {
	return NewRecord(HeaderIndex(header), values)
}

// Get returns the value for column, or an empty string when the column is
// unknown or the row is too short to hold it.
func (r Record) Get(column string) string {
	v, _ := r.Lookup(column)
	return v
}

// Lookup is like Get but also reports whether the row carries the column.
func (r Record) Lookup(column string) (string, bool) {
	i, ok := r.index[column]
	if !ok || i >= len(r.values) {
		return "", false
	}
	return r.values[i], true
}

// Values returns a copy of the raw row values in file order.
func (r Record) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Map returns the row as a column to value map. Columns missing from a
// short row map to an empty string.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.index))
	for column := range r.index {
		m[column] = r.Get(column)
	}
	return m
}
