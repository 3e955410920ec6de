package validator

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Column declares one schema column and its rule chain.
type Column struct {
	Name  string
	Rules []Rule
}

// Col is shorthand for declaring a Column.
func Col(name string, rules ...Rule) Column {
	return Column{Name: name, Rules: rules}
}

// Schema is the column contract for one record type: an ordered set of
// columns, each with an ordered rule chain. Its column set is the only
// header a file may declare.
//
// A schema holds the state of its stateful rules, so it serves exactly one
// validation run. Build a new one for every run.
type Schema struct {
	columns []string
	rules   map[string][]Rule
	header  *SetEqualRule
	claimed atomic.Bool
}

// NewSchema builds a schema from column declarations in definition order.
func NewSchema(columns ...Column) (*Schema, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	s := &Schema{
		columns: make([]string, 0, len(columns)),
		rules:   make(map[string][]Rule, len(columns)),
	}
	for _, c := range columns {
		if c.Name == "" {
			return nil, ErrEmptyColumnName
		}
		if _, dup := s.rules[c.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.Name)
		}
		for i, r := range c.Rules {
			if r == nil {
				return nil, fmt.Errorf("%w: column %s, position %d", ErrNilRule, c.Name, i)
			}
		}
		s.columns = append(s.columns, c.Name)
		s.rules[c.Name] = slices.Clone(c.Rules)
	}
	s.header = SetEqual(s.columns...)

	return s, nil
}

// MustSchema is like NewSchema but panics on a malformed declaration.
func MustSchema(columns ...Column) *Schema {
	s, err := NewSchema(columns...)
	if err != nil {
		panic(fmt.Sprintf("invalid schema: %v", err))
	}
	return s
}

// Columns returns the column names in definition order.
func (s *Schema) Columns() []string {
	return slices.Clone(s.columns)
}

// RulesFor returns the rule chain of column, or nil for unknown columns.
func (s *Schema) RulesFor(column string) []Rule {
	return slices.Clone(s.rules[column])
}

// Has reports whether the schema declares column.
func (s *Schema) Has(column string) bool {
	_, ok := s.rules[column]
	return ok
}

// Claim binds the schema to a validation run. It fails with ErrSchemaReused
// on every call after the first.
func (s *Schema) Claim() error {
	if !s.claimed.CompareAndSwap(false, true) {
		return ErrSchemaReused
	}
	return nil
}

// ValidateHeader compares the file header, as a set, with the schema
// columns. It returns nil when they match, otherwise a single header
// failure naming missing and unexpected columns.
func (s *Schema) ValidateHeader(actual []string) *Failure {
	if err := s.header.Validate(actual); err != nil {
		f := HeaderFailure(err.Error())
		return &f
	}
	return nil
}

// ValidateRow applies every rule of every column to the row: columns in
// schema order, rules in chain order, without stopping at the first
// failure. A column missing from the row is validated as an empty value.
func (s *Schema) ValidateRow(line int, row Record) Failures {
	var failures Failures
	for _, column := range s.columns {
		value := row.Get(column)
		for _, rule := range s.rules[column] {
			if err := rule.Validate(value, row); err != nil {
				failures.Add(RowFailure(line, column, err.Error()))
			}
		}
	}
	return failures
}
