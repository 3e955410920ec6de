package validator

import "fmt"

// Rule validates a single field value. The enclosing row is passed for
// cross-field rules; implementations must not modify either argument.
// A nil return means the value is valid.
type Rule interface {
	Validate(value string, row Record) error
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(value string, row Record) error

func (f RuleFunc) Validate(value string, row Record) error {
	return f(value, row)
}

// InvalidError carries the human-readable reason a rule rejected a value.
type InvalidError struct {
	Description string
}

func (e *InvalidError) Error() string {
	return e.Description
}

// Is reports ErrInvalidValue as the error class of every rule failure.
func (e *InvalidError) Is(target error) bool {
	return target == ErrInvalidValue
}

// Invalid builds a rule failure with a formatted description.
func Invalid(format string, args ...any) error {
	return &InvalidError{Description: fmt.Sprintf(format, args...)}
}

// Scope tells which part of a sample file a Failure refers to.
type Scope string

const (
	ScopeFile   Scope = "file"
	ScopeHeader Scope = "header"
	ScopeRow    Scope = "row"
)

// HeaderLine is the line number of the header row.
const HeaderLine = 1

// Failure is one reported defect. Line is zero for file-level failures,
// Column is empty for file and header level failures.
type Failure struct {
	Line        int
	Column      string
	Description string
}

// FileFailure reports a defect of the whole file, such as a bad encoding.
func FileFailure(description string) Failure {
	return Failure{Description: description}
}

// HeaderFailure reports a defect of the header row.
func HeaderFailure(description string) Failure {
	return Failure{Line: HeaderLine, Description: description}
}

// RowFailure reports a defect of one cell.
func RowFailure(line int, column, description string) Failure {
	return Failure{Line: line, Column: column, Description: description}
}

func (f Failure) Scope() Scope {
	switch {
	case f.Line == 0:
		return ScopeFile
	case f.Column == "":
		return ScopeHeader
	default:
		return ScopeRow
	}
}

func (f Failure) String() string {
	switch f.Scope() {
	case ScopeFile:
		return f.Description
	case ScopeHeader:
		return fmt.Sprintf("line: Header, description: %s", f.Description)
	default:
		return fmt.Sprintf("line: %d, column: %s, description: %s", f.Line, f.Column, f.Description)
	}
}

// Failures is an ordered collection of failures.
type Failures []Failure

func (fs *Failures) Add(f ...Failure) {
	*fs = append(*fs, f...)
}

// Columns returns the distinct failing columns in first-seen order.
func (fs Failures) Columns() []string {
	var columns []string
	seen := make(map[string]bool)
	for _, f := range fs {
		if f.Column != "" && !seen[f.Column] {
			columns = append(columns, f.Column)
			seen[f.Column] = true
		}
	}
	return columns
}

func (fs Failures) IsEmpty() bool {
	return len(fs) == 0
}
