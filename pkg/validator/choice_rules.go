package validator

import (
	"slices"
	"strings"
)

// InSet fails when a non-empty value is not one of allowed.
func InSet(allowed ...string) Rule {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}

	return RuleFunc(func(value string, _ Record) error {
		if value == "" {
			return nil
		}
		if _, ok := set[value]; !ok {
			return Invalid("Value %q is not valid", value)
		}
		return nil
	})
}

// SetEqualRule compares a collection of values against an expected set,
// ignoring order and repetitions. It backs header validation.
type SetEqualRule struct {
	expected map[string]struct{}
}

// SetEqual builds a SetEqualRule for the expected members.
func SetEqual(expected ...string) *SetEqualRule {
	set := make(map[string]struct{}, len(expected))
	for _, v := range expected {
		set[v] = struct{}{}
	}
	return &SetEqualRule{expected: set}
}

// Validate fails when values, taken as a set, differ from the expected set.
// The description lists missing and unexpected members in sorted order.
func (r *SetEqualRule) Validate(values []string) error {
	actual := make(map[string]struct{}, len(values))
	for _, v := range values {
		actual[v] = struct{}{}
	}

	missing := difference(r.expected, actual)
	unexpected := difference(actual, r.expected)
	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}

	return Invalid("Values don't match expected set, missing values: [%s], unexpected values: [%s]",
		strings.Join(missing, ", "), strings.Join(unexpected, ", "))
}

func difference(a, b map[string]struct{}) []string {
	var out []string
	for v := range a {
		if _, ok := b[v]; !ok {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}
