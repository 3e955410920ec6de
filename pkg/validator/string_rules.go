package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mandatory fails on an empty value. It is the only rule that looks at
// empty values; every other rule treats "" as valid.
func Mandatory() Rule {
	return RuleFunc(func(value string, _ Record) error {
		if value == "" {
			return Invalid("Empty mandatory value")
		}
		return nil
	})
}

// MaxLength fails when the value holds more than n characters. Whitespace
// is counted; pair it with NoPaddingWhitespace to reject padded values.
func MaxLength(n int) Rule {
	return RuleFunc(func(value string, _ Record) error {
		if l := utf8.RuneCountInString(value); l > n {
			return Invalid("Value has length %d, exceeds maximum length of %d", l, n)
		}
		return nil
	})
}

// NoPaddingWhitespace fails when the value starts or ends with whitespace.
func NoPaddingWhitespace() Rule {
	return RuleFunc(func(value string, _ Record) error {
		if value == "" {
			return nil
		}
		if strings.TrimFunc(value, unicode.IsSpace) != value {
			return Invalid("Value %q has leading or trailing whitespace", value)
		}
		return nil
	})
}
