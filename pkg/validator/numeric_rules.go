package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// Numeric fails when a non-empty value holds anything but the digits 0-9.
// Signs, decimal points and separators are rejected.
func Numeric() Rule {
	return RuleFunc(func(value string, _ Record) error {
		if value == "" {
			return nil
		}
		if !asciiDigits(value) {
			return Invalid("Value %q is non numeric", value)
		}
		return nil
	})
}

// DecimalScaleAndPrecision bounds a plain decimal number such as a
// coordinate. Scale is the count of fractional digits, precision the count
// of integer digits (sign excluded) plus the scale. A value without a
// decimal point has scale zero.
func DecimalScaleAndPrecision(maxScale, maxPrecision int) Rule {
	return RuleFunc(func(value string, _ Record) error {
		if value == "" {
			return nil
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return Invalid("Value %q is not a valid float", value)
		}

		integer, fraction, _ := strings.Cut(value, ".")
		integer = strings.TrimLeft(integer, "+-")
		if !asciiDigits(integer) || !asciiDigits(fraction) {
			return Invalid("Value %q is not a plain decimal number", value)
		}

		scale := len(fraction)
		precision := len(integer) + scale

		var exceeded []string
		if precision > maxPrecision {
			exceeded = append(exceeded, fmt.Sprintf("Value has precision %d, exceeds max of %d", precision, maxPrecision))
		}
		if scale > maxScale {
			exceeded = append(exceeded, fmt.Sprintf("Value has scale %d, exceeds max of %d", scale, maxScale))
		}
		if len(exceeded) > 0 {
			return Invalid("%s, Value = %s", strings.Join(exceeded, ", "), value)
		}
		return nil
	})
}

func asciiDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
