package validator

// CrossField fails with description when predicate rejects the value in
// the context of its row. Unlike the single-value rules it is also called
// for empty values, so it can express "required when" conditions.
func CrossField(description string, predicate func(value string, row Record) bool) Rule {
	return RuleFunc(func(value string, row Record) error {
		if !predicate(value, row) {
			return Invalid("%s", description)
		}
		return nil
	})
}

// RequiredWhen fails on an empty value when condition holds for the row.
func RequiredWhen(description string, condition func(row Record) bool) Rule {
	return CrossField(description, func(value string, row Record) bool {
		return value != "" || !condition(row)
	})
}
