package validator

// UniqueRule remembers every non-empty value it accepted and rejects
// repeats. Its memory lives as long as the rule, so each schema built for
// a run gets its own instance.
type UniqueRule struct {
	seen map[string]struct{}
}

// Unique returns a fresh uniqueness rule with no values seen.
func Unique() *UniqueRule {
	return &UniqueRule{seen: make(map[string]struct{})}
}

func (u *UniqueRule) Validate(value string, _ Record) error {
	if value == "" {
		return nil
	}
	if _, dup := u.seen[value]; dup {
		return Invalid("Value %q is not unique", value)
	}
	u.seen[value] = struct{}{}
	return nil
}
