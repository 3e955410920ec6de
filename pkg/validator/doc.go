// Package validator provides the schema-driven rules used to check sample
// file records before they reach downstream systems.
//
// A Rule inspects one field value, optionally together with its row, and
// returns nil or an error describing why the value is invalid. Rules are
// small independent values composed into per-column chains; there is no
// rule hierarchy. Stateful rules such as Unique keep their memory inside
// the rule instance, never in package state.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `choice_rules.go`, ...). A Schema maps column names
// to rule chains and owns the two checks applied to a file:
//
//   - ValidateHeader – set comparison of the file header with the schema
//     columns, producing at most one header failure
//   - ValidateRow    – every rule of every column, collecting all failures
//
// Core building blocks:
//   - Rule / RuleFunc – the single-method validation contract
//   - Record          – one row addressed by column name
//   - Failure         – one defect scoped to the file, the header or a cell
//   - Failures        – ordered slice that implements the error interface
//
// # Empty values
//
// Only Mandatory rejects an empty value. Length, numeric, decimal, set and
// uniqueness rules accept "" so optional columns may be left blank.
// Cross-field rules see empty values and decide themselves.
//
// # Usage
//
//	schema := validator.MustSchema(
//	    validator.Col("ARID", validator.Mandatory(), validator.MaxLength(21), validator.Unique()),
//	    validator.Col("UPRN", validator.Mandatory(), validator.MaxLength(12), validator.Numeric()),
//	)
//	if f := schema.ValidateHeader(header); f != nil {
//	    // stop, the file does not match the schema
//	}
//	failures := schema.ValidateRow(2, validator.RecordOf(header, "A1", "123"))
//
// # Schema lifetime
//
// A schema carries the state of its Unique rules, so it must serve exactly
// one validation run. Claim marks a schema as taken and returns
// ErrSchemaReused on every later call; the validation package claims the
// schema before reading any row.
package validator
