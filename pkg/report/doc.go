// Package report renders validation failures.
//
// The text format prints one line per failure, distinguishing the three
// scopes:
//
//	Invalid file encoding, requires utf-8, error: ...
//	line: Header, description: Values don't match expected set, ...
//	line: 3, column: ARID, description: Value "A1" is not unique
//
// Long lists are cut after a page; a Confirmer decides whether the rest is
// shown. The JSON and YAML formats always carry every failure.
package report
