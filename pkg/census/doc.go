// Package census declares the schema of a census sample file: the column
// set, the reference values for coded columns and the cross-field checks
// between region and treatment code and between address type and CE
// capacity.
package census
