// Package compare checks an updated CE or SPG sample file against the
// original sample it was edited from, matching rows by UPRN.
package compare
