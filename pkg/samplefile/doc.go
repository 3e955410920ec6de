// Package samplefile reads census sample files: comma separated text with
// a header line followed by one line per address.
//
// Open reads the header up front and Next streams one validator.Record per
// call, so a file of any size is held in memory one row at a time.
//
// # Encoding
//
// Sample files must be UTF-8. A leading UTF-8 byte order mark is dropped.
// Any invalid byte sequence, a UTF-16 byte order mark included, makes Open
// or Next return an error matching ErrDecode, which callers treat as fatal
// for the whole file. Files exported in a
// legacy code page can be read with WithEncoding, e.g.
//
//	r, err := samplefile.Open(f, samplefile.WithEncoding("windows-1252"))
//
// # Framing
//
// Quoting is lenient and rows may carry fewer or more fields than the
// header. Missing trailing fields read as empty strings; extra fields are
// kept in Values but are not addressable by column name.
//
// AddCaseIDs rewrites a sample file with a leading CASE_ID column, and
// UpdateFormat rewrites an older sample file into the current column set.
package samplefile
