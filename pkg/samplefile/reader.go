package samplefile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dmitrymomot/censussample/pkg/validator"
)

// DefaultEncoding is the encoding sample files are expected in.
const DefaultEncoding = "utf-8"

// Option configures a Reader.
type Option func(*options)

type options struct {
	encoding string
}

// WithEncoding selects the text encoding of the input by its WHATWG name,
// e.g. "windows-1252". UTF-8 input is always decoded strictly.
func WithEncoding(name string) Option {
	return func(o *options) {
		if name != "" {
			o.encoding = name
		}
	}
}

// Reader streams the records of a sample file. The header is read when
// the reader is opened; every call to Next decodes a single row.
type Reader struct {
	csv      *csv.Reader
	header   []string
	index    map[string]int
	strict   bool
	encoding string
}

// Open reads the header of a sample file. An empty input yields a reader
// with an empty header whose first Next returns io.EOF. Decoding problems
// are reported as ErrDecode, framing problems as ErrMalformed.
func Open(r io.Reader, opts ...Option) (*Reader, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	o := &options{encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(o)
	}

	src, strict, err := decoder(r, o.encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	sr := &Reader{csv: cr, strict: strict, encoding: o.encoding}

	header, err := sr.read()
	switch {
	case errors.Is(err, io.EOF):
		sr.header = []string{}
	case err != nil:
		return nil, err
	default:
		sr.header = header
	}
	sr.index = validator.HeaderIndex(sr.header)

	return sr, nil
}

// decoder wraps r so that a leading byte order mark is dropped and the
// input is converted to UTF-8. UTF-8 input is passed through untouched
// apart from its own BOM; any other BOM stays in the data and fails the
// strict check on the first field.
func decoder(r io.Reader, name string) (io.Reader, bool, error) {
	if isUTF8(name) {
		br := bufio.NewReader(r)
		if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
			_, _ = br.Discard(len(utf8BOM))
		}
		return br, true, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), false, nil
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8", "unicode-1-1-utf-8":
		return true
	}
	return false
}

// Header returns the header columns in file order.
func (r *Reader) Header() []string {
	out := make([]string, len(r.header))
	copy(out, r.header)
	return out
}

// Next returns the next data row, or io.EOF after the last one.
func (r *Reader) Next() (validator.Record, error) {
	values, err := r.read()
	if err != nil {
		return validator.Record{}, err
	}
	return validator.NewRecord(r.index, values), nil
}

func (r *Reader) read() ([]string, error) {
	values, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, perr)
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if r.strict {
		for _, v := range values {
			if !utf8.ValidString(v) {
				line, _ := r.csv.FieldPos(0)
				return nil, &DecodeError{Encoding: r.encoding, Line: line}
			}
		}
	}
	return values, nil
}
