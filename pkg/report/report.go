package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/censussample/pkg/validator"
)

// Format selects how failures are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultPageSize is how many failures the text report shows before it
// asks to continue.
const DefaultPageSize = 20

// ParseFormat validates a format name. An empty name is text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithPageSize caps the text report. Values below one show everything.
func WithPageSize(n int) Option {
	return func(r *Reporter) { r.pageSize = n }
}

// WithShowAll renders every failure without asking.
func WithShowAll(showAll bool) Option {
	return func(r *Reporter) { r.showAll = showAll }
}

func WithFormat(f Format) Option {
	return func(r *Reporter) {
		if f != "" {
			r.format = f
		}
	}
}

// WithConfirmer sets who is asked to show the failures past the first
// page. Without one the report stops after the first page.
func WithConfirmer(c Confirmer) Option {
	return func(r *Reporter) { r.confirm = c }
}

// Reporter writes validation failures for people or for machines.
type Reporter struct {
	out      io.Writer
	pageSize int
	showAll  bool
	format   Format
	confirm  Confirmer
}

func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:      out,
		pageSize: DefaultPageSize,
		format:   FormatText,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the failures in the configured format.
func (r *Reporter) Render(failures validator.Failures) error {
	switch r.format {
	case FormatText:
		return r.renderText(failures)
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return wrapWrite(enc.Encode(newDocument(failures)))
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(failures)); err != nil {
			return wrapWrite(err)
		}
		return wrapWrite(enc.Close())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

func (r *Reporter) renderText(failures validator.Failures) error {
	shown := len(failures)
	if !r.showAll && r.pageSize > 0 && shown > r.pageSize {
		shown = r.pageSize
	}

	if err := r.lines(failures[:shown]); err != nil {
		return err
	}

	if shown < len(failures) {
		more, err := r.askForMore(len(failures) - shown)
		if err != nil {
			return err
		}
		if more {
			if err := r.lines(failures[shown:]); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(r.out, Summary(failures))
	return wrapWrite(err)
}

func (r *Reporter) askForMore(remaining int) (bool, error) {
	if r.confirm == nil {
		_, err := fmt.Fprintf(r.out, "... %d more failures not shown\n", remaining)
		return false, wrapWrite(err)
	}
	return r.confirm.Confirm(fmt.Sprintf("Show the remaining %d failures?", remaining))
}

func (r *Reporter) lines(failures validator.Failures) error {
	for _, f := range failures {
		if _, err := fmt.Fprintln(r.out, f.String()); err != nil {
			return wrapWrite(err)
		}
	}
	return nil
}

// Summary is the closing line of a text report.
func Summary(failures validator.Failures) string {
	switch len(failures) {
	case 0:
		return "Sample file is valid"
	case 1:
		return "1 validation failure"
	default:
		return fmt.Sprintf("%d validation failures", len(failures))
	}
}

type document struct {
	Valid    bool      `json:"valid" yaml:"valid"`
	Count    int       `json:"count" yaml:"count"`
	Columns  []string  `json:"columns,omitempty" yaml:"columns,omitempty"` // failing columns, first seen first
	Failures []failure `json:"failures" yaml:"failures"`
}

type failure struct {
	Scope       validator.Scope `json:"scope" yaml:"scope"`
	Line        int             `json:"line,omitempty" yaml:"line,omitempty"`
	Column      string          `json:"column,omitempty" yaml:"column,omitempty"`
	Description string          `json:"description" yaml:"description"`
}

func newDocument(failures validator.Failures) document {
	doc := document{
		Valid:    failures.IsEmpty(),
		Count:    len(failures),
		Columns:  failures.Columns(),
		Failures: make([]failure, 0, len(failures)),
	}
	for _, f := range failures {
		doc.Failures = append(doc.Failures, failure{
			Scope:       f.Scope(),
			Line:        f.Line,
			Column:      f.Column,
			Description: f.Description,
		})
	}
	return doc
}

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrWrite, err)
}
