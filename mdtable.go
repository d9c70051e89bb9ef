package mdtable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrUnsupportedMeasure = errors.New("unsupported measure")
	ErrDecode             = errors.New("decode failed")
	ErrEncode             = errors.New("encode failed")
)

// Format represents an output format for a rendered table.
type Format string

const (
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
)

var formats = []Format{Markdown, CSV, TSV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders t under headings in format f and writes it to w.
func Write(w io.Writer, f Format, headings []string, t Table, opts ...Option) error {
	switch f {
	case Markdown:
		return WriteMarkdown(w, headings, t, opts...)
	case CSV:
		return writeCSV(w, headings, t)
	case TSV:
		return writeTSV(w, headings, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t under headings in format f and returns the bytes.
func Marshal(f Format, headings []string, t Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, headings, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderAllColumns decodes a YAML array of flat maps and renders it as a
// Markdown table whose headings are inferred with [Columns].
func RenderAllColumns(src string, opts ...Option) (string, error) {
	t, err := DecodeString(src)
	if err != nil {
		return "", err
	}
	return RenderMarkdown(Columns(t), t, opts...), nil
}

// RenderWithHeadings decodes a YAML array of flat maps and renders exactly
// the given headings, in order, whether or not any record carries them.
func RenderWithHeadings(headings []string, src string, opts ...Option) (string, error) {
	t, err := DecodeString(src)
	if err != nil {
		return "", err
	}
	return RenderMarkdown(headings, t, opts...), nil
}

// RenderWithHeadingsCSV is [RenderWithHeadings] with headings given as one
// comma-separated string. Tokens are used exactly as split: surrounding
// whitespace is kept and empty tokens become empty headings.
func RenderWithHeadingsCSV(headingsCSV, src string, opts ...Option) (string, error) {
	return RenderWithHeadings(SplitHeadings(headingsCSV), src, opts...)
}

// SplitHeadings splits a comma-separated heading list without trimming.
func SplitHeadings(csv string) []string {
	return strings.Split(csv, ",")
}

// AggregateToText is [Aggregate] returning a string.
func AggregateToText(outcomes []Outcome, opts ...Option) (string, error) {
	data, err := Aggregate(outcomes, opts...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
