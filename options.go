package mdtable

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Measure selects how the display length of cell text is counted.
type Measure int

const (
	// Chars counts characters (runes). A multi-byte character is one unit.
	Chars Measure = iota
	// Cells counts terminal cells, so East Asian wide characters take two.
	Cells
)

var measureNames = map[Measure]string{
	Chars: "chars",
	Cells: "cells",
}

// String returns the measure name.
func (m Measure) String() string {
	if s, ok := measureNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Measure(%d)", int(m))
}

// Len returns the display length of s under m.
func (m Measure) Len(s string) int {
	if m == Cells {
		return runewidth.StringWidth(s)
	}
	return utf8.RuneCountInString(s)
}

// ParseMeasure parses a measure name ("chars" or "cells").
func ParseMeasure(s string) (Measure, error) {
	for m, name := range measureNames {
		if name == s {
			return m, nil
		}
	}
	return Chars, fmt.Errorf("%w: %q", ErrUnsupportedMeasure, s)
}

const defaultIndent = 2

type options struct {
	measure Measure
	indent  int
}

// Option configures rendering and encoding.
type Option func(*options)

// WithMeasure sets how cell widths are measured. Default: [Chars].
func WithMeasure(m Measure) Option {
	return func(o *options) { o.measure = m }
}

// WithIndent sets the YAML indentation used by [Encode] and the aggregator.
// Values below 2 are ignored. Default: 2.
func WithIndent(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.indent = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{measure: Chars, indent: defaultIndent}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
