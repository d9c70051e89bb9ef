// Package mdtable converts YAML arrays of flat maps into fixed-width Markdown
// tables, and collects named tables back into a single YAML document.
//
// # Tables
//
// A [Table] is an ordered sequence of [Record] values. Each record is an
// ordered mapping from column name to text; records in one table may carry
// different keys. Use [Decode] to load a table from YAML and [Encode] to
// write one back:
//
//	t, err := mdtable.DecodeString(src)
//	if errors.Is(err, mdtable.ErrDecode) { ... }
//
// Every value is opaque text. Nested maps or sequences are rejected with a
// [*DecodeError].
//
// # Headings
//
// Headings are either given explicitly, and used verbatim, or inferred with
// [Columns], which lists every key in order of first occurrence:
//
//	headings := mdtable.Columns(t)
//
// # Markdown
//
// [RenderMarkdown] and [WriteMarkdown] render a pipe-delimited table. Each column
// is as wide as its longest heading or value, and every cell is centered with
// any odd leftover space on the right:
//
//	|  data1  | col4  |
//	|---------|-------|
//	|somevalue|gar gar|
//	|  that   |       |
//
// Width is counted in characters by default. Pass [WithMeasure]([Cells]) to
// count terminal cells instead, so wide characters take two columns.
//
// The one-call entry points [RenderAllColumns], [RenderWithHeadings], and
// [RenderWithHeadingsCSV] decode and render in a single step.
//
// # Aggregation
//
// [Aggregate] takes a list of [Outcome] values, built with [Named] or
// [Errored], drops the failures, and encodes the rest as a YAML mapping from
// name to table. A single surviving table is encoded bare, without its name.
//
// # Other Formats
//
// [Write] and [Marshal] also export a table as CSV or TSV. Use [ParseFormat]
// to convert a flag value into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrDecode] — input is not a YAML sequence of flat maps
//   - [ErrEncode] — the YAML encoder failed
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnsupportedMeasure] — unknown measure string
package mdtable
