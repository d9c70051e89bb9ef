package mdtable

import (
	"io"
	"strings"
)

// WriteMarkdown renders t as a fixed-width Markdown table with the given
// headings and writes it to w. Every cell is centered in its column; the
// output has no trailing newline.
func WriteMarkdown(w io.Writer, headings []string, t Table, opts ...Option) error {
	_, err := io.WriteString(w, RenderMarkdown(headings, t, opts...))
	return err
}

// RenderMarkdown renders t as a fixed-width Markdown table with the given headings.
// Values missing from a record render as blank cells.
func RenderMarkdown(headings []string, t Table, opts ...Option) string {
	o := buildOptions(opts)
	rows := t.Rows(headings)
	widths := columnWidths(headings, rows, o.measure)

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, markdownRow(headings, widths, o.measure))

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	lines = append(lines, "|"+strings.Join(sep, "|")+"|")

	for _, row := range rows {
		lines = append(lines, markdownRow(row, widths, o.measure))
	}
	return strings.Join(lines, "\n")
}

// columnWidths returns, per column, the longest of the heading and every
// value in that column.
func columnWidths(headings []string, rows [][]string, m Measure) []int {
	widths := make([]int, len(headings))
	for i, h := range headings {
		widths[i] = m.Len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := m.Len(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func markdownRow(cells []string, widths []int, m Measure) string {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = centerCell(cells[i], width, m)
	}
	return "|" + strings.Join(padded, "|") + "|"
}

// centerCell pads s to width with the odd leftover space on the right.
func centerCell(s string, width int, m Measure) string {
	pad := width - m.Len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
