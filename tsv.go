package mdtable

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, headings []string, t Table) error {
	if _, err := fmt.Fprintln(w, strings.Join(headings, "\t")); err != nil {
		return err
	}
	for _, row := range t.Rows(headings) {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
