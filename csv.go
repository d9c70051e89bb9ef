package mdtable

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, headings []string, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headings); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows(headings)); err != nil {
		return err
	}
	return cw.Error()
}
