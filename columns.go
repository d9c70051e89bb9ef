package mdtable

// Columns infers the headings of t: every key that occurs in any record,
// ordered by first occurrence scanning records in order and keys within each
// record in order.
func Columns(t Table) []string {
	seen := make(map[string]struct{})
	cols := []string{}
	for _, rec := range t {
		for _, k := range rec.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, k)
		}
	}
	return cols
}
