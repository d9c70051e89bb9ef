package mdtable

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Record is one flat row of a table: an ordered mapping from column name to
// cell text. Key order is the order keys were first given and drives column
// inference. The zero value is an empty record.
type Record struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewRecord builds a record from pairs in order. A repeated key keeps its
// first position and takes the later value.
func NewRecord(pairs ...KeyValue) Record {
	m := orderedmap.New[string, string]()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return Record{m: m}
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	if r.m == nil {
		return "", false
	}
	return r.m.Get(key)
}

// Value returns the value stored under key, or "" when the key is absent.
func (r Record) Value(key string) string {
	v, _ := r.Get(key)
	return v
}

// Len returns the number of keys in the record.
func (r Record) Len() int {
	if r.m == nil {
		return 0
	}
	return r.m.Len()
}

// Keys returns the record's keys in order.
func (r Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	if r.m == nil {
		return keys
	}
	for p := r.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Pairs returns the record's key-value pairs in order.
func (r Record) Pairs() []KeyValue {
	pairs := make([]KeyValue, 0, r.Len())
	if r.m == nil {
		return pairs
	}
	for p := r.m.Oldest(); p != nil; p = p.Next() {
		pairs = append(pairs, KeyValue{Key: p.Key, Value: p.Value})
	}
	return pairs
}

// Table is an ordered sequence of records. Records may carry different key
// sets.
type Table []Record

// Rows projects the table onto headings. A heading absent from a record
// yields "" in that row.
func (t Table) Rows(headings []string) [][]string {
	rows := make([][]string, len(t))
	for i, rec := range t {
		row := make([]string, len(headings))
		for j, h := range headings {
			row[j] = rec.Value(h)
		}
		rows[i] = row
	}
	return rows
}
