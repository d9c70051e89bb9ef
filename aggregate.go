package mdtable

import (
	"io"
	"iter"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Outcome is the result of building one named table. A non-nil Err marks
// the outcome as failed; its Table is ignored.
type Outcome struct {
	Name  string
	Table Table
	Err   error
}

// Named returns a successful outcome.
func Named(name string, t Table) Outcome {
	return Outcome{Name: name, Table: t}
}

// Errored returns a failed outcome.
func Errored(name string, err error) Outcome {
	return Outcome{Name: name, Err: err}
}

// OK reports whether the outcome holds a table.
func (o Outcome) OK() bool { return o.Err == nil }

// Aggregate serializes the successful outcomes as one YAML document. Failed
// outcomes are dropped without trace. Survivors form a mapping from name to
// table in order of first appearance; a repeated name replaces the earlier
// table but keeps its position. When exactly one table survives, the bare
// table is encoded and its name is dropped.
func Aggregate(outcomes []Outcome, opts ...Option) ([]byte, error) {
	return AggregateIter(slices.Values(outcomes), opts...)
}

// AggregateIter is [Aggregate] over an iterator. Outcomes are consumed as
// they arrive.
func AggregateIter(seq iter.Seq[Outcome], opts ...Option) ([]byte, error) {
	o := buildOptions(opts)
	tables := orderedmap.New[string, Table]()
	for out := range seq {
		if !out.OK() {
			continue
		}
		tables.Set(out.Name, out.Table)
	}

	if tables.Len() == 1 {
		return encodeNode(tableNode(tables.Oldest().Value), o)
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	for p := tables.Oldest(); p != nil; p = p.Next() {
		k := &yaml.Node{}
		k.SetString(p.Key)
		n.Content = append(n.Content, k, tableNode(p.Value))
	}
	return encodeNode(n, o)
}

// WriteAggregate writes the result of [Aggregate] to w.
func WriteAggregate(w io.Writer, outcomes []Outcome, opts ...Option) error {
	data, err := Aggregate(outcomes, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
