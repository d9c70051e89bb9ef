package mdtable

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeError reports input that is not a YAML sequence of flat maps.
// Line and Column are 1-based and zero when unknown.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Line > 0 {
		return fmt.Sprintf("decode: line %d column %d: %s", e.Line, e.Column, msg)
	}
	return "decode: " + msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrDecode].
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// EncodeError wraps a failure from the YAML encoder.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "encode: " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrEncode].
func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

func decodeErrAt(n *yaml.Node, format string, args ...any) *DecodeError {
	return &DecodeError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// DecodeString is [Decode] for string input.
func DecodeString(src string) (Table, error) {
	return Decode([]byte(src))
}

// Decode parses a YAML array of flat maps into a Table. Record order and key
// order follow the source. Scalar values are kept as their literal text and
// nulls become "". Input of any other shape fails with a [*DecodeError] and
// no partial table is returned.
func Decode(src []byte) (Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, &DecodeError{Msg: "empty document"}
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.SequenceNode {
		return nil, decodeErrAt(root, "expected a sequence of maps, got %s", kindName(root.Kind))
	}

	t := make(Table, 0, len(root.Content))
	for _, item := range root.Content {
		rec, err := decodeRecord(resolveAlias(item))
		if err != nil {
			return nil, err
		}
		t = append(t, rec)
	}
	return t, nil
}

func decodeRecord(n *yaml.Node) (Record, error) {
	if n.Kind != yaml.MappingNode {
		return Record{}, decodeErrAt(n, "expected a map, got %s", kindName(n.Kind))
	}
	pairs := make([]KeyValue, 0, len(n.Content)/2)
	seen := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := resolveAlias(n.Content[i]), resolveAlias(n.Content[i+1])
		if kn.Kind != yaml.ScalarNode {
			return Record{}, decodeErrAt(kn, "map key must be a scalar, got %s", kindName(kn.Kind))
		}
		if _, dup := seen[kn.Value]; dup {
			return Record{}, decodeErrAt(kn, "duplicate key %q", kn.Value)
		}
		seen[kn.Value] = struct{}{}
		if vn.Kind != yaml.ScalarNode {
			return Record{}, decodeErrAt(vn, "value for key %q must be a scalar, got %s", kn.Value, kindName(vn.Kind))
		}
		pairs = append(pairs, KeyValue{Key: kn.Value, Value: scalarText(vn)})
	}
	return NewRecord(pairs...), nil
}

func scalarText(n *yaml.Node) string {
	if n.ShortTag() == "!!null" {
		return ""
	}
	return n.Value
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}

// MarshalYAML encodes the record as a map of string values in key order.
func (r Record) MarshalYAML() (any, error) {
	return recordNode(r), nil
}

// MarshalYAML encodes the table as a sequence of maps.
func (t Table) MarshalYAML() (any, error) {
	return tableNode(t), nil
}

func recordNode(r Record) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range r.Pairs() {
		k, v := &yaml.Node{}, &yaml.Node{}
		k.SetString(kv.Key)
		v.SetString(kv.Value)
		n.Content = append(n.Content, k, v)
	}
	return n
}

func tableNode(t Table) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rec := range t {
		n.Content = append(n.Content, recordNode(rec))
	}
	return n
}

// Encode serializes t as a YAML sequence of maps. Values are always emitted
// as strings.
func Encode(t Table, opts ...Option) ([]byte, error) {
	return encodeNode(tableNode(t), buildOptions(opts))
}

func encodeNode(n *yaml.Node, o options) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(o.indent)
	if err := enc.Encode(n); err != nil {
		return nil, &EncodeError{Err: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf.Bytes(), nil
}
