// Package jsontree provides a tagged tree representation of arbitrary JSON
// values that preserves object key order and the literal text of numbers,
// plus a recursive transform that strips object entries whose key contains a
// given substring.
package jsontree

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Node is one JSON value in the tree.
type Node interface {
	// Write appends the compact serialization of the node to buf.
	Write(buf *bytes.Buffer)
	// Strip removes, at every nesting depth, object entries whose key
	// contains substr, together with their entire subtrees. Arrays are
	// processed element-wise (elements themselves are never removed) and
	// scalars pass through unchanged. The receiver may be modified in
	// place; callers should use the returned node.
	Strip(substr string) Node
}

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindBool
	kindNull
)

type valueNode struct {
	kind valueKind
	str  string
	num  string
	b    bool
}

func (v *valueNode) Write(buf *bytes.Buffer) {
	switch v.kind {
	case kindString:
		writeJSONString(buf, v.str)
	case kindNumber:
		buf.WriteString(v.num)
	case kindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case kindNull:
		buf.WriteString("null")
	}
}

func (v *valueNode) Strip(string) Node {
	return v
}

type objectEntry struct {
	key   string
	value Node
}

type objectNode struct {
	entries []objectEntry
}

func (o *objectNode) Write(buf *bytes.Buffer) {
	buf.WriteByte('{')
	for i, entry := range o.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, entry.key)
		buf.WriteByte(':')
		entry.value.Write(buf)
	}
	buf.WriteByte('}')
}

func (o *objectNode) Strip(substr string) Node {
	kept := make([]objectEntry, 0, len(o.entries))
	for _, entry := range o.entries {
		if strings.Contains(entry.key, substr) {
			continue
		}
		entry.value = entry.value.Strip(substr)
		kept = append(kept, entry)
	}
	o.entries = kept
	return o
}

type arrayNode struct {
	values []Node
}

func (a *arrayNode) Write(buf *bytes.Buffer) {
	buf.WriteByte('[')
	for i, value := range a.values {
		if i > 0 {
			buf.WriteByte(',')
		}
		value.Write(buf)
	}
	buf.WriteByte(']')
}

func (a *arrayNode) Strip(substr string) Node {
	for i := range a.values {
		a.values[i] = a.values[i].Strip(substr)
	}
	return a
}

// writeJSONString encodes s the way the tile-map generator does: only quotes,
// backslashes and control characters are escaped, so non-ASCII location names
// stay readable in the output.
func writeJSONString(buf *bytes.Buffer, s string) {
	const hex = "0123456789abcdef"
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\r':
			buf.WriteString(`\r`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hex[r>>4])
				buf.WriteByte(hex[r&0xf])
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

// MarshalIndent renders n with two-space indentation.
func MarshalIndent(n Node) ([]byte, error) {
	var compact bytes.Buffer
	n.Write(&compact)

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
