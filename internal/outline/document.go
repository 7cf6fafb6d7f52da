// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

type valueKind int

const (
	kindNull valueKind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

// value is one node of a parsed JSON document. Objects keep a single entry
// per key (the last occurrence wins) and list their keys in property order:
// array-index keys ascending, then the remaining keys in first-seen order.
type value struct {
	kind   valueKind
	b      bool
	num    float64
	str    string
	items  []*value
	keys   []string
	fields map[string]*value
}

// document is a parsed JSON value with optional-field access when the
// top-level value is an object.
type document struct {
	root *value
}

var errNullDocument = errors.New("top-level value is null")

func parseDocument(content string) (*document, error) {
	data := []byte(content)
	// Unmarshal rejects trailing data and non-JSON whitespace; the token
	// decoder below does not.
	if err := json.Unmarshal(data, new(json.RawMessage)); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()
	root, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if root.kind == kindNull {
		return nil, errNullDocument
	}
	return &document{root: root}, nil
}

func decodeValue(dec *json.Decoder) (*value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case nil:
		return &value{kind: kindNull}, nil
	case bool:
		return &value{kind: kindBool, b: t}, nil
	case string:
		return &value{kind: kindString, str: t}, nil
	case json.Number:
		// Out-of-range literals parse to ±Inf, matching a JavaScript Number.
		f, _ := strconv.ParseFloat(string(t), 64)
		return &value{kind: kindNumber, num: f}, nil
	case json.Delim:
		switch t {
		case '[':
			v := &value{kind: kindArray}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				v.items = append(v.items, item)
			}
			_, err := dec.Token()
			return v, err
		case '{':
			v := &value{kind: kindObject, fields: make(map[string]*value)}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", kt)
				}
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				if _, dup := v.fields[key]; !dup {
					v.keys = append(v.keys, key)
				}
				v.fields[key] = child
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			v.keys = propertyOrder(v.keys)
			return v, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// propertyOrder moves array-index keys to the front in ascending numeric
// order and keeps every other key in insertion order.
func propertyOrder(keys []string) []string {
	var indexes, names []string
	for _, k := range keys {
		if _, ok := arrayIndex(k); ok {
			indexes = append(indexes, k)
		} else {
			names = append(names, k)
		}
	}
	if len(indexes) == 0 {
		return keys
	}
	sort.Slice(indexes, func(i, j int) bool {
		a, _ := arrayIndex(indexes[i])
		b, _ := arrayIndex(indexes[j])
		return a < b
	})
	return append(indexes, names...)
}

// arrayIndex reports whether k is a canonical unsigned integer below 2^32-1.
func arrayIndex(k string) (uint64, bool) {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(k, 10, 64)
	if err != nil || n >= math.MaxUint32 {
		return 0, false
	}
	return n, true
}

// field returns the value stored under name when the document is an object.
func (d *document) field(name string) (*value, bool) {
	if d.root.kind != kindObject {
		return nil, false
	}
	v, ok := d.root.fields[name]
	return v, ok
}

// array returns the elements of name when it holds a JSON array.
func (d *document) array(name string) ([]*value, bool) {
	v, ok := d.field(name)
	if !ok || v.kind != kindArray {
		return nil, false
	}
	return v.items, true
}

// text returns the display text of name, or "" when it is absent or falsy.
func (d *document) text(name string) string {
	v, ok := d.field(name)
	if !ok {
		return ""
	}
	return v.text()
}

// indent serializes the document with two-space indentation.
func (d *document) indent() string {
	var b strings.Builder
	d.root.write(&b, "  ", "")
	return b.String()
}

func (v *value) truthy() bool {
	switch v.kind {
	case kindBool:
		return v.b
	case kindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case kindString:
		return v.str != ""
	case kindArray, kindObject:
		return true
	}
	return false
}

// text renders v for display. Falsy values become ""; strings are used
// as-is; numbers use JavaScript formatting; arrays and objects use their
// compact JSON form.
func (v *value) text() string {
	if !v.truthy() {
		return ""
	}
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		return formatNumber(v.num)
	case kindBool:
		return "true"
	}
	var b strings.Builder
	v.write(&b, "", "")
	return b.String()
}

// write appends the JSON form of v. An empty indent writes compact JSON.
func (v *value) write(b *strings.Builder, indent, prefix string) {
	switch v.kind {
	case kindNull:
		b.WriteString("null")
	case kindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case kindNumber:
		if math.IsInf(v.num, 0) || math.IsNaN(v.num) {
			b.WriteString("null")
			return
		}
		b.WriteString(formatNumber(v.num))
	case kindString:
		writeQuoted(b, v.str)
	case kindArray:
		if len(v.items) == 0 {
			b.WriteString("[]")
			return
		}
		inner := prefix + indent
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, inner)
			item.write(b, indent, inner)
		}
		newline(b, indent, prefix)
		b.WriteByte(']')
	case kindObject:
		if len(v.keys) == 0 {
			b.WriteString("{}")
			return
		}
		inner := prefix + indent
		b.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, inner)
			writeQuoted(b, k)
			b.WriteByte(':')
			if indent != "" {
				b.WriteByte(' ')
			}
			v.fields[k].write(b, indent, inner)
		}
		newline(b, indent, prefix)
		b.WriteByte('}')
	}
}

func newline(b *strings.Builder, indent, prefix string) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	b.WriteString(prefix)
}

// writeQuoted escapes only quotes, backslashes and control characters.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// formatNumber renders f the way JavaScript's Number to String conversion
// does: shortest round-trip digits, plain notation for magnitudes in
// [1e-6, 1e21), exponent notation without zero padding otherwise.
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + exp[:1] + digits
}
