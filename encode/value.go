// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package encode implements the schema-driven walk that turns a decoded
// value tree into a compressed object, and the symmetric walk back.
package encode

import "github.com/dsnet/cso/schema"

// ValueKind distinguishes the three shapes a Value can hold.
type ValueKind int

const (
	// ValueLeaf holds raw bytes destined for a field or element's compressor.
	ValueLeaf ValueKind = iota
	// ValueRecord holds named child values.
	ValueRecord
	// ValueList holds an ordered sequence of child values.
	ValueList
)

// Value is the input to Encode and the output of Decode: a schema-shaped
// tree whose leaves are the raw byte representation a Compressor consumes
// or produces (e.g. little-endian bytes for an Integer field, the
// canonical hyphenated form for a uuid field).
type Value struct {
	Kind ValueKind

	Leaf []byte

	Record map[string]Value
	List   []Value
}

// Leaf returns a leaf value wrapping b.
func Leaf(b []byte) Value { return Value{Kind: ValueLeaf, Leaf: b} }

// Record returns a record value with the given named children.
func Record(fields map[string]Value) Value {
	return Value{Kind: ValueRecord, Record: fields}
}

// List returns a list value with the given elements, in order.
func List(elems []Value) Value {
	return Value{Kind: ValueList, List: elems}
}

// schemaKindMatches reports whether k matches the composite kind s expects.
func schemaKindMatches(k ValueKind, s schema.Kind) bool {
	switch s {
	case schema.KindRecord:
		return k == ValueRecord
	case schema.KindList:
		return k == ValueList
	default:
		return false
	}
}
