// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package block implements the marker-based block grammar that a compressed
// object is built from: Header, Data, and Terminator blocks packed tightly
// together as globs of bits, plus the pushdown validator that checks a
// sequence of blocks is well-formed.
package block

import "github.com/dsnet/cso/glob"

// Kind distinguishes the five varieties of Marker.
type Kind int

const (
	// KindNull is the reserved marker encoded as the cardinal value 0.
	KindNull Kind = iota
	// KindRecord marks the start of a record; encoded as the cardinal value 1.
	KindRecord
	// KindList marks the start of a list; encoded as the cardinal value 2.
	KindList
	// KindElement marks a list element; encoded as the cardinal value 3.
	KindElement
	// KindField marks a record field; its cardinal value is schema-assigned
	// and never one of the four reserved values above.
	KindField
)

// Marker is a predetermined value marking the start of a record, list,
// field, or element section within a compressed object.
type Marker struct {
	kind Kind
	id   uint32 // valid only when kind == KindField
}

// Null returns the reserved null marker.
func Null() Marker { return Marker{kind: KindNull} }

// Record returns the marker denoting the start of a record.
func Record() Marker { return Marker{kind: KindRecord} }

// List returns the marker denoting the start of a list.
func List() Marker { return Marker{kind: KindList} }

// Element returns the marker denoting a list element.
func Element() Marker { return Marker{kind: KindElement} }

// Field returns the marker for record field id, which must lie outside the
// four reserved cardinal values.
//
// Field panics if id is reserved.
func Field(id uint32) Marker {
	if id < 4 {
		panic("block: field marker contains a reserved value")
	}
	return Marker{kind: KindField, id: id}
}

// FieldFromValue reconstructs whichever marker corresponds to the cardinal
// value v, classifying 0..3 as the reserved markers and anything else as a
// field marker.
func FieldFromValue(v uint32) Marker {
	switch v {
	case 0:
		return Null()
	case 1:
		return Record()
	case 2:
		return List()
	case 3:
		return Element()
	default:
		return Field(v)
	}
}

// Value returns the encoded cardinal value of m.
func (m Marker) Value() uint32 {
	switch m.kind {
	case KindNull:
		return 0
	case KindRecord:
		return 1
	case KindList:
		return 2
	case KindElement:
		return 3
	case KindField:
		return m.id
	default:
		panic("block: invalid marker kind")
	}
}

// IsNull reports whether m is the null marker.
func (m Marker) IsNull() bool { return m.kind == KindNull }

// IsRecord reports whether m is the record marker.
func (m Marker) IsRecord() bool { return m.kind == KindRecord }

// IsList reports whether m is the list marker.
func (m Marker) IsList() bool { return m.kind == KindList }

// IsElement reports whether m is the element marker.
func (m Marker) IsElement() bool { return m.kind == KindElement }

// IsField reports whether m is a field marker.
func (m Marker) IsField() bool { return m.kind == KindField }

// Glob converts m into a binary glob of the given marker width, which is
// determined externally by the schema's field count.
func (m Marker) Glob(width int) glob.Glob {
	v := m.Value()
	data := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	return glob.New(width, data)
}
