// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package schema defines the symbolic structure used to drive both
// encoding and decoding of a compressed object: which fields a record has,
// what type each field or list element holds, and how field names map to
// the marker cardinals the block package deals in.
package schema

import (
	"sort"

	"github.com/dsnet/cso/compress"
	"github.com/dsnet/cso/internal/bitops"
)

// numReservedKeys is the count of reserved marker cardinals (Null, Record,
// List, Element) that field ids must not collide with.
const numReservedKeys = 4

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "schema: " + string(e) }

// Kind distinguishes the two composite schema shapes.
type Kind int

const (
	// KindRecord describes an object whose fields are named.
	KindRecord Kind = iota
	// KindList describes a homogeneous sequence of one element type.
	KindList
)

// Schema is the symbolic structure of a record or a list.
type Schema struct {
	Kind Kind

	// Fields holds the named field types for a Record schema.
	Fields map[string]Type

	// Element holds the single element type for a List schema.
	Element Type
}

// NewRecord returns a Record schema with the given field types.
func NewRecord(fields map[string]Type) Schema {
	return Schema{Kind: KindRecord, Fields: fields}
}

// NewList returns a List schema whose elements have type elem.
func NewList(elem Type) Schema {
	return Schema{Kind: KindList, Element: elem}
}

// sortedFieldNames returns s's field names in ascending order, the stable
// order field ids are assigned in.
func (s Schema) sortedFieldNames() []string {
	if s.Kind != KindRecord {
		panic("schema: sortedFieldNames is only defined for record schemas")
	}
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarkerWidth returns the minimum number of bits needed to encode any
// marker that can appear anywhere within s: the four reserved cardinals
// plus the field ids of s and of every record nested inside it. One width
// serves the whole compressed object, so it is the maximum over all of
// those records.
func (s Schema) MarkerWidth() int {
	var count int
	switch s.Kind {
	case KindRecord:
		count = len(s.Fields) + numReservedKeys
	case KindList:
		count = numReservedKeys
	}
	width := bitops.RequiredBitWidth(count)
	children := []Type{s.Element}
	for _, t := range s.Fields {
		children = append(children, t)
	}
	for _, t := range children {
		if t.Kind == TypeNested {
			if w := t.Nested.MarkerWidth(); w > width {
				width = w
			}
		}
	}
	return width
}

// FieldMap returns the mapping of field name to assigned field id for a
// Record schema. Ids are assigned in ascending name order starting at 4,
// the first value past the four reserved marker cardinals.
func (s Schema) FieldMap() map[string]uint32 {
	if s.Kind != KindRecord {
		panic("schema: FieldMap is only defined for record schemas")
	}
	m := make(map[string]uint32, len(s.Fields))
	for i, name := range s.sortedFieldNames() {
		m[name] = uint32(i + numReservedKeys)
	}
	return m
}

// InverseFieldMap returns the mapping of assigned field id back to field
// name for a Record schema.
func (s Schema) InverseFieldMap() map[uint32]string {
	if s.Kind != KindRecord {
		panic("schema: InverseFieldMap is only defined for record schemas")
	}
	m := make(map[uint32]string, len(s.Fields))
	for i, name := range s.sortedFieldNames() {
		m[uint32(i+numReservedKeys)] = name
	}
	return m
}

// TypeKind distinguishes the four varieties of Type.
type TypeKind int

const (
	// TypePassThrough leaves a field/element's bytes untouched.
	TypePassThrough TypeKind = iota
	// TypeName names a builtin compressor ("bool", "u8", "uuid", ...).
	TypeName
	// TypeEnum is an enumeration of string variants.
	TypeEnum
	// TypeNested holds a recursive Schema for a nested record or list.
	TypeNested
)

// EnumMode describes how enum values are matched against their variants.
type EnumMode int

const (
	// EnumStrict matches variants case-sensitively.
	EnumStrict EnumMode = iota
	// EnumCaseless normalizes case before matching.
	EnumCaseless
)

// Type is the type of a single field or list element.
type Type struct {
	Kind TypeKind

	Name string // valid when Kind == TypeName

	EnumMode     EnumMode // valid when Kind == TypeEnum
	EnumVariants []string // valid when Kind == TypeEnum

	Nested *Schema // valid when Kind == TypeNested
}

// PassThrough returns the pass-through type.
func PassThrough() Type { return Type{Kind: TypePassThrough} }

// Name returns the builtin type named name.
func Name(name string) Type { return Type{Kind: TypeName, Name: name} }

// NewEnum returns an enum type over variants; ordinals are assigned by
// position in the given slice.
func NewEnum(mode EnumMode, variants []string) Type {
	return Type{Kind: TypeEnum, EnumMode: mode, EnumVariants: variants}
}

// Nested returns a type wrapping a recursive record or list schema.
func Nested(s Schema) Type { return Type{Kind: TypeNested, Nested: &s} }

// IsIntegerType reports whether t names a fixed-width unsigned integer
// builtin ("u8", "u17", ...).
func (t Type) IsIntegerType() bool {
	if t.Kind != TypeName || len(t.Name) < 2 || t.Name[0] != 'u' {
		return false
	}
	for _, c := range t.Name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsBoolType reports whether t names the boolean builtin.
func (t Type) IsBoolType() bool { return t.Kind == TypeName && t.Name == "bool" }

// IsFixedWidth reports whether t has a statically known encoded bit width
// (an integer, boolean, uuid, or enum type).
func (t Type) IsFixedWidth() bool {
	switch {
	case t.IsIntegerType() || t.IsBoolType():
		return true
	case t.Kind == TypeName && t.Name == "uuid":
		return true
	case t.Kind == TypeEnum:
		return true
	default:
		return false
	}
}

// Compressor returns the Compressor for t, or nil if t is a TypeNested
// (nested types have no compressor of their own — they recurse instead).
//
// Compressor panics if t names an unrecognized builtin or uses a
// caseless enum mode, which is not yet implemented.
func (t Type) Compressor() compress.Compressor {
	switch t.Kind {
	case TypePassThrough:
		return compress.Identity{}

	case TypeName:
		c, ok := compress.Builtin(t.Name)
		if !ok {
			panic("schema: no compressor registered for type " + t.Name)
		}
		return c

	case TypeNested:
		return nil

	case TypeEnum:
		if t.EnumMode != EnumStrict {
			panic("schema: only strict enum mode is currently supported")
		}
		return compress.NewEnumFromStrings(t.EnumVariants)

	default:
		panic("schema: invalid type kind")
	}
}
