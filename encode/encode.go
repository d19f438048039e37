// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package encode

import (
	"fmt"

	"github.com/dsnet/cso/block"
	"github.com/dsnet/cso/schema"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "encode: " + string(e) }

// Encode walks value against s and produces the corresponding compressed
// object. The schema drives the walk: a field's declared type, not
// anything about the value itself, decides whether it recurses into a
// nested composite or calls a leaf compressor.
//
// A panic raised while encoding (for example, building the compressor for
// an unknown builtin type name) is returned as an error.
func Encode(s schema.Schema, value Value) (co block.CompressedObject, err error) {
	defer func() {
		if r := recover(); r != nil {
			co, err = block.CompressedObject{}, Error(fmt.Sprint(r))
		}
	}()

	switch s.Kind {
	case schema.KindRecord:
		co = block.NewRecord()
	case schema.KindList:
		co = block.NewList()
	default:
		return block.CompressedObject{}, Error("invalid root schema kind")
	}

	if err := encodeComposite(s, &co, value); err != nil {
		return block.CompressedObject{}, err
	}
	return co, nil
}

// encodeComposite appends value's fields or elements to co. The container
// header for a nested composite must already have been pushed by the
// caller (or, for the root, by Encode); this function only pushes the
// content. A nested composite's terminator is pushed by encodeTyped.
func encodeComposite(s schema.Schema, co *block.CompressedObject, value Value) error {
	if !schemaKindMatches(value.Kind, s.Kind) {
		return Error(fmt.Sprintf("expected %v value, got a different shape", s.Kind))
	}

	switch s.Kind {
	case schema.KindRecord:
		fieldMap := s.FieldMap()
		for name, t := range s.Fields {
			v, ok := value.Record[name]
			if !ok {
				return Error(fmt.Sprintf("missing field %q", name))
			}
			id := fieldMap[name]
			marker := block.Field(id)
			if err := encodeTyped(t, marker, co, v); err != nil {
				return Error(fmt.Sprintf("field %q: %v", name, err))
			}
		}

	case schema.KindList:
		for i, v := range value.List {
			if err := encodeTyped(s.Element, block.Element(), co, v); err != nil {
				return Error(fmt.Sprintf("element %d: %v", i, err))
			}
		}
	}

	return nil
}

// encodeTyped encodes a single field or list element value according to
// its declared type t, owned by marker. A nested type recurses; anything
// else is encoded through its Compressor.
func encodeTyped(t schema.Type, marker block.Marker, co *block.CompressedObject, v Value) error {
	if t.Kind == schema.TypeNested {
		switch t.Nested.Kind {
		case schema.KindRecord:
			co.BeginNestedRecord(marker)
		case schema.KindList:
			co.BeginNestedList(marker)
		}
		if err := encodeComposite(*t.Nested, co, v); err != nil {
			return err
		}
		co.EndNestedObject()
		return nil
	}

	if v.Kind != ValueLeaf {
		return Error("expected a leaf value for a non-nested field")
	}

	compressor := t.Compressor()
	g, err := compressor.Compress(v.Leaf)
	if err != nil {
		return Error(fmt.Sprintf("compress: %v", err))
	}
	co.PushData(marker, g)
	return nil
}
