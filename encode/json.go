// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package encode

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dsnet/cso/schema"
)

// FromJSON converts a decoded JSON document (as produced by
// encoding/json.Unmarshal into interface{}, with json.Number for numbers —
// see json.Decoder.UseNumber) into a Value tree shaped by s: a field whose
// schema type is an integer gets its JSON number reinterpreted as the
// little-endian byte representation an Integer compressor expects; a bool
// field gets its JSON boolean as the single 0 or 1 byte the Boolean
// compressor expects; a nested field recurses; anything else must be a
// JSON string, whose bytes are passed to its compressor as they are.
func FromJSON(s schema.Schema, doc interface{}) (Value, error) {
	switch s.Kind {
	case schema.KindRecord:
		obj, ok := doc.(map[string]interface{})
		if !ok {
			return Value{}, Error("expected a JSON object")
		}
		fields := make(map[string]Value, len(obj))
		for name, raw := range obj {
			t, ok := s.Fields[name]
			if !ok {
				return Value{}, Error(fmt.Sprintf("unexpected field %q", name))
			}
			v, err := fieldFromJSON(t, raw)
			if err != nil {
				return Value{}, Error(fmt.Sprintf("field %q: %v", name, err))
			}
			fields[name] = v
		}
		return Record(fields), nil

	case schema.KindList:
		arr, ok := doc.([]interface{})
		if !ok {
			return Value{}, Error("expected a JSON array")
		}
		elems := make([]Value, len(arr))
		for i, raw := range arr {
			v, err := fieldFromJSON(s.Element, raw)
			if err != nil {
				return Value{}, Error(fmt.Sprintf("element %d: %v", i, err))
			}
			elems[i] = v
		}
		return List(elems), nil

	default:
		return Value{}, Error("invalid schema kind")
	}
}

func fieldFromJSON(t schema.Type, raw interface{}) (Value, error) {
	if t.Kind == schema.TypeNested {
		return FromJSON(*t.Nested, raw)
	}

	if t.IsIntegerType() {
		n, ok := raw.(json.Number)
		if !ok {
			return Value{}, Error("expected a JSON number")
		}
		u, err := n.Int64()
		if err != nil {
			return Value{}, Error(fmt.Sprintf("not an integer: %v", err))
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, uint64(u))
		return Leaf(buf), nil
	}

	if t.IsBoolType() {
		b, ok := raw.(bool)
		if !ok {
			return Value{}, Error("expected a JSON boolean")
		}
		if b {
			return Leaf([]byte{1}), nil
		}
		return Leaf([]byte{0}), nil
	}

	s, ok := raw.(string)
	if !ok {
		return Value{}, Error("expected a JSON string")
	}
	return Leaf([]byte(s)), nil
}

// ToJSON is the inverse of FromJSON: it renders a decoded Value tree back
// into plain interface{} data suitable for encoding/json.Marshal, given the
// schema that shaped it.
func ToJSON(s schema.Schema, v Value) (interface{}, error) {
	switch s.Kind {
	case schema.KindRecord:
		if v.Kind != ValueRecord {
			return nil, Error("expected a record value")
		}
		obj := make(map[string]interface{}, len(v.Record))
		for name, t := range s.Fields {
			child, ok := v.Record[name]
			if !ok {
				continue
			}
			rendered, err := fieldToJSON(t, child)
			if err != nil {
				return nil, Error(fmt.Sprintf("field %q: %v", name, err))
			}
			obj[name] = rendered
		}
		return obj, nil

	case schema.KindList:
		if v.Kind != ValueList {
			return nil, Error("expected a list value")
		}
		arr := make([]interface{}, len(v.List))
		for i, child := range v.List {
			rendered, err := fieldToJSON(s.Element, child)
			if err != nil {
				return nil, Error(fmt.Sprintf("element %d: %v", i, err))
			}
			arr[i] = rendered
		}
		return arr, nil

	default:
		return nil, Error("invalid schema kind")
	}
}

func fieldToJSON(t schema.Type, v Value) (interface{}, error) {
	if t.Kind == schema.TypeNested {
		return ToJSON(*t.Nested, v)
	}
	if v.Kind != ValueLeaf {
		return nil, Error("expected a leaf value")
	}

	if t.IsIntegerType() {
		buf := make([]byte, 8)
		copy(buf, v.Leaf)
		return binary.LittleEndian.Uint64(buf), nil
	}
	if t.IsBoolType() {
		return len(v.Leaf) > 0 && v.Leaf[0] != 0, nil
	}
	return string(v.Leaf), nil
}
