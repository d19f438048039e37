// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package encode

import (
	"reflect"
	"testing"

	"github.com/dsnet/cso/schema"
)

func boolLeaf(b bool) Value {
	if b {
		return Leaf([]byte{1})
	}
	return Leaf([]byte{0})
}

func TestEncodeDecodeRoundTripSimpleRecord(t *testing.T) {
	s := schema.NewRecord(map[string]schema.Type{
		"active": schema.Name("bool"),
		"count":  schema.Name("u16"),
	})

	value := Record(map[string]Value{
		"active": boolLeaf(true),
		"count":  Leaf([]byte{0x2a, 0x00}),
	})

	co, err := Encode(s, value)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if err := co.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	data := co.IntoBytes(s.MarkerWidth())
	got, err := Decode(s, data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if !reflect.DeepEqual(got.Record["active"].Leaf, []byte{1}) {
		t.Errorf("active = %v, want [1]", got.Record["active"].Leaf)
	}
	if !reflect.DeepEqual(got.Record["count"].Leaf, []byte{0x2a, 0x00}) {
		t.Errorf("count = %v, want [0x2a 0x00]", got.Record["count"].Leaf)
	}
}

func TestEncodeDecodeRoundTripNestedRecordAndList(t *testing.T) {
	inner := schema.NewRecord(map[string]schema.Type{
		"x": schema.Name("u8"),
		"y": schema.Name("u8"),
	})
	s := schema.NewRecord(map[string]schema.Type{
		"point":  schema.Nested(inner),
		"tags":   schema.Nested(schema.NewList(schema.Name("u8"))),
		"active": schema.Name("bool"),
	})

	value := Record(map[string]Value{
		"point": Record(map[string]Value{
			"x": Leaf([]byte{1}),
			"y": Leaf([]byte{2}),
		}),
		"tags": List([]Value{
			Leaf([]byte{9}),
			Leaf([]byte{10}),
		}),
		"active": boolLeaf(false),
	})

	co, err := Encode(s, value)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if err := co.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	data := co.IntoBytes(s.MarkerWidth())
	got, err := Decode(s, data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	point := got.Record["point"]
	if point.Kind != ValueRecord {
		t.Fatalf("point.Kind = %v, want ValueRecord", point.Kind)
	}
	if !reflect.DeepEqual(point.Record["x"].Leaf, []byte{1}) {
		t.Errorf("point.x = %v, want [1]", point.Record["x"].Leaf)
	}
	if !reflect.DeepEqual(point.Record["y"].Leaf, []byte{2}) {
		t.Errorf("point.y = %v, want [2]", point.Record["y"].Leaf)
	}

	tags := got.Record["tags"]
	if tags.Kind != ValueList || len(tags.List) != 2 {
		t.Fatalf("tags = %+v, want a 2-element list", tags)
	}
	if !reflect.DeepEqual(tags.List[0].Leaf, []byte{9}) || !reflect.DeepEqual(tags.List[1].Leaf, []byte{10}) {
		t.Errorf("tags = %+v, want [9 10]", tags.List)
	}

	if !reflect.DeepEqual(got.Record["active"].Leaf, []byte{0}) {
		t.Errorf("active = %v, want [0]", got.Record["active"].Leaf)
	}
}

func TestEncodeRejectsMissingField(t *testing.T) {
	s := schema.NewRecord(map[string]schema.Type{"a": schema.Name("u8")})
	_, err := Encode(s, Record(map[string]Value{}))
	if err == nil {
		t.Error("Encode(missing field) = nil error, want error")
	}
}

func TestEncodeDecodeRoundTripEnumAndUUID(t *testing.T) {
	s := schema.NewRecord(map[string]schema.Type{
		"status": schema.NewEnum(schema.EnumStrict, []string{"Active", "Inactive"}),
		"id":     schema.Name("uuid"),
	})
	value := Record(map[string]Value{
		"status": Leaf([]byte("Inactive")),
		"id":     Leaf([]byte("0a53309c-98d7-43cb-98e8-89562adf0f0c")),
	})

	co, err := Encode(s, value)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	data := co.IntoBytes(s.MarkerWidth())

	got, err := Decode(s, data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if string(got.Record["status"].Leaf) != "Inactive" {
		t.Errorf("status = %q, want Inactive", got.Record["status"].Leaf)
	}
	if string(got.Record["id"].Leaf) != "0a53309c-98d7-43cb-98e8-89562adf0f0c" {
		t.Errorf("id = %q", got.Record["id"].Leaf)
	}
}
