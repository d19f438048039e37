// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package schema

import (
	"strings"
	"testing"
)

func TestFieldMapSortedOrder(t *testing.T) {
	s := NewRecord(map[string]Type{
		"zeta":  Name("u8"),
		"alpha": Name("u8"),
		"mu":    Name("u8"),
	})
	fm := s.FieldMap()
	want := map[string]uint32{"alpha": 4, "mu": 5, "zeta": 6}
	for k, v := range want {
		if fm[k] != v {
			t.Errorf("FieldMap()[%q] = %d, want %d", k, fm[k], v)
		}
	}

	ifm := s.InverseFieldMap()
	for k, v := range want {
		if ifm[v] != k {
			t.Errorf("InverseFieldMap()[%d] = %q, want %q", v, ifm[v], k)
		}
	}
}

func TestMarkerWidth(t *testing.T) {
	s := NewRecord(map[string]Type{"a": Name("u8"), "b": Name("u8")})
	if got, want := s.MarkerWidth(), 3; got != want { // 2 fields + 4 reserved = 6 -> ceil(log2(6))=3
		t.Errorf("MarkerWidth() = %d, want %d", got, want)
	}

	l := NewList(Name("u8"))
	if got, want := l.MarkerWidth(), 2; got != want { // 4 reserved -> ceil(log2(4))=2
		t.Errorf("MarkerWidth() = %d, want %d", got, want)
	}
}

func TestTypePredicates(t *testing.T) {
	if !Name("u17").IsIntegerType() {
		t.Error(`Name("u17").IsIntegerType() = false, want true`)
	}
	if Name("uuid").IsIntegerType() {
		t.Error(`Name("uuid").IsIntegerType() = true, want false`)
	}
	if !Name("bool").IsBoolType() {
		t.Error(`Name("bool").IsBoolType() = false, want true`)
	}
	if !Name("uuid").IsFixedWidth() {
		t.Error(`Name("uuid").IsFixedWidth() = false, want true`)
	}
	if PassThrough().IsFixedWidth() {
		t.Error(`PassThrough().IsFixedWidth() = true, want false`)
	}
}

func TestCompressorDispatch(t *testing.T) {
	c := Name("bool").Compressor()
	if c == nil {
		t.Fatal(`Name("bool").Compressor() = nil`)
	}
	if NewEnum(EnumStrict, []string{"A", "B"}).Compressor() == nil {
		t.Fatal("enum Compressor() = nil")
	}
	if Nested(NewList(Name("u8"))).Compressor() != nil {
		t.Error("Nested Compressor() should be nil")
	}
}

func TestLoadRecordSchema(t *testing.T) {
	doc := `
name: uuid
age: u8
active: bool
raw: pass-through
status:
  enum:
    variants: [Active, Inactive]
`
	s, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Kind != KindRecord {
		t.Fatalf("Kind = %v, want KindRecord", s.Kind)
	}
	if len(s.Fields) != 5 {
		t.Fatalf("len(Fields) = %d, want 5", len(s.Fields))
	}
	if s.Fields["name"].Kind != TypeName || s.Fields["name"].Name != "uuid" {
		t.Errorf("Fields[name] = %+v", s.Fields["name"])
	}
	if s.Fields["raw"].Kind != TypePassThrough {
		t.Errorf("Fields[raw] = %+v, want TypePassThrough", s.Fields["raw"])
	}
	if s.Fields["status"].Kind != TypeEnum || len(s.Fields["status"].EnumVariants) != 2 {
		t.Errorf("Fields[status] = %+v", s.Fields["status"])
	}
}

func TestLoadListSchema(t *testing.T) {
	doc := `
list: u16
`
	s, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Kind != KindList {
		t.Fatalf("Kind = %v, want KindList", s.Kind)
	}
	if s.Element.Kind != TypeName || s.Element.Name != "u16" {
		t.Errorf("Element = %+v", s.Element)
	}
}

func TestLoadNestedRecord(t *testing.T) {
	doc := `
address:
  record:
    city: pass-through
    zip: u32
`
	s, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	addr := s.Fields["address"]
	if addr.Kind != TypeNested {
		t.Fatalf("Fields[address] = %+v, want TypeNested", addr)
	}
	if addr.Nested.Kind != KindRecord {
		t.Fatalf("Nested.Kind = %v, want KindRecord", addr.Nested.Kind)
	}
	if len(addr.Nested.Fields) != 2 {
		t.Errorf("len(Nested.Fields) = %d, want 2", len(addr.Nested.Fields))
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	if _, err := Load(strings.NewReader(`- not a mapping`)); err == nil {
		t.Error("Load(list document) = nil error, want error")
	}
	if _, err := Load(strings.NewReader(`foo: {unknown: true}`)); err == nil {
		t.Error("Load(unknown type shape) = nil error, want error")
	}
}
