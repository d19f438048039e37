// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package schema

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load reads a schema document from r. JSON is syntactically valid YAML
// 1.2, so the same decoder handles both without a second code path.
//
// A document is one of:
//
//	a Record: a mapping of field name to nested type document
//	a List: {list: <type document>}
//
// and a type document is one of:
//
//	a bare string: the builtin type it names (e.g. "u8", "uuid"), or the
//	  literal "pass-through" for the pass-through type
//	{enum: {mode: strict|caseless, variants: [...]}}
//	{record: {...}} or {list: <type document>}: a nested Schema
func Load(r io.Reader) (*Schema, error) {
	var doc yamlValue
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, Error(fmt.Sprintf("malformed schema document: %v", err))
	}
	s, err := decodeSchemaDoc(doc)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// yamlValue is an alias used purely to keep decodeSchemaDoc/decodeTypeDoc's
// signatures readable; yaml.v3 unmarshals untyped documents into this shape
// (map[string]interface{}, []interface{}, string, etc).
type yamlValue = interface{}

// decodeSchemaDoc interprets a document as a Schema: a List if it has the
// shape {list: ...}, a Record otherwise (a mapping of field name to type
// document).
func decodeSchemaDoc(doc yamlValue) (Schema, error) {
	m, ok := asMap(doc)
	if !ok {
		return Schema{}, Error("schema document must be a mapping")
	}

	if listDoc, ok := m["list"]; ok {
		elem, err := decodeTypeDoc(listDoc)
		if err != nil {
			return Schema{}, err
		}
		return NewList(elem), nil
	}

	fields := make(map[string]Type, len(m))
	for name, fieldDoc := range m {
		t, err := decodeTypeDoc(fieldDoc)
		if err != nil {
			return Schema{}, Error(fmt.Sprintf("field %q: %v", name, err))
		}
		fields[name] = t
	}
	return NewRecord(fields), nil
}

// decodeTypeDoc interprets a single type document per Load's documented
// disambiguation rules.
func decodeTypeDoc(doc yamlValue) (Type, error) {
	if s, ok := doc.(string); ok {
		if s == "pass-through" {
			return PassThrough(), nil
		}
		return Name(s), nil
	}

	m, ok := asMap(doc)
	if !ok {
		return Type{}, Error("type document must be a string or a mapping")
	}

	if enumDoc, ok := m["enum"]; ok {
		return decodeEnumDoc(enumDoc)
	}
	if recordDoc, ok := m["record"]; ok {
		s, err := decodeSchemaDoc(recordDoc)
		if err != nil {
			return Type{}, err
		}
		return Nested(s), nil
	}
	if _, ok := m["list"]; ok {
		s, err := decodeSchemaDoc(m)
		if err != nil {
			return Type{}, err
		}
		return Nested(s), nil
	}
	return Type{}, Error("mapping type document must have an enum, record, or list key")
}

func decodeEnumDoc(doc yamlValue) (Type, error) {
	m, ok := asMap(doc)
	if !ok {
		return Type{}, Error("enum document must be a mapping")
	}

	mode := EnumStrict
	if modeDoc, ok := m["mode"]; ok {
		modeStr, ok := modeDoc.(string)
		if !ok {
			return Type{}, Error("enum mode must be a string")
		}
		switch modeStr {
		case "strict":
			mode = EnumStrict
		case "caseless":
			mode = EnumCaseless
		default:
			return Type{}, Error(fmt.Sprintf("unknown enum mode %q", modeStr))
		}
	}

	variantsDoc, ok := m["variants"]
	if !ok {
		return Type{}, Error("enum document missing variants key")
	}
	variantsSlice, ok := variantsDoc.([]interface{})
	if !ok {
		return Type{}, Error("enum variants must be a list of strings")
	}
	variants := make([]string, len(variantsSlice))
	for i, v := range variantsSlice {
		s, ok := v.(string)
		if !ok {
			return Type{}, Error("enum variants must be a list of strings")
		}
		variants[i] = s
	}
	return NewEnum(mode, variants), nil
}

// asMap normalizes the map shapes yaml.v3 may produce for an untyped
// document (map[string]interface{} in the common case) into a uniform
// map[string]interface{}.
func asMap(doc yamlValue) (map[string]interface{}, bool) {
	switch v := doc.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, val := range v {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			m[ks] = val
		}
		return m, true
	default:
		return nil, false
	}
}
