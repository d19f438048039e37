// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package encode

import (
	"fmt"
	"io"

	"github.com/dsnet/cso/block"
	"github.com/dsnet/cso/schema"
)

// Decode is the symmetric inverse of Encode: it reads markers from data
// with a block.Cursor, in whatever order they were written, and resolves
// each one against s to find the type of the field or element it opens.
func Decode(s schema.Schema, data []byte) (Value, error) {
	cursor := block.NewCursor(data)
	width := s.MarkerWidth()

	rootType, err := cursor.ReadMarker(width)
	if err != nil {
		return Value{}, Error(fmt.Sprintf("read root header: %v", err))
	}
	if !rootTypeMatches(rootType, s.Kind) {
		return Value{}, Error("root header does not match schema kind")
	}
	if _, err := cursor.ReadMarker(width); err != nil { // root's Null field marker
		return Value{}, Error(fmt.Sprintf("read root header field: %v", err))
	}

	return decodeComposite(s, cursor, width, true)
}

func rootTypeMatches(m block.Marker, k schema.Kind) bool {
	switch k {
	case schema.KindRecord:
		return m.IsRecord()
	case schema.KindList:
		return m.IsList()
	default:
		return false
	}
}

// decodeComposite reads the content of a composite whose header has
// already been consumed (or, for the root, never existed). isRoot governs
// how end-of-content is recognized: the root has no terminator, so running
// out of bytes (or reaching the zero padding of the final byte) ends it; a
// nested composite ends at a Null terminator marker instead.
func decodeComposite(s schema.Schema, cursor *block.Cursor, width int, isRoot bool) (Value, error) {
	fields := map[string]Value{}
	var elems []Value
	var inverse map[uint32]string
	if s.Kind == schema.KindRecord {
		inverse = s.InverseFieldMap()
	}

	for {
		marker, err := cursor.ReadMarker(width)
		if err != nil {
			if isRoot && err == io.ErrUnexpectedEOF {
				break
			}
			return Value{}, Error(fmt.Sprintf("read marker: %v", err))
		}

		if marker.IsNull() {
			if isRoot {
				// The root has no terminator, so a Null marker here is only
				// accepted as the zero bits that pad out the final byte.
				for rest := 0; ; rest++ {
					b, err := cursor.ReadBits(1)
					if err != nil {
						break
					}
					if b != 0 || rest >= 8 {
						return Value{}, Error("unexpected terminator at root")
					}
				}
			}
			break
		}

		if marker.IsRecord() || marker.IsList() {
			owner, err := cursor.ReadMarker(width)
			if err != nil {
				return Value{}, Error(fmt.Sprintf("read header field marker: %v", err))
			}

			childType, name, err := resolveType(s, owner, inverse)
			if err != nil {
				return Value{}, err
			}
			if childType.Kind != schema.TypeNested {
				return Value{}, Error("header marker for a non-nested field")
			}
			if !rootTypeMatches(marker, childType.Nested.Kind) {
				return Value{}, Error("nested header kind does not match schema")
			}

			v, err := decodeComposite(*childType.Nested, cursor, width, false)
			if err != nil {
				return Value{}, err
			}
			if s.Kind == schema.KindRecord {
				fields[name] = v
			} else {
				elems = append(elems, v)
			}
			continue
		}

		// Data block: marker is a Field or Element marker.
		length, err := cursor.ReadLength()
		if err != nil {
			return Value{}, Error(fmt.Sprintf("read length: %v", err))
		}
		g, err := cursor.ReadGlob(length)
		if err != nil {
			return Value{}, Error(fmt.Sprintf("read glob: %v", err))
		}

		childType, name, err := resolveType(s, marker, inverse)
		if err != nil {
			return Value{}, err
		}
		raw, err := childType.Compressor().Decompress(g)
		if err != nil {
			return Value{}, Error(fmt.Sprintf("decompress: %v", err))
		}
		leaf := Leaf(raw)
		if s.Kind == schema.KindRecord {
			fields[name] = leaf
		} else {
			elems = append(elems, leaf)
		}
	}

	if s.Kind == schema.KindRecord {
		return Record(fields), nil
	}
	return List(elems), nil
}

// resolveType maps a Data or Header-owner marker back to the schema Type it
// denotes: by field name for a record (via inverse), or the element type
// for a list (any Element/Field-shaped owner marker names the same type).
func resolveType(s schema.Schema, marker block.Marker, inverse map[uint32]string) (schema.Type, string, error) {
	if s.Kind == schema.KindList {
		return s.Element, "", nil
	}
	name, ok := inverse[marker.Value()]
	if !ok {
		return schema.Type{}, "", Error(fmt.Sprintf("unknown field id %d", marker.Value()))
	}
	return s.Fields[name], name, nil
}
