// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package block

import "github.com/dsnet/cso/glob"

// BlockKind distinguishes the three varieties of Block.
type BlockKind int

const (
	// Header marks the start of a new record or list.
	Header BlockKind = iota
	// Data holds the actual data for a field or list element.
	Data
	// Terminator marks the end of a nested record or list.
	Terminator
)

// HeaderFields holds the two markers that make up a Header block: the type
// of the container being opened (Record or List) and the field or element
// marker it belongs to, or Null for the root object.
type HeaderFields struct {
	Type  Marker
	Field Marker
}

// DataFields holds the three parts of a Data block: the field or element
// marker it belongs to, the bit length of its glob, and the glob itself.
type DataFields struct {
	Field  Marker
	Length Length
	Value  glob.Glob
}

// Block is one section of a compressed object: a Header, a Data block, or a
// Terminator. Only the fields relevant to Kind are meaningful.
type Block struct {
	Kind   BlockKind
	Header HeaderFields
	Data   DataFields
}

// NewHeaderBlock returns a Header block for the given container type and
// owning field marker. Use Null() for the root object's field.
func NewHeaderBlock(typ, field Marker) Block {
	return Block{Kind: Header, Header: HeaderFields{Type: typ, Field: field}}
}

// NewDataBlock returns a Data block holding g, owned by field.
//
// NewDataBlock panics if field is not a Field or Element marker.
func NewDataBlock(field Marker, g glob.Glob) Block {
	if !field.IsField() && !field.IsElement() {
		panic("block: data blocks require a field or element marker")
	}
	return Block{
		Kind: Data,
		Data: DataFields{Field: field, Length: NewLength(g.Width()), Value: g},
	}
}

// NewTerminatorBlock returns a Terminator block.
func NewTerminatorBlock() Block { return Block{Kind: Terminator} }

// Glob converts b into a binary glob, given the externally determined
// marker width.
func (b Block) Glob(markerWidth int) glob.Glob {
	switch b.Kind {
	case Header:
		g := b.Header.Type.Glob(markerWidth)
		g.Append(b.Header.Field.Glob(markerWidth))
		return g

	case Data:
		g := b.Data.Field.Glob(markerWidth)
		g.Append(b.Data.Length.Glob())
		g.Append(b.Data.Value)
		return g

	case Terminator:
		return Null().Glob(markerWidth)

	default:
		panic("block: invalid block kind")
	}
}

// CompressedObject is a sequence of blocks arranged in a particular
// pattern: a Header block opens the root object, followed by any number of
// Data blocks describing its fields or elements. A nested record or list
// opens with its own Header block, is followed by its own Data blocks, and
// is closed with a Terminator block; blocks pushed after a Terminator
// belong to the parent object again. The root object itself needs no
// Terminator.
type CompressedObject struct {
	blocks []Block
}

// Empty returns a new, empty compressed object. Prefer NewRecord or NewList
// when building objects by hand.
func Empty() CompressedObject { return CompressedObject{} }

// NewRecord returns a compressed object whose root is a record.
func NewRecord() CompressedObject {
	return CompressedObject{blocks: []Block{NewHeaderBlock(Record(), Null())}}
}

// NewList returns a compressed object whose root is a list.
func NewList() CompressedObject {
	return CompressedObject{blocks: []Block{NewHeaderBlock(List(), Null())}}
}

// Blocks returns the blocks that make up co, in order.
func (co CompressedObject) Blocks() []Block { return co.blocks }

// Push appends a block to co without validating that it belongs in the
// current context; use Validate to check the integrity of the result.
func (co *CompressedObject) Push(b Block) { co.blocks = append(co.blocks, b) }

// BeginNestedRecord opens a nested record owned by field.
//
// BeginNestedRecord panics if field is not a Field or Element marker.
func (co *CompressedObject) BeginNestedRecord(field Marker) {
	if !field.IsField() && !field.IsElement() {
		panic("block: nested record requires a field or element marker")
	}
	co.Push(NewHeaderBlock(Record(), field))
}

// BeginNestedList opens a nested list owned by field.
//
// BeginNestedList panics if field is not a Field or Element marker.
func (co *CompressedObject) BeginNestedList(field Marker) {
	if !field.IsField() && !field.IsElement() {
		panic("block: nested list requires a field or element marker")
	}
	co.Push(NewHeaderBlock(List(), field))
}

// EndNestedObject closes the most recently opened nested record or list.
func (co *CompressedObject) EndNestedObject() { co.Push(NewTerminatorBlock()) }

// PushData appends a Data block owned by field, inferring its Length from
// the width of g.
//
// PushData panics if field is not a Field or Element marker.
func (co *CompressedObject) PushData(field Marker, g glob.Glob) {
	co.Push(NewDataBlock(field, g))
}

// Validate checks that co's blocks form a well-formed compressed object.
func (co *CompressedObject) Validate() error {
	return runValidator(co.blocks)
}

// IntoBytes packs co's blocks tightly together into their minimal byte
// representation, given the externally determined marker width.
func (co CompressedObject) IntoBytes(markerWidth int) []byte {
	if len(co.blocks) == 0 {
		return nil
	}
	g := co.blocks[0].Glob(markerWidth)
	for _, b := range co.blocks[1:] {
		g.Append(b.Glob(markerWidth))
	}
	return g.Bytes()
}
