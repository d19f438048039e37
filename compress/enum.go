// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compress

import (
	"github.com/dsnet/cso/glob"
	"github.com/dsnet/cso/internal/bitops"
)

// Enum is a Compressor that stores a value's position within an ordered set
// of byte-pattern variants as an ordinal, using the minimum number of bits
// needed to represent any index into variants.
type Enum struct {
	Variants [][]byte
}

// NewEnumFromStrings returns an Enum compressor over a set of string
// variants, matched exactly as given.
func NewEnumFromStrings(variants []string) Enum {
	bs := make([][]byte, len(variants))
	for i, v := range variants {
		bs[i] = []byte(v)
	}
	return Enum{Variants: bs}
}

// Width returns the bit width of this compressor's encoded glob.
func (c Enum) Width() int { return bitops.RequiredBitWidth(len(c.Variants)) }

func (c Enum) Compress(input []byte) (glob.Glob, error) {
	index := -1
	for i, v := range c.Variants {
		if string(v) == string(input) {
			index = i
			break
		}
	}
	if index < 0 {
		return glob.Glob{}, Error("no matching enum variant")
	}

	width := c.Width()
	bytes := make([]byte, bitops.DivCeil(width, 8))
	for i := range bytes {
		bytes[i] = byte(index >> uint(8*i))
	}
	return glob.New(width, bytes), nil
}

func (c Enum) Decompress(g glob.Glob) ([]byte, error) {
	if g.Width() != c.Width() {
		return nil, Error("enum glob width does not match variant count")
	}
	var index int
	for i, b := range g.Bytes() {
		index |= int(b) << uint(8*i)
	}
	if index < 0 || index >= len(c.Variants) {
		return nil, Error("enum glob holds an out-of-range ordinal")
	}
	return append([]byte(nil), c.Variants[index]...), nil
}

func (c Enum) EncodedWidth() EncodedWidth { return Fixed(c.Width()) }
