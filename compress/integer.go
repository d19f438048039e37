// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compress

import (
	"github.com/dsnet/cso/glob"
	"github.com/dsnet/cso/internal/bitops"
)

// Integer is a Compressor that treats its input as the little-endian
// representation of an unsigned value up to 64 bits wide, and truncates or
// zero-extends it to a fixed bit width.
type Integer struct {
	Width int // bit width, 1..64
}

// NewInteger returns an Integer compressor for the given bit width.
func NewInteger(width int) Integer {
	if width <= 0 || width > 64 {
		panic("compress: integer width out of range")
	}
	return Integer{Width: width}
}

func (c Integer) Compress(input []byte) (glob.Glob, error) {
	byteCount := bitops.DivCeil(c.Width, 8)

	bytes := make([]byte, byteCount)
	copy(bytes, input) // truncates or zero-extends as needed

	if trailing := c.Width % 8; trailing != 0 {
		bytes[len(bytes)-1] &= bitops.LowMask(trailing)
	}
	return glob.New(c.Width, bytes), nil
}

func (c Integer) Decompress(g glob.Glob) ([]byte, error) {
	if g.Width() != c.Width {
		return nil, Error("integer glob width does not match compressor width")
	}
	bytes := g.Bytes()
	if len(bytes) > 8 {
		return nil, Error("integer glob too large to decode as u64")
	}
	return append([]byte(nil), bytes...), nil
}

func (c Integer) EncodedWidth() EncodedWidth { return Fixed(c.Width) }
