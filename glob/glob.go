// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package glob implements Glob, the least-significant-bit-first packed bit
// buffer that every block of a compressed object is ultimately made of.
package glob

import "github.com/dsnet/cso/internal/bitops"

// Glob is a tightly packed, least-significant-bit-first run of bits held in
// the minimum number of bytes required to store them. Unlike a byte slice,
// a Glob's last byte may be only partially used; Width records exactly how
// many of its low bits are significant.
//
// Globs carry no type information of their own; the format they hold is
// determined entirely by the schema field or compressor that produced them.
type Glob struct {
	width int
	data  []byte
}

// New constructs a Glob holding the low width bits of data, trimming any
// excess trailing bytes so that Bytes always returns the minimum byte
// count required to hold width bits.
//
// New panics if width is not positive or if data holds fewer than width/8
// (rounded down) bytes; a missing trailing partial byte is not detected.
func New(width int, data []byte) Glob {
	if width <= 0 {
		panic("glob: zero or negative width")
	}
	if len(data) < width/8 {
		panic("glob: not enough data to hold width bits")
	}
	g := Glob{width: width, data: data}
	g.truncate()
	return g
}

// Width reports the number of significant bits held by g.
func (g Glob) Width() int { return g.width }

// Bytes returns the minimal byte backing of g. The last byte may have bits
// above position width%8 that are not significant.
func (g Glob) Bytes() []byte { return g.data }

// Append packs the bits of other onto the high end of g, producing a glob
// whose width is the sum of the two widths with no padding introduced at
// the seam.
func (g *Glob) Append(other Glob) {
	// Fast path: g's data ends on a byte boundary, so the two buffers can
	// simply be concatenated.
	if g.width%8 == 0 {
		g.data = append(g.data, other.data...)
		g.width += other.width
		return
	}

	// Shift other's bytes left to make room in g's partially filled last
	// byte, then OR the seam together.
	shiftAmount := uint(g.width % 8)
	shifted := bitops.VecShl(other.data, shiftAmount)

	last := len(g.data) - 1
	g.data[last] |= shifted[0]
	g.data = append(g.data, shifted[1:]...)
	g.width += other.width
	g.truncate()
}

// truncate drops any trailing bytes beyond what width requires.
func (g *Glob) truncate() {
	required := bitops.DivCeil(g.width, 8)
	if len(g.data) > required {
		g.data = g.data[:required]
	}
}
