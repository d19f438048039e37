// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package block

import (
	"io"

	"github.com/dsnet/cso/glob"
	"github.com/dsnet/cso/internal/bitops"
	"github.com/dsnet/cso/vie"
)

// Cursor reads a compressed object back out of a packed byte buffer one bit
// at a time, least-significant bit first, mirroring the order Glob.Append
// packs bits in. Cursor exposes only small primitives; the walk that maps
// field ids back to names and types, which needs the schema, lives in
// package encode.
type Cursor struct {
	data   []byte
	bitPos int
}

// NewCursor returns a Cursor reading from the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// readBit reads the next bit, LSB first within each byte.
func (c *Cursor) readBit() (byte, error) {
	byteIdx := c.bitPos / 8
	if byteIdx >= len(c.data) {
		return 0, io.ErrUnexpectedEOF
	}
	bit := (c.data[byteIdx] >> uint(c.bitPos%8)) & 1
	c.bitPos++
	return bit, nil
}

// ReadBits reads the next n bits (n <= 64) as an LSB-first unsigned integer.
func (c *Cursor) ReadBits(n int) (uint64, error) {
	if n > 64 {
		panic("block: ReadBits width exceeds 64 bits")
	}
	var v uint64
	for i := 0; i < n; i++ {
		bit, err := c.readBit()
		if err != nil {
			return 0, err
		}
		v |= uint64(bit) << uint(i)
	}
	return v, nil
}

// ReadMarker reads a marker encoded in width bits.
func (c *Cursor) ReadMarker(width int) (Marker, error) {
	v, err := c.ReadBits(width)
	if err != nil {
		return Marker{}, err
	}
	return FieldFromValue(uint32(v)), nil
}

// ReadLength reads a VIE-encoded Length, one byte-sized group at a time
// until the continuation bit is clear, and returns the bit width it
// denotes.
func (c *Cursor) ReadLength() (int, error) {
	var groups []byte
	for {
		b, err := c.ReadBits(8)
		if err != nil {
			return 0, err
		}
		groups = append(groups, byte(b))
		if b&0x80 == 0 {
			break
		}
	}
	v, _, err := vie.Decode(groups, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// ReadGlob reads a glob of the given bit width.
func (c *Cursor) ReadGlob(width int) (glob.Glob, error) {
	if width <= 0 {
		panic("block: zero width glob read")
	}
	data := make([]byte, bitops.DivCeil(width, 8))
	for i := 0; i < width; i++ {
		bit, err := c.readBit()
		if err != nil {
			return glob.Glob{}, err
		}
		data[i/8] |= bit << uint(i%8)
	}
	return glob.New(width, data), nil
}
