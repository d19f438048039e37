// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package block

import (
	"github.com/dsnet/cso/glob"
	"github.com/dsnet/cso/vie"
)

// Length prefixes a Data block's glob and holds the glob's bit width,
// itself encoded as a VIE code point rather than a fixed-width integer.
type Length struct {
	code []byte
}

// NewLength returns the Length for a glob of the given bit width.
func NewLength(bitWidth int) Length {
	return Length{code: vie.Encode(uint64(bitWidth))}
}

// Glob converts l into a byte-aligned binary glob.
func (l Length) Glob() glob.Glob {
	return glob.New(len(l.code)*8, append([]byte(nil), l.code...))
}

// Decode returns the bit width l denotes.
func (l Length) Decode() (int, error) {
	v, _, err := vie.Decode(l.code, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
