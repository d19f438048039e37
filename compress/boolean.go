// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compress

import "github.com/dsnet/cso/glob"

// Boolean is a Compressor for boolean values, represented on the wire as a
// single byte (1 for true, 0 for false) and compressed into a 1-bit glob.
type Boolean struct{}

func (Boolean) Compress(input []byte) (glob.Glob, error) {
	if len(input) != 1 || (input[0] != 0 && input[0] != 1) {
		return glob.Glob{}, Error("boolean compressor expects a single 0 or 1 byte")
	}
	return glob.New(1, []byte{input[0]}), nil
}

func (Boolean) Decompress(g glob.Glob) ([]byte, error) {
	if g.Width() != 1 {
		return nil, Error("boolean glob must be 1 bit wide")
	}
	b := g.Bytes()[0]
	if b != 0 && b != 1 {
		return nil, Error("boolean glob holds an illegal value")
	}
	return []byte{b}, nil
}

func (Boolean) EncodedWidth() EncodedWidth { return Fixed(1) }
