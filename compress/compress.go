// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package compress implements the small capability interface every schema
// type reduces to: compressing a decoded value down to a Glob and
// decompressing it back, independent of how that glob ultimately gets
// packed into a compressed object.
package compress

import "github.com/dsnet/cso/glob"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "compress: " + string(e) }

// EncodedWidth describes whether a Compressor's output glob always has the
// same bit width or varies with the input.
type EncodedWidth struct {
	Fixed    bool
	NumBits  int // meaningful only when Fixed is true
}

// Fixed returns an EncodedWidth describing a compressor whose output is
// always exactly n bits wide.
func Fixed(n int) EncodedWidth { return EncodedWidth{Fixed: true, NumBits: n} }

// Variable returns an EncodedWidth describing a compressor whose output
// width depends on the input.
func Variable() EncodedWidth { return EncodedWidth{} }

// Compressor converts a decoded value's raw bytes to and from a Glob.
//
// Implementations must uphold Decompress(Compress(x)) == x for every x that
// Compress accepts.
type Compressor interface {
	Compress(input []byte) (glob.Glob, error)
	Decompress(g glob.Glob) ([]byte, error)
	EncodedWidth() EncodedWidth
}

// Identity is a Compressor that stores input bytes unmodified.
type Identity struct{}

func (Identity) Compress(input []byte) (glob.Glob, error) {
	return glob.New(len(input)*8, append([]byte(nil), input...)), nil
}

func (Identity) Decompress(g glob.Glob) ([]byte, error) {
	if g.Width()%8 != 0 {
		return nil, Error("pass-through glob width must be a multiple of 8")
	}
	return g.Bytes(), nil
}

func (Identity) EncodedWidth() EncodedWidth { return Variable() }
