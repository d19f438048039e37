// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compress

import "strconv"

// Builtin looks up the compressor named by a schema type name.
//
// Names registered via Register (by default: "bool", "uuid") are tried
// first. Any other name of the form "u<N>" (e.g. "u8", "u17") resolves to
// an Integer compressor of width N. Builtin reports false if name matches
// neither.
func Builtin(name string) (Compressor, bool) {
	if c, ok, err := Lookup(name); ok && err == nil {
		return c, true
	}

	if len(name) > 1 && name[0] == 'u' {
		if width, err := strconv.Atoi(name[1:]); err == nil && width > 0 && width <= 64 {
			return NewInteger(width), true
		}
	}
	return nil, false
}
