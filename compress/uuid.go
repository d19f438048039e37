// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compress

import (
	"encoding/hex"

	"github.com/dsnet/cso/glob"
)

// UUID is a Compressor specialized for Universally Unique Identifiers. The
// wire format is the raw 128-bit value; the decoded form is the canonical
// hyphenated string (e.g. "0a53309c-98d7-43cb-98e8-89562adf0f0c").
type UUID struct{}

func (UUID) Compress(input []byte) (glob.Glob, error) {
	bytes, err := parseUUID(string(input))
	if err != nil {
		return glob.Glob{}, err
	}
	return glob.New(128, bytes), nil
}

func (UUID) Decompress(g glob.Glob) ([]byte, error) {
	if g.Width() != 128 {
		return nil, Error("uuid glob must be 128 bits wide")
	}
	return []byte(formatUUID(g.Bytes())), nil
}

func (UUID) EncodedWidth() EncodedWidth { return Fixed(128) }

// parseUUID parses the canonical hyphenated UUID string form into its 16
// raw bytes.
func parseUUID(s string) ([]byte, error) {
	var hexPart string
	switch len(s) {
	case 36: // 8-4-4-4-12 with hyphens
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return nil, Error("malformed uuid: misplaced hyphen")
		}
		hexPart = s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:36]
	case 32: // bare hex
		hexPart = s
	default:
		return nil, Error("malformed uuid: wrong length")
	}

	bytes, err := hex.DecodeString(hexPart)
	if err != nil {
		return nil, Error("malformed uuid: " + err.Error())
	}
	return bytes, nil
}

// formatUUID renders 16 raw bytes as a canonical hyphenated UUID string.
func formatUUID(b []byte) string {
	buf := make([]byte, 36)
	hex.Encode(buf[0:8], b[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], b[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], b[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], b[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], b[10:16])
	return string(buf)
}
