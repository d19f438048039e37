// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the size of a compressed object against a handful
// of general-purpose byte-stream compressors run over the same bytes, to
// give a quick sense of how much a schema-directed encoding buys over
// compressing the equivalent JSON blindly.
package bench

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	kflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"
)

// Codec is a single general-purpose compressor under comparison.
type Codec func(data []byte) (int, error)

var registry = map[string]Codec{
	"gzip":      gzipCodec,
	"flate-std": flateCodec,
	"xz":        xzCodec,
}

// Result is one codec's outcome against a single input.
type Result struct {
	Name string
	Size int
	Err  error
}

// Compare runs every registered codec against data and returns their
// compressed sizes, one Result per codec, sorted by codec name.
func Compare(data []byte) []Result {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sortStrings(names)

	results := make([]Result, len(names))
	for i, name := range names {
		size, err := registry[name](data)
		results[i] = Result{Name: name, Size: size, Err: err}
	}
	return results
}

// Register adds or replaces the codec used for name, following the same
// open-registry shape compress.Register uses for Compressor factories.
func Register(name string, c Codec) { registry[name] = c }

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func gzipCodec(data []byte) (int, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func flateCodec(data []byte) (int, error) {
	var buf bytes.Buffer
	zw, err := kflate.NewWriter(&buf, kflate.DefaultCompression)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(data); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func xzCodec(data []byte) (int, error) {
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(zw, bytes.NewReader(data)); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// Format renders the compressed object's size and results as a single
// human-readable line, e.g. "co 128 bytes  flate-std 101  gzip 96  xz 89".
func Format(coSize int, results []Result) string {
	out := fmt.Sprintf("co %d bytes", coSize)
	for _, r := range results {
		if r.Err != nil {
			out += fmt.Sprintf("  %s error:%v", r.Name, r.Err)
			continue
		}
		out += fmt.Sprintf("  %s %d", r.Name, r.Size)
	}
	return out
}
