// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compress

import (
	"reflect"
	"testing"

	"github.com/dsnet/cso/glob"
)

func TestEnumCompress(t *testing.T) {
	c := NewEnumFromStrings([]string{"Foo", "Bar", "Hello World"})

	vectors := []struct {
		variant string
		want    glob.Glob
	}{
		{"Foo", glob.New(2, []byte{0b00})},
		{"Bar", glob.New(2, []byte{0b01})},
		{"Hello World", glob.New(2, []byte{0b10})},
	}
	for _, v := range vectors {
		g, err := c.Compress([]byte(v.variant))
		if err != nil {
			t.Fatalf("Compress(%q) error: %v", v.variant, err)
		}
		if !reflect.DeepEqual(g, v.want) {
			t.Errorf("Compress(%q) = %+v, want %+v", v.variant, g, v.want)
		}
	}
}

func TestEnumDecompress(t *testing.T) {
	c := NewEnumFromStrings([]string{"Foo", "Bar", "Hello World"})

	vectors := []struct {
		g    glob.Glob
		want string
	}{
		{glob.New(2, []byte{0b00}), "Foo"},
		{glob.New(2, []byte{0b01}), "Bar"},
		{glob.New(2, []byte{0b10}), "Hello World"},
	}
	for _, v := range vectors {
		got, err := c.Decompress(v.g)
		if err != nil {
			t.Fatalf("Decompress(%+v) error: %v", v.g, err)
		}
		if string(got) != v.want {
			t.Errorf("Decompress(%+v) = %q, want %q", v.g, got, v.want)
		}
	}
}

func TestEnumUnknownVariant(t *testing.T) {
	c := NewEnumFromStrings([]string{"Foo", "Bar"})
	if _, err := c.Compress([]byte("Baz")); err == nil {
		t.Error("Compress(unknown variant) = nil error, want error")
	}
}

func TestUUIDRoundTrip(t *testing.T) {
	const s = "0a53309c-98d7-43cb-98e8-89562adf0f0c"
	var c UUID

	g, err := c.Compress([]byte(s))
	if err != nil {
		t.Fatalf("Compress error: %v", err)
	}
	if g.Width() != 128 {
		t.Fatalf("Width() = %d, want 128", g.Width())
	}

	got, err := c.Decompress(g)
	if err != nil {
		t.Fatalf("Decompress error: %v", err)
	}
	if string(got) != s {
		t.Errorf("Decompress(Compress(%q)) = %q", s, got)
	}
}

func TestIntegerTruncatesAndMasks(t *testing.T) {
	c := NewInteger(5)
	g, err := c.Compress([]byte{0xff})
	if err != nil {
		t.Fatalf("Compress error: %v", err)
	}
	if g.Width() != 5 {
		t.Fatalf("Width() = %d, want 5", g.Width())
	}
	if got := g.Bytes()[0]; got != 0x1f {
		t.Errorf("Bytes()[0] = %#x, want 0x1f", got)
	}
}

func TestBooleanRejectsIllegalByte(t *testing.T) {
	var c Boolean
	if _, err := c.Compress([]byte{2}); err == nil {
		t.Error("Compress(2) = nil error, want error")
	}
}

func TestBuiltinLookup(t *testing.T) {
	if _, ok := Builtin("bool"); !ok {
		t.Error(`Builtin("bool") not found`)
	}
	if _, ok := Builtin("uuid"); !ok {
		t.Error(`Builtin("uuid") not found`)
	}
	c, ok := Builtin("u17")
	if !ok {
		t.Fatal(`Builtin("u17") not found`)
	}
	if iw := c.(Integer).Width; iw != 17 {
		t.Errorf(`Builtin("u17").Width = %d, want 17`, iw)
	}
	if _, ok := Builtin("ascii"); ok {
		t.Error(`Builtin("ascii") unexpectedly found`)
	}
}
