// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitops

import (
	"reflect"
	"testing"
)

func TestDivCeil(t *testing.T) {
	vectors := []struct{ n, d, want int }{
		{1, 2, 1},
		{2, 2, 1},
		{3, 2, 2},
	}
	for _, v := range vectors {
		if got := DivCeil(v.n, v.d); got != v.want {
			t.Errorf("DivCeil(%d, %d) = %d, want %d", v.n, v.d, got, v.want)
		}
	}
}

func TestRequiredBitWidth(t *testing.T) {
	vectors := []struct{ n, want int }{
		{0, 0},
		{1, 0},
		{6, 3},
		{8, 3},
		{97, 7},
	}
	for _, v := range vectors {
		if got := RequiredBitWidth(v.n); got != v.want {
			t.Errorf("RequiredBitWidth(%d) = %d, want %d", v.n, got, v.want)
		}
	}
}

func TestShlWithCarry(t *testing.T) {
	shifted, carry := ShlWithCarry(0xd0, 3)
	if shifted != 0x80 || carry != 0x06 {
		t.Errorf("ShlWithCarry(0xd0, 3) = (%#x, %#x), want (0x80, 0x06)", shifted, carry)
	}
}

func TestVecShl(t *testing.T) {
	vectors := []struct {
		in   []byte
		n    uint
		want []byte
	}{
		{[]byte{0x73, 0x01}, 2, []byte{0xcc, 0x05, 0x00}},
		{[]byte{0x80, 0x01}, 1, []byte{0x00, 0x03, 0x00}},
		{[]byte{0x80}, 1, []byte{0x00, 0x01}},
	}
	for _, v := range vectors {
		got := VecShl(v.in, v.n)
		if !reflect.DeepEqual(got, v.want) {
			t.Errorf("VecShl(%#v, %d) = %#v, want %#v", v.in, v.n, got, v.want)
		}
	}
}

func TestLowMask(t *testing.T) {
	if got := LowMask(3); got != 0b0000_0111 {
		t.Errorf("LowMask(3) = %#b, want 0b111", got)
	}
}
