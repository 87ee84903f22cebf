/*
NAME
  reduce_test.go

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package vifkernel

import (
	"testing"

	"github.com/ausocean/vif/arena"
)

// TestReduceConstant8Bit checks that a constant 8-bit plane reduces to
// a constant 16-bit plane scaled by 2^bpc: the Gaussian blur of a flat
// field is the field itself, and the first reduction steps the
// pipeline from the 8-bit domain into the shared 16-bit domain used by
// every later scale.
func TestReduceConstant8Bit(t *testing.T) {
	const w, h, c = 16, 16, 128

	a, err := arena.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	plane := make([]uint8, w*h)
	for i := range plane {
		plane[i] = c
	}

	Reduce[uint8](a, plane, plane, w, h, w, w, 0, 8)

	want := uint16(c << 8)
	for i := 0; i < (h/2)*a.Stride; i += a.Stride {
		for j := 0; j < w/2; j++ {
			if got := a.Ref[i+j]; got != want {
				t.Fatalf("Ref[%d] = %d, want %d", i+j, got, want)
			}
			if got := a.Dis[i+j]; got != want {
				t.Fatalf("Dis[%d] = %d, want %d", i+j, got, want)
			}
		}
	}
}

// TestReduceConstant16Bit checks that a constant value already in the
// 16-bit intermediate domain (scale > 0) is preserved exactly by
// reduction, since no further rescaling happens past the first step.
func TestReduceConstant16Bit(t *testing.T) {
	const w, h = 16, 16
	const c = 5000

	a, err := arena.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	plane := make([]uint16, w*h)
	for i := range plane {
		plane[i] = c
	}

	Reduce[uint16](a, plane, plane, w, h, w, w, 1, 16)

	for i := 0; i < (h/2)*a.Stride; i += a.Stride {
		for j := 0; j < w/2; j++ {
			if got := a.Ref[i+j]; got != c {
				t.Fatalf("Ref[%d] = %d, want %d", i+j, got, c)
			}
		}
	}
}

// TestReduceHalvesDimensions checks that only the top-left quadrant of
// Ref/Dis is populated, matching the decimate-by-2 contract.
func TestReduceHalvesDimensions(t *testing.T) {
	const w, h = 8, 6

	a, err := arena.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	plane := make([]uint8, w*h)
	for i := range plane {
		plane[i] = uint8(i % 251)
	}
	Reduce[uint8](a, plane, plane, w, h, w, w, 0, 8)

	// Nothing beyond row h/2-1 or column w/2-1 should have been
	// touched by the decimation step; the arena was zero-initialised,
	// so untouched cells remain zero.
	if a.Ref[(h/2)*a.Stride] != 0 {
		t.Errorf("row h/2 was written to, expected untouched")
	}
	for y := 0; y < h; y++ {
		for x := 0; x < a.Stride; x++ {
			if y < h/2 && x < w/2 {
				continue
			}
			idx := y*a.Stride + x
			if a.Ref[idx] != 0 || a.Dis[idx] != 0 {
				t.Errorf("Ref/Dis[%d][%d] written outside the top-left quadrant", y, x)
			}
		}
	}
}
