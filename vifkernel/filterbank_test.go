/*
NAME
  filterbank_test.go

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

	"github.com/google/go-cmp/cmp"
)

// TestFilterBankExactValues pins the four kernels to the exact values
// taken from the reference implementation's tables, using cmp.Diff so
// a future edit gets a readable element-by-element diff instead of a
// single pass/fail.
func TestFilterBankExactValues(t *testing.T) {
	want := [4][]uint16{
		{489, 935, 1640, 2640, 3896, 5274, 6547, 7455, 7784, 7455, 6547, 5274, 3896, 2640, 1640, 935, 489},
		{1244, 3663, 7925, 12590, 14692, 12590, 7925, 3663, 1244},
		{3571, 16004, 26386, 16004, 3571},
		{10904, 43728, 10904},
	}
	for scale := range want {
		if diff := cmp.Diff(want[scale], FilterBank[scale]); diff != "" {
			t.Errorf("scale %d kernel mismatch (-want +got):\n%s", scale, diff)
		}
	}
}

// TestFilterBankSumsToQ16 checks the kernel-sum-equals-2^16 invariant
// the fixed-point shift schedule throughout the pipeline relies on.
func TestFilterBankSumsToQ16(t *testing.T) {
	for scale, kernel := range FilterBank {
		var sum uint32
		for _, c := range kernel {
			sum += uint32(c)
		}
		if sum != 1<<16 {
			t.Errorf("scale %d: kernel sums to %d, want %d", scale, sum, 1<<16)
		}
	}
}

func TestFilterBankWidths(t *testing.T) {
	want := []int{17, 9, 5, 3}
	for i, w := range want {
		if len(FilterBank[i]) != w {
			t.Errorf("scale %d: width %d, want %d", i, len(FilterBank[i]), w)
		}
	}
}

// TestFilterBankSymmetric checks that each kernel is symmetric, as
// required by the separable-Gaussian contract.
func TestFilterBankSymmetric(t *testing.T) {
	for scale, kernel := range FilterBank {
		for i := range kernel {
			j := len(kernel) - 1 - i
			if kernel[i] != kernel[j] {
				t.Errorf("scale %d: kernel[%d]=%d != kernel[%d]=%d", scale, i, kernel[i], j, kernel[j])
			}
		}
	}
}

// TestMirrorInterior checks mirror is the identity within bounds.
func TestMirrorInterior(t *testing.T) {
	const n = 10
	for i := 0; i < n; i++ {
		if got := mirror(i, n); got != i {
			t.Errorf("mirror(%d, %d) = %d, want %d", i, n, got, i)
		}
	}
}

// TestMirrorIdempotentAtBoundary checks spec invariant 5:
// mirror(mirror(i, n), n) == i for i in [0, n).
func TestMirrorIdempotentAtBoundary(t *testing.T) {
	const n = 16
	for i := 0; i < n; i++ {
		if got := mirror(mirror(i, n), n); got != i {
			t.Errorf("mirror(mirror(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestMirrorOutOfBounds(t *testing.T) {
	const n = 10
	cases := []struct{ i, want int }{
		{-1, 1},
		{-5, 5},
		{10, 9},
		{11, 8},
		{19, 0},
	}
	for _, c := range cases {
		if got := mirror(c.i, n); got != c.want {
			t.Errorf("mirror(%d, %d) = %d, want %d", c.i, n, got, c.want)
		}
	}
}
