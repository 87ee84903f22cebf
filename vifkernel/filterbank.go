/*
NAME
  filterbank.go

DESCRIPTION
  filterbank.go holds the four immutable separable Gaussian kernels used
  by ReduceFilter and StatisticFilter, and the mirror-reflection boundary
  function shared by both.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package vifkernel implements the separable Gaussian filter bank used
// by the vif pipeline: ReduceFilter (blur + decimate-by-2) and
// StatisticFilter (blur producing mean, square and cross terms in one
// pass), plus the mirror-reflection boundary condition they share.
package vifkernel

// Sample is the set of pixel sample types the filters operate on: 8-bit
// planes at full bit depth, 16-bit planes at higher bit depths, and the
// arena's own 16-bit intermediate planes.
type Sample interface {
	~uint8 | ~uint16
}

// FilterBank holds the four odd-width, Q16 symmetric kernels used at
// scales 0..3, each summing to 2^16. Widths are {17, 9, 5, 3}.
var FilterBank = [4][]uint16{
	{489, 935, 1640, 2640, 3896, 5274, 6547, 7455, 7784, 7455, 6547, 5274, 3896, 2640, 1640, 935, 489},
	{1244, 3663, 7925, 12590, 14692, 12590, 7925, 3663, 1244},
	{3571, 16004, 26386, 16004, 3571},
	{10904, 43728, 10904},
}

// mirror implements the reflect-without-repeat boundary condition of
// spec §4.1: mirror(i, n) = -i for i < 0, 2n-i-1 for i >= n, else i.
func mirror(i, n int) int {
	switch {
	case i < 0:
		return -i
	case i >= n:
		return 2*n - i - 1
	default:
		return i
	}
}
