/*
NAME
  logtable.go

DESCRIPTION
  logtable.go builds the base-2 logarithm lookup table shared by the vif
  statistic stage. Entry i holds round(log2(i) * 2048) for i in
  [32767, 65535]; entries below that are unused by the statistic stage
  and left zero.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logtable provides a precomputed base-2 logarithm lookup table,
// built once at extractor init time, and the fixed-point-friendly log2
// approximation used to fill it.
package logtable

import "math"

// Size is the number of entries in a Table.
const Size = 65536

// Scale is the fixed-point scale applied to log2 values stored in a
// Table: Table[i] approximates round(log2(i) * Scale).
const Scale = 2048

// MinIndex is the smallest index a Table entry is defined for. Entries
// below MinIndex are zero and must not be consulted by callers.
const MinIndex = 32767

// Table is a precomputed lookup of round(log2(i) * Scale) for
// i in [MinIndex, Size).
type Table [Size]uint16

// New builds a Table by evaluating Log2Approx at every valid index.
func New() *Table {
	var t Table
	for i := MinIndex; i < Size; i++ {
		t[i] = uint16(math.Round(float64(Log2Approx(float32(i)) * Scale)))
	}
	return &t
}

// log2Poly holds the coefficients of the degree-8 polynomial used to
// approximate log2 of a mantissa in [1, 2), evaluated via Horner's
// method, most-significant coefficient first.
var log2Poly = [9]float32{
	-0.012671635276421, 0.064841182402670,
	-0.157048836463065, 0.257167726303123,
	-0.353800560300520, 0.480131410397451,
	-0.721314327952201, 1.442694803896991, 0,
}

func horner(x float32) float32 {
	var v float32
	for _, c := range log2Poly {
		v = v*x + c
	}
	return v
}

// Log2Approx approximates log2(x) using IEEE-754 field extraction: the
// float's exponent gives the integer part, and a fixed polynomial fit
// over the mantissa gives the fractional remainder. x must be positive.
func Log2Approx(x float32) float32 {
	if x == 0 {
		return float32(math.Inf(-1))
	}
	if x < 0 {
		return float32(math.NaN())
	}

	const (
		expZeroConst = 0x3F800000
		expMask      = 0x7F800000
		mantMask     = 0x007FFFFF
	)

	bits := math.Float32bits(x)
	exponent := (bits & expMask) >> 23
	mant := bits & mantMask
	remainBits := mant | expZeroConst
	remain := math.Float32frombits(remainBits)

	logBase := float32(int32(exponent) - 127)
	logRemain := horner(remain - 1.0)
	return logBase + logRemain
}
