/*
NAME
  vifstat.go

DESCRIPTION
  vifstat.go implements VifStatistic: the per-pixel reduction that turns
  the five Q32 planes StatisticFilter produces at one scale into a
  single (num, den) pair, using a table-driven log2 approximation and
  the norm32/norm64 best-16-bit-mantissa normalizations.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package vifstat implements the per-pixel VIF statistic: the
// log-domain accumulation of mean, variance, covariance terms into a
// numerator/denominator pair per scale.
package vifstat

import (
	"math/bits"

	"github.com/ausocean/vif/logtable"
)

// sigmaNsq is the fixed noise-variance floor in the Q17 domain used
// here: float 2.0, represented as 2 * 65536.
const sigmaNsq = 65536 << 1

// norm32 returns the best 16-bit mantissa of a 32-bit value together
// with the exponent adjustment needed to recover v from the mantissa:
// v ~= mantissa << -x. x is non-positive whenever v >= 2^15; smaller
// values are shifted left and get a positive x. The returned mantissa
// lies in [2^14, 2^16) whenever v >= 2^14, matching get_best16_from32.
func norm32(v uint32) (mantissa uint16, x int) {
	k := 16 - bits.LeadingZeros32(v)
	if k < 0 {
		return uint16(v << uint(-k)), -k
	}
	return uint16(v >> uint(k)), -k
}

// norm64 is the 64-bit counterpart of norm32, matching
// get_best16_from64: it normalizes v to a 16-bit mantissa, shifting
// left (positive x) or right (negative x) as needed, with a special
// case when v has 47 or 48 leading zeros (a 17- or 16-bit value).
func norm64(v uint64) (mantissa uint16, x int) {
	c := bits.LeadingZeros64(v)
	switch {
	case c > 48:
		k := c - 48
		return uint16(v << uint(k)), k
	case c < 47:
		k := 48 - c
		return uint16(v >> uint(k)), -k
	default:
		if v>>16 != 0 {
			return uint16(v >> 1), -1
		}
		return uint16(v), 0
	}
}

// Planes bundles the five full-resolution arrays VifStatistic reduces
// over: the two Q32 composite means and the three Q32 filtered second
// moments, all addressed with the same stride.
type Planes struct {
	Mu1_32, Mu2_32        []uint32
	RefSq, DisSq, RefDis []uint32
	Stride                int
}

// Reduce computes the (num, den) pair for one scale over the w x h
// valid area of p, using log for the log-domain terms. The result
// matches the reference's float32 precision: intermediate accumulation
// is done in float64, but the two returned values are rounded through
// float32 exactly as the reference's `float num[0], den[0]` outputs
// are.
func Reduce(p Planes, w, h int, log *logtable.Table) (num, den float64) {
	var accumX, accumX2, numAccumX int64
	var accumNumLog, accumDenLog int64
	var accumNumNonLog, accumDenNonLog int64

	for y := 0; y < h; y++ {
		row := y * p.Stride
		for x := 0; x < w; x++ {
			idx := row + x
			mu1 := uint64(p.Mu1_32[idx])
			mu2 := uint64(p.Mu2_32[idx])

			mu1Sq := uint32((mu1*mu1 + (1 << 31)) >> 32)
			mu2Sq := uint32((mu2*mu2 + (1 << 31)) >> 32)
			mu1Mu2 := uint32((mu1*mu2 + (1 << 31)) >> 32)

			sigma1Sq := int32(p.RefSq[idx] - mu1Sq)
			sigma2Sq := int32(p.DisSq[idx] - mu2Sq)

			if sigma1Sq < sigmaNsq {
				accumNumNonLog += int64(sigma2Sq)
				accumDenNonLog++
				continue
			}

			logDenStage1 := uint32(sigmaNsq) + uint32(sigma1Sq)
			logDen1, x0 := norm32(logDenStage1)
			numAccumX++
			accumX += int64(x0)
			denVal := int64(log[logDen1])

			sigma12 := int32(p.RefDis[idx] - mu1Mu2)
			if sigma12 < 0 {
				accumDenLog += denVal
				continue
			}

			numer1 := sigma2Sq + sigmaNsq
			sigma12Sq := int64(sigma12) * int64(sigma12)
			numer1Tmp := int64(numer1) * int64(sigma1Sq)
			numLog, x1 := norm64(uint64(numer1Tmp))
			denom := numer1Tmp - sigma12Sq

			if denom > 0 {
				denLog, x2 := norm64(uint64(denom))
				accumX2 += int64(x2 - x1)
				accumNumLog += int64(log[numLog]) - int64(log[denLog])
				accumDenLog += denVal
				continue
			}

			accumNumNonLog += int64(sigma2Sq)
			accumDenNonLog++
		}
	}

	numF := float64(accumNumLog)/2048.0 + float64(accumX2) +
		(float64(accumDenNonLog) - (float64(accumNumNonLog) / 16384.0 / 65025.0))
	denF := float64(accumDenLog)/2048.0 - (float64(accumX) + float64(numAccumX*17)) +
		float64(accumDenNonLog)

	return float64(float32(numF)), float64(float32(denF))
}
