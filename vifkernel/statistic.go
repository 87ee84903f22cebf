/*
NAME
  statistic.go

DESCRIPTION
  statistic.go implements StatisticFilter: a single separable-Gaussian
  pass that simultaneously produces the filtered mean, squared-image,
  and cross-image terms VifStatistic needs at the current scale.

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

import "github.com/ausocean/vif/arena"

// Statistic blurs ref/dis at the given scale with FilterBank[scale] and
// writes five full-resolution outputs into the arena: Mu1_32/Mu2_32
// (raw Q32 composite means, unshifted) and RefSq/DisSq/RefDis (Q32
// filtered second moments). bpc matters only at scale 0, where the
// vertical-pass shift schedule is derived from the source bit depth
// (spec §4.2).
func Statistic[S Sample](a *arena.Arena, ref, dis []S, w, h, refStride, disStride, scale, bpc int) {
	kernel := FilterBank[scale]
	fwidth := len(kernel)
	half := fwidth / 2

	var shiftVP, roundVP, shiftVPsq, roundVPsq uint64
	if scale == 0 {
		shiftVP = uint64(bpc)
		roundVP = 1 << (bpc - 1)
		shiftVPsq = uint64(2 * (bpc - 8))
		if bpc != 8 {
			roundVPsq = 1 << (shiftVPsq - 1)
		}
	} else {
		shiftVP, roundVP = 16, 32768
		shiftVPsq, roundVPsq = 16, 32768
	}

	tmpMu1, tmpMu2 := a.Tmp.Mu1, a.Tmp.Mu2
	tmpRef, tmpDis, tmpRD := a.Tmp.Ref, a.Tmp.Dis, a.Tmp.RefDis

	for y := 0; y < h; y++ {
		ii := y - half

		// Vertical pass.
		for x := 0; x < w; x++ {
			var accumMu1, accumMu2 uint32
			var accumRef, accumDis, accumRD uint64
			for k := 0; k < fwidth; k++ {
				yy := mirror(ii+k, h)
				c := uint32(kernel[k])
				r := uint32(ref[yy*refStride+x])
				d := uint32(dis[yy*disStride+x])
				cr := c * r
				cd := c * d
				accumMu1 += cr
				accumMu2 += cd
				accumRef += uint64(cr) * uint64(r)
				accumDis += uint64(cd) * uint64(d)
				accumRD += uint64(cr) * uint64(d)
			}
			tmpMu1[x] = uint16((uint64(accumMu1) + roundVP) >> shiftVP)
			tmpMu2[x] = uint16((uint64(accumMu2) + roundVP) >> shiftVP)
			tmpRef[x] = uint32((accumRef + roundVPsq) >> shiftVPsq)
			tmpDis[x] = uint32((accumDis + roundVPsq) >> shiftVPsq)
			tmpRD[x] = uint32((accumRD + roundVPsq) >> shiftVPsq)
		}

		// Horizontal pass.
		for x := 0; x < w; x++ {
			jj := x - half
			var accumMu1, accumMu2 uint32
			var accumRef, accumDis, accumRD uint64
			for k := 0; k < fwidth; k++ {
				xx := mirror(jj+k, w)
				c := uint32(kernel[k])
				accumMu1 += c * uint32(tmpMu1[xx])
				accumMu2 += c * uint32(tmpMu2[xx])
				accumRef += uint64(c) * uint64(tmpRef[xx])
				accumDis += uint64(c) * uint64(tmpDis[xx])
				accumRD += uint64(c) * uint64(tmpRD[xx])
			}
			idx := y*a.Stride + x
			a.Mu1_32[idx] = accumMu1
			a.Mu2_32[idx] = accumMu2
			a.RefSq[idx] = uint32((accumRef + 32768) >> 16)
			a.DisSq[idx] = uint32((accumDis + 32768) >> 16)
			a.RefDis[idx] = uint32((accumRD + 32768) >> 16)
		}
	}
}
