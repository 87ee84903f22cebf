/*
NAME
  reduce.go

DESCRIPTION
  reduce.go implements ReduceFilter: a separable Gaussian blur followed
  by decimation-by-2, used to build the input to scales 1..3 of the vif
  pyramid from the previous scale's ref/dis planes.

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

// Reduce blurs ref/dis at source scale s (0, 1, or 2) with
// FilterBank[s+1] and decimates the result by 2 into a.Ref/a.Dis. w and
// h are the dimensions of ref/dis; bpc matters only when s == 0, where
// the vertical pass shift is taken directly from the source bit depth
// rather than fixed at 16, matching spec §4.1/§9's bit-depth
// specialization note.
func Reduce[S Sample](a *arena.Arena, ref, dis []S, w, h, refStride, disStride, s, bpc int) {
	kernel := FilterBank[s+1]
	fwidth := len(kernel)
	half := fwidth / 2

	var shiftVP, roundVP uint32
	if s == 0 {
		shiftVP = uint32(bpc)
		roundVP = 1 << (bpc - 1)
	} else {
		shiftVP = 16
		roundVP = 32768
	}

	tmpRef := a.Tmp.RefConvol
	tmpDis := a.Tmp.DisConvol

	for y := 0; y < h; y++ {
		ii := y - half

		// Vertical pass.
		for x := 0; x < w; x++ {
			var accumRef, accumDis uint32
			for k := 0; k < fwidth; k++ {
				yy := mirror(ii+k, h)
				c := uint32(kernel[k])
				accumRef += c * uint32(ref[yy*refStride+x])
				accumDis += c * uint32(dis[yy*disStride+x])
			}
			tmpRef[x] = uint16((accumRef + roundVP) >> shiftVP)
			tmpDis[x] = uint16((accumDis + roundVP) >> shiftVP)
		}

		// Horizontal pass.
		for x := 0; x < w; x++ {
			jj := x - half
			var accumRef, accumDis uint32
			for k := 0; k < fwidth; k++ {
				xx := mirror(jj+k, w)
				c := uint32(kernel[k])
				accumRef += c * uint32(tmpRef[xx])
				accumDis += c * uint32(tmpDis[xx])
			}
			a.Mu1[y*a.Stride+x] = uint16((accumRef + 32768) >> 16)
			a.Mu2[y*a.Stride+x] = uint16((accumDis + 32768) >> 16)
		}
	}

	a.Decimate(a.Mu1, a.Ref, w, h)
	a.Decimate(a.Mu2, a.Dis, w, h)
}
