/*
NAME
  arena.go

DESCRIPTION
  arena.go provides Arena, the process-lifetime scratch storage built
  at construction time as the fixed set of typed, non-overlapping views
  the vif pipeline needs for one frame: four 16-bit intermediate planes
  (ref, dis, mu1, mu2), five 32-bit planes, and seven single-row tiles
  used between the vertical and horizontal passes of the separable
  filters. Every plane holds Stride*Height samples.

  Arena owns the backing storage; every view is a separately allocated
  Go slice. The views are not carved from one contiguous block, and
  their alignment is whatever the Go runtime gives each allocation. Views are non-owning and only meaningful between calls
  that (re)populate them; there is no reference counting or lifetime
  tracking beyond "don't read a view nobody has written this frame".

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package arena provides the single typed scratch allocation the vif
// pipeline partitions its intermediate buffers from.
package arena

import "github.com/pkg/errors"

// simdLine is the alignment, in bytes, assumed for the widest practical
// SIMD load on the target platform. Row stride is padded up to a
// multiple of simdLine / 4 samples so that a vectorized implementation
// could load whole rows without straddling cache lines.
const simdLine = 64

// RowTiles holds the seven single-row buffers used to hand off values
// from a filter's vertical pass to its horizontal pass.
type RowTiles struct {
	Mu1, Mu2          []uint16 // vertical-pass mean tiles (StatisticFilter)
	Ref, Dis, RefDis  []uint32 // vertical-pass square/cross tiles (StatisticFilter)
	RefConvol, DisConvol []uint16 // vertical-pass blur tiles (ReduceFilter)
}

// Arena is the scratch storage for a single extractor instance, made at
// construction as the separately allocated views described above.
// Stride is the shared per-row sample capacity (>= Width) used to index
// every view uniformly, matching the data model of spec §3.
type Arena struct {
	Width, Height int
	Stride        int // per-row capacity, in samples, for every view

	// Four 16-bit regions, each Stride*Height samples.
	Ref, Dis, Mu1, Mu2 []uint16

	// Five full-frame 32-bit regions.
	Mu1_32, Mu2_32, RefSq, DisSq, RefDis []uint32

	Tmp RowTiles
}

// New builds an Arena sized for one frame of the given width and height.
// The arena is reused across scales within a single Extract call; the
// caller is responsible for only ever requesting one frame size across
// the Arena's lifetime, matching spec §5's "exactly one scoped
// acquisition ... per init" discipline.
func New(width, height int) (*Arena, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("arena: invalid dimensions %dx%d", width, height)
	}

	stride := alignUp(width, simdLine/4)
	planeLen := stride * height

	a := &Arena{
		Width:  width,
		Height: height,
		Stride: stride,

		Ref: make([]uint16, planeLen),
		Dis: make([]uint16, planeLen),
		Mu1: make([]uint16, planeLen),
		Mu2: make([]uint16, planeLen),

		Mu1_32: make([]uint32, planeLen),
		Mu2_32: make([]uint32, planeLen),
		RefSq:  make([]uint32, planeLen),
		DisSq:  make([]uint32, planeLen),
		RefDis: make([]uint32, planeLen),

		Tmp: RowTiles{
			Mu1:       make([]uint16, stride),
			Mu2:       make([]uint16, stride),
			Ref:       make([]uint32, stride),
			Dis:       make([]uint32, stride),
			RefDis:    make([]uint32, stride),
			RefConvol: make([]uint16, stride),
			DisConvol: make([]uint16, stride),
		},
	}
	return a, nil
}

// Decimate copies every other sample of src (a full-resolution plane
// laid out with the arena's stride) into dst at half resolution, with
// no averaging: the prior Gaussian blur already low-passed the signal,
// so plain subsampling is correct (spec §4.4, §9 design note 3).
func (a *Arena) Decimate(src, dst []uint16, w, h int) {
	for i := 0; i < h/2; i++ {
		srcRow := src[(i*2)*a.Stride:]
		dstRow := dst[i*a.Stride:]
		for j := 0; j < w/2; j++ {
			dstRow[j] = srcRow[j*2]
		}
	}
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}
