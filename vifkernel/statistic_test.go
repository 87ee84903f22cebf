/*
NAME
  statistic_test.go

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

	"gonum.org/v1/gonum/mat"

	"github.com/ausocean/vif/arena"
)

// TestStatisticConstant8Bit checks the scale-0, 8-bit shift schedule
// against a hand-derived closed form for a constant plane: the
// Gaussian blur of a flat field reproduces the field, so Mu1_32 should
// equal c<<24 and the Q32 second-moment planes should equal c^2<<16,
// independent of which of the four kernels is used.
func TestStatisticConstant8Bit(t *testing.T) {
	const w, h, c = 16, 16, 128

	a, err := arena.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	plane := make([]uint8, w*h)
	for i := range plane {
		plane[i] = c
	}

	Statistic[uint8](a, plane, plane, w, h, w, w, 0, 8)

	wantMu := uint32(c) << 24
	wantSq := uint32(c*c) << 16
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*a.Stride + x
			if a.Mu1_32[idx] != wantMu {
				t.Fatalf("Mu1_32[%d] = %d, want %d", idx, a.Mu1_32[idx], wantMu)
			}
			if a.Mu2_32[idx] != wantMu {
				t.Fatalf("Mu2_32[%d] = %d, want %d", idx, a.Mu2_32[idx], wantMu)
			}
			if a.RefSq[idx] != wantSq {
				t.Fatalf("RefSq[%d] = %d, want %d", idx, a.RefSq[idx], wantSq)
			}
			if a.DisSq[idx] != wantSq {
				t.Fatalf("DisSq[%d] = %d, want %d", idx, a.DisSq[idx], wantSq)
			}
			if a.RefDis[idx] != wantSq {
				t.Fatalf("RefDis[%d] = %d, want %d", idx, a.RefDis[idx], wantSq)
			}
		}
	}
}

// TestStatisticConstant16BitDomain checks the scale>0 shift schedule
// (fixed shift-by-16 regardless of bpc) against the same closed form,
// scaled for the 16-bit intermediate domain: Mu1_32 = c<<16,
// RefSq = c^2.
func TestStatisticConstant16BitDomain(t *testing.T) {
	const w, h, c = 16, 16, 5000

	a, err := arena.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	plane := make([]uint16, w*h)
	for i := range plane {
		plane[i] = c
	}

	Statistic[uint16](a, plane, plane, w, h, w, w, 1, 16)

	wantMu := uint32(c) << 16
	wantSq := uint32(c * c)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*a.Stride + x
			if a.Mu1_32[idx] != wantMu {
				t.Fatalf("Mu1_32[%d] = %d, want %d", idx, a.Mu1_32[idx], wantMu)
			}
			if a.RefSq[idx] != wantSq {
				t.Fatalf("RefSq[%d] = %d, want %d", idx, a.RefSq[idx], wantSq)
			}
		}
	}
}

// TestKernelOuterProductSeparable cross-checks, via gonum/mat, that the
// 2-D kernel implied by separable application (the outer product of a
// 1-D kernel with itself) sums to (2^16)^2 and is symmetric under
// transpose — properties the vertical-then-horizontal pass relies on
// to stay within the documented Q-format without per-axis rescaling.
func TestKernelOuterProductSeparable(t *testing.T) {
	for scale, kernel := range FilterBank {
		n := len(kernel)
		v := make([]float64, n)
		for i, c := range kernel {
			v[i] = float64(c)
		}
		col := mat.NewVecDense(n, v)

		var outer mat.Dense
		outer.Outer(1, col, col)

		sum := mat.Sum(&outer)
		want := float64(uint64(1) << 32)
		if sum != want {
			t.Errorf("scale %d: outer-product sum = %v, want %v", scale, sum, want)
		}

		var tr mat.Dense
		tr.CloneFrom(outer.T())
		if !mat.EqualApprox(&outer, &tr, 1e-9) {
			t.Errorf("scale %d: outer product not symmetric", scale)
		}
	}
}
