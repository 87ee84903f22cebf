/*
NAME
  frame.go

DESCRIPTION
  frame.go defines Frame, an immutable view of a single luma plane used
  as input to the vif feature extractor.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package picture provides Frame, the minimal luma-plane view consumed by
// the vif feature extractor, and helpers for loading one from an image
// file on disk.
package picture

import "github.com/pkg/errors"

// Frame is an immutable view onto a single luma plane. Samples are 8-bit
// unsigned when BitDepth is 8, otherwise 16-bit unsigned with valid range
// [0, 2^BitDepth).
//
// Frame never owns its backing storage beyond the call that created it;
// callers must not mutate Samples8/Samples16 while a Frame is in use by
// an Extractor.
type Frame struct {
	Width, Height int
	Stride        int // row stride in samples, not bytes
	BitDepth      int // 8, 10, 12, ..., 16

	// Exactly one of Samples8 / Samples16 is populated, selected by
	// BitDepth == 8.
	Samples8  []uint8
	Samples16 []uint16
}

// Validate checks that a Frame's dimensions and backing storage are
// self-consistent. It does not validate sample values against BitDepth;
// out-of-range samples are the caller's responsibility per spec.
func (f *Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return errors.Errorf("picture: invalid dimensions %dx%d", f.Width, f.Height)
	}
	if f.Stride < f.Width {
		return errors.Errorf("picture: stride %d smaller than width %d", f.Stride, f.Width)
	}
	if f.BitDepth == 8 {
		if len(f.Samples8) < f.Stride*(f.Height-1)+f.Width {
			return errors.New("picture: samples8 too small for stride/height")
		}
		return nil
	}
	if f.BitDepth < 8 || f.BitDepth > 16 {
		return errors.Errorf("picture: unsupported bit depth %d", f.BitDepth)
	}
	if len(f.Samples16) < f.Stride*(f.Height-1)+f.Width {
		return errors.New("picture: samples16 too small for stride/height")
	}
	return nil
}

// At8 returns the sample at (x, y) for an 8-bit Frame.
func (f *Frame) At8(x, y int) uint8 { return f.Samples8[y*f.Stride+x] }

// At16 returns the sample at (x, y) for a >8-bit Frame.
func (f *Frame) At16(x, y int) uint16 { return f.Samples16[y*f.Stride+x] }
