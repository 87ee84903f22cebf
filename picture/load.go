/*
NAME
  load.go

DESCRIPTION
  load.go provides LoadGray, a helper that decodes an image file from disk
  into a Frame using gocv, standing in for the frame-delivery container
  that is out of scope for the vif core.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package picture

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// LoadGray decodes the image at path and returns it as an 8-bit Frame
// containing only the luma (gray) channel. Only 8-bit sources are
// supported; higher bit-depth frames must be constructed directly.
func LoadGray(path string) (*Frame, error) {
	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	if mat.Empty() {
		return nil, errors.Errorf("picture: could not read image %q", path)
	}
	defer mat.Close()

	w, h := mat.Cols(), mat.Rows()
	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "picture: could not access image data")
	}

	samples := make([]uint8, w*h)
	stride := int(mat.Step())
	for y := 0; y < h; y++ {
		copy(samples[y*w:(y+1)*w], data[y*stride:y*stride+w])
	}

	return &Frame{
		Width:    w,
		Height:   h,
		Stride:   w,
		BitDepth: 8,
		Samples8: samples,
	}, nil
}
