/*
NAME
  vif.go

DESCRIPTION
  vif.go provides Extractor, the orchestrator that drives the four-scale
  vif pipeline over one frame pair: ReduceFilter to build each scale's
  input, StatisticFilter to compute its Q32 planes, and VifStatistic to
  reduce those planes to a (num, den) pair, emitted to a feature sink as
  four integer-vif scores.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package vif implements the integer fixed-point Visual Information
// Fidelity feature extractor: given a reference and distorted frame of
// identical dimensions, it produces the four vif_scale{0..3}_integer_score
// features consumed by a larger perceptual quality metric.
package vif

import (
	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/vif/arena"
	"github.com/ausocean/vif/logtable"
	"github.com/ausocean/vif/picture"
	"github.com/ausocean/vif/sink"
	"github.com/ausocean/vif/vifkernel"
	"github.com/ausocean/vif/vifstat"
)

// Number of spatial scales the extractor produces a score for.
const numScales = 4

// featureNames are the exact sink keys, in emission order, per the
// external feature-sink contract. Quote characters are part of the
// key.
var featureNames = [numScales]string{
	"'VMAF_feature_vif_scale0_integer_score'",
	"'VMAF_feature_vif_scale1_integer_score'",
	"'VMAF_feature_vif_scale2_integer_score'",
	"'VMAF_feature_vif_scale3_integer_score'",
}

// ErrOutOfMemory is returned by Init when the scratch arena cannot be
// allocated for the requested frame size.
var ErrOutOfMemory = errors.New("vif: could not allocate scratch arena")

// Extractor holds the process-lifetime state of one vif instance: its
// scratch arena and precomputed log table. An Extractor is created once
// per caller session via Init and torn down via Close; Extract may be
// called any number of times in between, once per frame pair, and
// executes to completion before the next call may begin (spec §5: no
// concurrent Extract calls on one instance).
type Extractor struct {
	buf *arena.Arena
	log *logtable.Table
	l   logging.Logger // optional; nil is a valid no-op logger
}

// New returns an unintialized Extractor. Call Init before Extract.
func New(l logging.Logger) *Extractor {
	return &Extractor{l: l}
}

// Init allocates the scratch arena for frames of the given width and
// height and builds the log table. bpc is accepted to match the host
// plugin's init signature but does not affect allocation size;
// only luma (plane 0) of any supported bit depth is ever processed.
func (e *Extractor) Init(bpc, w, h int) error {
	a, err := arena.New(w, h)
	if err != nil {
		return errors.Wrap(ErrOutOfMemory, err.Error())
	}
	e.buf = a
	e.log = logtable.New()
	if e.l != nil {
		e.l.Debug("vif extractor initialised", "width", w, "height", h, "bpc", bpc)
	}
	return nil
}

// Close releases the Extractor's resources. Close is safe to call on an
// Extractor that failed Init, and is idempotent.
func (e *Extractor) Close() error {
	e.buf = nil
	e.log = nil
	return nil
}

// Extract runs the four-scale vif pipeline over ref and dis, appending
// one score per scale to s under index idx, in scale order. ref and dis
// must share dimensions and bit depth; both must match the width and
// height passed to Init.
func (e *Extractor) Extract(ref, dis *picture.Frame, idx int, s sink.FeatureSink) error {
	if e.buf == nil || e.log == nil {
		return errors.New("vif: extractor not initialised")
	}
	if err := ref.Validate(); err != nil {
		return errors.Wrap(err, "vif: invalid reference frame")
	}
	if err := dis.Validate(); err != nil {
		return errors.Wrap(err, "vif: invalid distorted frame")
	}
	if ref.Width != dis.Width || ref.Height != dis.Height || ref.BitDepth != dis.BitDepth {
		return errors.New("vif: reference and distorted frames must share dimensions and bit depth")
	}

	var scores [numScales][2]float64 // [scale][num,den]

	w, h := ref.Width, ref.Height
	bpc := ref.BitDepth

	for scale := 0; scale < numScales; scale++ {
		if scale > 0 {
			if bpc == 8 && scale == 1 {
				vifkernel.Reduce(e.buf, ref.Samples8, dis.Samples8, w, h, ref.Stride, dis.Stride, 0, bpc)
			} else if scale == 1 {
				vifkernel.Reduce(e.buf, ref.Samples16, dis.Samples16, w, h, ref.Stride, dis.Stride, scale-1, bpc)
			} else {
				vifkernel.Reduce(e.buf, e.buf.Ref, e.buf.Dis, w, h, e.buf.Stride, e.buf.Stride, scale-1, bpc)
			}
			w, h = w/2, h/2
		}

		var num, den float64
		if scale == 0 {
			if bpc == 8 {
				vifkernel.Statistic(e.buf, ref.Samples8, dis.Samples8, w, h, ref.Stride, dis.Stride, scale, bpc)
			} else {
				vifkernel.Statistic(e.buf, ref.Samples16, dis.Samples16, w, h, ref.Stride, dis.Stride, scale, bpc)
			}
		} else {
			vifkernel.Statistic(e.buf, e.buf.Ref, e.buf.Dis, w, h, e.buf.Stride, e.buf.Stride, scale, bpc)
		}

		num, den = vifstat.Reduce(vifstat.Planes{
			Mu1_32: e.buf.Mu1_32, Mu2_32: e.buf.Mu2_32,
			RefSq: e.buf.RefSq, DisSq: e.buf.DisSq, RefDis: e.buf.RefDis,
			Stride: e.buf.Stride,
		}, w, h, e.log)

		scores[scale] = [2]float64{num, den}
	}

	var appendErr error
	for scale := 0; scale < numScales; scale++ {
		num, den := scores[scale][0], scores[scale][1]
		if err := s.Append(featureNames[scale], idx, num/den); err != nil {
			appendErr = errors.Wrapf(err, "vif: could not append %s", featureNames[scale])
		}
	}
	return appendErr
}
