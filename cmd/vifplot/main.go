/*
DESCRIPTION
  vifplot renders two diagnostic PNGs: the approximation error of the
  vif log table against math.Log2, and a bar chart of the four
  per-scale scores for a given reference/distorted image pair.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/vif/logtable"
	"github.com/ausocean/vif/picture"
	"github.com/ausocean/vif/sink"
	"github.com/ausocean/vif/vif"
)

func main() {
	var out string

	root := &cobra.Command{
		Use:   "vifplot <reference> <distorted>",
		Short: "Plot the vif log-table approximation error and per-scale scores",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := plotLogTableError(out + "-logtable.png"); err != nil {
				return err
			}
			return plotScores(args[0], args[1], out+"-scores.png")
		},
	}
	root.Flags().StringVar(&out, "out", "vif", "output file prefix")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// plotLogTableError draws LogTable[i]/2048 - log2(i) across the table's
// valid domain, letting a reviewer eyeball the fixed-point
// approximation's error against the true function.
func plotLogTableError(path string) error {
	table := logtable.New()

	pts := make(plotter.XYs, 0, logtable.Size-logtable.MinIndex)
	for i := logtable.MinIndex; i < logtable.Size; i += 8 {
		approx := float64(table[i]) / logtable.Scale
		exact := math.Log2(float64(i))
		pts = append(pts, plotter.XY{X: float64(i), Y: approx - exact})
	}

	p := plot.New()
	p.Title.Text = "vif log table approximation error"
	p.X.Label.Text = "i"
	p.Y.Label.Text = "log_values[i]/2048 - log2(i)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// plotScores runs the extractor over refPath/disPath and draws a bar
// chart of the four resulting scores.
func plotScores(refPath, disPath, path string) error {
	ref, err := picture.LoadGray(refPath)
	if err != nil {
		return err
	}
	dis, err := picture.LoadGray(disPath)
	if err != nil {
		return err
	}

	e := vif.New(nil)
	if err := e.Init(ref.BitDepth, ref.Width, ref.Height); err != nil {
		return err
	}
	defer e.Close()

	s := sink.NewMapSink()
	if err := e.Extract(ref, dis, 0, s); err != nil {
		return err
	}

	names := [4]string{
		"'VMAF_feature_vif_scale0_integer_score'",
		"'VMAF_feature_vif_scale1_integer_score'",
		"'VMAF_feature_vif_scale2_integer_score'",
		"'VMAF_feature_vif_scale3_integer_score'",
	}
	values := make(plotter.Values, len(names))
	for i, name := range names {
		v, _ := s.Get(name, 0)
		values[i] = v
	}

	p := plot.New()
	p.Title.Text = "vif per-scale scores"
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX("scale0", "scale1", "scale2", "scale3")

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
