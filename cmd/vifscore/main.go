/*
DESCRIPTION
  vifscore is a command-line driver that runs the vif feature extractor
  over a single reference/distorted image pair and prints the four
  per-scale integer-vif scores.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// vifscore is a small command-line harness around the vif package; it
// is not the host plugin surface described as out of scope in the vif
// core's design, only a local test driver for it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/vif/picture"
	"github.com/ausocean/vif/sink"
	"github.com/ausocean/vif/vif"
	"github.com/ausocean/vif/vifconfig"
)

func main() {
	cfg := vifconfig.Default()

	root := &cobra.Command{
		Use:   "vifscore <reference> <distorted>",
		Short: "Compute the four integer-vif per-scale scores between two images",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], cfg)
		},
	}

	root.Flags().StringVar(&cfg.LogPath, "log-path", cfg.LogPath, "rotating log file; empty disables file logging")
	root.Flags().IntVar(&cfg.BitDepth, "bit-depth", cfg.BitDepth, "bit depth setting, checked to be in [8, 16]; loaded frames are always 8-bit")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(refPath, disPath string, cfg vifconfig.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New()

	var w io.Writer = os.Stdout
	if cfg.LogPath != "" {
		fileLog := &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
		}
		defer fileLog.Close()
		w = io.MultiWriter(os.Stdout, fileLog)
	}
	l := logging.New(cfg.LogVerbosity, w, true)
	l.Info("starting vifscore run", "run", runID.String(), "ref", refPath, "dis", disPath)

	ref, err := picture.LoadGray(refPath)
	if err != nil {
		return err
	}
	dis, err := picture.LoadGray(disPath)
	if err != nil {
		return err
	}

	e := vif.New(l)
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
	for i, name := range names {
		v, _ := s.Get(name, 0)
		fmt.Printf("vif_scale%d_integer_score = %v\n", i, v)
	}
	return nil
}
