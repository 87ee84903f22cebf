/*
NAME
  vifconfig.go

DESCRIPTION
  vifconfig.go holds the small set of process-wide tunables that sit
  outside the vif core's scope per spec: a bit depth setting, and
  logging verbosity/destination for command-line tooling built on top
  of the core.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package vifconfig provides the process-wide configuration consumed by
// the vifscore command-line tool. The vif core package itself takes
// explicit constructor arguments and never reads a Config directly.
package vifconfig

import (
	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"
)

// Config holds tunables for a vifscore invocation.
type Config struct {
	// BitDepth is a bit depth setting that Validate requires to be in
	// [8, 16]. It is not applied to loaded frames: picture.LoadGray
	// always returns 8-bit frames.
	BitDepth int

	// LogPath is the rotating log file destination. Empty disables
	// file logging; output still goes to stdout.
	LogPath string

	// LogVerbosity is the minimum logging.Level that is emitted.
	LogVerbosity int8

	// LogMaxSizeMB, LogMaxBackups and LogMaxAgeDays configure the
	// lumberjack rotation policy when LogPath is set.
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// Default returns a Config with sensible defaults for ad hoc CLI use:
// 8-bit frames, debug verbosity, no file logging.
func Default() Config {
	return Config{
		BitDepth:      8,
		LogVerbosity:  int8(logging.Debug),
		LogMaxSizeMB:  50,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
	}
}

// Validate checks that c's fields are self-consistent.
func (c Config) Validate() error {
	if c.BitDepth < 8 || c.BitDepth > 16 {
		return errors.Errorf("vifconfig: unsupported bit depth %d", c.BitDepth)
	}
	if c.LogPath != "" {
		if c.LogMaxSizeMB <= 0 {
			return errors.New("vifconfig: LogMaxSizeMB must be positive when LogPath is set")
		}
	}
	return nil
}
