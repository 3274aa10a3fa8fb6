// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Karpov

package config

import "github.com/rs/zerolog"

// Verbosity is the ordered log-chattiness level requested by the caller.
// The zero value is "unset" and is normalized to Normal during Reset.
type Verbosity int

// Verbosity levels, in increasing order of chattiness.
const (
	Quiet Verbosity = iota + 1
	Normal
	Verbose
	VeryVerbose
)

// Level maps the verbosity to the zerolog level applied process-wide:
// Verbose and above enable Debug, Normal enables Info, anything quieter
// only lets warnings through.
func (v Verbosity) Level() zerolog.Level {
	switch {
	case v >= Verbose:
		return zerolog.DebugLevel
	case v >= Normal:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	case VeryVerbose:
		return "very-verbose"
	default:
		return "unset"
	}
}
