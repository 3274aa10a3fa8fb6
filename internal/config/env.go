// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Karpov

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// settings holds the loader's own environment inputs, as opposed to the
// generic application configuration served through the environment Source.
type settings struct {
	// Profile selects the named configuration variant when the caller did
	// not pass one explicitly.
	// Env: PIPEKIT_PROFILE
	Profile string `env:"PIPEKIT_PROFILE"`

	// ConfigFile, when set, names a single configuration file that is
	// placed first in the discovery list.
	// Env: PIPEKIT_CONFIG
	ConfigFile string `env:"PIPEKIT_CONFIG"`

	// ConfigDir, when set, replaces the home directory as the parent of
	// per-profile configuration files.
	// Env: PIPEKIT_CONFIG_DIR
	ConfigDir string `env:"PIPEKIT_CONFIG_DIR"`
}

// parseSettings populates a settings value from environment variables using
// the caarlos0/env library.
func parseSettings() (settings, error) {
	var s settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("error getting env configs: %w", err)
	}
	return s, nil
}
