// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Karpov

package tmpdir

import (
	"sync"

	"github.com/akarpov/pipekit/internal/logger"
)

var (
	defaultOnce    sync.Once
	defaultManager *Manager
)

// Default returns the process-wide Manager shared by code that does not
// carry its own. It is built on first use.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultManager = NewManager(logger.New("tmpdir"))
	})
	return defaultManager
}

// Set resolves the process-wide root; see [Manager.Set].
func Set(explicit string) {
	Default().Set(explicit)
}

// Root returns the process-wide root path; see [Manager.Root].
func Root() string {
	return Default().Root()
}

// Scoped returns a fresh scoped subdirectory handle under the process-wide
// root; see [Manager.Scoped].
func Scoped() (*Dir, error) {
	return Default().Scoped()
}

// Reset clears the process-wide root; see [Manager.Reset].
func Reset() {
	Default().Reset()
}
