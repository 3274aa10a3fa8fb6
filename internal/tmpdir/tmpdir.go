// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Karpov

package tmpdir

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/akarpov/pipekit/internal/logger"
)

const (
	// FallbackRoot is the well-known directory used when a candidate root
	// fails validation. It is created but never write-probed.
	FallbackRoot = "/var/tmp/pipekit"

	// markerName is the disposable file created inside a candidate root to
	// prove it is writable.
	markerName = ".can_touch"

	dirPerm = 0o755
)

// envCandidates holds the conventional temp-directory environment variables,
// in the fixed priority order they are consulted.
type envCandidates struct {
	TmpDir string `env:"TMPDIR"`
	Temp   string `env:"TEMP"`
	Tmp    string `env:"TMP"`
}

// Manager resolves and caches one validated temporary-directory root. The
// zero root means "not resolved yet"; a resolved root stays until Reset. All
// methods are safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	root     string
	fallback string
	logger   *logger.Logger
}

// NewManager returns a Manager with no resolved root.
func NewManager(logger *logger.Logger) *Manager {
	return &Manager{fallback: FallbackRoot, logger: logger}
}

// Set resolves and caches the root directory. The candidate is the first
// non-empty of: explicit, the TMPDIR/TEMP/TMP environment variables, the
// currently cached root, a freshly generated unique path under the
// platform temp directory.
//
// A candidate must exist (it is created if absent), be a directory, and
// accept a marker file. Any failure is logged at warning level and masked by
// falling back to FallbackRoot, which is trusted without a write probe.
// Whichever root wins is created before Set returns; Set never fails.
func (m *Manager) Set(explicit string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(explicit)
}

// set implements Set; callers hold m.mu.
func (m *Manager) set(explicit string) {
	candidate := m.pick(explicit)

	if err := validate(candidate); err != nil {
		m.logger.Warn().
			Err(err).
			Str("candidate", candidate).
			Str("fallback", m.fallback).
			Msg("temporary directory root cannot be used")
		m.root = m.fallback
	} else {
		m.root = candidate
	}

	// The resolved root must exist even on the fallback branch.
	_ = os.MkdirAll(m.root, dirPerm)

	m.logger.Debug().Str("root", m.root).Msg("temporary directory root set")
}

// pick returns the highest-priority non-empty candidate; callers hold m.mu.
func (m *Manager) pick(explicit string) string {
	var vars envCandidates
	_ = env.Parse(&vars)

	for _, candidate := range []string{explicit, vars.TmpDir, vars.Temp, vars.Tmp, m.root} {
		if candidate != "" {
			return candidate
		}
	}
	return filepath.Join(os.TempDir(), "pipekit-"+uuid.NewString())
}

// validate reports whether path is a usable root: an existing (or creatable)
// directory that accepts a marker file.
func validate(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, dirPerm); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error inspecting directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}

	marker, err := os.Create(filepath.Join(path, markerName))
	if err != nil {
		return fmt.Errorf("error writing probe file: %w", err)
	}
	return marker.Close()
}

// Root returns the cached root path, resolving it first via Set with no
// explicit candidate when unset. The caller manages any subdirectory
// lifecycle itself.
func (m *Manager) Root() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.root == "" {
		m.set("")
	}
	return m.root
}

// Scoped returns a handle to a fresh unique subdirectory under the root,
// resolving the root first when unset. Close the handle to remove the
// subdirectory; defer it right after the error check.
func (m *Manager) Scoped() (*Dir, error) {
	root := m.Root()

	path, err := os.MkdirTemp(root, "pipekit-")
	if err != nil {
		return nil, fmt.Errorf("error creating scoped directory in %s: %w", root, err)
	}
	return &Dir{path: path}, nil
}

// Reset clears the cached root so the next access resolves it again.
// Directories already on disk are left alone.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.root = ""
}

// Dir is a scoped handle to one temporary subdirectory. Closing it removes
// the subdirectory and everything beneath it; Close is idempotent, so a
// deferred Close is safe on every exit path.
type Dir struct {
	path string
	once sync.Once
}

// Path returns the subdirectory path.
func (d *Dir) Path() string {
	return d.path
}

// Close removes the subdirectory recursively. Only the first call does the
// removal; later calls return nil.
func (d *Dir) Close() error {
	var err error
	d.once.Do(func() {
		err = os.RemoveAll(d.path)
	})
	return err
}
