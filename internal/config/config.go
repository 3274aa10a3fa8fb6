// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Karpov

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/rs/zerolog"

	"github.com/akarpov/pipekit/internal/logger"
	"github.com/akarpov/pipekit/internal/tmpdir"
)

const (
	// DefaultProfile is the reserved profile name loaded when no other
	// profile is requested. It is the only profile allowed to have zero
	// existing configuration files.
	DefaultProfile = "default"

	// HomeDirName is the per-user configuration directory under $HOME.
	HomeDirName = ".pipekit"

	// LocalFileName is the configuration file looked up in the current
	// working directory, lowest in discovery priority.
	LocalFileName = ".pipekit"

	// PluginNamespace and PluginModulesKey locate the plugin module list.
	PluginNamespace  = "PLUGINS"
	PluginModulesKey = "modules"
)

// Options carries the caller-supplied inputs for [New] and [Resolver.Reset].
// Empty fields fall back to environment variables and built-in defaults.
type Options struct {
	// Profile selects the named configuration variant. Falls back to
	// PIPEKIT_PROFILE, then to DefaultProfile.
	Profile string

	// HomeDir is the parent directory of per-profile configuration files.
	// Falls back to <user home>/.pipekit. PIPEKIT_CONFIG_DIR, when set,
	// takes priority over HomeDir during discovery.
	HomeDir string

	// Overrides take precedence over every other source, keyed by
	// namespace and then by key.
	Overrides map[string]map[string]string

	// TmpDir, when non-empty, is forwarded to the process-wide temporary
	// directory manager.
	TmpDir string

	// Verbosity controls the global log threshold. The zero value means
	// Normal.
	Verbosity Verbosity
}

// Resolver is the merged, precedence-ranked configuration view. Sources are
// resolved once per Reset and immutable in between.
type Resolver struct {
	profile   string
	homeDir   string
	verbosity Verbosity
	sources   []Source
	logger    *logger.Logger
}

// New builds a Resolver from opts. See [Resolver.Reset] for the resolution
// and precedence rules and for the error conditions.
func New(opts Options, logger *logger.Logger) (*Resolver, error) {
	r := &Resolver{logger: logger}
	if err := r.Reset(opts); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset re-resolves the source list from opts, discarding the previous one.
//
// As side effects it sets the global zerolog level from opts.Verbosity on
// every call, and forwards opts.TmpDir to the temporary-directory manager
// when non-empty.
//
// Reset fails with a [*ProfileNotFoundError] when a non-default profile is
// requested and none of its candidate file locations exist, and with a
// wrapped parse error when a discovered configuration file cannot be read.
func (r *Resolver) Reset(opts Options) error {
	s, err := parseSettings()
	if err != nil {
		return err
	}

	merged, err := mergeOptions(opts, s)
	if err != nil {
		return err
	}

	r.verbosity = merged.Verbosity
	zerolog.SetGlobalLevel(merged.Verbosity.Level())

	if merged.TmpDir != "" {
		tmpdir.Set(merged.TmpDir)
	}

	candidates := candidatePaths(s, merged.HomeDir, merged.Profile)
	discovered := existingPaths(candidates)
	if len(discovered) == 0 && merged.Profile != DefaultProfile {
		return &ProfileNotFoundError{Profile: merged.Profile, Checked: candidates}
	}

	sources := make([]Source, 0, len(discovered)+2)
	sources = append(sources, mapSource(merged.Overrides), envSource{})
	for _, path := range discovered {
		src, err := newFileSource(path)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	r.profile = merged.Profile
	r.homeDir = merged.HomeDir
	r.sources = sources

	r.logger.Debug().
		Str("profile", r.profile).
		Strs("locations", discovered).
		Str("verbosity", r.verbosity.String()).
		Msg("configuration resolved")

	return nil
}

// mergeOptions layers defaults under the caller's options: explicit values
// win, then the environment-supplied profile, then built-in defaults.
func mergeOptions(opts Options, s settings) (Options, error) {
	merged := opts

	if err := mergo.Merge(&merged, Options{Profile: s.Profile}); err != nil {
		return merged, fmt.Errorf("error merging configs: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	defaults := Options{
		Profile:   DefaultProfile,
		HomeDir:   filepath.Join(home, HomeDirName),
		Verbosity: Normal,
	}
	if err := mergo.Merge(&merged, defaults); err != nil {
		return merged, fmt.Errorf("error merging configs: %w", err)
	}

	return merged, nil
}

// candidatePaths builds the file discovery list for profile, highest
// priority first. Existence is not checked here.
func candidatePaths(s settings, homeDir, profile string) []string {
	var candidates []string

	if s.ConfigFile != "" {
		candidates = append(candidates, s.ConfigFile)
	}

	dir := homeDir
	if s.ConfigDir != "" {
		dir = s.ConfigDir
	}
	candidates = append(candidates, filepath.Join(dir, profile))

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, LocalFileName))
	}

	return candidates
}

// existingPaths filters candidates down to the ones present on disk.
func existingPaths(candidates []string) []string {
	var existing []string
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}

// Subconfig is a read-only view scoped to a single namespace. Lookups
// against it consult the Resolver's sources in precedence order.
type Subconfig struct {
	namespace string
	sources   []Source
}

// Subconfig returns the view scoped to namespace. An unknown namespace is
// not an error; every lookup against it simply reports ok=false.
func (r *Resolver) Subconfig(namespace string) Subconfig {
	return Subconfig{namespace: namespace, sources: r.sources}
}

// Get returns the value of key within the view's namespace from the first
// source that defines it. ok is false when no source does.
func (s Subconfig) Get(key string) (string, bool) {
	for _, src := range s.sources {
		if v, ok := src.Lookup(s.namespace, key); ok {
			return v, true
		}
	}
	return "", false
}

// GetDefault returns the value of key, or def when no source defines it.
func (s Subconfig) GetDefault(key, def string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return def
}

// Verbosity returns the level recorded by the last Reset.
func (r *Resolver) Verbosity() Verbosity {
	return r.verbosity
}

// Profile returns the profile resolved by the last Reset.
func (r *Resolver) Profile() string {
	return r.profile
}

// HomeDir returns the profile-file parent directory resolved by the last
// Reset. PIPEKIT_CONFIG_DIR, when set, takes priority over it during
// discovery.
func (r *Resolver) HomeDir() string {
	return r.homeDir
}

// ConfigDict resolves every (namespace, key) pair in schema and stores the
// result under "<namespace>_<key>". Keys that no source defines are stored
// as the empty string; missing keys never produce an error.
func (r *Resolver) ConfigDict(schema map[string][]string) map[string]string {
	dict := make(map[string]string)
	for namespace, keys := range schema {
		sub := r.Subconfig(namespace)
		for _, key := range keys {
			dict[namespace+"_"+key] = sub.GetDefault(key, "")
		}
	}
	return dict
}

// PluginModules returns the plugin module list from PLUGINS.modules. An
// undefined or empty value yields an empty slice; anything else goes through
// [ParseList].
func (r *Resolver) PluginModules() []string {
	modules := r.Subconfig(PluginNamespace).GetDefault(PluginModulesKey, "")
	if modules == "" {
		return []string{}
	}
	return ParseList(modules)
}
