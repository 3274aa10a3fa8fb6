// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Karpov

package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// Source answers namespaced key lookups for a single configuration layer.
// Implementations report ok=false for keys they do not define; the Resolver
// consults its sources in precedence order and takes the first hit.
type Source interface {
	Lookup(namespace, key string) (string, bool)
}

// mapSource serves explicit caller-supplied overrides, keyed by namespace
// and then by key. It is the highest-precedence layer.
type mapSource map[string]map[string]string

func (m mapSource) Lookup(namespace, key string) (string, bool) {
	v, ok := m[namespace][key]
	return v, ok
}

// envSource serves OS environment variables. A lookup for key "bar" in
// namespace "FOO" reads the variable "FOO_bar".
type envSource struct{}

func (envSource) Lookup(namespace, key string) (string, bool) {
	return os.LookupEnv(namespace + "_" + key)
}

// fileSource serves one discovered INI profile file. A namespace maps to an
// INI section and a key to a key within it. The file is parsed once at
// construction; lookups never touch the filesystem.
type fileSource struct {
	path string
	file *ini.File
}

func newFileSource(path string) (*fileSource, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return &fileSource{path: path, file: f}, nil
}

func (s *fileSource) Lookup(namespace, key string) (string, bool) {
	sec, err := s.file.GetSection(namespace)
	if err != nil {
		return "", false
	}
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}
