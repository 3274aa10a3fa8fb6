// Package config resolves the layered pipekit configuration into a
// namespaced key-value view.
//
// Values are looked up across an ordered list of sources; the first source
// that defines a key wins:
//  1. Explicit overrides supplied by the caller
//  2. OS environment variables (NAMESPACE_key)
//  3. Discovered profile configuration files (INI), in discovery order
//
// File locations are discovered per profile: an explicit file named by the
// PIPEKIT_CONFIG environment variable, then <config dir>/<profile> where the
// config dir is PIPEKIT_CONFIG_DIR or ~/.pipekit, then <cwd>/.pipekit. Only
// locations that exist at reset time participate in lookups.
//
// The main entry point is [New]; an existing [Resolver] can be re-pointed at
// a different profile or override set with [Resolver.Reset].
package config
