// Package tmpdir manages the single temporary-directory root shared by all
// pipekit components.
//
// The root is resolved lazily on first use and cached until Reset: an
// explicit path wins, then the TMPDIR, TEMP and TMP environment variables in
// that order, then the previously cached root, then a freshly generated
// unique path. A candidate that cannot be created, is not a directory, or
// refuses a write probe is logged and replaced by the fixed fallback root,
// so resolution itself never fails.
//
// Callers that need an isolated workspace take a scoped [Dir] handle and
// close it when done; closing removes the subdirectory recursively. The root
// itself is never deleted by this package.
package tmpdir
