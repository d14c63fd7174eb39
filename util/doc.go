// Package util provides general-purpose file and directory helpers for
// riverscapes tooling.
//
// The package covers the small set of filesystem chores that the tools share:
//
// Guarded Directory Creation:
//   - SafeMkdirAll and SafeMkdirAllAbs create directory chains recursively
//   - A shallow/short-path heuristic rejects root-level or near-root targets
//   - Collisions with existing files are reported as a distinct error
//
// File Comparison:
//   - FileCompare checks two files for equality, size first, then MD5
//   - Comparison is advisory: I/O failures degrade to "not equal"
//
// Best-Effort Removal:
//   - SafeRemoveFile and SafeRemoveDir never fail the caller; problems are
//     logged and swallowed
//
// Small Helpers:
//   - Batch splits slices into fixed-size chunks
//   - ParseMetadata parses "key=value,key2=value2" strings
//
// All helpers hang off the Ops type, which carries an injected *slog.Logger so
// error paths stay observable in tests. The zero Ops value works and logs
// nowhere.
package util
