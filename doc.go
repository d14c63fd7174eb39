// Package main provides the rsutil command-line interface.
//
// rsutil bundles the small filesystem chores shared by riverscapes tooling:
// guarded recursive directory creation, file comparison by size and content
// hash, and S3-style ETag computation for checking local files against
// uploaded objects.
//
// The main binary supports multiple subcommands:
//   - mkdir: Create a directory chain after a shallow-path safety check
//   - compare: Compare two files by size and MD5 hash
//   - etag: Compute or verify S3-style ETags for local files
//   - seed: Generate test files for pinning ETag expectations
package main
