// Package cmd provides the command-line interface implementation for rsutil.
//
// This package contains all the subcommand implementations for the rsutil CLI
// tool. It uses the Cobra library for command structure and Fang for beautiful
// styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - mkdir: Guarded recursive directory creation
//   - compare: File comparison by size and MD5 hash
//   - etag: S3-style ETag computation and verification for local files
//   - seed: Test file generation for pinning ETag expectations
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command coordinates all
// subcommands and assigns them to command groups.
//
// The package leverages the util package for filesystem operations and the
// etag package for checksum calculations.
package cmd
