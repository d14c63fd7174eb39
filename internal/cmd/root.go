package cmd

import (
	"github.com/spf13/cobra"

	"github.com/riverscapes/rsutil/version"
)

// NewRootCmd creates and returns the root cobra command for the rsutil CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rsutil",
		Short: "rsutil - file and directory utilities for riverscapes tooling",
		Long: `rsutil bundles the small filesystem chores shared by riverscapes tooling.

It creates directory chains with a guard against accidental root-level targets,
compares files by size and content hash, and computes the ETag values S3
reports for single-part and multipart uploads so local files can be checked
against remote objects without re-uploading them.

Use subcommands to perform different operations:
  - mkdir: Create a directory chain after a shallow-path safety check
  - compare: Compare two files by size and MD5 hash
  - etag: Compute or verify S3-style ETags for local files
  - seed: Generate test files for pinning ETag expectations`,
		Version: version.GetFullVersion(),
	}

	groupFilesystem := "filesystem"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFilesystem,
		Title: "Filesystem Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	mkdirCmd := NewMkdirCmd()
	compareCmd := NewCompareCmd()
	etagCmd := NewEtagCmd()
	seedCmd := NewSeedCmd()

	mkdirCmd.GroupID = groupFilesystem
	compareCmd.GroupID = groupFilesystem
	etagCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(etagCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
