package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewCompareCmd creates and returns the compare subcommand for the rsutil CLI.
// It compares two files by size and, optionally, MD5 hash.
func NewCompareCmd() *cobra.Command {
	var (
		sizeOnly bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "compare FILE_A FILE_B",
		Short: "Compare two files by size and MD5 hash",
		Long: `Compare two files for equality.

File sizes are checked first; files of different sizes are never equal and
their content is not read. Matching sizes are then confirmed with an MD5
digest of each file unless --size-only is given. Exits with status 1 when
the files differ or cannot be read.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runCompare(args[0], args[1], sizeOnly, verbose)
		},
	}

	cmd.Flags().BoolVar(&sizeOnly, "size-only", false, "Skip hashing and compare by size alone")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runCompare(fileA, fileB string, sizeOnly, verbose bool) {
	ops := newOps(verbose)

	if ops.FileCompare(fileA, fileB, !sizeOnly) {
		fmt.Printf("Files are identical: %s %s\n", fileA, fileB)
		return
	}
	fmt.Printf("Files differ: %s %s\n", fileA, fileB)
	os.Exit(1)
}
