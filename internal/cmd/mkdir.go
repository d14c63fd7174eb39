package cmd

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/riverscapes/rsutil/util"
)

// newOps builds a util.Ops with a logger writing to stderr. Verbose enables
// debug events; the logger is handed to util explicitly rather than pulled
// from any global state.
func newOps(verbose bool) *util.Ops {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return util.NewOps(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// NewMkdirCmd creates and returns the mkdir subcommand for the rsutil CLI.
// It creates directory chains after the shallow-path safety check.
func NewMkdirCmd() *cobra.Command {
	var (
		resolve bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "mkdir PATH",
		Short: "Create a directory chain after a shallow-path safety check",
		Long: `Create a directory and all missing parents.

Paths shorter than five characters or with two or fewer components are
rejected to guard against accidental creation of root-level directories.
By default the argument is checked exactly as given; with --abs it is
resolved to an absolute path first, so short relative names like "logs"
pass when the working directory is deep enough.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runMkdir(args[0], resolve, verbose)
		},
	}

	cmd.Flags().BoolVar(&resolve, "abs", false, "Resolve the path to absolute form before validating")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runMkdir(path string, resolve, verbose bool) {
	ops := newOps(verbose)

	var err error
	if resolve {
		err = ops.SafeMkdirAllAbs(path)
	} else {
		err = ops.SafeMkdirAll(path)
	}

	switch {
	case errors.Is(err, util.ErrInvalidPath):
		log.Fatalf("Refusing to create %s: path is too short or too shallow", path)
	case errors.Is(err, util.ErrNameCollision):
		log.Fatalf("Refusing to create %s: a file already exists with that name", path)
	case err != nil:
		log.Fatalf("Failed to create directory: %v", err)
	}

	fmt.Printf("Created %s\n", path)
}
