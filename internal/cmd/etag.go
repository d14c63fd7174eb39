package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riverscapes/rsutil/etag"
)

// NewEtagCmd creates and returns the etag subcommand for the rsutil CLI.
// It computes or verifies S3-style ETags for local files.
func NewEtagCmd() *cobra.Command {
	var (
		partSize   int64
		multipart  bool
		verify     string
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "etag PATH",
		Short: "Compute or verify S3-style ETags for local files",
		Long: `Compute the ETag S3 would report for a file, or for every regular
file in a directory.

Files at or below the part size produce a plain MD5 ETag; larger files
produce the multipart form (MD5 of the per-part MD5 digests with a part
count suffix). Use --multipart to force the multipart form for small files,
matching what S3 reports when a multipart upload is forced.

With --verify, the single file at PATH is checked against a known ETag
value, quotes and all, and the command exits with status 1 on a mismatch.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runEtag(args[0], partSize, multipart, verify, noProgress)
		},
	}

	cmd.Flags().Int64Var(&partSize, "part-size", etag.DefaultPartSize, "Multipart chunk size in bytes")
	cmd.Flags().BoolVar(&multipart, "multipart", false, "Force the multipart form even for small files")
	cmd.Flags().StringVar(&verify, "verify", "", "Known ETag value to check the file against")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Suppress progress output for directories")

	return cmd
}

func runEtag(path string, partSize int64, multipart bool, verify string, noProgress bool) {
	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("Cannot stat %s: %v", path, err)
	}

	if verify != "" {
		if info.IsDir() {
			log.Fatalf("--verify needs a file, got directory: %s", path)
		}
		runEtagVerify(path, verify)
		return
	}

	if !info.IsDir() {
		printEtag(path, partSize, multipart)
		return
	}

	files, err := regularFiles(path)
	if err != nil {
		log.Fatalf("Error listing %s: %v", path, err)
	}
	if !noProgress {
		fmt.Printf("Found %d files in %s\n", len(files), path)
	}
	for i, file := range files {
		printEtag(file, partSize, multipart)
		if !noProgress && (i+1)%100 == 0 {
			fmt.Printf("Processed %d/%d files...\n", i+1, len(files))
		}
	}
}

func runEtagVerify(path, remote string) {
	ok, err := etag.Match(path, remote)
	if err != nil {
		log.Fatalf("Error verifying %s: %v", path, err)
	}
	if !ok {
		fmt.Printf("ETag mismatch: %s does not match %s\n", path, remote)
		os.Exit(1)
	}
	fmt.Printf("ETag match: %s\n", path)
}

func printEtag(path string, partSize int64, multipart bool) {
	var (
		tag string
		err error
	)
	if multipart {
		var f *os.File
		f, err = os.Open(path)
		if err == nil {
			tag, err = etag.Multipart(f, partSize)
			f.Close()
		}
	} else {
		tag, err = etag.File(path, partSize)
	}
	if err != nil {
		log.Fatalf("Error hashing %s: %v", path, err)
	}
	fmt.Printf("%s  %s\n", tag, path)
}

// regularFiles lists the regular files directly inside dir, skipping
// subdirectories and dotfiles, sorted by name.
func regularFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
