package cmd

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the rsutil CLI.
// It generates test files for pinning ETag expectations.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		partSize   int64
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate test files for pinning ETag expectations",
		Long: `Generate a set of test files with randomized content.

Files are built from repeated UUID lines and span a range of sizes: empty,
a single line, just under the part size, exactly the part size, and
several part-size multiples with a ragged tail. Feeding these through the
etag command produces both single-part and multipart values to pin in
unit tests.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, partSize, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 10, "Number of files to generate")
	cmd.Flags().Int64Var(&partSize, "part-size", 1024*1024, "Part size the files are sized around")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount int, partSize int64, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d test files in %s\n", fileCount, outputPath)
	}

	// Create output directory
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Generate pool of UUID lines to build file content from
	uuidPool := make([][]byte, 8)
	for i := range uuidPool {
		uuidPool[i] = []byte(uuid.New().String() + "\n")
	}

	for i := 0; i < fileCount; i++ {
		size := seedFileSize(i, partSize)
		path := filepath.Join(outputPath, fmt.Sprintf("seed_%03d_%d.txt", i, size))

		if err := os.WriteFile(path, seedContent(uuidPool, size), 0644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", path, err)
			continue
		}
		if verbose {
			fmt.Printf("Created %s (%d bytes)\n", path, size)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d files\n", fileCount)
	}
}

// seedFileSize picks a size for the i-th file. The first few slots cover the
// interesting boundaries around the part size; the rest are randomized
// multiples with a ragged tail so multipart part counts vary.
func seedFileSize(i int, partSize int64) int64 {
	switch i {
	case 0:
		return 0
	case 1:
		return 37 // single uuid line, truncated
	case 2:
		return partSize - 1
	case 3:
		return partSize
	case 4:
		return partSize + 1
	}

	parts, _ := rand.Int(rand.Reader, big.NewInt(4))
	tail, _ := rand.Int(rand.Reader, big.NewInt(partSize))
	// Always at least one byte past a part boundary so the file is multipart.
	return (parts.Int64()+1)*partSize + tail.Int64() + 1
}

// seedContent builds size bytes of content by cycling through the uuid pool.
func seedContent(pool [][]byte, size int64) []byte {
	var buf bytes.Buffer
	buf.Grow(int(size))
	for i := 0; int64(buf.Len()) < size; i++ {
		buf.Write(pool[i%len(pool)])
	}
	return buf.Bytes()[:size]
}
