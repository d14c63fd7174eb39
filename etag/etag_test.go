package etag

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "d41d8cd98f00b204e9800998ecf8427e"},
		{name: "hello world", input: "hello world", want: "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{name: "trailing newline", input: "hello\n", want: "b1946ac92492d2347c6235b4d2611184"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultipart(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		partSize int64
		want     string
	}{
		{
			name:     "three parts with short tail",
			input:    "abcdefghij",
			partSize: 4,
			want:     "446feba4c1b5cc7ad93bf4d44a0e36ac-3",
		},
		{
			name:     "two even parts",
			input:    "abcdefghij",
			partSize: 5,
			want:     "8e18a6d3619b553c27c7028ea9067e05-2",
		},
		{
			name:     "single part keeps the suffix",
			input:    "hello world",
			partSize: 1024,
			want:     "241d8a27c836427bd7f04461b60e7359-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Multipart(strings.NewReader(tt.input), tt.partSize)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "small.txt")
	require.NoError(t, os.WriteFile(path, []byte("abcdefghij"), 0644))

	t.Run("fits in one part", func(t *testing.T) {
		got, err := File(path, 0)
		require.NoError(t, err)
		assert.Equal(t, "a925576942e94b2ef57a066101b48876", got)
	})

	t.Run("split into parts", func(t *testing.T) {
		got, err := File(path, 4)
		require.NoError(t, err)
		assert.Equal(t, "446feba4c1b5cc7ad93bf4d44a0e36ac-3", got)
	})

	t.Run("size equal to part size stays single part", func(t *testing.T) {
		got, err := File(path, 10)
		require.NoError(t, err)
		assert.Equal(t, "a925576942e94b2ef57a066101b48876", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := File(filepath.Join(tmpDir, "nope.txt"), 0)
		assert.Error(t, err)
	})
}

func TestFileLarge(t *testing.T) {
	// 1 MiB of a repeating byte pattern split into 256 KiB parts.
	data := make([]byte, 1024*1024)
	for i := range data {
		data[i] = byte(i % 256)
	}
	path := filepath.Join(t.TempDir(), "large.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))

	single, err := File(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "c35cc7d8d91728a0cb052831bc4ef372", single)

	multi, err := File(path, 256*1024)
	require.NoError(t, err)
	assert.Equal(t, "07a4731f59e24bfe729d2d363e11b5f4-4", multi)
}
