package cmd

import (
	"bytes"
	"testing"
)

func TestSeedFileSize(t *testing.T) {
	const partSize = int64(1024)

	tests := []struct {
		name string
		i    int
		want int64
	}{
		{name: "empty file", i: 0, want: 0},
		{name: "single line", i: 1, want: 37},
		{name: "just under part size", i: 2, want: partSize - 1},
		{name: "exactly part size", i: 3, want: partSize},
		{name: "just over part size", i: 4, want: partSize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := seedFileSize(tt.i, partSize); got != tt.want {
				t.Errorf("seedFileSize(%d, %d) = %d, want %d", tt.i, partSize, got, tt.want)
			}
		})
	}

	t.Run("randomized slots exceed the part size", func(t *testing.T) {
		for i := 5; i < 20; i++ {
			got := seedFileSize(i, partSize)
			if got <= partSize {
				t.Errorf("seedFileSize(%d, %d) = %d, want > %d", i, partSize, got, partSize)
			}
		}
	})
}

func TestSeedContent(t *testing.T) {
	pool := [][]byte{[]byte("aaaa\n"), []byte("bbbb\n")}

	t.Run("exact size", func(t *testing.T) {
		got := seedContent(pool, 7)
		want := []byte("aaaa\nbb")
		if !bytes.Equal(got, want) {
			t.Errorf("seedContent() = %q, want %q", got, want)
		}
	})

	t.Run("zero size", func(t *testing.T) {
		if got := seedContent(pool, 0); len(got) != 0 {
			t.Errorf("seedContent(0) length = %d, want 0", len(got))
		}
	})
}
