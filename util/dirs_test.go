package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSafeMkdirAll(t *testing.T) {
	tmpDir := t.TempDir()
	ops := NewOps(nil)

	t.Run("creates nested directories", func(t *testing.T) {
		target := filepath.Join(tmpDir, "subdir", "nested")
		if err := ops.SafeMkdirAll(target); err != nil {
			t.Fatalf("SafeMkdirAll(%q) error = %v", target, err)
		}
		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			t.Errorf("SafeMkdirAll(%q) did not create a directory: %v", target, err)
		}
	})

	t.Run("idempotent on existing directory", func(t *testing.T) {
		target := filepath.Join(tmpDir, "subdir", "nested")
		if err := ops.SafeMkdirAll(target); err != nil {
			t.Errorf("second SafeMkdirAll(%q) error = %v", target, err)
		}
		if info, err := os.Stat(target); err != nil || !info.IsDir() {
			t.Errorf("directory missing after second call: %v", err)
		}
	})

	t.Run("rejects file collision and keeps the file", func(t *testing.T) {
		target := filepath.Join(tmpDir, "conflict")
		content := []byte("content")
		if err := os.WriteFile(target, content, 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		err := ops.SafeMkdirAll(target)
		if !errors.Is(err, ErrNameCollision) {
			t.Errorf("SafeMkdirAll(%q) error = %v, want ErrNameCollision", target, err)
		}

		got, err := os.ReadFile(target)
		if err != nil || string(got) != string(content) {
			t.Errorf("existing file was modified: content=%q err=%v", got, err)
		}
	})
}

func TestSafeMkdirAllValidation(t *testing.T) {
	ops := NewOps(nil)

	tests := []struct {
		name string
		path string
	}{
		{
			name: "short relative name",
			path: "log",
		},
		{
			name: "shallow absolute path",
			path: "/a",
		},
		{
			name: "short relative name that would otherwise resolve",
			path: "logs",
		},
		{
			name: "two segment absolute path",
			path: string(os.PathSeparator) + "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ops.SafeMkdirAll(tt.path)
			if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("SafeMkdirAll(%q) error = %v, want ErrInvalidPath", tt.path, err)
			}
		})
	}
}

func TestSafeMkdirAllAbs(t *testing.T) {
	ops := NewOps(nil)

	t.Run("short relative name resolves and passes", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Chdir(tmpDir)

		// "logs" alone fails the strict check, but resolved against the
		// working directory it is long and deep enough.
		if err := ops.SafeMkdirAllAbs("logs"); err != nil {
			t.Fatalf("SafeMkdirAllAbs(logs) error = %v", err)
		}

		want := filepath.Join(tmpDir, "logs")
		info, err := os.Stat(want)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory at %q: %v", want, err)
		}
	})

	t.Run("still rejects shallow absolute paths", func(t *testing.T) {
		err := ops.SafeMkdirAllAbs("/a")
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("SafeMkdirAllAbs(/a) error = %v, want ErrInvalidPath", err)
		}
	})
}

func TestValidatePath(t *testing.T) {
	sep := string(os.PathSeparator)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{
			name:    "deep absolute path",
			path:    sep + filepath.Join("home", "user", "project", "data"),
			wantErr: false,
		},
		{
			name:    "exactly three segments",
			path:    sep + filepath.Join("tmp", "logs"),
			wantErr: false,
		},
		{
			name:    "length four",
			path:    "abcd",
			wantErr: true,
		},
		{
			name:    "two segments",
			path:    sep + "abcdefgh",
			wantErr: true,
		},
		{
			name:    "empty",
			path:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
