package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Minimum length and depth a target path must have before we will create it.
// Anything shorter is suspected of being a root or near-root directory.
const (
	minPathLength   = 5
	minPathSegments = 3
)

// validatePath rejects paths that are too short or too shallow to be a
// deliberate creation target. "log" fails on length, "/a" fails on depth.
func validatePath(path string) error {
	if len(path) < minPathLength {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if len(strings.Split(path, string(os.PathSeparator))) < minPathSegments {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return nil
}

// SafeMkdirAll recursively creates dir and any missing parents after checking
// that the path is neither too short nor too shallow. The string is validated
// exactly as given, so a relative path like "logs" is rejected even though it
// would resolve somewhere deep; use SafeMkdirAllAbs for the lenient resolved
// check. Creation is idempotent. If a regular file already occupies dir the
// error wraps ErrNameCollision; validation failures wrap ErrInvalidPath.
func (o *Ops) SafeMkdirAll(dir string) error {
	if err := validatePath(dir); err != nil {
		return err
	}
	return o.mkdirAll(dir)
}

// SafeMkdirAllAbs behaves like SafeMkdirAll but resolves dir to an absolute
// path before validating, so short relative names like "logs" pass as long as
// the working directory is deep enough. This strict/lenient split mirrors the
// historical behavior of the riverscapes tools and is intentionally left
// asymmetric.
func (o *Ops) SafeMkdirAllAbs(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		o.logger().Error("could not resolve path", "path", dir, "error", err)
		return fmt.Errorf("resolve %q: %w", dir, err)
	}
	if err := validatePath(abs); err != nil {
		return err
	}
	return o.mkdirAll(abs)
}

func (o *Ops) mkdirAll(dir string) error {
	log := o.logger()

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %q", ErrNameCollision, dir)
		}
		// Already present, nothing to do.
		return nil
	case !os.IsNotExist(err):
		log.Error("could not stat folder", "path", dir, "error", err)
		return fmt.Errorf("stat %q: %w", dir, err)
	}

	log.Info("folder not found, creating", "path", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Error("could not create folder", "path", dir, "error", err)
		return fmt.Errorf("mkdir %q: %w", dir, err)
	}
	return nil
}
