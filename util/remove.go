package util

import "os"

// SafeRemoveFile removes a file without surfacing an error. A missing target
// is logged as a warning, any other failure as an error, and the caller
// proceeds either way.
func (o *Ops) SafeRemoveFile(path string) {
	log := o.logger()
	info, err := os.Stat(path)
	if err != nil {
		log.Warn("file not found", "path", path)
	} else if info.IsDir() {
		log.Error("error removing file", "path", path, "error", ErrExpectedFile)
		return
	}
	if err := os.Remove(path); err != nil {
		log.Error("error removing file", "path", path, "error", err)
		return
	}
	log.Debug("file removed", "path", path)
}

// SafeRemoveDir removes a directory tree without surfacing an error.
func (o *Ops) SafeRemoveDir(path string) {
	if err := os.RemoveAll(path); err != nil {
		o.logger().Error("error removing tree", "path", path, "error", err)
		return
	}
	o.logger().Debug("directory removed", "path", path)
}
