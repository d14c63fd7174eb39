package util

import (
	"bytes"
	"crypto/md5"
	"os"
)

// FileCompare reports whether two files hold the same content, checking size
// first and finishing with an MD5 digest of each file. With verifyHash false
// the comparison stops after the size check, so files of equal length are
// considered equal without reading them.
//
// The comparison is advisory: any failure to stat or read either file is
// logged and reported as "not equal" rather than returned to the caller.
func (o *Ops) FileCompare(fileA, fileB string, verifyHash bool) bool {
	log := o.logger()
	log.Debug("comparing files", "a", fileA, "b", fileB)

	statA, err := os.Stat(fileA)
	if err != nil {
		log.Error("error comparing files", "path", fileA, "error", err)
		return false
	}
	statB, err := os.Stat(fileB)
	if err != nil {
		log.Error("error comparing files", "path", fileB, "error", err)
		return false
	}

	// No reason to read anything if the sizes already disagree.
	if statA.Size() != statB.Size() {
		log.Debug("files are not the same size", "a", statA.Size(), "b", statB.Size())
		return false
	}

	if !verifyHash {
		return true
	}

	bufA, err := os.ReadFile(fileA)
	if err != nil {
		log.Error("error comparing files", "path", fileA, "error", err)
		return false
	}
	bufB, err := os.ReadFile(fileB)
	if err != nil {
		log.Error("error comparing files", "path", fileB, "error", err)
		return false
	}

	sumA := md5.Sum(bufA)
	sumB := md5.Sum(bufB)
	if !bytes.Equal(sumA[:], sumB[:]) {
		log.Debug("file hashes do not match", "a", fileA, "b", fileB)
		return false
	}
	log.Debug("file hashes match", "a", fileA, "b", fileB)
	return true
}
