package etag

import (
	"os"
	"strconv"
	"strings"
)

const mib = 1024 * 1024

// commonPartSizes are multipart chunk sizes seen in the wild: the S3 minimum,
// the AWS CLI / boto3 defaults, and the riverscapes uploader default.
var commonPartSizes = []int64{
	DefaultPartSize,
	5 * mib,
	8 * mib,
	15 * mib,
	16 * mib,
	64 * mib,
	100 * mib,
}

// Match reports whether the ETag S3 returned for an uploaded object agrees
// with the content of the local file at path. The remote value may carry the
// surrounding quotes S3 puts in the ETag header.
//
// A remote value without a part-count suffix is compared against the plain MD5
// of the file. For a multipart value the part size is not recoverable from the
// ETag, so candidate sizes are tried: the known uploader defaults plus the
// sizes implied by the file size and part count. A malformed part count yields
// false without touching the file. I/O errors are returned; a simple mismatch
// is (false, nil).
func Match(path, remote string) (bool, error) {
	remote = strings.ToLower(strings.Trim(strings.TrimSpace(remote), `"`))

	digest, suffix, multipart := strings.Cut(remote, "-")
	if !multipart {
		f, err := os.Open(path)
		if err != nil {
			return false, err
		}
		defer f.Close()
		local, err := Sum(f)
		if err != nil {
			return false, err
		}
		return local == digest, nil
	}

	parts, err := strconv.Atoi(suffix)
	if err != nil || parts < 1 {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	for _, partSize := range candidatePartSizes(info.Size(), int64(parts)) {
		f, err := os.Open(path)
		if err != nil {
			return false, err
		}
		local, err := Multipart(f, partSize)
		f.Close()
		if err != nil {
			return false, err
		}
		if local == remote {
			return true, nil
		}
	}
	return false, nil
}

// candidatePartSizes returns the part sizes worth trying for a file of the
// given size that produced parts chunks: the well-known sizes that happen to
// yield the right part count, plus the smallest size that does and its MiB
// rounding.
func candidatePartSizes(size, parts int64) []int64 {
	var candidates []int64
	seen := make(map[int64]bool)
	add := func(ps int64) {
		if ps > 0 && !seen[ps] && partCount(size, ps) == parts {
			seen[ps] = true
			candidates = append(candidates, ps)
		}
	}

	for _, ps := range commonPartSizes {
		add(ps)
	}
	minimal := (size + parts - 1) / parts
	add(minimal)
	add((minimal + mib - 1) / mib * mib)
	return candidates
}

// partCount returns how many parts a multipart upload of size bytes has when
// split into partSize chunks. An empty object still uploads as one part.
func partCount(size, partSize int64) int64 {
	if size <= 0 {
		return 1
	}
	return (size + partSize - 1) / partSize
}
