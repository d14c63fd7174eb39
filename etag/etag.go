package etag

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// DefaultPartSize is the multipart chunk size used by the riverscapes
// uploaders: 50 MB. Files at or below this size produce single-part ETags.
const DefaultPartSize int64 = 50 * 1024 * 1024

// Sum returns the single-part ETag for r: the MD5 digest of its content as a
// lowercase hex string.
func Sum(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Multipart returns the multipart ETag for r split into parts of partSize
// bytes: the MD5 of the concatenated per-part MD5 digests, suffixed with the
// part count. Content that fits in one part still gets a "-1" suffix, which is
// what S3 reports for forced multipart uploads of small files. A partSize of
// zero or less uses DefaultPartSize.
func Multipart(r io.Reader, partSize int64) (string, error) {
	if partSize <= 0 {
		partSize = DefaultPartSize
	}

	parts := 0
	whole := md5.New()
	for {
		part := md5.New()
		n, err := io.CopyN(part, r, partSize)
		if n > 0 || parts == 0 {
			parts++
			whole.Write(part.Sum(nil))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%x-%d", whole.Sum(nil), parts), nil
}

// File computes the ETag S3 would report for path uploaded with the given
// part size: a plain MD5 digest when the file fits in a single part, the
// multipart form otherwise. A partSize of zero or less uses DefaultPartSize.
func File(path string, partSize int64) (string, error) {
	if partSize <= 0 {
		partSize = DefaultPartSize
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if info.Size() <= partSize {
		return Sum(f)
	}
	return Multipart(f, partSize)
}
