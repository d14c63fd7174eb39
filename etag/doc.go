// Package etag replicates the checksum scheme Amazon S3 uses for object ETags
// so that locally computed values can be checked against values reported by
// the service.
//
// Objects uploaded in a single part carry a plain MD5 hex digest. Objects
// uploaded in multiple parts carry the MD5 of the concatenated per-part MD5
// digests with a "-N" part-count suffix, e.g.
//
//	d41d8cd98f00b204e9800998ecf8427e       single part
//	446feba4c1b5cc7ad93bf4d44a0e36ac-3     three parts
//
// The part size is not recoverable from the ETag itself, so Match tries the
// default part size used by the riverscapes uploaders along with a set of
// common transfer sizes and the sizes implied by the file size and part count.
//
// Nothing in this package talks to S3; verification runs against ETag strings
// the caller already holds.
package etag
