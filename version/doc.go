// Package version provides version information and build metadata for rsutil.
//
// Version, Commit, and Date are set at build time via -ldflags:
//
//	-ldflags "-X github.com/riverscapes/rsutil/version.Version=v1.0.0 ..."
//
// When no compile-time values are injected, the package falls back to the
// module build info recorded by the Go toolchain, so development builds and
// go-installed binaries still report something useful.
package version
