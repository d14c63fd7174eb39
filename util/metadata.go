package util

import (
	"fmt"
	"strings"
)

// ParseMetadata parses a comma-separated list of key=value pairs, as passed on
// the command line, into a map. Keys and values are trimmed of surrounding
// whitespace. An empty string yields an empty map. Malformed pairs, empty keys
// or values, and duplicate keys all produce an error wrapping
// ErrInvalidMetadata.
func ParseMetadata(arg string) (map[string]string, error) {
	meta := make(map[string]string)
	if arg == "" {
		return meta, nil
	}
	for _, kvp := range strings.Split(arg, ",") {
		key, value, found := strings.Cut(kvp, "=")
		if !found {
			return nil, fmt.Errorf("%w: missing '=' in %q", ErrInvalidMetadata, kvp)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", ErrInvalidMetadata, kvp)
		}
		if value == "" {
			return nil, fmt.Errorf("%w: empty value in %q", ErrInvalidMetadata, kvp)
		}
		if _, ok := meta[key]; ok {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidMetadata, key)
		}
		meta[key] = value
	}
	return meta, nil
}
