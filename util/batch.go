package util

// Batch splits items into consecutive chunks of at most size elements. The
// final chunk may be shorter. A size of zero or less returns everything in a
// single chunk; an empty or nil slice returns nil. Chunks share backing
// storage with items.
func Batch[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{items}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
