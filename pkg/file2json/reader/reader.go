// Package reader implements the per-format readers and the merge resolver.
// Readers return plain errors; the top-level package classifies them.
package reader

import (
	"fmt"
	"os"
)

// dedupeHeader renames repeated column names so no column is silently
// dropped: the second "a" becomes "a.1", the third "a.2".
func dedupeHeader(header []string) []string {
	used := make(map[string]bool, len(header))
	out := make([]string, len(header))
	for i, col := range header {
		name := col
		for n := 1; used[name]; n++ {
			name = fmt.Sprintf("%s.%d", col, n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// checkSize rejects files larger than maxSize bytes. maxSize <= 0 disables
// the check.
func checkSize(path string, maxSize int64) error {
	if maxSize <= 0 {
		return nil
	}
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}
	if stat.Size() > maxSize {
		return fmt.Errorf("file size %d exceeds maximum %d", stat.Size(), maxSize)
	}
	return nil
}
