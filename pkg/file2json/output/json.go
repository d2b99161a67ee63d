// Package output serializes normalized values to JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ToJSON encodes v as pretty-printed JSON: two-space indent, HTML escaping
// disabled so non-ASCII characters are emitted literally.
func ToJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// WriteJSON writes the encoded form of v to path and returns a confirmation
// message naming the path. A partial write is not cleaned up.
func WriteJSON(v any, path string) (string, error) {
	s, err := ToJSON(v)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return "", err
	}
	return fmt.Sprintf("JSON saved to %s", path), nil
}
