package reader

import (
	"os"
	"strings"

	"github.com/snagasawa/file2json-go/pkg/file2json/models"
)

// TextLines reads a plain-text file into a TextResult. Only the trailing
// newline (LF or CRLF) is stripped from each line; other trailing
// whitespace is kept.
func TextLines(path string, maxSize int64) (*models.TextResult, error) {
	if err := checkSize(path, maxSize); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := []string{}
	rest := string(data)
	for len(rest) > 0 {
		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i]
			rest = rest[i+1:]
		} else {
			rest = ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return &models.TextResult{Lines: lines}, nil
}
