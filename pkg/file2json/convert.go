package file2json

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/snagasawa/file2json-go/pkg/file2json/output"
	"github.com/snagasawa/file2json-go/pkg/file2json/reader"
)

// Read parses the file at path into its normalized value: a WorkbookResult
// for spreadsheets, a SheetData for delimited text, a generic value tree for
// JSON, or a TextResult for plain text. An empty opts.Format triggers
// auto-detection.
func Read(path string, opts Options) (any, error) {
	format := opts.Format
	if format == "" {
		format = detect(path, opts.sampleRows())
	}

	switch format {
	case FormatExcel:
		v, err := reader.Workbook(path, opts.MaxFileSize)
		if err != nil {
			return nil, classify(path, format, err)
		}
		return v, nil
	case FormatCSV:
		v, err := reader.Delimited(path, ',', opts.MaxFileSize)
		if err != nil {
			return nil, classify(path, format, err)
		}
		return v, nil
	case FormatTSV:
		v, err := reader.Delimited(path, '\t', opts.MaxFileSize)
		if err != nil {
			return nil, classify(path, format, err)
		}
		return v, nil
	case FormatJSON:
		v, err := reader.JSONValue(path, opts.MaxFileSize)
		if err != nil {
			return nil, classify(path, format, err)
		}
		return v, nil
	case FormatText:
		v, err := reader.TextLines(path, opts.MaxFileSize)
		if err != nil {
			return nil, classify(path, format, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Convert runs the full pipeline: detect, read, resolve merges for
// spreadsheets, and emit JSON. With opts.OutputPath set the JSON is written
// there and a confirmation message is returned; otherwise the JSON string
// itself is returned and the filesystem is untouched.
func Convert(path string, opts Options) (string, error) {
	v, err := Read(path, opts)
	if err != nil {
		return "", err
	}

	if opts.OutputPath != "" {
		msg, err := output.WriteJSON(v, opts.OutputPath)
		if err != nil {
			return "", &WriteError{Path: opts.OutputPath, Err: err}
		}
		return msg, nil
	}
	return output.ToJSON(v)
}

// classify keeps filesystem errors as-is and wraps everything else as a
// ParseError for the chosen format.
func classify(path string, format Format, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return err
	}
	return &ParseError{Path: path, Format: format, Err: err}
}
