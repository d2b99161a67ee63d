package file2json

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Format identifies the parsing branch for an input file.
type Format string

const (
	FormatExcel   Format = "excel"
	FormatCSV     Format = "csv"
	FormatTSV     Format = "tsv"
	FormatJSON    Format = "json"
	FormatText    Format = "text"
	FormatUnknown Format = "unknown"
)

// extFormats maps recognized extensions (lower case) to formats. Extension
// wins over content: a .csv file full of tabs still resolves to csv.
var extFormats = map[string]Format{
	".xlsx": FormatExcel,
	".xls":  FormatExcel,
	".xlsm": FormatExcel,
	".xlsb": FormatExcel,
	".odf":  FormatExcel,
	".ods":  FormatExcel,
	".odt":  FormatExcel,
	".csv":  FormatCSV,
	".tsv":  FormatTSV,
	".json": FormatJSON,
	".txt":  FormatText,
	".text": FormatText,
}

// ParseFormat validates a caller-supplied format override.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatExcel, FormatCSV, FormatTSV, FormatJSON, FormatText:
		return Format(s), nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Detect resolves the format of the file at path: extension lookup first,
// then content sniffing over a bounded sample for unrecognized extensions.
// Detection never fails; undetectable content yields FormatUnknown, which
// Read rejects.
func Detect(path string) Format {
	return detect(path, DefaultSampleRows)
}

func detect(path string, sampleRows int) Format {
	if f, ok := extFormats[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}

	probes := []struct {
		probe  func(path string, rows int) bool
		format Format
	}{
		{probeDelimited(','), FormatCSV},
		{probeDelimited('\t'), FormatTSV},
		{probeWorkbook, FormatExcel},
	}
	for _, p := range probes {
		if p.probe(path, sampleRows) {
			return p.format
		}
	}
	return FormatUnknown
}

// probeDelimited reports whether the first rows of the file tokenize as
// delimited text: consistent field counts, valid UTF-8, at least one row.
func probeDelimited(comma rune) func(path string, rows int) bool {
	return func(path string, rows int) bool {
		f, err := os.Open(path)
		if err != nil {
			return false
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.Comma = comma

		n := 0
		for n < rows {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return false
			}
			for _, field := range rec {
				if !utf8.ValidString(field) {
					return false
				}
			}
			n++
		}
		return n > 0
	}
}

// probeWorkbook reports whether the file opens as a spreadsheet workbook.
func probeWorkbook(path string, _ int) bool {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return false
	}
	defer f.Close()
	return len(f.GetSheetList()) > 0
}
