package models

import "bytes"

// SheetData holds the parsed rows of one spreadsheet sheet or one
// delimited-text file, in source order. Every record shares the column set of
// the sheet's header row.
type SheetData []*Record

// WorkbookResult maps sheet name to SheetData, preserving workbook sheet
// order through JSON marshalling.
type WorkbookResult struct {
	names  []string
	sheets map[string]SheetData
}

// NewWorkbookResult creates an empty WorkbookResult.
func NewWorkbookResult() *WorkbookResult {
	return &WorkbookResult{sheets: make(map[string]SheetData)}
}

// Add appends a sheet. Re-adding a name replaces its data but keeps the
// original position.
func (w *WorkbookResult) Add(name string, sheet SheetData) {
	if _, ok := w.sheets[name]; !ok {
		w.names = append(w.names, name)
	}
	w.sheets[name] = sheet
}

// Sheet returns the data for a sheet name and whether it exists.
func (w *WorkbookResult) Sheet(name string) (SheetData, bool) {
	s, ok := w.sheets[name]
	return s, ok
}

// Names returns the sheet names in workbook order.
func (w *WorkbookResult) Names() []string {
	return w.names
}

// MarshalJSON emits the workbook as a JSON object with sheet names in
// workbook order.
func (w *WorkbookResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range w.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeValue(&buf, w.sheets[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TextResult wraps the lines of a plain-text file.
type TextResult struct {
	// Lines holds one entry per input line, trailing newline stripped.
	Lines []string `json:"lines"`
}

// MergeRange is a rectangular block of merged spreadsheet cells, 1-based
// inclusive, anchored at (MinRow, MinCol).
type MergeRange struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Vertical reports whether the range is a single-column merge. Only vertical
// merges participate in merge resolution.
func (m MergeRange) Vertical() bool {
	return m.MinCol == m.MaxCol
}
