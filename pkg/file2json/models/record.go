// Package models defines the normalized value types produced by file2json.
package models

import (
	"bytes"
	"encoding/json"
)

// Record is one row of tabular data: an ordered mapping from column name to
// cell value. Column order follows the source's header order and is preserved
// through JSON marshalling. Cell values are dynamically typed: string, int64,
// float64, bool, or nil.
type Record struct {
	columns []string
	index   map[string]int
	values  []any
}

// NewRecord creates an empty Record that will grow in insertion order.
// Columns set later via Set keep the order of their first appearance.
func NewRecord(columns []string) *Record {
	r := &Record{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
		values:  make([]any, 0, len(columns)),
	}
	for _, col := range columns {
		r.Set(col, nil)
	}
	return r
}

// Set assigns the value for a column, appending the column at the end of the
// order if it is new.
func (r *Record) Set(col string, v any) {
	if i, ok := r.index[col]; ok {
		r.values[i] = v
		return
	}
	r.index[col] = len(r.columns)
	r.columns = append(r.columns, col)
	r.values = append(r.values, v)
}

// Get returns the value for a column and whether the column exists.
func (r *Record) Get(col string) (any, bool) {
	i, ok := r.index[col]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Columns returns the column names in record order.
func (r *Record) Columns() []string {
	return r.columns
}

// Len returns the number of columns.
func (r *Record) Len() int {
	return len(r.columns)
}

// MarshalJSON emits the record as a JSON object with keys in column order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(&buf, col); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeValue(&buf, r.values[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeValue appends the JSON form of v without HTML escaping, so non-ASCII
// characters pass through literally.
func encodeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}
