package file2json

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snagasawa/file2json-go/pkg/file2json/models"
)

func TestConvertCSVScenario(t *testing.T) {
	path := writeFile(t, "people.csv", []byte("name,age,city\nAlice,25,New York\nBob,30,London\nCharlie,35,Paris\n"))

	got, err := Convert(path, DefaultOptions())
	require.NoError(t, err)

	expected := `[
  {
    "name": "Alice",
    "age": 25,
    "city": "New York"
  },
  {
    "name": "Bob",
    "age": 30,
    "city": "London"
  },
  {
    "name": "Charlie",
    "age": 35,
    "city": "Paris"
  }
]`
	assert.Equal(t, expected, got)
}

func TestConvertTextScenario(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("Line 1\nLine 2\nLine 3\n"))

	got, err := Convert(path, DefaultOptions())
	require.NoError(t, err)

	expected := `{
  "lines": [
    "Line 1",
    "Line 2",
    "Line 3"
  ]
}`
	assert.Equal(t, expected, got)
}

func TestConvertJSONRoundTrip(t *testing.T) {
	src := `{"b": 1, "a": [1.5, true, null, "café"], "nested": {"x": "y"}}`
	path := writeFile(t, "data.json", []byte(src))

	got, err := Convert(path, DefaultOptions())
	require.NoError(t, err)

	var original, emitted any
	require.NoError(t, json.Unmarshal([]byte(src), &original))
	require.NoError(t, json.Unmarshal([]byte(got), &emitted))
	assert.Equal(t, original, emitted)
}

func TestConvertNonFiniteCellsStayStrings(t *testing.T) {
	// "NaN" and "Inf" cells have no JSON number form; they must come through
	// as strings rather than breaking emission.
	path := writeFile(t, "scores.csv", []byte("name,score\nAlice,NaN\nBob,Inf\n"))

	got, err := Convert(path, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, got, `"score": "NaN"`)
	assert.Contains(t, got, `"score": "Inf"`)
}

func TestConvertJSONTrailingDataParseError(t *testing.T) {
	path := writeFile(t, "data.json", []byte(`{"a": 1} {"b": 2}`))

	_, err := Convert(path, DefaultOptions())
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, FormatJSON, parseErr.Format)
}

func TestReadForcedTSVOnCommaFile(t *testing.T) {
	// No tabs in the content: the whole line becomes one column.
	path := writeFile(t, "data.csv", []byte("a,b\n1,2\n"))

	opts := DefaultOptions()
	opts.Format = FormatTSV
	v, err := Read(path, opts)
	require.NoError(t, err)

	sheet, ok := v.(models.SheetData)
	require.True(t, ok)
	require.Len(t, sheet, 1)
	assert.Equal(t, []string{"a,b"}, sheet[0].Columns())
}

func TestReadForcedCSVParseError(t *testing.T) {
	path := writeFile(t, "ragged.dat", []byte("a,b\n1,2,3\n"))

	opts := DefaultOptions()
	opts.Format = FormatCSV
	_, err := Read(path, opts)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, FormatCSV, parseErr.Format)
	assert.Equal(t, path, parseErr.Path)
}

func TestReadForcedExcelOnTextParseError(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("a,b\n1,2\n"))

	opts := DefaultOptions()
	opts.Format = FormatExcel
	_, err := Read(path, opts)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestReadUnknownFormat(t *testing.T) {
	path := writeFile(t, "garbage.bin", []byte{0xff, 0xfe, 0x00})

	_, err := Read(path, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), path)
}

func TestReadMissingFileIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := Read(path, DefaultOptions())
	require.Error(t, err)

	// Filesystem errors propagate as-is, not wrapped in ParseError.
	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr)
	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr))
}

func TestConvertWritesOutputFile(t *testing.T) {
	path := writeFile(t, "people.csv", []byte("name\nAlice\n"))
	outPath := filepath.Join(t.TempDir(), "out.json")

	opts := DefaultOptions()
	opts.OutputPath = outPath
	msg, err := Convert(path, opts)
	require.NoError(t, err)
	assert.Contains(t, msg, outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0]["name"])
}

func TestConvertWriteError(t *testing.T) {
	path := writeFile(t, "people.csv", []byte("name\nAlice\n"))

	opts := DefaultOptions()
	opts.OutputPath = filepath.Join(t.TempDir(), "no-such-dir", "out.json")
	_, err := Convert(path, opts)
	require.Error(t, err)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, opts.OutputPath, writeErr.Path)
}

func TestConvertMaxFileSize(t *testing.T) {
	path := writeFile(t, "people.csv", []byte("name\nAlice\n"))

	opts := DefaultOptions()
	opts.MaxFileSize = 4
	_, err := Convert(path, opts)
	assert.Error(t, err)
}
