package reader

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/snagasawa/file2json-go/pkg/file2json/models"
)

// Delimited parses a delimited-text file into a SheetData using the first
// row as header. Field counts are strict: a row with a different number of
// fields than the header is a parse error.
func Delimited(path string, comma rune, maxSize int64) (models.SheetData, error) {
	if err := checkSize(path, maxSize); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma

	header, err := r.Read()
	if err == io.EOF {
		return models.SheetData{}, nil
	}
	if err != nil {
		return nil, err
	}
	header = dedupeHeader(header)

	sheet := models.SheetData{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		sheet = append(sheet, rowRecord(header, row))
	}
	return sheet, nil
}

// rowRecord builds a Record from one data row, filling columns the row is
// short of with nil.
func rowRecord(header, row []string) *models.Record {
	rec := models.NewRecord(header)
	for i, col := range header {
		if i < len(row) {
			rec.Set(col, ParseValue(row[i]))
		}
	}
	return rec
}
