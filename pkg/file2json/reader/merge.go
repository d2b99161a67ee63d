package reader

import "github.com/snagasawa/file2json-go/pkg/file2json/models"

// AnchorFunc reads the raw cell value at a 1-based (row, col) coordinate of
// the underlying sheet grid. The anchor must come from the raw grid, not the
// parsed records: the header row consumes sheet row 1 and shifts record
// indexing.
type AnchorFunc func(row, col int) (string, error)

// ResolveMerges propagates each single-column merge's anchor value to the
// records the merge maps onto. Record index r ranges from MinRow-1 through
// MaxRow-1; the anchor's own record already holds the value from ordinary
// parsing. Horizontal and block merges are left untouched. Overlapping
// ranges are applied in reported order, last write wins. Empty merge
// metadata leaves the sheet unchanged.
func ResolveMerges(sheet models.SheetData, merges []models.MergeRange, columns []string, anchor AnchorFunc) (models.SheetData, error) {
	for _, m := range merges {
		if !m.Vertical() {
			continue
		}
		colIdx := m.MinCol - 1
		if colIdx >= len(columns) {
			// Merge lies outside the parsed tabular region.
			continue
		}

		raw, err := anchor(m.MinRow, m.MinCol)
		if err != nil {
			return nil, err
		}
		value := ParseValue(raw)
		if value == nil {
			continue
		}

		for r := m.MinRow - 1; r <= m.MaxRow-1; r++ {
			if r < 0 || r >= len(sheet) {
				continue
			}
			sheet[r].Set(columns[colIdx], value)
		}
	}
	return sheet, nil
}
