package reader

import (
	"github.com/snagasawa/file2json-go/pkg/file2json/models"
	"github.com/xuri/excelize/v2"
)

// Workbook parses every sheet of a spreadsheet into a WorkbookResult in
// workbook sheet order. Each sheet's tabular region is parsed with the first
// row as header, then vertical merges are resolved against the sheet's
// merged-cell metadata.
func Workbook(path string, maxSize int64) (*models.WorkbookResult, error) {
	if err := checkSize(path, maxSize); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result := models.NewWorkbookResult()
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		sheet, header := sheetRecords(rows)

		merges, err := sheetMerges(f, sheetName)
		if err != nil {
			return nil, err
		}
		anchor := func(row, col int) (string, error) {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return "", err
			}
			return f.GetCellValue(sheetName, cell)
		}
		sheet, err = ResolveMerges(sheet, merges, header, anchor)
		if err != nil {
			return nil, err
		}
		result.Add(sheetName, sheet)
	}
	return result, nil
}

// sheetRecords converts raw sheet rows into records keyed by the header row.
func sheetRecords(rows [][]string) (models.SheetData, []string) {
	if len(rows) == 0 {
		return models.SheetData{}, nil
	}
	header := dedupeHeader(rows[0])
	sheet := make(models.SheetData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		sheet = append(sheet, rowRecord(header, row))
	}
	return sheet, header
}

// sheetMerges collects the sheet's merged-cell ranges as 1-based coordinates.
func sheetMerges(f *excelize.File, sheetName string) ([]models.MergeRange, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	merges := make([]models.MergeRange, 0, len(cells))
	for _, mc := range cells {
		minCol, minRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, err
		}
		maxCol, maxRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		merges = append(merges, models.MergeRange{
			MinRow: minRow,
			MaxRow: maxRow,
			MinCol: minCol,
			MaxCol: maxCol,
		})
	}
	return merges, nil
}
