package parser

import (
	"fmt"

	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads one worksheet of an xlsx export into a Table. The first
// non-empty row is the header. An empty sheet name selects the first sheet.
func ReadWorkbook(path, sheet string) (models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Table{}, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.Table{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return tableFromRows(rows), nil
}

// tableFromRows crops rows to the data region, drops rows without any data
// and splits off the header.
func tableFromRows(rows [][]string) models.Table {
	var kept [][]string
	for _, row := range cropToData(rows) {
		hasData := false
		for _, cell := range row {
			if cell != "" {
				hasData = true
				break
			}
		}
		if hasData {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return models.Table{}
	}
	return models.NewTable(kept[0], kept[1:])
}
