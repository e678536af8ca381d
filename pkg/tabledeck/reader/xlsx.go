// Package reader loads ordered text rows from spreadsheet files.
package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadRows returns the rows of one worksheet as text cells, in sheet
// order. sheet selects the worksheet by name; empty means the first
// sheet in the workbook. Rows may be ragged: excelize omits trailing
// empty cells, and callers must treat missing cells as empty text.
func ReadRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
