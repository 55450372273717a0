// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ooxmlRows decodes the first sheet of an OOXML (.xlsx/.xlsm) workbook.
func ooxmlRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(name)
}
