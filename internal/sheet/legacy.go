// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"
	"strconv"

	"github.com/yamitzky/xlrd-go/xlrd"
)

// legacyRows decodes the first sheet of a BIFF (.xls) workbook.
func legacyRows(path string) ([][]string, error) {
	book, err := xlrd.OpenWorkbook(path, &xlrd.OpenWorkbookOptions{FormattingInfo: true})
	if err != nil {
		return nil, err
	}
	return firstSheetRows(book)
}

// sniffRows inspects the file's actual format and dispatches to the
// matching decoder, regardless of extension. Covers mislabeled files
// (an .xls that is really OOXML and vice versa).
func sniffRows(path string) ([][]string, error) {
	format, err := xlrd.InspectFormat(path, nil)
	if err != nil {
		return nil, err
	}
	if format == "xls" {
		return legacyRows(path)
	}
	return ooxmlRows(path)
}

func firstSheetRows(book *xlrd.Book) ([][]string, error) {
	if book.NSheets == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet, err := book.SheetByIndex(0)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, sheet.NRows)
	for rowx := 0; rowx < sheet.NRows; rowx++ {
		cells := make([]string, sheet.NCols)
		for colx := 0; colx < sheet.NCols; colx++ {
			cells[colx] = cellText(book, sheet, rowx, colx)
		}
		rows[rowx] = cells
	}
	return rows, nil
}

// cellText renders one typed BIFF cell as CSV-ready text.
func cellText(book *xlrd.Book, sheet *xlrd.Sheet, rowx, colx int) string {
	switch sheet.CellType(rowx, colx) {
	case xlrd.XL_CELL_TEXT:
		return toString(sheet.CellValue(rowx, colx))
	case xlrd.XL_CELL_NUMBER:
		val, ok := toFloat(sheet.CellValue(rowx, colx))
		if !ok {
			return toString(sheet.CellValue(rowx, colx))
		}
		if isDateCell(book, sheet.CellXFIndex(rowx, colx)) {
			if text, ok := formatDate(val, book.Datemode); ok {
				return text
			}
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case xlrd.XL_CELL_BOOLEAN:
		return formatBool(sheet.CellValue(rowx, colx))
	case xlrd.XL_CELL_ERROR:
		return formatCellError(sheet.CellValue(rowx, colx))
	case xlrd.XL_CELL_EMPTY, xlrd.XL_CELL_BLANK:
		return ""
	default:
		return toString(sheet.CellValue(rowx, colx))
	}
}

func toString(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func formatBool(value interface{}) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int:
		if v != 0 {
			return "TRUE"
		}
		return "FALSE"
	default:
		return toString(value)
	}
}

func formatCellError(value interface{}) string {
	switch v := value.(type) {
	case byte:
		if text, ok := xlrd.ErrorTextFromCode[v]; ok {
			return text
		}
	case int:
		if text, ok := xlrd.ErrorTextFromCode[byte(v)]; ok {
			return text
		}
	}
	return "#ERROR"
}

// isDateCell reports whether the cell's format marks its numeric value
// as a date or time.
func isDateCell(book *xlrd.Book, xfIndex int) bool {
	if xfIndex < 0 || xfIndex >= len(book.XFList) {
		return false
	}
	formatKey := book.XFList[xfIndex].FormatKey
	switch formatKey {
	// Built-in BIFF date/time format keys.
	case 14, 15, 16, 17, 18, 19, 20, 21, 22, 27, 30, 36, 50, 57, 58:
		return true
	}
	if book.FormatMap == nil {
		return false
	}
	format := book.FormatMap[formatKey]
	if format == nil || format.FormatString == "" {
		return false
	}
	return xlrd.IsDateFormatString(book, format.FormatString)
}

func formatDate(value float64, datemode int) (string, bool) {
	t, err := xlrd.XldateAsDatetime(value, datemode)
	if err != nil {
		return "", false
	}
	if value < 1 {
		return t.Format("15:04:05"), true
	}
	if value != float64(int64(value)) {
		return t.Format("2006-01-02 15:04:05"), true
	}
	return t.Format("2006-01-02"), true
}
