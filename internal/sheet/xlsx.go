package sheet

import (
	"github.com/ansel1/merry"
	"github.com/tealeg/xlsx/v3"
	"math"
	"strconv"
	"strings"
)

var numFormats = map[Column]string{
	ColSerial: "0",
	ColVolume: "0.0000",
	ColMoles:  "0.000000",
}

// textColumns are always written as strings.
var textColumns = map[Column]bool{
	ColName:   true,
	ColWeight: true,
}

// WriteXlsx saves the table as a workbook with a single sheet. Cells holding
// plain finite numbers are stored as numbers.
func WriteXlsx(filename, sheetName string, t Table) error {
	wb := xlsx.NewFile()

	sh, err := wb.AddSheet(sheetName)
	if err != nil {
		return merry.Append(err, filename)
	}
	defer sh.Close()

	row := sh.AddRow()
	for _, c := range t.Columns {
		row.AddCell().SetValue(string(c))
	}

	for _, r := range t.Rows {
		row := sh.AddRow()
		for _, col := range t.Columns {
			c := row.AddCell()
			s := r[col]
			v, ok := finiteNumber(s)
			if textColumns[col] || !ok {
				c.SetString(s)
				continue
			}
			if f, ok := numFormats[col]; ok {
				c.SetFloatWithFormat(v, f)
			} else {
				c.SetFloat(v)
			}
		}
	}

	if err := wb.Save(filename); err != nil {
		return merry.Append(err, filename)
	}
	return nil
}

func finiteNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
