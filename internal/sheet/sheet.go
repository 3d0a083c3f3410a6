package sheet

import (
	"github.com/fpawel/molcal/internal/stoich"
	"strconv"
)

type Column string

const (
	ColSerial   Column = "Sr. No."
	ColName     Column = "Name"
	ColWeight   Column = "Weight"
	ColVolume   Column = "Volume (mL)"
	ColMW       Column = "Molecular Weight (g/mol)"
	ColMoles    Column = "Moles (mol)"
	ColEq       Column = "Equivalent"
	ColDensity  Column = "Density (g/mL)"
)

const (
	DefaultFilename  = "MolCal.xlsx"
	DefaultSheetName = "MolCal"
)

// columns in the order they appear; optional ones only when some row has a value
var columns = []struct {
	Column
	optional bool
}{
	{ColSerial, false},
	{ColName, false},
	{ColWeight, false},
	{ColVolume, true},
	{ColMW, false},
	{ColMoles, false},
	{ColEq, false},
	{ColDensity, true},
}

type Row map[Column]string

type Table struct {
	Unit    stoich.Unit
	Columns []Column
	Rows    []Row
}

// Build makes one row per compound. Weight is the calculated weight when there
// is one, else the weight as entered.
func Build(records []stoich.Record, results []stoich.Result, p stoich.Precision) Table {
	var t Table
	if len(records) == 0 {
		return t
	}
	t.Unit = records[0].Unit
	unit := t.Unit.String()
	for i, c := range records {
		var d stoich.Display
		if i < len(results) {
			d = p.Display(results[i])
		}
		row := Row{
			ColSerial:  strconv.Itoa(i + 1),
			ColName:    c.Name,
			ColVolume:  d.Volume,
			ColMW:      c.MW,
			ColMoles:   d.Moles,
			ColEq:      c.Eq,
			ColDensity: c.Density,
		}
		switch {
		case d.Weight != "":
			row[ColWeight] = d.Weight + " " + unit
		case !stoich.IsBlank(c.Weight):
			row[ColWeight] = c.Weight + " " + unit
		}
		t.Rows = append(t.Rows, row)
	}
	for _, c := range columns {
		if !c.optional || t.has(c.Column) {
			t.Columns = append(t.Columns, c.Column)
		}
	}
	return t
}

func (t Table) Has(c Column) bool {
	for _, x := range t.Columns {
		if x == c {
			return true
		}
	}
	return false
}

func (t Table) has(c Column) bool {
	for _, r := range t.Rows {
		if !stoich.IsBlank(r[c]) {
			return true
		}
	}
	return false
}
