package config

import "github.com/fpawel/molcal/internal/stoich"

func Default() Config {
	return Config{
		Database:      "molcal.sqlite",
		StorageKey:    "compoundDatabase",
		ExportFile:    "MolCal.xlsx",
		SheetName:     "MolCal",
		ResetOnEscape: true,
		Precision:     stoich.DefaultPrecision,
	}
}
