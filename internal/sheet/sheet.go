// Package sheet owns the raw-cell boundary between spreadsheet
// container formats and the import pipeline. Everything above this
// package works on [][]string rows and does not care whether the cells
// came from an .xlsx workbook or a directory of .csv files.
package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sheet names the importer expects in every workbook.
const (
	GamesSheet   = "Games"
	PlayersSheet = "Players"
	ResultsSheet = "Results"
)

// Workbook provides raw cell access to one spreadsheet container.
type Workbook interface {
	// Rows returns the named sheet's cells as rendered strings, one
	// slice per row. Trailing empty cells may be absent.
	Rows(name string) ([][]string, error)
	Close() error
}

// Open picks the adapter for a workbook path: a directory is read as
// one .csv file per sheet, a .xlsx/.xlsm file via excelize.
func Open(path string) (Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	if info.IsDir() {
		return openCSVDir(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return openXLSX(path)
	case ".csv":
		return nil, fmt.Errorf("open workbook: a single .csv holds one sheet; pass a directory of per-sheet .csv files")
	default:
		return nil, fmt.Errorf("open workbook: unsupported file type %q", filepath.Ext(path))
	}
}
