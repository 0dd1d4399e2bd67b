package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// csvWorkbook reads a directory holding one <sheet>.csv per sheet.
// This is the fallback container for spreadsheets exported from tools
// that cannot write .xlsx.
type csvWorkbook struct {
	dir string
}

func openCSVDir(dir string) (Workbook, error) {
	return &csvWorkbook{dir: dir}, nil
}

func (w *csvWorkbook) Rows(name string) ([][]string, error) {
	path := filepath.Join(w.dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows have variable trailing columns
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return rows, nil
}

func (w *csvWorkbook) Close() error {
	return nil
}
