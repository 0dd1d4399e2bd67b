package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// xlsxWorkbook adapts an excelize file to the Workbook interface.
type xlsxWorkbook struct {
	f *excelize.File
}

func openXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	return &xlsxWorkbook{f: f}, nil
}

func (w *xlsxWorkbook) Rows(name string) ([][]string, error) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return rows, nil
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}
