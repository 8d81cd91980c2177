package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSXFile reads the first sheet of an XLSX workbook.
func readXLSXFile(path string) (*rawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &rawTable{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &rawTable{}, nil
	}
	return &rawTable{header: rows[0], rows: rows[1:]}, nil
}
