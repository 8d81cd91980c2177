package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// rawTable is a parsed tabular file before column normalization.
type rawTable struct {
	header []string
	rows   [][]string
}

func (t *rawTable) empty() bool {
	return t == nil || len(t.header) == 0 || len(t.rows) == 0
}

// readCSVFile reads a statement CSV. First try: UTF-8 with comma
// delimiter. If that fails, or produces a single-column header, or the
// bytes are not valid UTF-8, retry once as Latin-1 with semicolon
// delimiter. No further attempts are made.
func readCSVFile(path string) (*rawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}

	if utf8.Valid(data) {
		tbl, err := parseCSV(string(data), ',')
		if err == nil && len(tbl.header) >= 2 {
			return tbl, nil
		}
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding latin-1: %w", err)
	}
	tbl, err := parseCSV(string(decoded), ';')
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	return tbl, nil
}

func parseCSV(data string, comma rune) (*rawTable, error) {
	cr := csv.NewReader(strings.NewReader(data))
	cr.Comma = comma
	cr.FieldsPerRecord = -1 // bank exports pad rows inconsistently
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &rawTable{}, nil
	}
	return &rawTable{header: records[0], rows: records[1:]}, nil
}
