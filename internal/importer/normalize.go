package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/config"
	"github.com/fluxo-dev/fluxo/internal/model"
)

// columnMap locates the canonical columns in a raw header after synonym
// mapping. Description is optional (-1 when absent).
type columnMap struct {
	date        int
	amount      int
	description int
}

// errMissingColumns marks a file that lacks Date or Amount after mapping.
// Such files are skipped, not fatal.
type errMissingColumns struct {
	header []string
}

func (e errMissingColumns) Error() string {
	return fmt.Sprintf("required columns not found, header was %v", e.header)
}

// mapColumns lowercases and trims every header cell, maps it through the
// synonym table and records where the canonical fields landed. The first
// match wins when a file repeats a synonym.
func mapColumns(header []string, synonyms map[string]string) (columnMap, error) {
	cols := columnMap{date: -1, amount: -1, description: -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch synonyms[key] {
		case config.FieldDate:
			if cols.date < 0 {
				cols.date = i
			}
		case config.FieldAmount:
			if cols.amount < 0 {
				cols.amount = i
			}
		case config.FieldDescription:
			if cols.description < 0 {
				cols.description = i
			}
		}
	}
	if cols.date < 0 || cols.amount < 0 {
		return cols, errMissingColumns{header: header}
	}
	return cols, nil
}

// Day-first layouts tried in order. Time-of-day variants come after their
// date-only counterparts; any parsed time or zone is discarded.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02",
	"02/01/06",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
}

// parseDate parses a day-first statement date, returning the calendar day
// at midnight UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

// parseAmount parses Brazilian and anglo monetary strings: "R$ 1.234,56",
// "-50,00", "1,234.56", "(12.30)". The last separator decides which one
// is the decimal mark.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}
	s = strings.TrimPrefix(s, "+")

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastComma > lastDot:
		// decimal comma, dots are thousands
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case lastComma >= 0:
		// decimal dot, commas are thousands
		s = strings.ReplaceAll(s, ",", "")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparsable amount %q: %w", s, err)
	}
	if neg {
		amount = amount.Neg()
	}
	return amount, nil
}

// normalizeTable converts a raw table into ledger rows. Rows whose date or
// amount cannot be parsed are dropped silently; the dropped count is
// returned for diagnostics.
func normalizeTable(tbl *rawTable, cols columnMap, cfg *config.Config) (txns []model.Transaction, dropped int) {
	for _, row := range tbl.rows {
		if cols.date >= len(row) || cols.amount >= len(row) {
			dropped++
			continue
		}

		date, err := parseDate(row[cols.date])
		if err != nil {
			dropped++
			continue
		}
		amount, err := parseAmount(row[cols.amount])
		if err != nil {
			dropped++
			continue
		}

		description := cfg.Labels.DescriptionDefault
		if cols.description >= 0 && cols.description < len(row) {
			if d := strings.TrimSpace(row[cols.description]); d != "" {
				description = d
			}
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Amount:      amount,
			Description: description,
			Type:        cfg.Labels.TransactionType,
			Category:    cfg.Labels.Category,
		})
	}
	return txns, dropped
}
