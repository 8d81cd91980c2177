// Package importer discovers statement folders, reads their CSV/XLSX
// exports and normalizes them into ledger rows. Individual bad files are
// skipped with a warning; the run only fails when nothing usable exists.
package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fluxo-dev/fluxo/internal/config"
	"github.com/fluxo-dev/fluxo/internal/ledger"
	"github.com/fluxo-dev/fluxo/internal/model"
)

// Terminal conditions: nothing to build a ledger from.
var (
	ErrNoFolders = errors.New("no statement folder found")
	ErrNoFiles   = errors.New("no CSV or XLSX files found in statement folders")
	ErrNoData    = errors.New("no file yielded the required date and amount columns")
)

// Load runs the full pipeline: discover folders under root, read every
// statement file, normalize columns and assemble the ledger. The config
// supplies folder keywords, the column synonym table and the constant
// row labels.
func Load(root string, cfg *config.Config, log *zap.SugaredLogger) (*ledger.Ledger, error) {
	folders, err := Discover(root, cfg.Scan.FolderKeywords)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, fmt.Errorf("%w under %s (keywords: %s)",
			ErrNoFolders, root, strings.Join(cfg.Scan.FolderKeywords, ", "))
	}

	var txns []model.Transaction
	sawFile := false
	for _, folder := range folders {
		files, err := Scan(folder)
		if err != nil {
			log.Errorw("skipping unreadable folder", "folder", folder, "error", err)
			continue
		}
		if len(files) == 0 {
			log.Warnw("no statement files in folder", "folder", folder)
			continue
		}
		sawFile = true

		for _, file := range files {
			log.Infow("reading statement file", "file", file.Path, "size", file.Size)
			rows, err := loadFile(file, cfg, log)
			if err != nil {
				log.Errorw("skipping unreadable file", "file", file.Path, "error", err)
				continue
			}
			txns = append(txns, rows...)
		}
	}

	if !sawFile {
		return nil, ErrNoFiles
	}
	if len(txns) == 0 {
		return nil, ErrNoData
	}
	return ledger.New(txns), nil
}

// loadFile reads and normalizes one statement file. A missing-columns
// header is reported as a skip (warning), not an error.
func loadFile(file FileInfo, cfg *config.Config, log *zap.SugaredLogger) ([]model.Transaction, error) {
	var (
		tbl *rawTable
		err error
	)
	switch strings.ToLower(filepath.Ext(file.Name)) {
	case ".csv":
		tbl, err = readCSVFile(file.Path)
	case ".xlsx":
		tbl, err = readXLSXFile(file.Path)
	default:
		return nil, fmt.Errorf("unsupported extension %s", filepath.Ext(file.Name))
	}
	if err != nil {
		return nil, err
	}
	if tbl.empty() {
		log.Warnw("file is empty or headerless", "file", file.Path)
		return nil, nil
	}

	cols, err := mapColumns(tbl.header, cfg.Scan.ColumnSynonyms)
	if err != nil {
		var missing errMissingColumns
		if errors.As(err, &missing) {
			log.Warnw("file skipped: required columns not found",
				"file", file.Path, "header", missing.header)
			return nil, nil
		}
		return nil, err
	}

	txns, dropped := normalizeTable(tbl, cols, cfg)
	if dropped > 0 {
		log.Warnw("dropped rows with unparsable date or amount",
			"file", file.Path, "dropped", dropped, "kept", len(txns))
	}
	return txns, nil
}
