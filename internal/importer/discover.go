package importer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo describes a statement file found in a discovered folder.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Discover walks root and returns every directory whose name contains one
// of the keywords, case-insensitive. The comparison is against the
// directory base name only, so "Extratos-2024/" and "nubank/fatura/" both
// match the defaults.
func Discover(root string, keywords []string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Unreadable subdirectories are skipped, not fatal.
			return fs.SkipDir
		}
		if !d.IsDir() || path == root {
			return nil
		}
		name := strings.ToLower(d.Name())
		for _, kw := range keywords {
			if strings.Contains(name, strings.ToLower(kw)) {
				found = append(found, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return found, nil
}

// Scan returns the CSV and XLSX files directly inside dir.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".csv" && ext != ".xlsx" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
