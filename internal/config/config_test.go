package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"extrato", "fatura"}, cfg.Scan.FolderKeywords)
	assert.Equal(t, FieldDate, cfg.Scan.ColumnSynonyms["data"])
	assert.Equal(t, FieldAmount, cfg.Scan.ColumnSynonyms["valor"])
	assert.Equal(t, FieldDescription, cfg.Scan.ColumnSynonyms["descrição"])
	assert.Equal(t, "N/A", cfg.Labels.DescriptionDefault)
	assert.Equal(t, "Movimentação", cfg.Labels.TransactionType)
	assert.Equal(t, "Pagamento", cfg.Labels.ExcludedType)
	assert.Equal(t, 10, cfg.Reports.TopPayees)
	assert.Equal(t, 30, cfg.Reports.HistogramBins)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fluxo.yaml")

	cfg := Default()
	cfg.Reports.TopPayees = 5
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Reports.TopPayees)
	assert.Equal(t, cfg.Scan.ColumnSynonyms, loaded.Scan.ColumnSynonyms)
	assert.Equal(t, cfg.Labels, loaded.Labels)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fluxo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOrDefault(filepath.Join(dir, "fluxo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	custom := Default()
	custom.Logging.Level = "debug"
	path := filepath.Join(dir, "fluxo.yaml")
	require.NoError(t, Save(path, custom))

	cfg, err = LoadOrDefault(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
