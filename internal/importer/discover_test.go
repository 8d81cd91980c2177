package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultKeywords = []string{"extrato", "fatura"}

func TestDiscover_MatchesKeywords(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"extrato", "Faturas-2024", "nubank/extrato_cc", "outros"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, d), 0o755))
	}

	found, err := Discover(dir, defaultKeywords)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Contains(t, found, filepath.Join(dir, "extrato"))
	assert.Contains(t, found, filepath.Join(dir, "Faturas-2024"))
	assert.Contains(t, found, filepath.Join(dir, "nubank", "extrato_cc"))
}

func TestDiscover_CaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "EXTRATO"), 0o755))

	found, err := Discover(dir, defaultKeywords)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestDiscover_SkipsUnreadableDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "extrato"), 0o755))
	locked := filepath.Join(dir, "fechado")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	found, err := Discover(dir, defaultKeywords)
	require.NoError(t, err)
	assert.Contains(t, found, filepath.Join(dir, "extrato"))
}

func TestDiscover_NoMatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "documentos"), 0o755))

	found, err := Discover(dir, defaultKeywords)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScan_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jan.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fev.XLSX"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "fev.XLSX", files[0].Name)
	assert.Equal(t, "jan.csv", files[1].Name)
	assert.Equal(t, filepath.Join(dir, "jan.csv"), files[1].Path)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
