package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fluxo-dev/fluxo/internal/config"
	"github.com/fluxo-dev/fluxo/internal/logging"
)

func writeXLSX(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoad_EndToEnd(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "extrato-nubank")
	require.NoError(t, os.MkdirAll(folder, 0o755))

	csv := "Data;Valor;Descri\xe7\xe3o\n01/03/2024;-50,00;Mercado\n05/03/2024;1200,00;Sal\xe1rio\n"
	writeFile(t, folder, "marco.csv", []byte(csv))
	writeXLSX(t, filepath.Join(folder, "abril.xlsx"), [][]any{
		{"Data", "Valor", "Descrição"},
		{"02/04/2024", "-30,50", "Padaria"},
	})

	led, err := Load(root, config.Default(), logging.Nop())
	require.NoError(t, err)
	require.Equal(t, 3, led.Len())

	// Newest first.
	txns := led.All()
	assert.Equal(t, "Padaria", txns[0].Description)
	assert.Equal(t, "-30.5", txns[0].Amount.String())
	assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), txns[0].Date)
	assert.Equal(t, "Salário", txns[1].Description)
	assert.Equal(t, "Mercado", txns[2].Description)
	assert.Equal(t, "-50", txns[2].Amount.String())
}

func TestLoad_NoFolders(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "documentos"), 0o755))

	_, err := Load(root, config.Default(), logging.Nop())
	assert.ErrorIs(t, err, ErrNoFolders)
}

func TestLoad_NoFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "extrato"), 0o755))

	_, err := Load(root, config.Default(), logging.Nop())
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestLoad_NoData(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "fatura")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	writeFile(t, folder, "sem_colunas.csv", []byte("Coluna A,Coluna B\n1,2\n"))

	_, err := Load(root, config.Default(), logging.Nop())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLoad_SkipsBadFileKeepsGood(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "extrato")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	writeFile(t, folder, "bom.csv", []byte("Data,Valor\n01/03/2024,-10.00\n"))
	writeFile(t, folder, "ruim.csv", []byte("Foo,Bar\nx,y\n"))

	led, err := Load(root, config.Default(), logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, led.Len())
}

func TestLoad_MultipleFoldersConcatenate(t *testing.T) {
	root := t.TempDir()
	for i, folder := range []string{"extrato-a", "fatura-b"} {
		dir := filepath.Join(root, folder)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		day := []string{"01/01/2024", "01/02/2024"}[i]
		writeFile(t, dir, "f.csv", []byte("Data,Valor\n"+day+",-10.00\n"+day+",-20.00\n"))
	}

	led, err := Load(root, config.Default(), logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, 4, led.Len())
}
