package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadCSVFile_UTF8Comma(t *testing.T) {
	path := writeFile(t, t.TempDir(), "extrato.csv",
		[]byte("Data,Valor,Descrição\n01/03/2024,-50.00,Mercado\n02/03/2024,1200.00,Salário\n"))

	tbl, err := readCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Valor", "Descrição"}, tbl.header)
	require.Len(t, tbl.rows, 2)
	assert.Equal(t, []string{"01/03/2024", "-50.00", "Mercado"}, tbl.rows[0])
}

func TestReadCSVFile_Latin1Semicolon(t *testing.T) {
	// "Descrição" and "Salário" encoded as Latin-1 (ç=0xE7, ã=0xE3, á=0xE1).
	data := []byte("Data;Valor;Descri\xe7\xe3o\n01/03/2024;-50,00;Mercado\n02/03/2024;1200,00;Sal\xe1rio\n")
	path := writeFile(t, t.TempDir(), "fatura.csv", data)

	tbl, err := readCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Valor", "Descrição"}, tbl.header)
	require.Len(t, tbl.rows, 2)
	assert.Equal(t, []string{"01/03/2024", "-50,00", "Mercado"}, tbl.rows[0])
	assert.Equal(t, "Salário", tbl.rows[1][2])
}

func TestReadCSVFile_UTF8SemicolonFallsBack(t *testing.T) {
	// Valid UTF-8 but semicolon-delimited: the comma attempt yields a
	// single-column header, so the Latin-1/semicolon retry kicks in. The
	// header comes out mojibaked, which the synonym table covers.
	data := []byte("Data;Valor;Descrição\n01/03/2024;-50,00;Mercado\n")
	path := writeFile(t, t.TempDir(), "extrato.csv", data)

	tbl, err := readCSVFile(path)
	require.NoError(t, err)
	require.Len(t, tbl.header, 3)
	assert.Equal(t, "DescriÃ§Ã£o", tbl.header[2])
	assert.Equal(t, []string{"01/03/2024", "-50,00", "Mercado"}, tbl.rows[0])
}

func TestReadCSVFile_Empty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "vazio.csv", nil)

	tbl, err := readCSVFile(path)
	require.NoError(t, err)
	assert.True(t, tbl.empty())
}

func TestReadCSVFile_Missing(t *testing.T) {
	_, err := readCSVFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadCSVFile_RaggedRows(t *testing.T) {
	data := []byte("Data,Valor,Descrição\n01/03/2024,-50.00\n02/03/2024,10.00,Padaria,extra\n")
	path := writeFile(t, t.TempDir(), "extrato.csv", data)

	tbl, err := readCSVFile(path)
	require.NoError(t, err)
	require.Len(t, tbl.rows, 2)
	assert.Len(t, tbl.rows[0], 2)
	assert.Len(t, tbl.rows[1], 4)
}
