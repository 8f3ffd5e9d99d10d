package excel

import (
	"os"
	"path/filepath"
	"testing"

	"godraft/domain/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeTempXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadTableCSV(t *testing.T) {
	path := writeTempCSV(t, "contract_id,party_name,amount\nC-1, Acme ,100\nC-2,Beta,\n")

	table, err := NewDataReader(path).ReadTable()
	require.NoError(t, err)

	assert.Equal(t, []string{"contract_id", "party_name", "amount"}, table.Headers)
	require.Len(t, table.Rows, 2)
	// Cells are trimmed
	assert.Equal(t, contract.RawRow{"contract_id": "C-1", "party_name": "Acme", "amount": "100"}, table.Rows[0])
	assert.Equal(t, contract.RawRow{"contract_id": "C-2", "party_name": "Beta", "amount": ""}, table.Rows[1])
}

func TestReadTableCSVShortRowsArePadded(t *testing.T) {
	path := writeTempCSV(t, "a,b,c\n1\n")

	table, err := NewDataReader(path).ReadTable()
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, contract.RawRow{"a": "1", "b": "", "c": ""}, table.Rows[0])
}

func TestReadTableXLSX(t *testing.T) {
	path := writeTempXLSX(t, [][]interface{}{
		{"contract_id", "party_name"},
		{"C-1", "Acme"},
		{"C-2", "Beta"},
	})

	table, err := NewDataReader(path).ReadTable()
	require.NoError(t, err)

	assert.Equal(t, []string{"contract_id", "party_name"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Acme", table.Rows[0]["party_name"])
	assert.Equal(t, "C-2", table.Rows[1]["contract_id"])
}

func TestReadTableHeaderOnlyYieldsEmptyRows(t *testing.T) {
	// The empty-dataset check belongs to the orchestrator, not the reader
	path := writeTempCSV(t, "contract_id,party_name\n")

	table, err := NewDataReader(path).ReadTable()
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
	assert.Equal(t, []string{"contract_id", "party_name"}, table.Headers)
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "absent.xlsx")).ReadTable()
	assert.Error(t, err)
}

func TestNewDataReaderDispatchesOnExtension(t *testing.T) {
	assert.Equal(t, "csv", NewDataReader("/tmp/data.CSV").fileType)
	assert.Equal(t, "xlsx", NewDataReader("/tmp/data.xlsx").fileType)
	assert.Equal(t, "xlsx", NewDataReader("/tmp/data").fileType)
}
