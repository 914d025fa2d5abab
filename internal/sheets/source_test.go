package sheets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestEmbeddedSource_AllDataSheets(t *testing.T) {
	src := NewEmbeddedSource()
	for _, name := range Order {
		if name == Dashboard {
			continue
		}
		records, err := src.Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, records, name)
	}

	_, err := src.Load(Dashboard)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestEmbeddedSource_SampleInventory(t *testing.T) {
	records, err := NewEmbeddedSource().Load(Inventory)
	require.NoError(t, err)

	items := DecodeInventory(records)
	require.Len(t, items, 6)
	assert.Equal(t, "MAC Ruby Woo Lipstick", items[0].Name)
	assert.Equal(t, 12, items[0].CurrentStock)
}

func TestDirSource_CSV(t *testing.T) {
	dir := t.TempDir()
	content := "Product Name,Current Stock\nWidget,4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Inventory.csv"), []byte(content), 0o644))

	records, err := NewDirSource(dir).Load(Inventory)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Product Name", "Current Stock"}, {"Widget", "4"}}, records)
}

func TestDirSource_XLSXFallback(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Product Name", "Current Stock", "Min Level"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Widget", 0, 2}))
	require.NoError(t, f.SaveAs(filepath.Join(dir, "Reorder.xlsx")))
	require.NoError(t, f.Close())

	records, err := NewDirSource(dir).Load(Reorder)
	require.NoError(t, err)

	lines := DecodeReorder(records)
	require.Len(t, lines, 1)
	assert.Equal(t, "Widget", lines[0].Name)
	assert.Equal(t, 2, lines[0].MinLevel)
}

func TestDirSource_Missing(t *testing.T) {
	_, err := NewDirSource(t.TempDir()).Load(Suppliers)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestDirSource_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Products.csv"), []byte("a,\"b\nc"), 0o644))

	_, err := NewDirSource(dir).Load(Products)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSheetNotFound)
}
