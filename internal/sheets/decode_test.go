package sheets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

func TestDecodeInventory_MapsColumnsByName(t *testing.T) {
	records := [][]string{
		{"Supplier", "Current_Stock", " product name ", "MIN STOCK", "Max Stock", "Cost"},
		{"Beauty Supply Co", "2", "Fenty Beauty Foundation 210", "3", "15", "$18.00"},
		{"", "", "", "", "", ""},
		{"Premium Cosmetics", "abc", "Broken Row", "-4", "10", "n/a"},
	}

	items := DecodeInventory(records)
	require.Len(t, items, 2)

	assert.Equal(t, "Fenty Beauty Foundation 210", items[0].Name)
	assert.Equal(t, 2, items[0].CurrentStock)
	assert.Equal(t, 3, items[0].MinStock)
	assert.Equal(t, 15, items[0].MaxStock)
	assert.Equal(t, "Beauty Supply Co", items[0].Supplier)
	assert.True(t, items[0].UnitCost.Equal(domain.NewAmount(18)))
	assert.False(t, items[0].UnitPrice.Valid())

	assert.Equal(t, 0, items[1].CurrentStock)
	assert.Equal(t, 0, items[1].MinStock)
	assert.False(t, items[1].UnitCost.Valid())
}

func TestDecodeProducts_LenientNumbers(t *testing.T) {
	records := [][]string{
		{"Product Name", "Cost", "Retail Price", "Min Stock", "Max Stock"},
		{"Palette", "1,025.50", "2,000", "2.0", "1,200"},
	}

	products := DecodeProducts(records)
	require.Len(t, products, 1)
	assert.True(t, products[0].Cost.Equal(domain.NewAmount(1025.5)))
	assert.True(t, products[0].Retail.Equal(domain.NewAmount(2000)))
	assert.Equal(t, 2, products[0].MinStock)
	assert.Equal(t, 1200, products[0].MaxStock)
}

func TestDecodeInventory_OversizedNumbers(t *testing.T) {
	records := [][]string{
		{"Product Name", "Current Stock", "Min Stock", "Max Stock"},
		{"Huge", "1e30", "-1e30", "9,999,999,999,999"},
	}

	items := DecodeInventory(records)
	require.Len(t, items, 1)
	assert.Equal(t, math.MaxInt32, items[0].CurrentStock)
	assert.Equal(t, 0, items[0].MinStock)
	assert.Equal(t, math.MaxInt32, items[0].MaxStock)
}

func TestDecodeReorder(t *testing.T) {
	records := [][]string{
		{},
		{"Product Name", "Current Stock", "Min Level", "Reorder To", "Order Qty", "Supplier", "Cost per Unit", "Total Cost"},
		{"Drunk Elephant Vitamin C", "0", "2", "8", "8", "Glamour Wholesale", "28.00", "=E7*G7"},
	}

	lines := DecodeReorder(records)
	require.Len(t, lines, 1)
	assert.Equal(t, "Drunk Elephant Vitamin C", lines[0].Name)
	assert.Equal(t, 0, lines[0].CurrentStock)
	assert.Equal(t, 2, lines[0].MinLevel)
	assert.Equal(t, "Glamour Wholesale", lines[0].Supplier)
	assert.Equal(t, 8, lines[0].ReorderTo)
	assert.True(t, lines[0].UnitCost.Equal(domain.NewAmount(28)))
}

func TestDecodeSuppliers_Rating(t *testing.T) {
	records := [][]string{
		{"Supplier Name", "Rating"},
		{"A", "⭐⭐⭐⭐"},
		{"B", "3/5"},
		{"C", "9"},
		{"D", "great"},
	}

	suppliers := DecodeSuppliers(records)
	require.Len(t, suppliers, 4)
	assert.Equal(t, 4, suppliers[0].Rating)
	assert.Equal(t, 3, suppliers[1].Rating)
	assert.Equal(t, 5, suppliers[2].Rating)
	assert.Equal(t, 0, suppliers[3].Rating)
}

func TestDecodeLayout(t *testing.T) {
	records := [][]string{
		{"kind", "A", "B"},
		{"section", "QUICK STOCK UPDATE", ""},
		{"row", "Date:", "=TODAY()"},
		{"blank"},
		{"mystery", "kept as row"},
		{"row", "", ""},
	}

	rows := DecodeLayout(records)
	require.Len(t, rows, 5)
	assert.Equal(t, domain.LayoutSection, rows[0].Kind)
	assert.Equal(t, []string{"QUICK STOCK UPDATE"}, rows[0].Cells)
	assert.Equal(t, []string{"Date:", "=TODAY()"}, rows[1].Cells)
	assert.Equal(t, domain.LayoutBlank, rows[2].Kind)
	assert.Equal(t, domain.LayoutData, rows[3].Kind)
	assert.Equal(t, domain.LayoutBlank, rows[4].Kind)
}

func TestDecode_EmptyInput(t *testing.T) {
	assert.Empty(t, DecodeInventory(nil))
	assert.Empty(t, DecodeCategories([][]string{}))
	assert.Empty(t, DecodeLayout(nil))
}
