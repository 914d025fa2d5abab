package workbook

import (
	"strings"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

var categoryHeaders = []string{"Category Name", "Description", "Target Margin %", "Reorder Days", "Status", "Products Count", "Last Updated", "Notes"}

var supplierHeaders = []string{"Supplier Name", "Contact Person", "Email", "Phone", "Lead Time (Days)", "Payment Terms", "Categories", "Rating", "Last Order", "Notes"}

var productHeaders = []string{"Product Name", "Brand", "Category", "SKU", "Supplier", "Cost", "Retail Price", "Margin %", "Barcode", "Expiry Date", "Min Stock", "Max Stock", "Location", "Notes"}

func (g *Generator) writeCategories(w *sheetWriter, categories []domain.Category) int {
	w.title("📂 MY CATEGORIES", len(categoryHeaders))
	w.subtitle(g.lastUpdated())
	w.header(headerRow, categoryHeaders)
	w.freezeBelow(headerRow)

	for i, c := range categories {
		row := firstDataRow + i
		w.value(1, row, c.Name, dataStyle)
		w.value(2, row, c.Description, dataStyle)
		w.value(3, row, c.TargetMargin, dataStyle.withAlign("right"))
		w.value(4, row, c.ReorderDays, dataStyle)
		w.value(5, row, categoryStatus(c.Status), dataStyle)
		w.value(6, row, c.ProductsCount, dataStyle)
		w.value(7, row, c.LastUpdated, dataStyle)
		w.value(8, row, c.Notes, dataStyle)
	}
	return len(categories)
}

func categoryStatus(s string) string {
	if strings.EqualFold(s, "active") {
		return "✅ Active"
	}
	return s
}

func (g *Generator) writeSuppliers(w *sheetWriter, suppliers []domain.Supplier) int {
	w.title("🏪 MY SUPPLIERS", len(supplierHeaders))
	w.subtitle(g.lastUpdated())
	w.header(headerRow, supplierHeaders)
	w.freezeBelow(headerRow)

	for i, s := range suppliers {
		row := firstDataRow + i
		w.value(1, row, s.Name, dataStyle)
		w.value(2, row, s.ContactPerson, dataStyle)
		w.value(3, row, s.Email, dataStyle)
		w.value(4, row, s.Phone, dataStyle)
		w.value(5, row, s.LeadTimeDays, dataStyle)
		w.value(6, row, s.PaymentTerms, dataStyle)
		w.value(7, row, s.Categories, dataStyle)
		w.value(8, row, strings.Repeat("⭐", s.Rating), dataStyle)
		w.value(9, row, s.LastOrder, dataStyle)
		w.value(10, row, s.Notes, dataStyle)
	}
	return len(suppliers)
}

func (g *Generator) writeProducts(w *sheetWriter, products []domain.Product) int {
	w.title("💄 MY PRODUCTS", len(productHeaders))
	w.subtitle(g.lastUpdated())
	w.header(headerRow, productHeaders)
	w.freezeBelow(headerRow)

	currency := dataStyle.withNumFmt(numFmtCurrency)
	for i, p := range products {
		row := firstDataRow + i
		w.value(1, row, p.Name, dataStyle)
		w.value(2, row, p.Brand, dataStyle)
		w.value(3, row, p.Category, dataStyle)
		w.value(4, row, p.SKU, dataStyle)
		w.value(5, row, p.Supplier, dataStyle)
		w.value(6, row, amountValue(p.Cost), currency)
		w.value(7, row, amountValue(p.Retail), currency)
		w.formula(8, row, marginFormula(w.cellName(6, row), w.cellName(7, row)), dataStyle.withNumFmt(numFmtPercent), "100.0%")
		w.value(9, row, p.Barcode, dataStyle)
		w.value(10, row, p.ExpiryDate, dataStyle)
		w.value(11, row, p.MinStock, dataStyle)
		w.value(12, row, p.MaxStock, dataStyle)
		w.value(13, row, p.Location, dataStyle)
		w.value(14, row, p.Notes, dataStyle)
	}

	if len(products) > 0 {
		last := firstDataRow + len(products) - 1
		row := last + 2
		w.value(1, row, "TOTALS:", totalStyle)
		w.formula(2, row, "COUNTA("+w.cellName(1, firstDataRow)+":"+w.cellName(1, last)+")", totalStyle, "")
		w.value(7, row, "Avg Margin", totalStyle)
		w.formula(8, row, `IFERROR(ROUND(AVERAGE(`+w.cellName(8, firstDataRow)+":"+w.cellName(8, last)+`),1),"")`,
			totalStyle.withNumFmt(numFmtPercent), "")
	}
	return len(products)
}

// amountValue returns nil for an absent amount so the cell stays blank.
func amountValue(a domain.Amount) interface{} {
	if !a.Valid() {
		return nil
	}
	return a.Float64()
}
