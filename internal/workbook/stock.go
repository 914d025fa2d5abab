package workbook

import (
	"github.com/andresuchdata/beautypro-inventory/internal/domain"
	"github.com/andresuchdata/beautypro-inventory/internal/inventory"
)

var inventoryHeaders = []string{"Product Name", "Current Stock", "Min Stock", "Max Stock", "Reorder Level", "Status", "Days to Expiry", "Last Updated", "Location", "Cost", "Retail", "Total Value", "Reorder Qty", "Supplier", "Action"}

var reorderHeaders = []string{"Product Name", "Current Stock", "Min Level", "Reorder To", "Order Qty", "Supplier", "Cost per Unit", "Total Cost", "Priority", "Action"}

// Inventory columns referenced by formulas.
const (
	invColCurrent = 2
	invColMin     = 3
	invColMax     = 4
	invColCost    = 10
)

func (g *Generator) writeInventory(w *sheetWriter, items []domain.InventoryItem) int {
	w.title("📦 LIVE INVENTORY", len(inventoryHeaders))
	w.subtitle(g.lastUpdated())
	w.header(headerRow, inventoryHeaders)
	w.freezeBelow(headerRow)

	currency := dataStyle.withNumFmt(numFmtCurrency)
	for i, it := range items {
		row := firstDataRow + i
		current := w.cellName(invColCurrent, row)
		min := w.cellName(invColMin, row)
		status := inventory.Classify(it.CurrentStock, it.MinStock)

		w.value(1, row, it.Name, dataStyle)
		w.value(invColCurrent, row, it.CurrentStock, dataStyle)
		w.value(invColMin, row, it.MinStock, dataStyle)
		w.value(invColMax, row, it.MaxStock, dataStyle)
		w.value(5, row, it.ReorderLevel, dataStyle)
		w.formula(6, row, statusFormula(current, min), dataStyle.withFill(statusFill(status)), status.Label())
		w.value(7, row, it.DaysToExpiry, dataStyle)
		w.value(8, row, it.LastUpdated, dataStyle)
		w.value(9, row, it.Location, dataStyle)
		w.value(invColCost, row, amountValue(it.UnitCost), currency)
		w.value(11, row, amountValue(it.UnitPrice), currency)
		w.formula(12, row, productFormula(current, w.cellName(invColCost, row)), currency, it.UnitCost.Mul(it.CurrentStock).String())
		w.formula(13, row, orderQtyFormula(w.cellName(invColMax, row), current), dataStyle, "")
		w.value(14, row, it.Supplier, dataStyle)
		w.formula(15, row, stockActionFormula(current, min), dataStyle.withFill(statusFill(status)), status.Action())
	}
	return len(items)
}

// Reorder columns referenced by formulas.
const (
	roColCurrent = 2
	roColMin     = 3
	roColTo      = 4
	roColQty     = 5
	roColCost    = 7
	roColTotal   = 8
)

func (g *Generator) writeReorder(w *sheetWriter, report *inventory.ReorderReport) int {
	policy := g.evaluator.Policy()

	w.title("🔄 REORDER DASHBOARD", len(reorderHeaders))
	w.subtitle(g.lastUpdated())
	w.header(headerRow, reorderHeaders)
	w.freezeBelow(headerRow)

	for i, rec := range report.Items {
		row := firstDataRow + i
		current := w.cellName(roColCurrent, row)
		min := w.cellName(roColMin, row)

		cs := dataStyle.withFill(priorityFill(rec.Priority))
		w.value(1, row, rec.Item, cs)
		w.value(roColCurrent, row, rec.CurrentStock, cs)
		w.value(roColMin, row, rec.MinLevel, cs)
		w.value(roColTo, row, rec.ReorderTo, cs)
		w.formula(roColQty, row, orderQtyFormula(w.cellName(roColTo, row), current), cs, "")
		w.value(6, row, rec.Supplier, cs)
		w.value(roColCost, row, amountValue(rec.UnitCost), cs.withNumFmt(numFmtCurrency))
		w.formula(roColTotal, row, productFormula(w.cellName(roColQty, row), w.cellName(roColCost, row)),
			cs.withNumFmt(numFmtCurrency), rec.OrderCost.String())
		w.formula(9, row, priorityFormula(current, min, policy), cs, rec.Priority.Label())
		w.formula(10, row, priorityActionFormula(current, min, policy), cs, rec.Priority.Action())
	}

	last := firstDataRow + len(report.Items) - 1
	row := last + 2
	if len(report.Items) == 0 {
		row = firstDataRow + 1
		w.value(1, firstDataRow, "Nothing needs reordering", plainStyle)
	}
	w.value(4, row, "Total Order Value:", totalStyle)
	w.value(5, row, report.TotalFormatted(), totalStyle.withAlign("right"))
	w.value(7, row, "Sum:", totalStyle)
	if len(report.Items) > 0 {
		w.formula(roColTotal, row, sumFormula(w.cellName(roColTotal, firstDataRow), w.cellName(roColTotal, last)), totalStyle.withNumFmt(numFmtCurrency), "")
	} else {
		w.value(roColTotal, row, 0, totalStyle.withNumFmt(numFmtCurrency))
	}
	return len(report.Items)
}
