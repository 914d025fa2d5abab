package workbook

import (
	"fmt"
	"strings"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
	"github.com/andresuchdata/beautypro-inventory/internal/inventory"
)

const dashboardSpan = 10

var quickActions = []string{"➕ Add Product", "🔄 Update Stock", "📊 View Reports", "📱 Mobile Entry"}

func (g *Generator) writeDashboard(w *sheetWriter, report *Report) int {
	s := report.Summary

	w.title("🏠 "+strings.ToUpper(g.opts.Brand)+" DASHBOARD", dashboardSpan)
	w.subtitle(g.lastUpdated())

	w.section(1, 4, "📊 BUSINESS OVERVIEW")
	avgMargin := "n/a"
	if s.HasMargin {
		avgMargin = inventory.FormatPercent(s.AverageMargin)
	}
	lowStock := s.StatusCounts[domain.StatusLowStock] + s.StatusCounts[domain.StatusAtMinimum]
	metrics := []struct {
		label1 string
		value1 interface{}
		label2 string
		value2 interface{}
	}{
		{"Total Products", s.TotalProducts, "Low Stock Items", lowStock},
		{"Inventory Value", inventory.FormatCurrency(s.InventoryValue), "Expiring Soon", s.ExpiringSoon},
		{"Avg Profit Margin", avgMargin, "Stock-out Rate", inventory.FormatPercent(s.StockOutRate())},
		{"Reorder Value", report.Reorder.TotalFormatted(), "Expiry Risk Value", inventory.FormatCurrency(s.ExpiryRiskValue)},
	}
	for i, m := range metrics {
		row := 6 + i
		w.value(1, row, m.label1, dataStyle)
		w.value(2, row, m.value1, totalStyle.withAlign("right"))
		w.value(4, row, m.label2, dataStyle)
		w.value(5, row, m.value2, totalStyle.withAlign("right"))
	}

	w.section(7, 4, "📈 QUICK ACTIONS")
	for i, a := range quickActions {
		w.value(7, 6+i, a, plainStyle)
	}

	w.section(1, 11, "📈 STOCK STATUS DISTRIBUTION")
	for i, status := range domain.StockStatuses {
		row := 13 + i
		cs := dataStyle.withFill(statusFill(status))
		w.value(1, row, status.Label(), cs)
		w.value(2, row, s.StatusCounts[status], cs)
	}

	w.section(4, 11, "📊 CATEGORY PERFORMANCE")
	for i, c := range s.Categories {
		row := 13 + i
		w.value(4, row, c.Category, dataStyle)
		w.value(5, row, c.Value.Round(2).InexactFloat64(), dataStyle.withNumFmt(numFmtCurrency))
	}

	w.section(7, 11, "⚠️ ALERTS & NOTIFICATIONS")
	for i, alert := range dashboardAlerts(report) {
		w.value(7, 13+i, alert, plainStyle)
	}

	return len(metrics) + len(domain.StockStatuses) + len(s.Categories)
}

// dashboardAlerts builds the alert lines from the computed counts.
func dashboardAlerts(report *Report) []string {
	s := report.Summary
	var alerts []string
	if n := s.StatusCounts[domain.StatusOutOfStock]; n > 0 {
		alerts = append(alerts, fmt.Sprintf("🔴 %d %s Out of Stock", n, plural(n, "Product", "Products")))
	}
	if n := len(report.Reorder.Items); n > 0 {
		alerts = append(alerts, fmt.Sprintf("🟡 %d %s Reordering", n, plural(n, "Item Needs", "Items Need")))
	}
	if s.ExpiringSoon > 0 {
		alerts = append(alerts, fmt.Sprintf("⏰ %d %s Expiring Within %d Days",
			s.ExpiringSoon, plural(s.ExpiringSoon, "Item", "Items"), inventory.ExpiringSoonDays))
	}
	if len(report.Failed()) > 0 {
		alerts = append(alerts, fmt.Sprintf("📦 %d %s Could Not Be Loaded",
			len(report.Failed()), plural(len(report.Failed()), "Sheet", "Sheets")))
	}
	if len(alerts) == 0 {
		alerts = append(alerts, "🟢 All stock levels healthy")
	}
	return alerts
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (g *Generator) lastUpdated() string {
	return "Last Updated: " + g.opts.Now().Format("2006-01-02 15:04")
}
