package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

func TestReorderReport(t *testing.T) {
	e := NewReorderEvaluator(DefaultReorderPolicy())
	r := NewReorderReport()

	lines := []domain.ReorderLine{
		{Name: "Drunk Elephant Vitamin C", CurrentStock: 0, MinLevel: 2, ReorderTo: 8, UnitCost: domain.NewAmount(28)},
		{Name: "Fenty Beauty Foundation 210", CurrentStock: 2, MinLevel: 3, ReorderTo: 15, UnitCost: domain.NewAmount(18)},
		{Name: "Urban Decay Eyeshadow Palette", CurrentStock: 1, MinLevel: 2, ReorderTo: 10, UnitCost: domain.NewAmount(25)},
		{Name: "Charlotte Tilbury Lipstick", CurrentStock: 3, MinLevel: 3, ReorderTo: 12, UnitCost: domain.NewAmount(20)},
		{Name: "Plenty In Stock", CurrentStock: 40, MinLevel: 3, ReorderTo: 12, UnitCost: domain.NewAmount(20)},
	}
	for _, l := range lines {
		r.Add(e.EvaluateLine(l))
	}

	require.Len(t, r.Items, 4)
	// 224 + 234 + 225 + 180
	assert.True(t, r.Total().Equal(decimal.NewFromInt(863)), "total %s", r.Total())
	assert.Equal(t, "$863.00", r.TotalFormatted())
	assert.Equal(t, 1, r.CountByPriority(domain.PriorityUrgent))
	assert.Equal(t, 2, r.CountByPriority(domain.PriorityHigh))
	assert.Equal(t, 1, r.CountByPriority(domain.PriorityMedium))
	assert.True(t, r.Contains("  fenty beauty foundation 210 "))
	assert.False(t, r.Contains("Plenty In Stock"))
}

func TestReorderReport_SkipsAbsentCost(t *testing.T) {
	r := NewReorderReport()
	added := r.Add(domain.ReorderRecommendation{Item: "x", OrderQuantity: 3, Priority: domain.PriorityHigh})
	assert.True(t, added)
	assert.True(t, r.Total().IsZero())
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$224.00", FormatCurrency(decimal.NewFromInt(224)))
	assert.Equal(t, "$1,234.50", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$12,847.13", FormatCurrency(decimal.RequireFromString("12847.125")))
	assert.Equal(t, "-$5.25", FormatCurrency(decimal.RequireFromString("-5.25")))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "47.2%", FormatPercent(47.2))
	assert.Equal(t, "50.0%", FormatPercent(50))
}

func TestSummarize(t *testing.T) {
	products := []domain.Product{
		{Name: "MAC Ruby Woo Lipstick", Category: "Lipstick", Cost: domain.NewAmount(12), Retail: domain.NewAmount(24)},
		{Name: "Fenty Beauty Foundation 210", Category: "Foundation", Cost: domain.NewAmount(18), Retail: domain.NewAmount(36)},
		{Name: "No Price", Category: "Skincare", Cost: domain.NewAmount(4)},
	}
	items := []domain.InventoryItem{
		{Name: "MAC Ruby Woo Lipstick", CurrentStock: 12, MinStock: 5, UnitCost: domain.NewAmount(12), DaysToExpiry: 365},
		{Name: "Fenty Beauty Foundation 210", CurrentStock: 2, MinStock: 3, UnitCost: domain.NewAmount(18), DaysToExpiry: 20},
		{Name: "Mystery Item", CurrentStock: 0, MinStock: 1, UnitCost: domain.NewAmount(5)},
	}

	s := Summarize(products, items)
	assert.Equal(t, 3, s.TotalProducts)
	assert.True(t, s.HasMargin)
	assert.Equal(t, 50.0, s.AverageMargin)
	assert.True(t, s.InventoryValue.Equal(decimal.NewFromInt(180)), "value %s", s.InventoryValue)
	assert.Equal(t, 1, s.StatusCounts[domain.StatusHealthy])
	assert.Equal(t, 1, s.StatusCounts[domain.StatusLowStock])
	assert.Equal(t, 1, s.StatusCounts[domain.StatusOutOfStock])
	assert.Equal(t, 1, s.ExpiringSoon)
	assert.True(t, s.ExpiryRiskValue.Equal(decimal.NewFromInt(36)))
	assert.InDelta(t, 33.33, s.StockOutRate(), 0.01)

	require.Len(t, s.Categories, 3)
	assert.Equal(t, "Lipstick", s.Categories[0].Category)
	assert.Equal(t, "Foundation", s.Categories[1].Category)
	assert.Equal(t, "Uncategorized", s.Categories[2].Category)
}
