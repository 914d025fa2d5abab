package inventory

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

// ExpiringSoonDays is the horizon used for the "Expiring Soon" metric.
const ExpiringSoonDays = 30

// CategoryValue is the stock value held in one product category.
type CategoryValue struct {
	Category string
	Value    decimal.Decimal
}

// Summary holds the business overview shown on the Dashboard.
type Summary struct {
	TotalProducts   int
	InventoryValue  decimal.Decimal
	AverageMargin   float64
	HasMargin       bool
	StatusCounts    map[domain.StockStatus]int
	ExpiringSoon    int
	ExpiryRiskValue decimal.Decimal
	Categories      []CategoryValue
}

// StockOutRate returns the share of inventory rows that are out of stock, in percent.
func (s Summary) StockOutRate() float64 {
	total := 0
	for _, n := range s.StatusCounts {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(s.StatusCounts[domain.StatusOutOfStock]) / float64(total) * 100
}

// Summarize derives the dashboard metrics from products and inventory rows.
// Inventory rows are joined to products by name to find their category.
func Summarize(products []domain.Product, items []domain.InventoryItem) Summary {
	s := Summary{
		TotalProducts: len(products),
		StatusCounts:  make(map[domain.StockStatus]int, len(domain.StockStatuses)),
	}

	var marginSum float64
	var marginCount int
	categoryOf := make(map[string]string, len(products))
	for _, p := range products {
		categoryOf[strings.ToLower(strings.TrimSpace(p.Name))] = p.Category
		if m, ok := Margin(p.Cost, p.Retail); ok {
			marginSum += m
			marginCount++
		}
	}
	if marginCount > 0 {
		s.HasMargin = true
		s.AverageMargin = decimal.NewFromFloat(marginSum / float64(marginCount)).Round(1).InexactFloat64()
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, it := range items {
		s.StatusCounts[Classify(it.CurrentStock, it.MinStock)]++

		expiring := it.DaysToExpiry > 0 && it.DaysToExpiry <= ExpiringSoonDays
		if expiring {
			s.ExpiringSoon++
		}

		value, ok := it.UnitCost.Mul(it.CurrentStock).Decimal()
		if !ok {
			continue
		}
		s.InventoryValue = s.InventoryValue.Add(value)
		if expiring {
			s.ExpiryRiskValue = s.ExpiryRiskValue.Add(value)
		}

		category := categoryOf[strings.ToLower(strings.TrimSpace(it.Name))]
		if category == "" {
			category = "Uncategorized"
		}
		byCategory[category] = byCategory[category].Add(value)
	}

	for name, v := range byCategory {
		s.Categories = append(s.Categories, CategoryValue{Category: name, Value: v})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		if c := s.Categories[i].Value.Cmp(s.Categories[j].Value); c != 0 {
			return c > 0
		}
		return s.Categories[i].Category < s.Categories[j].Category
	})

	return s
}
