package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

// ReorderReport accumulates recommendations and the total value of flagged orders.
type ReorderReport struct {
	Items []domain.ReorderRecommendation
	total decimal.Decimal
	seen  map[string]struct{}
}

// NewReorderReport creates an empty report.
func NewReorderReport() *ReorderReport {
	return &ReorderReport{seen: make(map[string]struct{})}
}

// Add records a recommendation. Only flagged items are kept; the return value
// reports whether rec was added. Items with an absent cost add nothing to the total.
func (r *ReorderReport) Add(rec domain.ReorderRecommendation) bool {
	if !rec.Flagged() {
		return false
	}

	r.Items = append(r.Items, rec)
	r.seen[itemKey(rec.Item)] = struct{}{}
	if cost, ok := rec.OrderCost.Decimal(); ok {
		r.total = r.total.Add(cost)
	}
	return true
}

// Contains reports whether an item with the given name was already added.
func (r *ReorderReport) Contains(name string) bool {
	_, ok := r.seen[itemKey(name)]
	return ok
}

// Total returns the summed order cost of all flagged items.
func (r *ReorderReport) Total() decimal.Decimal {
	return r.total
}

// TotalFormatted returns Total as currency, e.g. "$1,234.00".
func (r *ReorderReport) TotalFormatted() string {
	return FormatCurrency(r.total)
}

// CountByPriority returns how many added items carry priority p.
func (r *ReorderReport) CountByPriority(p domain.Priority) int {
	n := 0
	for _, it := range r.Items {
		if it.Priority == p {
			n++
		}
	}
	return n
}

func itemKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
