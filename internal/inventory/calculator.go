package inventory

import (
	"math"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

// Classify maps current and minimum stock to a status.
// With minStock == 0 the AtMinimum branch is unreachable: zero stock is
// OutOfStock and anything above it is Healthy.
func Classify(currentStock, minStock int) domain.StockStatus {
	switch {
	case currentStock <= 0:
		return domain.StatusOutOfStock
	case currentStock < minStock:
		return domain.StatusLowStock
	case currentStock == minStock:
		return domain.StatusAtMinimum
	default:
		return domain.StatusHealthy
	}
}

// Margin returns ((price - cost) / price) * 100 rounded to one decimal.
// The second return is false when either amount is absent or price <= 0.
func Margin(cost, price domain.Amount) (float64, bool) {
	c, ok := cost.Decimal()
	if !ok {
		return 0, false
	}
	p, ok := price.Decimal()
	if !ok || !p.IsPositive() {
		return 0, false
	}

	pct := p.Sub(c).Div(p).Mul(hundred).Round(1)
	return pct.InexactFloat64(), true
}

// ReorderPolicy controls where MEDIUM priority ends.
// The buffer is the larger of BufferUnits and BufferPercent of the minimum level.
type ReorderPolicy struct {
	BufferUnits   int
	BufferPercent float64
}

// DefaultReorderPolicy keeps items within two units of their minimum at MEDIUM.
func DefaultReorderPolicy() ReorderPolicy {
	return ReorderPolicy{BufferUnits: 2}
}

// Buffer returns the number of units above minLevel still treated as MEDIUM.
func (p ReorderPolicy) Buffer(minLevel int) int {
	buffer := p.BufferUnits
	if buffer < 0 {
		buffer = 0
	}
	if p.BufferPercent > 0 && minLevel > 0 {
		pct := int(math.Ceil(float64(minLevel) * p.BufferPercent / 100))
		if pct > buffer {
			buffer = pct
		}
	}
	return buffer
}

// ReorderEvaluator computes order quantity, order cost and priority for a single item.
type ReorderEvaluator struct {
	policy ReorderPolicy
}

// NewReorderEvaluator creates a new evaluator for the given policy.
func NewReorderEvaluator(policy ReorderPolicy) *ReorderEvaluator {
	return &ReorderEvaluator{policy: policy}
}

// Policy returns the policy the evaluator was built with.
func (e *ReorderEvaluator) Policy() ReorderPolicy {
	return e.policy
}

// Evaluate computes the recommendation for one item.
func (e *ReorderEvaluator) Evaluate(currentStock, minLevel, reorderTo int, unitCost domain.Amount) domain.ReorderRecommendation {
	qty := reorderTo - currentStock
	if qty < 0 {
		qty = 0
	}

	return domain.ReorderRecommendation{
		CurrentStock:  currentStock,
		MinLevel:      minLevel,
		ReorderTo:     reorderTo,
		UnitCost:      unitCost,
		OrderQuantity: qty,
		OrderCost:     unitCost.Mul(qty),
		Priority:      e.priority(currentStock, minLevel),
	}
}

// EvaluateLine evaluates a row of the Reorder sheet.
func (e *ReorderEvaluator) EvaluateLine(line domain.ReorderLine) domain.ReorderRecommendation {
	rec := e.Evaluate(line.CurrentStock, line.MinLevel, line.ReorderTo, line.UnitCost)
	rec.Item = line.Name
	rec.Supplier = line.Supplier
	return rec
}

// EvaluateItem evaluates an inventory row, reordering up to its maximum stock.
func (e *ReorderEvaluator) EvaluateItem(item domain.InventoryItem) domain.ReorderRecommendation {
	rec := e.Evaluate(item.CurrentStock, item.MinStock, item.MaxStock, item.UnitCost)
	rec.Item = item.Name
	rec.Supplier = item.Supplier
	return rec
}

func (e *ReorderEvaluator) priority(currentStock, minLevel int) domain.Priority {
	switch {
	case currentStock <= 0:
		return domain.PriorityUrgent
	case currentStock < minLevel:
		return domain.PriorityHigh
	case currentStock <= minLevel+e.policy.Buffer(minLevel):
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
