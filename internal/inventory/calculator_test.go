package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		current int
		min     int
		want    domain.StockStatus
	}{
		{"zero stock zero min", 0, 0, domain.StatusOutOfStock},
		{"zero stock", 0, 5, domain.StatusOutOfStock},
		{"below minimum", 2, 3, domain.StatusLowStock},
		{"at minimum", 5, 5, domain.StatusAtMinimum},
		{"above minimum", 10, 5, domain.StatusHealthy},
		{"no minimum", 1, 0, domain.StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.current, tt.min))
		})
	}
}

func TestClassify_OutOfStockForAnyMinimum(t *testing.T) {
	for min := 0; min <= 50; min++ {
		assert.Equal(t, domain.StatusOutOfStock, Classify(0, min), "min=%d", min)
	}
}

func TestStockStatusActions(t *testing.T) {
	assert.Equal(t, "URGENT ORDER", Classify(0, 3).Action())
	assert.Equal(t, "ORDER NOW", Classify(2, 3).Action())
	assert.Equal(t, "Monitor", Classify(3, 3).Action())
	assert.Equal(t, "Continue", Classify(4, 3).Action())
	assert.Equal(t, "Low Stock", Classify(2, 3).Label())
}

func TestMargin(t *testing.T) {
	got, ok := Margin(domain.NewAmount(12), domain.NewAmount(24))
	require.True(t, ok)
	assert.Equal(t, 50.0, got)

	got, ok = Margin(domain.NewAmount(45), domain.NewAmount(89))
	require.True(t, ok)
	assert.Equal(t, 49.4, got)

	got, ok = Margin(domain.NewAmount(4.5), domain.NewAmount(12))
	require.True(t, ok)
	assert.Equal(t, 62.5, got)
}

func TestMargin_Absent(t *testing.T) {
	tests := []struct {
		name  string
		cost  domain.Amount
		price domain.Amount
	}{
		{"zero cost zero price", domain.NewAmount(0), domain.NewAmount(0)},
		{"zero price", domain.NewAmount(18), domain.NewAmount(0)},
		{"negative price", domain.NewAmount(18), domain.NewAmount(-3)},
		{"missing cost", domain.Amount{}, domain.NewAmount(24)},
		{"missing price", domain.NewAmount(12), domain.Amount{}},
		{"non numeric", domain.ParseAmount("n/a"), domain.ParseAmount("24")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Margin(tt.cost, tt.price)
			assert.False(t, ok)
		})
	}
}

func TestEvaluate(t *testing.T) {
	e := NewReorderEvaluator(DefaultReorderPolicy())

	rec := e.Evaluate(0, 2, 8, domain.NewAmount(28))
	assert.Equal(t, 8, rec.OrderQuantity)
	assert.True(t, rec.OrderCost.Equal(domain.NewAmount(224)), "cost %s", rec.OrderCost)
	assert.Equal(t, domain.PriorityUrgent, rec.Priority)

	rec = e.Evaluate(3, 3, 12, domain.NewAmount(20))
	assert.Equal(t, 9, rec.OrderQuantity)
	assert.True(t, rec.OrderCost.Equal(domain.NewAmount(180)), "cost %s", rec.OrderCost)
	assert.Equal(t, domain.PriorityMedium, rec.Priority)

	rec = e.Evaluate(2, 3, 15, domain.NewAmount(18))
	assert.Equal(t, 13, rec.OrderQuantity)
	assert.Equal(t, domain.PriorityHigh, rec.Priority)

	rec = e.Evaluate(20, 3, 15, domain.NewAmount(18))
	assert.Equal(t, 0, rec.OrderQuantity)
	assert.True(t, rec.OrderCost.Equal(domain.NewAmount(0)))
	assert.Equal(t, domain.PriorityLow, rec.Priority)
	assert.False(t, rec.Flagged())
}

func TestEvaluate_MissingCost(t *testing.T) {
	rec := NewReorderEvaluator(DefaultReorderPolicy()).Evaluate(1, 2, 10, domain.ParseAmount(""))
	assert.Equal(t, 9, rec.OrderQuantity)
	assert.False(t, rec.OrderCost.Valid())
}

func TestReorderPolicy_Buffer(t *testing.T) {
	assert.Equal(t, 2, DefaultReorderPolicy().Buffer(10))
	assert.Equal(t, 0, ReorderPolicy{}.Buffer(10))
	assert.Equal(t, 3, ReorderPolicy{BufferUnits: 1, BufferPercent: 25}.Buffer(10))
	assert.Equal(t, 5, ReorderPolicy{BufferUnits: 5, BufferPercent: 25}.Buffer(10))
	assert.Equal(t, 0, ReorderPolicy{BufferUnits: -4}.Buffer(10))

	e := NewReorderEvaluator(ReorderPolicy{})
	assert.Equal(t, domain.PriorityMedium, e.Evaluate(3, 3, 12, domain.NewAmount(20)).Priority)
	assert.Equal(t, domain.PriorityLow, e.Evaluate(4, 3, 12, domain.NewAmount(20)).Priority)

	e = NewReorderEvaluator(ReorderPolicy{BufferUnits: 2})
	assert.Equal(t, domain.PriorityMedium, e.Evaluate(5, 3, 12, domain.NewAmount(20)).Priority)
	assert.Equal(t, domain.PriorityLow, e.Evaluate(6, 3, 12, domain.NewAmount(20)).Priority)
}

func TestPureFunctionsAreIdempotent(t *testing.T) {
	e := NewReorderEvaluator(DefaultReorderPolicy())
	cost, price := domain.NewAmount(18), domain.NewAmount(36)

	m1, ok1 := Margin(cost, price)
	m2, ok2 := Margin(cost, price)
	assert.Equal(t, m1, m2)
	assert.Equal(t, ok1, ok2)

	assert.Equal(t, Classify(2, 3), Classify(2, 3))

	r1 := e.Evaluate(1, 2, 10, domain.NewAmount(25))
	r2 := e.Evaluate(1, 2, 10, domain.NewAmount(25))
	assert.Equal(t, r1.OrderQuantity, r2.OrderQuantity)
	assert.Equal(t, r1.Priority, r2.Priority)
	assert.True(t, r1.OrderCost.Equal(r2.OrderCost))
}
