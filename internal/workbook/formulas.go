package workbook

import (
	"fmt"
	"strconv"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
	"github.com/andresuchdata/beautypro-inventory/internal/inventory"
)

// The formulas below mirror the pure functions in package inventory so the
// workbook keeps computing the same values after the user edits it.

// marginFormula mirrors inventory.Margin. The divisor is guarded on its own
// because IF arguments may be evaluated eagerly.
func marginFormula(cost, price string) string {
	return fmt.Sprintf(`IF(AND(ISNUMBER(%[1]s),ISNUMBER(%[2]s)),IF(%[2]s>0,ROUND((%[2]s-%[1]s)/IF(%[2]s>0,%[2]s,1)*100,1),""),"")`, cost, price)
}

// statusFormula mirrors inventory.Classify and yields the status label.
func statusFormula(current, min string) string {
	return classifyFormula(current, min, func(s domain.StockStatus) string { return s.Label() })
}

// stockActionFormula mirrors inventory.Classify and yields the status action.
func stockActionFormula(current, min string) string {
	return classifyFormula(current, min, func(s domain.StockStatus) string { return s.Action() })
}

func classifyFormula(current, min string, text func(domain.StockStatus) string) string {
	return fmt.Sprintf(`IF(%[1]s<=0,%[3]q,IF(%[1]s<%[2]s,%[4]q,IF(%[1]s=%[2]s,%[5]q,%[6]q)))`,
		current, min,
		text(domain.StatusOutOfStock),
		text(domain.StatusLowStock),
		text(domain.StatusAtMinimum),
		text(domain.StatusHealthy),
	)
}

// priorityFormula mirrors ReorderEvaluator priorities and yields the priority label.
func priorityFormula(current, min string, policy inventory.ReorderPolicy) string {
	return rankFormula(current, min, policy, func(p domain.Priority) string { return p.Label() })
}

// priorityActionFormula yields the reorder action for the priority.
func priorityActionFormula(current, min string, policy inventory.ReorderPolicy) string {
	return rankFormula(current, min, policy, func(p domain.Priority) string { return p.Action() })
}

func rankFormula(current, min string, policy inventory.ReorderPolicy, text func(domain.Priority) string) string {
	return fmt.Sprintf(`IF(%[1]s<=0,%[4]q,IF(%[1]s<%[2]s,%[5]q,IF(%[1]s<=%[2]s+%[3]s,%[6]q,%[7]q)))`,
		current, min, bufferExpr(min, policy),
		text(domain.PriorityUrgent),
		text(domain.PriorityHigh),
		text(domain.PriorityMedium),
		text(domain.PriorityLow),
	)
}

// bufferExpr mirrors ReorderPolicy.Buffer.
func bufferExpr(min string, policy inventory.ReorderPolicy) string {
	units := policy.BufferUnits
	if units < 0 {
		units = 0
	}
	if policy.BufferPercent <= 0 {
		return strconv.Itoa(units)
	}
	pct := strconv.FormatFloat(policy.BufferPercent, 'f', -1, 64)
	return fmt.Sprintf("MAX(%d,ROUNDUP(%s*%s/100,0))", units, min, pct)
}

// orderQtyFormula mirrors the order quantity max(0, target - current).
func orderQtyFormula(target, current string) string {
	return fmt.Sprintf("MAX(0,%s-%s)", target, current)
}

func productFormula(a, b string) string {
	return fmt.Sprintf("%s*%s", a, b)
}

func sumFormula(from, to string) string {
	return fmt.Sprintf("SUM(%s:%s)", from, to)
}
