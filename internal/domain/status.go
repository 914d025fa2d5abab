package domain

import "strings"

// StockStatus classifies an inventory item by comparing current stock with its minimum.
type StockStatus int

const (
	StatusHealthy StockStatus = iota
	StatusAtMinimum
	StatusLowStock
	StatusOutOfStock
)

var stockStatusLabels = map[StockStatus]string{
	StatusOutOfStock: "Out of Stock",
	StatusLowStock:   "Low Stock",
	StatusAtMinimum:  "At Minimum",
	StatusHealthy:    "Healthy",
}

var stockStatusActions = map[StockStatus]string{
	StatusOutOfStock: "URGENT ORDER",
	StatusLowStock:   "ORDER NOW",
	StatusAtMinimum:  "Monitor",
	StatusHealthy:    "Continue",
}

// StockStatuses lists every status from most to least severe.
var StockStatuses = []StockStatus{StatusOutOfStock, StatusLowStock, StatusAtMinimum, StatusHealthy}

// Label returns the text written into the Status column.
func (s StockStatus) Label() string {
	if label, ok := stockStatusLabels[s]; ok {
		return label
	}

	return "Unknown"
}

// Action returns the recommended action for the status.
func (s StockStatus) Action() string {
	if action, ok := stockStatusActions[s]; ok {
		return action
	}

	return ""
}

func (s StockStatus) String() string {
	return s.Label()
}

// NeedsAttention reports whether the item should show up in alerts.
func (s StockStatus) NeedsAttention() bool {
	return s == StatusOutOfStock || s == StatusLowStock
}

// ParseStockStatus returns the status for a label (case-insensitive).
func ParseStockStatus(label string) (StockStatus, bool) {
	label = strings.TrimSpace(label)
	for status, l := range stockStatusLabels {
		if strings.EqualFold(l, label) {
			return status, true
		}
	}

	return StatusHealthy, false
}

// Priority ranks the urgency of a reorder recommendation.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var priorityLabels = map[Priority]string{
	PriorityUrgent: "URGENT",
	PriorityHigh:   "HIGH",
	PriorityMedium: "MEDIUM",
	PriorityLow:    "LOW",
}

var priorityActions = map[Priority]string{
	PriorityUrgent: "ORDER NOW",
	PriorityHigh:   "ORDER NOW",
	PriorityMedium: "Consider Order",
	PriorityLow:    "No Action",
}

// Label returns the text written into the Priority column.
func (p Priority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}

	return "LOW"
}

// Action returns the text written into the reorder Action column.
func (p Priority) Action() string {
	if action, ok := priorityActions[p]; ok {
		return action
	}

	return ""
}

func (p Priority) String() string {
	return p.Label()
}

// ParsePriority returns the priority for a label (case-insensitive).
func ParsePriority(label string) (Priority, bool) {
	label = strings.TrimSpace(label)
	for p, l := range priorityLabels {
		if strings.EqualFold(l, label) {
			return p, true
		}
	}

	return PriorityLow, false
}
