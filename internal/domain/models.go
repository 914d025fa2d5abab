package domain

// InventoryItem is one row of the Inventory sheet.
type InventoryItem struct {
	Name         string
	CurrentStock int
	MinStock     int
	MaxStock     int
	ReorderLevel int
	DaysToExpiry int
	LastUpdated  string
	Location     string
	UnitCost     Amount
	UnitPrice    Amount
	Supplier     string
}

// HasValidRange reports whether MinStock <= MaxStock. A violation is a
// data-quality warning only.
func (i InventoryItem) HasValidRange() bool {
	return i.MinStock <= i.MaxStock
}

// ReorderRecommendation is derived from an item at evaluation time and never stored.
type ReorderRecommendation struct {
	Item          string
	Supplier      string
	CurrentStock  int
	MinLevel      int
	ReorderTo     int
	UnitCost      Amount
	OrderQuantity int
	OrderCost     Amount
	Priority      Priority
}

// Flagged reports whether the recommendation belongs on the reorder list.
func (r ReorderRecommendation) Flagged() bool {
	return r.Priority != PriorityLow
}

// ReorderLine is one row of the Reorder source sheet.
type ReorderLine struct {
	Name         string
	CurrentStock int
	MinLevel     int
	ReorderTo    int
	Supplier     string
	UnitCost     Amount
}

// Category is one row of the Categories sheet.
type Category struct {
	Name          string
	Description   string
	TargetMargin  string
	ReorderDays   int
	Status        string
	ProductsCount int
	LastUpdated   string
	Notes         string
}

// Supplier is one row of the Suppliers sheet.
type Supplier struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	LeadTimeDays  int
	PaymentTerms  string
	Categories    string
	Rating        int
	LastOrder     string
	Notes         string
}

// Product is one row of the Products sheet.
type Product struct {
	Name       string
	Brand      string
	Category   string
	SKU        string
	Supplier   string
	Cost       Amount
	Retail     Amount
	Barcode    string
	ExpiryDate string
	MinStock   int
	MaxStock   int
	Location   string
	Notes      string
}

// LayoutRowKind tells the workbook how to style a free-form row.
type LayoutRowKind string

const (
	LayoutSection LayoutRowKind = "section"
	LayoutData    LayoutRowKind = "row"
	LayoutBlank   LayoutRowKind = "blank"
)

// LayoutRow is one row of a free-form sheet (QuickAdd, Analytics, Instructions).
type LayoutRow struct {
	Kind  LayoutRowKind
	Cells []string
}
