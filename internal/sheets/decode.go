package sheets

import (
	"math"
	"strconv"
	"strings"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

// table gives name-based access to the columns of a header+rows record set.
type table struct {
	header []string
	rows   [][]string
}

func newTable(records [][]string) table {
	// Skip leading blank lines so hand-edited files with a gap above the header still load.
	for len(records) > 0 && isBlank(records[0]) {
		records = records[1:]
	}
	if len(records) == 0 {
		return table{}
	}
	return table{header: records[0], rows: records[1:]}
}

// col returns the index of the first header matching any of names, or -1.
func (t table) col(names ...string) int {
	targets := make(map[string]struct{}, len(names))
	for _, name := range names {
		targets[normalizeColumnName(name)] = struct{}{}
	}
	for i, h := range t.header {
		if _, ok := targets[normalizeColumnName(h)]; ok {
			return i
		}
	}
	return -1
}

// each calls fn for every non-blank data row.
func (t table) each(fn func(r row)) {
	for _, rec := range t.rows {
		if isBlank(rec) {
			continue
		}
		fn(row(rec))
	}
}

type row []string

func (r row) str(idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[idx])
}

func (r row) amount(idx int) domain.Amount {
	return domain.ParseAmount(r.str(idx))
}

// integer parses a whole number leniently: "1,200", "12.0" and " 7 " are accepted;
// anything else is 0.
func (r row) integer(idx int) int {
	v := strings.ReplaceAll(r.str(idx), ",", "")
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return clampInt(math.Round(f))
}

// clampInt converts f to int, saturating at the int32 range.
func clampInt(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// DecodeCategories maps Categories records to domain values.
func DecodeCategories(records [][]string) []domain.Category {
	t := newTable(records)
	idxName := t.col("category name", "category", "name")
	idxDesc := t.col("description")
	idxMargin := t.col("target margin %", "target margin")
	idxDays := t.col("reorder days")
	idxStatus := t.col("status")
	idxCount := t.col("products count", "products")
	idxUpdated := t.col("last updated")
	idxNotes := t.col("notes")

	var out []domain.Category
	t.each(func(r row) {
		out = append(out, domain.Category{
			Name:          r.str(idxName),
			Description:   r.str(idxDesc),
			TargetMargin:  r.str(idxMargin),
			ReorderDays:   r.integer(idxDays),
			Status:        r.str(idxStatus),
			ProductsCount: r.integer(idxCount),
			LastUpdated:   r.str(idxUpdated),
			Notes:         r.str(idxNotes),
		})
	})
	return out
}

// DecodeSuppliers maps Suppliers records to domain values.
func DecodeSuppliers(records [][]string) []domain.Supplier {
	t := newTable(records)
	idxName := t.col("supplier name", "supplier", "name")
	idxContact := t.col("contact person", "contact")
	idxEmail := t.col("email")
	idxPhone := t.col("phone")
	idxLead := t.col("lead time (days)", "lead time")
	idxTerms := t.col("payment terms")
	idxCats := t.col("categories")
	idxRating := t.col("rating")
	idxLast := t.col("last order")
	idxNotes := t.col("notes")

	var out []domain.Supplier
	t.each(func(r row) {
		out = append(out, domain.Supplier{
			Name:          r.str(idxName),
			ContactPerson: r.str(idxContact),
			Email:         r.str(idxEmail),
			Phone:         r.str(idxPhone),
			LeadTimeDays:  r.integer(idxLead),
			PaymentTerms:  r.str(idxTerms),
			Categories:    r.str(idxCats),
			Rating:        parseRating(r.str(idxRating)),
			LastOrder:     r.str(idxLast),
			Notes:         r.str(idxNotes),
		})
	})
	return out
}

// DecodeProducts maps Products records to domain values.
func DecodeProducts(records [][]string) []domain.Product {
	t := newTable(records)
	idxName := t.col("product name", "product", "name")
	idxBrand := t.col("brand")
	idxCategory := t.col("category")
	idxSKU := t.col("sku")
	idxSupplier := t.col("supplier")
	idxCost := t.col("cost", "unit cost")
	idxRetail := t.col("retail price", "retail", "price")
	idxBarcode := t.col("barcode")
	idxExpiry := t.col("expiry date", "expiry")
	idxMin := t.col("min stock")
	idxMax := t.col("max stock")
	idxLocation := t.col("location")
	idxNotes := t.col("notes")

	var out []domain.Product
	t.each(func(r row) {
		out = append(out, domain.Product{
			Name:       r.str(idxName),
			Brand:      r.str(idxBrand),
			Category:   r.str(idxCategory),
			SKU:        r.str(idxSKU),
			Supplier:   r.str(idxSupplier),
			Cost:       r.amount(idxCost),
			Retail:     r.amount(idxRetail),
			Barcode:    r.str(idxBarcode),
			ExpiryDate: r.str(idxExpiry),
			MinStock:   r.integer(idxMin),
			MaxStock:   r.integer(idxMax),
			Location:   r.str(idxLocation),
			Notes:      r.str(idxNotes),
		})
	})
	return out
}

// DecodeInventory maps Inventory records to domain values.
func DecodeInventory(records [][]string) []domain.InventoryItem {
	t := newTable(records)
	idxName := t.col("product name", "product", "name")
	idxCurrent := t.col("current stock", "stock")
	idxMin := t.col("min stock")
	idxMax := t.col("max stock")
	idxReorder := t.col("reorder level")
	idxExpiry := t.col("days to expiry")
	idxUpdated := t.col("last updated")
	idxLocation := t.col("location")
	idxCost := t.col("cost", "unit cost")
	idxRetail := t.col("retail", "retail price", "price")
	idxSupplier := t.col("supplier")

	var out []domain.InventoryItem
	t.each(func(r row) {
		out = append(out, domain.InventoryItem{
			Name:         r.str(idxName),
			CurrentStock: nonNegative(r.integer(idxCurrent)),
			MinStock:     nonNegative(r.integer(idxMin)),
			MaxStock:     nonNegative(r.integer(idxMax)),
			ReorderLevel: nonNegative(r.integer(idxReorder)),
			DaysToExpiry: r.integer(idxExpiry),
			LastUpdated:  r.str(idxUpdated),
			Location:     r.str(idxLocation),
			UnitCost:     r.amount(idxCost),
			UnitPrice:    r.amount(idxRetail),
			Supplier:     r.str(idxSupplier),
		})
	})
	return out
}

// DecodeReorder maps Reorder records to domain values.
func DecodeReorder(records [][]string) []domain.ReorderLine {
	t := newTable(records)
	idxName := t.col("product name", "product", "name")
	idxCurrent := t.col("current stock", "stock")
	idxMin := t.col("min level", "min stock")
	idxTo := t.col("reorder to", "reorder to level")
	idxSupplier := t.col("supplier")
	idxCost := t.col("cost per unit", "unit cost", "cost")

	var out []domain.ReorderLine
	t.each(func(r row) {
		out = append(out, domain.ReorderLine{
			Name:         r.str(idxName),
			CurrentStock: nonNegative(r.integer(idxCurrent)),
			MinLevel:     nonNegative(r.integer(idxMin)),
			ReorderTo:    nonNegative(r.integer(idxTo)),
			Supplier:     r.str(idxSupplier),
			UnitCost:     r.amount(idxCost),
		})
	})
	return out
}

// DecodeLayout maps a free-form layout file. The first column holds the row
// kind; the remaining columns are the cell values starting at column A.
// Unknown kinds are treated as plain rows.
func DecodeLayout(records [][]string) []domain.LayoutRow {
	var out []domain.LayoutRow
	for i, rec := range records {
		if len(rec) == 0 {
			out = append(out, domain.LayoutRow{Kind: domain.LayoutBlank})
			continue
		}
		kind := domain.LayoutRowKind(strings.ToLower(strings.TrimSpace(rec[0])))
		if i == 0 && kind == "kind" {
			continue
		}
		cells := trimTrailingEmpty(rec[1:])
		switch kind {
		case domain.LayoutSection, domain.LayoutBlank:
		default:
			kind = domain.LayoutData
		}
		if kind != domain.LayoutBlank && len(cells) == 0 {
			kind = domain.LayoutBlank
		}
		out = append(out, domain.LayoutRow{Kind: kind, Cells: cells})
	}
	return out
}

func normalizeColumnName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(name), " ")
}

// parseRating accepts "4", "4/5" or a string of star characters.
func parseRating(s string) int {
	if s == "" {
		return 0
	}
	if stars := strings.Count(s, "⭐"); stars > 0 {
		return stars
	}
	s = strings.TrimSpace(strings.SplitN(s, "/", 2)[0])
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	if n > 5 {
		return 5
	}
	return n
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
		end--
	}
	out := make([]string, end)
	for i := 0; i < end; i++ {
		out[i] = strings.TrimSpace(cells[i])
	}
	return out
}
