package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
	"github.com/andresuchdata/beautypro-inventory/internal/inventory"
	"github.com/andresuchdata/beautypro-inventory/internal/sheets"
	"github.com/andresuchdata/beautypro-inventory/pkg/logger"
)

// Options controls workbook generation.
type Options struct {
	Brand                    string
	MaxColumnWidth           float64
	Policy                   inventory.ReorderPolicy
	IncludeInventoryReorders bool
	Now                      func() time.Time
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Brand:                    "Beauty Pro",
		MaxColumnWidth:           50,
		Policy:                   inventory.DefaultReorderPolicy(),
		IncludeInventoryReorders: true,
		Now:                      time.Now,
	}
}

// SheetResult records what happened to one worksheet.
type SheetResult struct {
	Name string
	Rows int
	Err  error
}

// Report summarizes a generation run.
type Report struct {
	Sheets   []SheetResult
	Summary  inventory.Summary
	Reorder  *inventory.ReorderReport
	Warnings []string
}

// Failed returns the sheets whose source could not be loaded.
func (r *Report) Failed() []SheetResult {
	var out []SheetResult
	for _, s := range r.Sheets {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

func (r *Report) sheet(name string) *SheetResult {
	for i := range r.Sheets {
		if r.Sheets[i].Name == name {
			return &r.Sheets[i]
		}
	}
	r.Sheets = append(r.Sheets, SheetResult{Name: name})
	return &r.Sheets[len(r.Sheets)-1]
}

// dataset is everything loaded from the sources for one run.
type dataset struct {
	categories []domain.Category
	suppliers  []domain.Supplier
	products   []domain.Product
	inventory  []domain.InventoryItem
	reorder    []domain.ReorderLine
	layouts    map[string][]domain.LayoutRow
}

// Generator assembles the inventory workbook from a sheet source.
type Generator struct {
	src       sheets.Source
	opts      Options
	evaluator *inventory.ReorderEvaluator
}

// NewGenerator creates a new generator. Zero-valued options fall back to DefaultOptions.
func NewGenerator(src sheets.Source, opts Options) *Generator {
	def := DefaultOptions()
	if opts.Brand == "" {
		opts.Brand = def.Brand
	}
	if opts.MaxColumnWidth <= 0 {
		opts.MaxColumnWidth = def.MaxColumnWidth
	}
	if opts.Now == nil {
		opts.Now = def.Now
	}
	return &Generator{
		src:       src,
		opts:      opts,
		evaluator: inventory.NewReorderEvaluator(opts.Policy),
	}
}

// Generate builds the workbook and saves it to path, creating parent
// directories as needed. Source failures are reported, not returned; only
// build and write failures are errors.
func (g *Generator) Generate(path string) (*Report, error) {
	f, report, err := g.Build()
	if err != nil {
		return report, err
	}
	defer f.Close()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return report, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return report, fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	logger.Log.Info().
		Str("path", path).
		Int("sheets", len(report.Sheets)).
		Int("failed_sheets", len(report.Failed())).
		Str("total_order_value", report.Reorder.TotalFormatted()).
		Msg("workbook saved")
	return report, nil
}

// Evaluate loads the sources and computes the summary and the reorder list
// without building a workbook.
func (g *Generator) Evaluate() *Report {
	report, _ := g.evaluate()
	return report
}

func (g *Generator) evaluate() (*Report, dataset) {
	report := &Report{}
	data := g.load(report)

	report.Summary = inventory.Summarize(data.products, data.inventory)
	report.Reorder = g.evaluateReorders(data)
	return report, data
}

// Build assembles the workbook in memory. The caller owns the returned file.
func (g *Generator) Build() (*excelize.File, *Report, error) {
	report, data := g.evaluate()

	f := excelize.NewFile()
	if err := g.createSheets(f); err != nil {
		f.Close()
		return nil, report, err
	}

	styles := newStyleSet(f)
	builders := map[string]func(w *sheetWriter) int{
		sheets.Dashboard:    func(w *sheetWriter) int { return g.writeDashboard(w, report) },
		sheets.Categories:   func(w *sheetWriter) int { return g.writeCategories(w, data.categories) },
		sheets.Suppliers:    func(w *sheetWriter) int { return g.writeSuppliers(w, data.suppliers) },
		sheets.Products:     func(w *sheetWriter) int { return g.writeProducts(w, data.products) },
		sheets.Inventory:    func(w *sheetWriter) int { return g.writeInventory(w, data.inventory) },
		sheets.QuickAdd:     func(w *sheetWriter) int { return g.writeLayout(w, "➕ QUICK ADD INVENTORY", data.layouts[sheets.QuickAdd]) },
		sheets.Reorder:      func(w *sheetWriter) int { return g.writeReorder(w, report.Reorder) },
		sheets.Analytics:    func(w *sheetWriter) int { return g.writeLayout(w, "📈 BUSINESS ANALYTICS", data.layouts[sheets.Analytics]) },
		sheets.Instructions: func(w *sheetWriter) int { return g.writeLayout(w, "📖 SETUP INSTRUCTIONS", data.layouts[sheets.Instructions]) },
	}

	for _, name := range sheets.Order {
		log := logger.Sheet(name)
		log.Info().Msg("creating worksheet")

		w := newSheetWriter(f, name, styles, g.opts.MaxColumnWidth)
		rows := builders[name](w)
		if err := w.finish(); err != nil {
			f.Close()
			return nil, report, err
		}
		report.sheet(name).Rows = rows
		log.Debug().Int("rows", rows).Msg("worksheet written")
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       g.opts.Brand + " Inventory System",
		Subject:     "Inventory tracking template",
		Creator:     g.opts.Brand,
		Created:     g.opts.Now().UTC().Format(time.RFC3339),
		Description: "Pre-formatted inventory workbook with sample data",
	}); err != nil {
		f.Close()
		return nil, report, fmt.Errorf("failed to set document properties: %w", err)
	}
	f.SetActiveSheet(0)

	return f, report, nil
}

func (g *Generator) createSheets(f *excelize.File) error {
	// excelize starts with Sheet1; reuse it for the first worksheet.
	if err := f.SetSheetName("Sheet1", sheets.Order[0]); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range sheets.Order[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}
	return nil
}

// load reads every data-backed sheet. A failing source is logged and leaves
// that sheet empty; the other sheets are still generated.
func (g *Generator) load(report *Report) dataset {
	data := dataset{layouts: make(map[string][]domain.LayoutRow)}

	for _, name := range sheets.Order {
		if name == sheets.Dashboard {
			report.sheet(name)
			continue
		}

		records, err := g.src.Load(name)
		if err != nil {
			log := logger.Sheet(name)
			if errors.Is(err, sheets.ErrSheetNotFound) {
				log.Warn().Err(err).Msg("no source for worksheet, leaving it empty")
			} else {
				log.Error().Err(err).Msg("failed to load worksheet source, leaving it empty")
			}
			report.sheet(name).Err = err
			continue
		}
		report.sheet(name)

		switch name {
		case sheets.Categories:
			data.categories = sheets.DecodeCategories(records)
		case sheets.Suppliers:
			data.suppliers = sheets.DecodeSuppliers(records)
		case sheets.Products:
			data.products = sheets.DecodeProducts(records)
		case sheets.Inventory:
			data.inventory = sheets.DecodeInventory(records)
		case sheets.Reorder:
			data.reorder = sheets.DecodeReorder(records)
		default:
			data.layouts[name] = sheets.DecodeLayout(records)
		}
	}

	for _, p := range data.products {
		if p.MinStock > p.MaxStock {
			report.warn(sheets.Products, p.Name, p.MinStock, p.MaxStock)
		}
	}
	for _, it := range data.inventory {
		if !it.HasValidRange() {
			report.warn(sheets.Inventory, it.Name, it.MinStock, it.MaxStock)
		}
	}

	return data
}

func (r *Report) warn(sheet, item string, min, max int) {
	msg := fmt.Sprintf("%s: %q has min stock %d above max stock %d", sheet, item, min, max)
	r.Warnings = append(r.Warnings, msg)
	log := logger.Sheet(sheet)
	log.Warn().
		Str("item", item).
		Int("min_stock", min).
		Int("max_stock", max).
		Msg("min stock above max stock")
}

// evaluateReorders evaluates the Reorder source and, when enabled, adds
// flagged inventory rows that are not listed there yet.
func (g *Generator) evaluateReorders(data dataset) *inventory.ReorderReport {
	report := inventory.NewReorderReport()
	log := logger.Sheet(sheets.Reorder)
	// Reorder rows take precedence over Inventory rows of the same name,
	// including rows that do not need reordering.
	listed := make(map[string]struct{}, len(data.reorder))
	for _, line := range data.reorder {
		listed[strings.ToLower(strings.TrimSpace(line.Name))] = struct{}{}
		rec := g.evaluator.EvaluateLine(line)
		if !report.Add(rec) {
			log.Debug().Str("item", line.Name).Msg("item does not need reordering")
		}
	}

	if !g.opts.IncludeInventoryReorders {
		return report
	}
	for _, item := range data.inventory {
		if _, ok := listed[strings.ToLower(strings.TrimSpace(item.Name))]; ok {
			continue
		}
		if report.Contains(item.Name) {
			continue
		}
		report.Add(g.evaluator.EvaluateItem(item))
	}
	return report
}
