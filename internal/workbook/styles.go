package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/andresuchdata/beautypro-inventory/internal/domain"
)

// Brand palette.
const (
	colorDeepCharcoal = "2C3E50"
	colorRoseGold     = "E8B4B8"
	colorCreamWhite   = "F8F9FA"
	colorLightBorder  = "DEE2E6"
	colorDarkText     = "566573"
	colorWarmGray     = "95A5A6"

	fillHealthy  = "E8F5E8"
	fillWarning  = "FFF3CD"
	fillCritical = "F8D7DA"
)

const (
	numFmtCurrency = "$#,##0.00"
	numFmtPercent  = `0.0"%"`
	fontFamily     = "Arial"
)

// cellStyle describes how a cell looks. It is a comparable value: derive
// variants with the with* methods instead of mutating shared instances.
type cellStyle struct {
	size   float64
	bold   bool
	italic bool
	color  string
	fill   string
	border bool
	align  string
	numFmt string
	wrap   bool
}

var (
	titleStyle    = cellStyle{size: 16, bold: true, color: colorDeepCharcoal, fill: colorRoseGold, align: "center"}
	subtitleStyle = cellStyle{size: 9, italic: true, color: colorWarmGray}
	sectionStyle  = cellStyle{size: 12, bold: true, color: colorDeepCharcoal, fill: colorCreamWhite}
	headerStyle   = cellStyle{size: 12, bold: true, color: colorDeepCharcoal, fill: colorCreamWhite, border: true, align: "center", wrap: true}
	dataStyle     = cellStyle{size: 10, color: colorDarkText, border: true}
	plainStyle    = cellStyle{size: 10, color: colorDarkText}
	totalStyle    = cellStyle{size: 10, bold: true, color: colorDeepCharcoal, border: true}
)

func (s cellStyle) withFill(color string) cellStyle {
	s.fill = color
	return s
}

func (s cellStyle) withNumFmt(format string) cellStyle {
	s.numFmt = format
	return s
}

func (s cellStyle) withAlign(align string) cellStyle {
	s.align = align
	return s
}

func (s cellStyle) toExcelize() *excelize.Style {
	st := &excelize.Style{
		Font: &excelize.Font{
			Family: fontFamily,
			Size:   s.size,
			Bold:   s.bold,
			Italic: s.italic,
			Color:  s.color,
		},
		Alignment: &excelize.Alignment{
			Horizontal: s.align,
			Vertical:   "center",
			WrapText:   s.wrap,
		},
	}
	if s.fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Color: []string{s.fill}, Pattern: 1}
	}
	if s.border {
		st.Border = []excelize.Border{
			{Type: "left", Color: colorLightBorder, Style: 1},
			{Type: "right", Color: colorLightBorder, Style: 1},
			{Type: "top", Color: colorLightBorder, Style: 1},
			{Type: "bottom", Color: colorLightBorder, Style: 1},
		}
	}
	if s.numFmt != "" {
		format := s.numFmt
		st.CustomNumFmt = &format
	}
	return st
}

// styleSet registers each distinct cellStyle once per file.
type styleSet struct {
	f   *excelize.File
	ids map[cellStyle]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{f: f, ids: make(map[cellStyle]int)}
}

func (s *styleSet) id(cs cellStyle) (int, error) {
	if id, ok := s.ids[cs]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(cs.toExcelize())
	if err != nil {
		return 0, fmt.Errorf("failed to register style: %w", err)
	}
	s.ids[cs] = id
	return id, nil
}

// statusFill returns the background for a stock status.
func statusFill(status domain.StockStatus) string {
	switch status {
	case domain.StatusOutOfStock:
		return fillCritical
	case domain.StatusLowStock, domain.StatusAtMinimum:
		return fillWarning
	default:
		return fillHealthy
	}
}

// priorityFill returns the row background for a reorder priority; LOW rows are unfilled.
func priorityFill(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent, domain.PriorityHigh:
		return fillCritical
	case domain.PriorityMedium:
		return fillWarning
	default:
		return ""
	}
}
