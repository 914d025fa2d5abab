package workbook

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Fixed rows shared by every sheet.
const (
	titleRow     = 1
	subtitleRow  = 2
	headerRow    = 3
	firstDataRow = 4

	minColumnWidth = 8
)

// sheetWriter writes cells into one worksheet and remembers the widest text
// per column. The first error is kept and returned by finish.
type sheetWriter struct {
	f        *excelize.File
	name     string
	styles   *styleSet
	maxWidth float64
	widths   map[int]int
	err      error
}

func newSheetWriter(f *excelize.File, name string, styles *styleSet, maxWidth float64) *sheetWriter {
	return &sheetWriter{
		f:        f,
		name:     name,
		styles:   styles,
		maxWidth: maxWidth,
		widths:   make(map[int]int),
	}
}

func (w *sheetWriter) fail(err error) {
	if w.err == nil && err != nil {
		w.err = fmt.Errorf("sheet %s: %w", w.name, err)
	}
}

func (w *sheetWriter) cellName(col, row int) string {
	cell, err := excelize.CoordinatesToCellName(col, row)
	w.fail(err)
	return cell
}

func (w *sheetWriter) style(col, row int, cs cellStyle) {
	w.styleRange(col, row, col, row, cs)
}

func (w *sheetWriter) styleRange(col1, row1, col2, row2 int, cs cellStyle) {
	if w.err != nil {
		return
	}
	id, err := w.styles.id(cs)
	if err != nil {
		w.fail(err)
		return
	}
	w.fail(w.f.SetCellStyle(w.name, w.cellName(col1, row1), w.cellName(col2, row2), id))
}

// value writes v with style cs. A nil v only applies the style, which keeps
// borders on blank cells.
func (w *sheetWriter) value(col, row int, v interface{}, cs cellStyle) {
	if w.err != nil {
		return
	}
	if v != nil {
		w.fail(w.f.SetCellValue(w.name, w.cellName(col, row), v))
		w.measure(col, display(v))
	}
	w.style(col, row, cs)
}

// formula writes a formula. sample is the text the formula is expected to
// show and is only used to size the column.
func (w *sheetWriter) formula(col, row int, formula string, cs cellStyle, sample string) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetCellFormula(w.name, w.cellName(col, row), strings.TrimPrefix(formula, "=")))
	w.measure(col, sample)
	w.style(col, row, cs)
}

// text writes a free-form cell: a leading "=" makes a formula, plain numbers
// are stored as numbers and anything else as text.
func (w *sheetWriter) text(col, row int, s string, cs cellStyle) {
	switch {
	case s == "":
		return
	case strings.HasPrefix(s, "="):
		w.formula(col, row, s, cs, "")
	case isPlainNumber(s):
		n, _ := strconv.ParseFloat(s, 64)
		w.value(col, row, n, cs)
	default:
		w.value(col, row, s, cs)
	}
}

func (w *sheetWriter) title(text string, span int) {
	if span < 1 {
		span = 1
	}
	w.value(1, titleRow, text, titleStyle)
	if span > 1 {
		w.styleRange(1, titleRow, span, titleRow, titleStyle)
		w.fail(w.f.MergeCell(w.name, w.cellName(1, titleRow), w.cellName(span, titleRow)))
	}
	w.fail(w.f.SetRowHeight(w.name, titleRow, 30))
	// The title is merged across the table; it should not widen column A.
	delete(w.widths, 1)
}

func (w *sheetWriter) subtitle(text string) {
	w.value(1, subtitleRow, text, subtitleStyle)
	delete(w.widths, 1)
}

func (w *sheetWriter) header(row int, headers []string) {
	for i, h := range headers {
		w.value(i+1, row, h, headerStyle)
	}
}

func (w *sheetWriter) section(col, row int, text string) {
	w.value(col, row, text, sectionStyle)
}

// freezeBelow keeps rows up to and including row visible while scrolling.
func (w *sheetWriter) freezeBelow(row int) {
	if w.err != nil {
		return
	}
	w.fail(w.f.SetPanes(w.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: w.cellName(1, row+1),
		ActivePane:  "bottomLeft",
	}))
}

func (w *sheetWriter) measure(col int, s string) {
	if n := utf8.RuneCountInString(s); n > w.widths[col] {
		w.widths[col] = n
	}
}

// finish applies column widths (longest text + 2, capped at maxWidth).
func (w *sheetWriter) finish() error {
	for col, n := range w.widths {
		if w.err != nil {
			break
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			w.fail(err)
			break
		}
		w.fail(w.f.SetColWidth(w.name, name, name, columnWidth(n, w.maxWidth)))
	}
	return w.err
}

func columnWidth(textLen int, maxWidth float64) float64 {
	width := float64(textLen + 2)
	if width < minColumnWidth {
		width = minColumnWidth
	}
	if maxWidth > 0 {
		width = math.Min(width, maxWidth)
	}
	return width
}

func display(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	default:
		return fmt.Sprint(x)
	}
}

func isPlainNumber(s string) bool {
	if strings.HasPrefix(s, "+") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}
