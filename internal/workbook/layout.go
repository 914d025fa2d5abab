package workbook

import "github.com/andresuchdata/beautypro-inventory/internal/domain"

const (
	layoutFirstRow = 3
	layoutMinSpan  = 8
)

// writeLayout writes a free-form sheet row by row starting below the title.
func (g *Generator) writeLayout(w *sheetWriter, title string, rows []domain.LayoutRow) int {
	span := layoutMinSpan
	for _, r := range rows {
		if len(r.Cells) > span {
			span = len(r.Cells)
		}
	}
	w.title(title, span)
	w.subtitle(g.lastUpdated())

	written := 0
	for i, r := range rows {
		row := layoutFirstRow + i
		switch r.Kind {
		case domain.LayoutBlank:
			continue
		case domain.LayoutSection:
			for j, text := range r.Cells {
				if j == 0 || text != "" {
					w.section(j+1, row, text)
				}
			}
		default:
			for j, text := range r.Cells {
				w.text(j+1, row, text, dataStyle)
			}
		}
		written++
	}
	return written
}
