package report

import (
	"errors"

	"github.com/phpdave11/gofpdf"
)

// TableRenderer lays out one table section and leaves the document cursor
// below it, ready for the next section. Implementations paginate
// themselves; callers never know which strategy drew the previous section.
type TableRenderer interface {
	RenderTable(pdf *gofpdf.Fpdf, headers []string, widths []float64, rows [][]string) error
}

const (
	headerRowHeight = 7.0
	bodyRowHeight   = 6.0
)

// GridTableRenderer is the preferred strategy: bordered cells, shaded
// header, header repeated after every page break.
type GridTableRenderer struct{}

func (GridTableRenderer) RenderTable(pdf *gofpdf.Fpdf, headers []string, widths []float64, rows [][]string) error {
	if pdf == nil {
		return errors.New("no document")
	}
	if len(headers) != len(widths) {
		return errors.New("header and width counts differ")
	}

	left, _, _, bottom := pdf.GetMargins()
	_, pageHeight := pdf.GetPageSize()
	pageBottom := pageHeight - bottom

	drawHeader := func() {
		pdf.SetX(left)
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		for i, header := range headers {
			pdf.CellFormat(widths[i], headerRowHeight, header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8.5)
	}

	drawHeader()
	for _, row := range rows {
		if pdf.GetY()+bodyRowHeight > pageBottom {
			pdf.AddPage()
			drawHeader()
		}
		pdf.SetX(left)
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = fitText(pdf, row[i], widths[i]-2)
			}
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], bodyRowHeight, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
	return pdf.Error()
}

// ManualPositionRenderer is the degraded strategy: text placed at fixed
// x-offsets per column, hard truncation, manual pagination. It fabricates
// a final cursor position so following sections continue normally.
type ManualPositionRenderer struct{}

func (ManualPositionRenderer) RenderTable(pdf *gofpdf.Fpdf, headers []string, widths []float64, rows [][]string) error {
	if pdf == nil {
		return errors.New("no document")
	}
	if len(headers) != len(widths) {
		return errors.New("header and width counts differ")
	}

	left, top, _, bottom := pdf.GetMargins()
	_, pageHeight := pdf.GetPageSize()
	pageBottom := pageHeight - bottom

	offsets := make([]float64, len(widths))
	x := left
	for i, width := range widths {
		offsets[i] = x
		x += width
	}

	y := pdf.GetY()
	drawHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		for i, header := range headers {
			pdf.Text(offsets[i], y+5, fitText(pdf, header, widths[i]-2))
		}
		y += headerRowHeight
		pdf.Line(left, y, x, y)
		pdf.SetFont("Arial", "", 8.5)
	}

	drawHeader()
	for _, row := range rows {
		if y+bodyRowHeight > pageBottom {
			pdf.AddPage()
			y = top
			drawHeader()
		}
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = fitText(pdf, row[i], widths[i]-2)
			}
			pdf.Text(offsets[i], y+4.5, cell)
		}
		y += bodyRowHeight
	}

	// Hand the cursor back where a grid table would have left it.
	pdf.SetXY(left, y+3)
	return pdf.Error()
}

// fitText truncates a value to the column width, marking the cut.
func fitText(pdf *gofpdf.Fpdf, value string, width float64) string {
	if width <= 0 || pdf.GetStringWidth(value) <= width {
		return value
	}
	runes := []rune(value)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		if pdf.GetStringWidth(string(runes)+"...") <= width {
			break
		}
	}
	return string(runes) + "..."
}
