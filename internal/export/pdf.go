// Package export writes packing results to PDF layouts, QR-coded label
// sheets, DXF drawings and JSON atlas maps.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/atlaspack/internal/model"
)

// ErrNothingToExport is returned when a result has no pages or placements.
var ErrNothingToExport = errors.New("nothing to export")

// rectColor represents an RGB color for a placed rectangle.
type rectColor struct {
	R, G, B int
}

var rectColors = []rectColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// PDFOptions controls optional parts of the layout PDF.
type PDFOptions struct {
	// ShowFree hatches the free rectangles left on each page.
	ShowFree bool
	// Title is printed on the summary page. Empty uses a default.
	Title string
}

// ExportPDF generates a PDF document containing the packing result. Each atlas
// page is rendered on its own PDF page with a layout diagram, followed by a
// summary page with overall statistics.
func ExportPDF(path string, result model.PackResult, opts PDFOptions) error {
	if len(result.Pages) == 0 {
		return fmt.Errorf("%w: no pages", ErrNothingToExport)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, page := range result.Pages {
		pdf.AddPage()
		renderAtlasPage(pdf, page, opts)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, opts)

	return pdf.OutputFileAndClose(path)
}

// renderAtlasPage draws a single atlas page on the current PDF page.
func renderAtlasPage(pdf *fpdf.Fpdf, page model.PageResult, opts PDFOptions) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Page %d (%d x %d)", page.Index, page.Width, page.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Rectangles: %d | Used area: %d | Total area: %d | Efficiency: %.1f%%",
		len(page.Placements), page.UsedArea(), page.TotalArea(), page.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scale := math.Min(drawWidth/float64(page.Width), drawHeight/float64(page.Height))
	canvasW := float64(page.Width) * scale
	canvasH := float64(page.Height) * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	if opts.ShowFree {
		drawFreeRects(pdf, page.Free, scale, offsetX, offsetY)
	}

	for i, p := range page.Placements {
		col := rectColors[i%len(rectColors)]
		pw := float64(p.Rect.Width) * scale
		ph := float64(p.Rect.Height) * scale
		px := offsetX + float64(p.Rect.X)*scale
		py := offsetY + float64(p.Rect.Y)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Only label rectangles large enough to hold text
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Label
			dims := fmt.Sprintf("%dx%d", p.Rect.Width, p.Rect.Height)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, page, offsetX, offsetY, canvasW, canvasH)
	drawLegend(pdf, page, offsetY+canvasH+5)
}

// drawFreeRects outlines the free rectangles of a page. They may overlap, so
// they are drawn as hatched outlines rather than filled.
func drawFreeRects(pdf *fpdf.Fpdf, free []model.Rect, scale, offsetX, offsetY float64) {
	for _, f := range free {
		fx := offsetX + float64(f.X)*scale
		fy := offsetY + float64(f.Y)*scale
		fw := float64(f.Width) * scale
		fh := float64(f.Height) * scale

		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.2)
		pdf.Rect(fx, fy, fw, fh, "D")
		drawHatchPattern(pdf, fx, fy, fw, fh)
	}
	pdf.SetTextColor(0, 0, 0)
}

// drawHatchPattern draws diagonal lines inside a rectangle.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(220, 120, 120)
	pdf.SetLineWidth(0.1)

	spacing := 4.0
	for d := spacing; d < w+h; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)
		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height labels outside the page rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, page model.PageResult, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d px", page.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d px", page.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders a compact legend of placed rectangles below the page drawing.
func drawLegend(pdf *fpdf.Fpdf, page model.PageResult, startY float64) {
	if len(page.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range page.Placements {
		if startY > pageHeight-marginBottom {
			break
		}
		col := rectColors[i%len(rectColors)]
		label := fmt.Sprintf("%s (%dx%d)", p.Label, p.Rect.Width, p.Rect.Height)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, opts PDFOptions) {
	title := opts.Title
	if title == "" {
		title = "Atlas Packing Summary"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Page Size", fmt.Sprintf("%d x %d", result.PageWidth, result.PageHeight)},
		{"Heuristic", result.Heuristic.String()},
		{"Pages Used", fmt.Sprintf("%d", len(result.Pages))},
		{"Rectangles Placed", fmt.Sprintf("%d", result.Placed())},
		{"Overall Efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency())},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Page Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 50, 40, 40, 35, 70}
	headers := []string{"Page", "Dimensions", "Rectangles", "Free Rects", "Efficiency", "Used / Total Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, page := range result.Pages {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", page.Index),
			fmt.Sprintf("%d x %d", page.Width, page.Height),
			fmt.Sprintf("%d", len(page.Placements)),
			fmt.Sprintf("%d", len(page.Free)),
			fmt.Sprintf("%.1f%%", page.Efficiency()),
			fmt.Sprintf("%d / %d", page.UsedArea(), page.TotalArea()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by atlaspack", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
