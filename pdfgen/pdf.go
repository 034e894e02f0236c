// Package pdfgen renders the printable artifacts (quotations, purchase
// orders, tax invoices) with gofpdf. Layouts are deliberately plain:
// A4 portrait, Helvetica, bordered line tables, totals block.
package pdfgen

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	pageMargin = 12.0
	lineHeight = 6.0
)

func newDoc(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	return pdf
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func dateStr(t time.Time) string {
	return t.Format("02-01-2006")
}

// labelValue prints a "Label: value" line in the running font.
func labelValue(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(40, lineHeight, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, lineHeight, value, "", 1, "L", false, 0, "")
}

// tableHeader prints a bordered header row.
func tableHeader(pdf *gofpdf.Fpdf, widths []float64, headers []string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], lineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// tableRow prints one bordered data row; numeric columns right-aligned
// via the aligns slice ("L"/"R"/"C").
func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells []string, aligns []string) {
	pdf.SetFont("Helvetica", "", 8)
	for i, cell := range cells {
		align := "L"
		if i < len(aligns) {
			align = aligns[i]
		}
		pdf.CellFormat(widths[i], lineHeight, cell, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

// totalsLine prints one right-aligned amount row under the table.
func totalsLine(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 9)
	pdf.CellFormat(146, lineHeight, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(40, lineHeight, money(amount), "1", 1, "R", false, 0, "")
}

func render(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
