package pdfgen

import (
	"fmt"

	"hvac-backoffice/models"
)

// Quotation renders one quotation version as a PDF document.
func Quotation(q *models.Quotation, v *models.QuotationVersion) ([]byte, error) {
	pdf := newDoc("QUOTATION")

	labelValue(pdf, "Quotation No:", v.VersionNo)
	labelValue(pdf, "Date:", dateStr(v.CreatedAt))
	labelValue(pdf, "Customer:", q.Customer.Name)
	if q.Customer.Address != "" {
		labelValue(pdf, "Address:", q.Customer.Address)
	}
	labelValue(pdf, "Subject:", q.Subject)
	if q.SiteName != "" {
		labelValue(pdf, "Site:", q.SiteName)
	}
	pdf.Ln(2)

	widths := []float64{10, 76, 15, 22, 21, 21, 21}
	aligns := []string{"C", "L", "R", "R", "R", "R", "R"}

	if len(v.HighSideItems) > 0 {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, lineHeight, "High Side (Equipment)", "", 1, "L", false, 0, "")
		tableHeader(pdf, widths, []string{"#", "Product", "Qty", "Unit Price", "Mathadi", "Transport", "Total"})
		for i, it := range v.HighSideItems {
			name := it.ProductVariant.SKU
			if it.ProductVariant.ProductModel.Name != "" {
				name = it.ProductVariant.ProductModel.Name + " / " + name
			}
			tableRow(pdf, widths, []string{
				fmt.Sprintf("%d", i+1), name,
				money(it.Quantity), money(it.UnitPrice),
				money(it.MathadiCharges), money(it.TransportationCharges),
				money(it.TotalWithGST),
			}, aligns)
		}
		pdf.Ln(2)
	}

	if len(v.LowSideItems) > 0 {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, lineHeight, "Low Side (Installation Material)", "", 1, "L", false, 0, "")
		tableHeader(pdf, widths, []string{"#", "Item", "Qty", "Unit Price", "Mathadi", "GST", "Total"})
		for i, it := range v.LowSideItems {
			tableRow(pdf, widths, []string{
				fmt.Sprintf("%d", i+1), it.Item.Name,
				money(it.Quantity), money(it.UnitPrice),
				money(it.MathadiCharges), money(it.GSTAmount),
				money(it.TotalWithGST),
			}, aligns)
		}
		pdf.Ln(2)
	}

	totalsLine(pdf, "Subtotal", v.Subtotal, false)
	if v.GSTType == "CGST_SGST" {
		totalsLine(pdf, "CGST", v.CGSTAmount, false)
		totalsLine(pdf, "SGST", v.SGSTAmount, false)
	} else {
		totalsLine(pdf, "IGST", v.IGSTAmount, false)
	}
	totalsLine(pdf, "Grand Total", v.GrandTotal, true)

	if q.ThankYouNote != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, q.ThankYouNote, "", "L", false)
	}

	return render(pdf)
}
