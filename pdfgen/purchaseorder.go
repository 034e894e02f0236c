package pdfgen

import (
	"fmt"

	"hvac-backoffice/models"
)

// PurchaseOrder renders one PO version as a PDF document.
func PurchaseOrder(po *models.PurchaseOrder) ([]byte, error) {
	pdf := newDoc("PURCHASE ORDER")

	labelValue(pdf, "PO Number:", po.PurchaseOrderNo)
	labelValue(pdf, "Version:", fmt.Sprintf("%d", po.Version))
	labelValue(pdf, "Date:", dateStr(po.CreatedAt))
	labelValue(pdf, "Vendor:", po.Vendor.Name)
	if po.Vendor.GSTDetails != "" {
		labelValue(pdf, "Vendor GSTIN:", po.Vendor.GSTDetails)
	}
	if po.Site != "" {
		labelValue(pdf, "Site:", po.Site)
	}
	if po.QuotationRefNo != "" {
		labelValue(pdf, "Quotation Ref:", po.QuotationRefNo)
	}
	if po.ContactName != "" {
		labelValue(pdf, "Contact:", po.ContactName+" "+po.ContactNo)
	}
	pdf.Ln(2)

	widths := []float64{10, 66, 20, 15, 15, 20, 20, 20}
	tableHeader(pdf, widths, []string{"#", "Description", "HSN/SAC", "Unit", "Qty", "Rate", "GST %", "Amount"})
	aligns := []string{"C", "L", "C", "C", "R", "R", "R", "R"}

	row := 0
	for _, p := range po.Products {
		if p.IsSection {
			pdf.SetFont("Helvetica", "B", 8)
			pdf.CellFormat(186, lineHeight, p.Description, "1", 1, "L", false, 0, "")
			continue
		}
		row++
		desc := p.Description
		if desc == "" && p.ProductVariant != nil {
			desc = p.ProductVariant.SKU
		}
		if desc == "" && p.Item != nil {
			desc = p.Item.Name
		}
		tableRow(pdf, widths, []string{
			fmt.Sprintf("%d", row), desc, p.HsnSac, p.Unit,
			money(p.Quantity), money(p.Rate), money(p.GSTPercent), money(p.Amount),
		}, aligns)
	}
	pdf.Ln(2)

	totalsLine(pdf, "Subtotal", po.Subtotal, false)
	if po.GSTType == "CGST_SGST" {
		totalsLine(pdf, "CGST", po.CGSTAmount, false)
		totalsLine(pdf, "SGST", po.SGSTAmount, false)
	} else {
		totalsLine(pdf, "IGST", po.IGSTAmount, false)
	}
	if !po.RoundingAdjustment.IsZero() {
		totalsLine(pdf, "Rounding", po.RoundingAdjustment, false)
	}
	totalsLine(pdf, "Grand Total", po.GrandTotal, true)

	if len(po.TermsConditions) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, lineHeight, "Terms & Conditions", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		for i, t := range po.TermsConditions {
			pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, t.Text), "", "L", false)
		}
	}

	return render(pdf)
}
