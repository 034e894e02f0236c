package pdfgen

import (
	"fmt"
	"time"

	"hvac-backoffice/models"
)

// Invoice renders a GST tax invoice as a PDF document.
func Invoice(inv *models.Invoice) ([]byte, error) {
	pdf := newDoc("TAX INVOICE")

	labelValue(pdf, "Invoice No:", inv.InvoiceNo)
	labelValue(pdf, "Date:", dateStr(time.Time(inv.InvoiceDate)))
	labelValue(pdf, "Seller:", inv.CompanyName)
	labelValue(pdf, "Seller GSTIN:", inv.CompanyGSTIN)
	labelValue(pdf, "Seller PAN:", inv.CompanyPAN)
	labelValue(pdf, "Buyer:", inv.BuyerName)
	if inv.BuyerGSTIN != "" {
		labelValue(pdf, "Buyer GSTIN:", inv.BuyerGSTIN)
	}
	if inv.BuyerState != "" {
		labelValue(pdf, "Place of Supply:", inv.BuyerState+" ("+inv.BuyerStateCode+")")
	}
	if inv.SiteName != "" {
		labelValue(pdf, "Site:", inv.SiteName)
	}
	pdf.Ln(2)

	widths := []float64{10, 66, 20, 15, 15, 20, 20, 20}
	aligns := []string{"C", "L", "C", "C", "R", "R", "R", "R"}
	tableHeader(pdf, widths, []string{"#", "Description", "HSN/SAC", "Unit", "Qty", "Rate", "GST %", "Amount"})

	row := 0
	for _, it := range inv.Items {
		if it.IsSection {
			pdf.SetFont("Helvetica", "B", 8)
			pdf.CellFormat(186, lineHeight, it.Description, "1", 1, "L", false, 0, "")
			continue
		}
		row++
		tableRow(pdf, widths, []string{
			fmt.Sprintf("%d", row), it.Description, it.HsnSac, it.Unit,
			money(it.Quantity), money(it.Rate), money(it.GSTPercent), money(it.Amount),
		}, aligns)
	}
	pdf.Ln(2)

	totalsLine(pdf, "Taxable Value", inv.TaxableValue, false)
	if inv.GSTType == "CGST_SGST" {
		totalsLine(pdf, "CGST", inv.CGSTAmount, false)
		totalsLine(pdf, "SGST", inv.SGSTAmount, false)
	} else {
		totalsLine(pdf, "IGST", inv.IGSTAmount, false)
	}
	totalsLine(pdf, "Grand Total", inv.GrandTotal, true)

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, lineHeight, "Amount in words: ", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, inv.AmountInWords, "", "L", false)

	if len(inv.TaxBreakups) > 0 {
		pdf.Ln(2)
		bw := []float64{36, 25, 25, 25, 25, 25, 25}
		ba := []string{"R", "R", "R", "R", "R", "R", "R"}
		tableHeader(pdf, bw, []string{"Taxable Value", "CGST %", "CGST Amt", "SGST %", "SGST Amt", "IGST %", "IGST Amt"})
		for _, b := range inv.TaxBreakups {
			tableRow(pdf, bw, []string{
				money(b.TaxableValue),
				money(b.CGSTRate), money(b.CGSTAmount),
				money(b.SGSTRate), money(b.SGSTAmount),
				money(b.IGSTRate), money(b.IGSTAmount),
			}, ba)
		}
	}

	if inv.BankName != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, lineHeight, "Bank Details", "", 1, "L", false, 0, "")
		labelValue(pdf, "Bank:", inv.BankName+" "+inv.Branch)
		labelValue(pdf, "A/c No:", inv.AccountNo)
		labelValue(pdf, "IFSC:", inv.IFSCCode)
	}
	if inv.Declaration != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(0, 4.5, inv.Declaration, "", "L", false)
	}

	return render(pdf)
}
