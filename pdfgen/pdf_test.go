package pdfgen

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"hvac-backoffice/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertPDF(t *testing.T, data []byte) {
	t.Helper()
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPurchaseOrderRenders(t *testing.T) {
	po := &models.PurchaseOrder{
		PurchaseOrderNo: "KA/SPL/26/0381",
		Version:         2,
		CreatedAt:       time.Now(),
		Vendor:          models.Vendor{Name: "CoolAir Traders", GSTDetails: "27ABCDE1234F1Z5"},
		GSTType:         "CGST_SGST",
		Products: []models.PurchaseOrderProduct{
			{IsSection: true, Description: "Indoor Units"},
			{Description: "1.5T Split IDU", HsnSac: "8415", Unit: "NOS",
				Quantity: dec("2"), Rate: dec("100"), GSTPercent: dec("18"),
				Amount: dec("200"), GSTAmount: dec("36"), TotalWithGST: dec("236")},
		},
		Subtotal:   dec("200"),
		CGSTAmount: dec("18"),
		SGSTAmount: dec("18"),
		GrandTotal: dec("236"),
		TermsConditions: []models.TermsCondition{
			{Text: "Delivery within 2 weeks."},
		},
	}
	data, err := PurchaseOrder(po)
	require.NoError(t, err)
	assertPDF(t, data)
}

func TestQuotationRenders(t *testing.T) {
	q := &models.Quotation{
		QuotationNo:  "KA/QT/26/0312",
		Customer:     models.Customer{Name: "Acme Cooling", Address: "12 MG Road"},
		Subject:      "VRF supply & installation",
		SiteName:     "Acme HQ",
		ThankYouNote: "Thank you for the opportunity.",
	}
	v := &models.QuotationVersion{
		VersionNo: "KA/QT/26/0312-R1",
		CreatedAt: time.Now(),
		GSTType:   "IGST",
		HighSideItems: []models.QuotationHighSideItem{
			{
				ProductVariant: models.ProductVariant{
					SKU:          "VRF8-0001",
					ProductModel: models.ProductModel{Name: "VRF 8HP ODU"},
				},
				Quantity: dec("1"), UnitPrice: dec("200"),
				MathadiCharges: dec("10"), TransportationCharges: dec("5"),
				TotalWithGST: dec("245.51"),
			},
		},
		LowSideItems: []models.QuotationLowSideItem{
			{Item: models.Item{Name: "Copper pipe 3/4"}, Quantity: dec("2"), UnitPrice: dec("50"),
				MathadiCharges: dec("4"), GSTAmount: dec("15.25"), TotalWithGST: dec("119.25")},
		},
		Subtotal:   dec("319"),
		IGSTAmount: dec("45.76"),
		GrandTotal: dec("364.76"),
	}
	data, err := Quotation(q, v)
	require.NoError(t, err)
	assertPDF(t, data)
}

func TestInvoiceRenders(t *testing.T) {
	inv := &models.Invoice{
		InvoiceNo:     "KA/INV/26/0390",
		InvoiceDate:   datatypes.Date(time.Now()),
		CompanyName:   "Krishna Aircon",
		CompanyGSTIN:  "27ABCDE1234F1Z5",
		CompanyPAN:    "ABCDE1234F",
		BuyerName:     "Acme Cooling",
		BuyerGSTIN:    "27FGHIJ5678K1Z9",
		BuyerState:    "Maharashtra",
		GSTType:       "CGST_SGST",
		TaxableValue:  dec("2000"),
		CGSTAmount:    dec("230"),
		SGSTAmount:    dec("230"),
		GrandTotal:    dec("2460"),
		AmountInWords: "Rupees Two Thousand Four Hundred Sixty Only",
		Items: []models.InvoiceItem{
			{Description: "Equipment", HsnSac: "8415", Unit: "NOS",
				Quantity: dec("1"), Rate: dec("1000"), GSTPercent: dec("28"), Amount: dec("1000")},
		},
		TaxBreakups: []models.InvoiceTaxBreakup{
			{TaxableValue: dec("1000"), CGSTRate: dec("14"), CGSTAmount: dec("140"),
				SGSTRate: dec("14"), SGSTAmount: dec("140")},
		},
		BankName:    "HDFC Bank",
		Branch:      "Pune",
		AccountNo:   "1234567890",
		IFSCCode:    "HDFC0000123",
		Declaration: "We declare that this invoice shows the actual price of the goods described.",
	}
	data, err := Invoice(inv)
	require.NoError(t, err)
	assertPDF(t, data)
}
