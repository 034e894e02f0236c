package controllers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac-backoffice/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputePOTotalsExclusiveSplit(t *testing.T) {
	po := models.PurchaseOrder{
		GSTType: "CGST_SGST",
		Products: []models.PurchaseOrderProduct{
			{Quantity: dec("2"), Rate: dec("100"), GSTPercent: dec("18")},
		},
	}
	require.NoError(t, computePOTotals(&po))

	assert.True(t, po.Products[0].Amount.Equal(dec("200")))
	assert.True(t, po.Products[0].GSTAmount.Equal(dec("36")))
	assert.True(t, po.Products[0].TotalWithGST.Equal(dec("236")))
	assert.True(t, po.Subtotal.Equal(dec("200")))
	assert.True(t, po.CGSTAmount.Equal(dec("18")))
	assert.True(t, po.SGSTAmount.Equal(dec("18")))
	assert.True(t, po.IGSTAmount.IsZero())
	assert.True(t, po.GrandTotal.Equal(dec("236")))
}

func TestComputePOTotalsSectionRowsAndRounding(t *testing.T) {
	po := models.PurchaseOrder{
		GSTType:            "IGST",
		RoundingAdjustment: dec("0.40"),
		Products: []models.PurchaseOrderProduct{
			{IsSection: true, Description: "Indoor Units"},
			{Quantity: dec("1"), Rate: dec("999.60"), GSTPercent: dec("18")},
		},
	}
	require.NoError(t, computePOTotals(&po))

	assert.True(t, po.Products[0].Amount.IsZero(), "section rows contribute nothing")
	assert.True(t, po.IGSTAmount.Equal(dec("179.93")))
	assert.True(t, po.CGSTAmount.IsZero())
	// 999.60 + 179.93 + 0.40
	assert.True(t, po.GrandTotal.Equal(dec("1179.93")))
}

func TestComputePOTotalsRejectsOutOfBoundRounding(t *testing.T) {
	po := models.PurchaseOrder{
		GSTType:            "CGST_SGST",
		RoundingAdjustment: dec("10.01"),
		Products: []models.PurchaseOrderProduct{
			{Quantity: dec("1"), Rate: dec("100"), GSTPercent: dec("18")},
		},
	}
	assert.Error(t, computePOTotals(&po))
}

func TestComputeQuotationTotalsGSTOnBasePriceOnly(t *testing.T) {
	v := models.QuotationVersion{
		GSTType: "CGST_SGST",
		HighSideItems: []models.QuotationHighSideItem{
			{
				Quantity:              dec("1"),
				UnitPrice:             dec("200"),
				GSTPercent:            dec("18"),
				MathadiCharges:        dec("10"),
				TransportationCharges: dec("5"),
			},
		},
		LowSideItems: []models.QuotationLowSideItem{
			{Quantity: dec("2"), UnitPrice: dec("50"), GSTPercent: dec("18"), MathadiCharges: dec("4")},
		},
	}
	require.NoError(t, computeQuotationTotals(&v))

	// GST on the base price only; charges are added on top untaxed:
	// 200 + 36 + 15 for the high side line
	assert.True(t, v.HighSideItems[0].BaseAmount.Equal(dec("200")))
	assert.True(t, v.HighSideItems[0].GSTAmount.Equal(dec("36")))
	assert.True(t, v.HighSideItems[0].TotalWithGST.Equal(dec("251")))

	// 100 + 18 + 4 for the low side line
	assert.True(t, v.LowSideItems[0].BaseAmount.Equal(dec("100")))
	assert.True(t, v.LowSideItems[0].GSTAmount.Equal(dec("18")))
	assert.True(t, v.LowSideItems[0].TotalWithGST.Equal(dec("122")))

	// flat charges fold into the subtotal, never into the tax base
	assert.True(t, v.Subtotal.Equal(dec("319")))
	assert.True(t, v.GSTAmount.Equal(dec("54")))
	assert.True(t, v.CGSTAmount.Equal(dec("27")))
	assert.True(t, v.SGSTAmount.Equal(dec("27")))
	assert.True(t, v.TotalAmount.Equal(dec("373")))
	assert.True(t, v.GrandTotal.Equal(dec("373")))
}

func TestComputeQuotationTotalsRejectsBadGSTType(t *testing.T) {
	v := models.QuotationVersion{
		GSTType: "VAT",
		HighSideItems: []models.QuotationHighSideItem{
			{Quantity: dec("1"), UnitPrice: dec("100"), GSTPercent: dec("18")},
		},
	}
	assert.Error(t, computeQuotationTotals(&v))
}

func TestComputeInvoiceTotalsBreakupByRate(t *testing.T) {
	inv := models.Invoice{
		GSTType: "CGST_SGST",
		Items: []models.InvoiceItem{
			{Description: "Equipment", Quantity: dec("1"), Rate: dec("1000"), GSTPercent: dec("28")},
			{Description: "Install", Quantity: dec("2"), Rate: dec("250"), GSTPercent: dec("18")},
			{Description: "Copper piping", Quantity: dec("1"), Rate: dec("500"), GSTPercent: dec("18")},
			{Description: "Notes", IsSection: true},
		},
	}
	require.NoError(t, computeInvoiceTotals(&inv))

	assert.True(t, inv.TaxableValue.Equal(dec("2000")))
	assert.True(t, inv.TotalTax.Equal(dec("460")))
	assert.True(t, inv.CGSTAmount.Equal(dec("230")))
	assert.True(t, inv.GrandTotal.Equal(dec("2460")))
	assert.Contains(t, inv.AmountInWords, "Two Thousand Four Hundred Sixty")

	require.Len(t, inv.TaxBreakups, 2)
	// sorted ascending by rate: 18 then 28
	assert.True(t, inv.TaxBreakups[0].TaxableValue.Equal(dec("1000")))
	assert.True(t, inv.TaxBreakups[0].CGSTRate.Equal(dec("9")))
	assert.True(t, inv.TaxBreakups[0].CGSTAmount.Equal(dec("90")))
	assert.True(t, inv.TaxBreakups[1].TaxableValue.Equal(dec("1000")))
	assert.True(t, inv.TaxBreakups[1].CGSTAmount.Equal(dec("140")))
}

func TestComputeInvoiceTotalsIGST(t *testing.T) {
	inv := models.Invoice{
		GSTType: "IGST",
		Items: []models.InvoiceItem{
			{Description: "Equipment", Quantity: dec("1"), Rate: dec("100"), GSTPercent: dec("18")},
		},
	}
	require.NoError(t, computeInvoiceTotals(&inv))

	assert.True(t, inv.IGSTAmount.Equal(dec("18")))
	assert.True(t, inv.CGSTAmount.IsZero())
	assert.True(t, inv.SGSTAmount.IsZero())
	require.Len(t, inv.TaxBreakups, 1)
	assert.True(t, inv.TaxBreakups[0].IGSTRate.Equal(dec("18")))
	assert.True(t, inv.TaxBreakups[0].IGSTAmount.Equal(dec("18")))
}
