package controllers

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"hvac-backoffice/models"
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func samplePurchaseOrder() models.PurchaseOrder {
	date := datatypes.Date(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	return models.PurchaseOrder{
		ID:              7,
		VendorID:        3,
		Site:            "Warehouse A",
		Branch:          "Pune",
		BookNo:          "SPL",
		PurchaseOrderNo: "KA/SPL/26/037",
		Version:         2,
		IsCurrent:       true,
		QuotationRefNo:  "KA/SPL/26/0312-R1",
		QuotationDate:   &date,
		ContactName:     "Ramesh",
		ContactNo:       "9876543210",
		TermsConditions: []models.TermsCondition{
			{ID: 11, Text: "Delivery within 7 days"},
			{ID: 12, Text: "Payment 30 days net"},
		},
		GSTType:            "CGST_SGST",
		RoundingAdjustment: dec("0.25"),
		Products: []models.PurchaseOrderProduct{
			{ID: 41, PurchaseOrderID: 7, Description: "1.5T Split AC", Quantity: dec("2"), Rate: dec("30000"), GSTPercent: dec("18")},
			{ID: 42, PurchaseOrderID: 7, Description: "Copper piping", Quantity: dec("10"), Rate: dec("450"), GSTPercent: dec("18")},
		},
	}
}

func TestEnsureCurrentVersion(t *testing.T) {
	current := samplePurchaseOrder()
	assert.NoError(t, ensureCurrentVersion(&current))

	superseded := samplePurchaseOrder()
	superseded.IsCurrent = false
	err := ensureCurrentVersion(&superseded)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestNextPurchaseOrderVersionCarriesForwardOmittedFields(t *testing.T) {
	current := samplePurchaseOrder()

	next := nextPurchaseOrderVersion(current, purchaseOrderRevision{}, 3)

	assert.Equal(t, current.VendorID, next.VendorID)
	assert.Equal(t, current.Site, next.Site)
	assert.Equal(t, current.Branch, next.Branch)
	assert.Equal(t, current.BookNo, next.BookNo)
	assert.Equal(t, current.PurchaseOrderNo, next.PurchaseOrderNo)
	assert.Equal(t, current.QuotationRefNo, next.QuotationRefNo)
	assert.Equal(t, current.QuotationDate, next.QuotationDate)
	assert.Equal(t, current.ContactName, next.ContactName)
	assert.Equal(t, current.ContactNo, next.ContactNo)
	assert.Equal(t, current.GSTType, next.GSTType)
	assert.True(t, next.RoundingAdjustment.Equal(current.RoundingAdjustment))

	assert.Equal(t, 3, next.Version)
	assert.True(t, next.IsCurrent)

	// terms and products copied from the current version
	require.Len(t, next.TermsConditions, 2)
	assert.Equal(t, uint(11), next.TermsConditions[0].ID)
	require.Len(t, next.Products, 2)
	assert.Equal(t, "1.5T Split AC", next.Products[0].Description)
	assert.True(t, next.Products[0].Rate.Equal(dec("30000")))

	// fresh line rows for the new version
	for _, p := range next.Products {
		assert.Zero(t, p.ID)
		assert.Zero(t, p.PurchaseOrderID)
	}
	// the current version's rows stay untouched
	assert.Equal(t, uint(41), current.Products[0].ID)
}

func TestNextPurchaseOrderVersionAppliesOverrides(t *testing.T) {
	current := samplePurchaseOrder()
	rounding := dec("-0.40")
	rev := purchaseOrderRevision{
		VendorID:           uintPtr(9),
		Site:               strPtr("Warehouse B"),
		ContactName:        strPtr("Suresh"),
		GSTType:            strPtr("IGST"),
		RoundingAdjustment: &rounding,
	}

	next := nextPurchaseOrderVersion(current, rev, 3)

	assert.Equal(t, uint(9), next.VendorID)
	assert.Equal(t, "Warehouse B", next.Site)
	assert.Equal(t, "Suresh", next.ContactName)
	assert.Equal(t, "IGST", next.GSTType)
	assert.True(t, next.RoundingAdjustment.Equal(dec("-0.40")))

	// untouched fields still carry forward
	assert.Equal(t, current.Branch, next.Branch)
	assert.Equal(t, current.ContactNo, next.ContactNo)
	assert.Equal(t, current.QuotationRefNo, next.QuotationRefNo)
	require.Len(t, next.Products, 2)
}

func TestNextPurchaseOrderVersionReplacesProducts(t *testing.T) {
	current := samplePurchaseOrder()
	rev := purchaseOrderRevision{
		Products: []models.PurchaseOrderProduct{
			{ID: 99, PurchaseOrderID: 5, Description: "2T Cassette AC", Quantity: dec("1"), Rate: dec("55000"), GSTPercent: dec("28")},
		},
	}

	next := nextPurchaseOrderVersion(current, rev, 3)

	require.Len(t, next.Products, 1)
	assert.Equal(t, "2T Cassette AC", next.Products[0].Description)
	assert.Zero(t, next.Products[0].ID)
	assert.Zero(t, next.Products[0].PurchaseOrderID)
}

func TestPOVersionToPromote(t *testing.T) {
	deleted := samplePurchaseOrder()
	remaining := []models.PurchaseOrder{
		{ID: 1, Version: 1},
		{ID: 5, Version: 3},
		{ID: 3, Version: 2},
	}

	promote := poVersionToPromote(deleted, remaining)
	require.NotNil(t, promote)
	assert.Equal(t, 3, promote.Version)

	// deleting a superseded version promotes nothing
	deleted.IsCurrent = false
	assert.Nil(t, poVersionToPromote(deleted, remaining))

	// nothing left to promote
	deleted.IsCurrent = true
	assert.Nil(t, poVersionToPromote(deleted, nil))
}

func TestVersionToPromote(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	active := models.QuotationVersion{ID: 30, IsActive: true, CreatedAt: base.Add(2 * time.Hour)}
	remaining := []models.QuotationVersion{
		{ID: 10, CreatedAt: base},
		{ID: 20, CreatedAt: base.Add(time.Hour)},
	}

	promote, deleteParent := versionToPromote(active, remaining)
	assert.False(t, deleteParent)
	require.NotNil(t, promote)
	assert.Equal(t, uint(20), promote.ID, "newest remaining version is promoted")

	// equal timestamps fall back to the higher id
	tied := []models.QuotationVersion{
		{ID: 10, CreatedAt: base},
		{ID: 20, CreatedAt: base},
	}
	promote, deleteParent = versionToPromote(active, tied)
	assert.False(t, deleteParent)
	require.NotNil(t, promote)
	assert.Equal(t, uint(20), promote.ID)

	// deleting a superseded version leaves the active one alone
	inactive := models.QuotationVersion{ID: 30, IsActive: false, CreatedAt: base}
	promote, deleteParent = versionToPromote(inactive, remaining)
	assert.Nil(t, promote)
	assert.False(t, deleteParent)

	// deleting the last version takes the quotation with it
	promote, deleteParent = versionToPromote(active, nil)
	assert.Nil(t, promote)
	assert.True(t, deleteParent)
}

func TestNextRevisionNumber(t *testing.T) {
	assert.Equal(t, 1, nextRevisionNumber(nil))
	assert.Equal(t, 3, nextRevisionNumber([]string{"KA/SPL/26/0312-R1", "KA/SPL/26/0312-R2"}))

	// deleted revisions leave gaps; labels are never reissued
	assert.Equal(t, 4, nextRevisionNumber([]string{"KA/SPL/26/0312-R1", "KA/SPL/26/0312-R3"}))

	// malformed labels are ignored
	assert.Equal(t, 3, nextRevisionNumber([]string{"garbage", "KA/SPL/26/0312-R2"}))
}

func TestQuotationBookCode(t *testing.T) {
	assert.Equal(t, "SPL", quotationBookCode("Split AC"))
	assert.Equal(t, "CAS", quotationBookCode(" cassette "))
	assert.Equal(t, "VRF", quotationBookCode("VRF"))
	assert.Equal(t, "AC", quotationBookCode("ac"))
	assert.Equal(t, "QT", quotationBookCode(""))
}
