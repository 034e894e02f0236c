package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hvac-backoffice/documents"
	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"
	"hvac-backoffice/utils"
)

const invoiceSeries = "KA"
const invoiceBookCode = "INV"

// Company profiles are plain CRUD; the chosen profile is snapshotted
// into each invoice at creation.
var companyProfileResource = Resource[models.CompanyProfile]{SearchColumns: []string{"name", "gstin"}}

func RegisterCompanyProfileRoutes(g fiber.Router) {
	companyProfileResource.Register(g, "company-profiles")
}

type invoiceInput struct {
	CustomerID       uint            `json:"customer" validate:"required"`
	CompanyProfileID uint            `json:"company_profile" validate:"required"`
	InvoiceDate      *datatypes.Date `json:"invoice_date"`

	BuyerName      string `json:"buyer_name"`
	BuyerAddress   string `json:"buyer_address"`
	BuyerGSTIN     string `json:"buyer_gstin"`
	BuyerState     string `json:"buyer_state"`
	BuyerStateCode string `json:"buyer_state_code"`
	ShipToAddress  string `json:"ship_to_address"`

	DeliveryNote    string `json:"delivery_note"`
	SupplierRef     string `json:"supplier_ref"`
	BuyerOrderNo    string `json:"buyer_order_no"`
	Destination     string `json:"destination"`
	TermsOfDelivery string `json:"terms_of_delivery"`
	SiteName        string `json:"site_name"`
	WorkDescription string `json:"work_description"`

	GSTType string `json:"gst_type"`

	Items []models.InvoiceItem `json:"items" validate:"required,min=1"`
}

func invoicePreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").
		Preload("Items").
		Preload("Items.ProductVariant").Preload("Items.Item").
		Preload("TaxBreakups", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
}

// computeInvoiceTotals fills line amounts, header totals, the per-rate
// breakup rows and the amount in words. Invoice rates are tax-exclusive.
func computeInvoiceTotals(inv *models.Invoice) error {
	lines := make([]documents.Line, len(inv.Items))
	for i, it := range inv.Items {
		lines[i] = documents.Line{
			Section:    it.IsSection,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			GSTPercent: it.GSTPercent,
		}
	}
	totals, err := documents.Compute(lines, documents.GSTType(inv.GSTType), documents.TaxExclusive,
		decimal.Zero, decimal.Zero)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	for i := range inv.Items {
		inv.Items[i].Amount = totals.Lines[i].Base
	}
	inv.TaxableValue = totals.Subtotal
	inv.CGSTAmount = totals.CGSTAmount
	inv.SGSTAmount = totals.SGSTAmount
	inv.IGSTAmount = totals.IGSTAmount
	inv.TotalTax = totals.GSTAmount
	inv.GrandTotal = totals.GrandTotal
	inv.AmountInWords = utils.AmountInWords(inv.GrandTotal)

	inv.TaxBreakups = inv.TaxBreakups[:0]
	for _, b := range totals.Breakup {
		inv.TaxBreakups = append(inv.TaxBreakups, models.InvoiceTaxBreakup{
			TaxableValue: b.TaxableValue,
			CGSTRate:     b.CGSTRate,
			CGSTAmount:   b.CGSTAmount,
			SGSTRate:     b.SGSTRate,
			SGSTAmount:   b.SGSTAmount,
			IGSTRate:     b.IGSTRate,
			IGSTAmount:   b.IGSTAmount,
		})
	}
	return nil
}

func ListInvoices(c *fiber.Ctx) error {
	db := invoicePreloads(middlewares.Tx(c))
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		db = db.Where("invoice_no ILIKE ? OR buyer_name ILIKE ?", like, like)
	}
	if v := c.Query("customer"); v != "" {
		db = db.Where("customer_id = ?", v)
	}
	if v := c.Query("date_from"); v != "" {
		db = db.Where("invoice_date >= ?", v)
	}
	if v := c.Query("date_to"); v != "" {
		db = db.Where("invoice_date <= ?", v)
	}
	var rows []models.Invoice
	if err := db.Order("id DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list invoices")
	}
	return c.JSON(rows)
}

func GetInvoice(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := invoicePreloads(middlewares.Tx(c)).First(&inv, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(inv)
}

// CreateInvoice snapshots buyer and seller details into the row and
// computes totals, breakups and the amount in words. The invoice number
// embeds the fresh row id, finalized inside the same transaction.
func CreateInvoice(c *fiber.Ctx) error {
	var input invoiceInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	db := middlewares.Tx(c)
	var customer models.Customer
	if err := db.First(&customer, input.CustomerID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "customer not found")
	}
	var profile models.CompanyProfile
	if err := db.First(&profile, input.CompanyProfileID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "company profile not found")
	}

	if input.GSTType == "" {
		input.GSTType = string(documents.GSTSplitCGSTSGST)
	}
	invoiceDate := datatypes.Date(time.Now())
	if input.InvoiceDate != nil {
		invoiceDate = *input.InvoiceDate
	}
	buyerName := input.BuyerName
	if buyerName == "" {
		buyerName = customer.Name
	}
	buyerAddress := input.BuyerAddress
	if buyerAddress == "" {
		buyerAddress = customer.Address
	}

	inv := models.Invoice{
		InvoiceNo:   "PENDING",
		CustomerID:  input.CustomerID,
		InvoiceDate: invoiceDate,

		BuyerName:      buyerName,
		BuyerAddress:   buyerAddress,
		BuyerGSTIN:     input.BuyerGSTIN,
		BuyerState:     input.BuyerState,
		BuyerStateCode: input.BuyerStateCode,
		ShipToAddress:  input.ShipToAddress,

		CompanyName:       profile.Name,
		CompanyAddress:    profile.Address,
		CompanyGSTIN:      profile.GSTIN,
		CompanyPAN:        profile.PAN,
		CompanyEmail:      profile.Email,
		CompanyMsmeNumber: profile.MsmeNumber,
		BankName:          profile.BankName,
		AccountNo:         profile.AccountNo,
		IFSCCode:          profile.IFSCCode,
		Branch:            profile.Branch,
		Declaration:       profile.Declaration,

		DeliveryNote:    input.DeliveryNote,
		SupplierRef:     input.SupplierRef,
		BuyerOrderNo:    input.BuyerOrderNo,
		Destination:     input.Destination,
		TermsOfDelivery: input.TermsOfDelivery,
		SiteName:        input.SiteName,
		WorkDescription: input.WorkDescription,

		GSTType: input.GSTType,
		Items:   input.Items,
	}
	if err := computeInvoiceTotals(&inv); err != nil {
		return err
	}
	if err := db.Create(&inv).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create invoice")
	}
	number := documents.Number(invoiceSeries, invoiceBookCode, time.Now(), inv.ID)
	if err := db.Model(&inv).Update("invoice_no", number).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not assign invoice number")
	}

	invoicePreloads(db).First(&inv, inv.ID)
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// UpdateInvoice replaces the items and recomputes everything derived:
// line amounts, header totals, breakup rows and the amount in words.
func UpdateInvoice(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var inv models.Invoice
	if err := invoicePreloads(db).First(&inv, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}

	var input invoiceInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one line item is required")
	}

	if input.BuyerName != "" {
		inv.BuyerName = input.BuyerName
	}
	if input.BuyerAddress != "" {
		inv.BuyerAddress = input.BuyerAddress
	}
	if input.BuyerGSTIN != "" {
		inv.BuyerGSTIN = input.BuyerGSTIN
	}
	if input.BuyerState != "" {
		inv.BuyerState = input.BuyerState
	}
	if input.BuyerStateCode != "" {
		inv.BuyerStateCode = input.BuyerStateCode
	}
	if input.ShipToAddress != "" {
		inv.ShipToAddress = input.ShipToAddress
	}
	if input.DeliveryNote != "" {
		inv.DeliveryNote = input.DeliveryNote
	}
	if input.SupplierRef != "" {
		inv.SupplierRef = input.SupplierRef
	}
	if input.BuyerOrderNo != "" {
		inv.BuyerOrderNo = input.BuyerOrderNo
	}
	if input.Destination != "" {
		inv.Destination = input.Destination
	}
	if input.TermsOfDelivery != "" {
		inv.TermsOfDelivery = input.TermsOfDelivery
	}
	if input.SiteName != "" {
		inv.SiteName = input.SiteName
	}
	if input.WorkDescription != "" {
		inv.WorkDescription = input.WorkDescription
	}
	if input.InvoiceDate != nil {
		inv.InvoiceDate = *input.InvoiceDate
	}
	if input.GSTType != "" {
		inv.GSTType = input.GSTType
	}

	// replace owned rows wholesale, then recompute
	if err := db.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update invoice")
	}
	if err := db.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceTaxBreakup{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update invoice")
	}
	inv.Items = input.Items
	for i := range inv.Items {
		inv.Items[i].ID = 0
		inv.Items[i].InvoiceID = inv.ID
	}
	inv.TaxBreakups = nil
	if err := computeInvoiceTotals(&inv); err != nil {
		return err
	}
	for i := range inv.TaxBreakups {
		inv.TaxBreakups[i].InvoiceID = inv.ID
	}

	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&inv).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update invoice")
	}

	invoicePreloads(db).First(&inv, inv.ID)
	return c.JSON(inv)
}

func DeleteInvoice(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var inv models.Invoice
	if err := db.First(&inv, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := db.Select("Items", "TaxBreakups").Delete(&inv).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete invoice")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
