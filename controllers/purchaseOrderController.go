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
)

const purchaseOrderSeries = "KA"

type purchaseOrderInput struct {
	VendorID uint   `json:"vendor_id" validate:"required"`
	Site     string `json:"site"`
	Branch   string `json:"branch"`
	BookNo   string `json:"book_no" validate:"required"`

	QuotationRefNo string          `json:"quotation_ref_no"`
	QuotationDate  *datatypes.Date `json:"quotation_date"`
	ContactName    string          `json:"contact_name"`
	ContactNo      string          `json:"contact_no"`

	TermsConditionIDs []uint `json:"terms_conditions"`

	GSTType            string          `json:"gst_type"`
	RoundingAdjustment decimal.Decimal `json:"rounding_adjustment"`

	Products []models.PurchaseOrderProduct `json:"products" validate:"required,min=1"`
}

// purchaseOrderRevision is the payload for revising a purchase order.
// Pointer fields distinguish "not supplied" from an explicit value:
// omitted fields carry forward from the current version unchanged.
type purchaseOrderRevision struct {
	VendorID *uint   `json:"vendor_id"`
	Site     *string `json:"site"`
	Branch   *string `json:"branch"`

	QuotationRefNo *string         `json:"quotation_ref_no"`
	QuotationDate  *datatypes.Date `json:"quotation_date"`
	ContactName    *string         `json:"contact_name"`
	ContactNo      *string         `json:"contact_no"`

	TermsConditionIDs *[]uint `json:"terms_conditions"`

	GSTType            *string          `json:"gst_type"`
	RoundingAdjustment *decimal.Decimal `json:"rounding_adjustment"`

	Products []models.PurchaseOrderProduct `json:"products"`
}

// ensureCurrentVersion rejects revisions of superseded rows.
func ensureCurrentVersion(po *models.PurchaseOrder) error {
	if !po.IsCurrent {
		return fiber.NewError(fiber.StatusBadRequest, "only the current version can be revised")
	}
	return nil
}

// nextPurchaseOrderVersion builds version n+1 from the current version,
// applying only the fields the revision supplies. Products and terms
// default to copies of the current version's; line ids are zeroed so the
// insert creates fresh rows.
func nextPurchaseOrderVersion(current models.PurchaseOrder, rev purchaseOrderRevision, version int) models.PurchaseOrder {
	next := models.PurchaseOrder{
		VendorID:           current.VendorID,
		Site:               current.Site,
		Branch:             current.Branch,
		BookNo:             current.BookNo,
		PurchaseOrderNo:    current.PurchaseOrderNo,
		Version:            version,
		IsCurrent:          true,
		QuotationRefNo:     current.QuotationRefNo,
		QuotationDate:      current.QuotationDate,
		ContactName:        current.ContactName,
		ContactNo:          current.ContactNo,
		TermsConditions:    current.TermsConditions,
		GSTType:            current.GSTType,
		RoundingAdjustment: current.RoundingAdjustment,
	}
	if rev.VendorID != nil {
		next.VendorID = *rev.VendorID
	}
	if rev.Site != nil {
		next.Site = *rev.Site
	}
	if rev.Branch != nil {
		next.Branch = *rev.Branch
	}
	if rev.QuotationRefNo != nil {
		next.QuotationRefNo = *rev.QuotationRefNo
	}
	if rev.QuotationDate != nil {
		next.QuotationDate = rev.QuotationDate
	}
	if rev.ContactName != nil {
		next.ContactName = *rev.ContactName
	}
	if rev.ContactNo != nil {
		next.ContactNo = *rev.ContactNo
	}
	if rev.GSTType != nil {
		next.GSTType = *rev.GSTType
	}
	if rev.RoundingAdjustment != nil {
		next.RoundingAdjustment = *rev.RoundingAdjustment
	}

	products := rev.Products
	if products == nil {
		products = current.Products
	}
	next.Products = make([]models.PurchaseOrderProduct, len(products))
	copy(next.Products, products)
	for i := range next.Products {
		next.Products[i].ID = 0
		next.Products[i].PurchaseOrderID = 0
	}
	return next
}

// poVersionToPromote picks the version that becomes current after a
// delete: the highest remaining version, and only when the deleted row
// was the current one.
func poVersionToPromote(deleted models.PurchaseOrder, remaining []models.PurchaseOrder) *models.PurchaseOrder {
	if !deleted.IsCurrent || len(remaining) == 0 {
		return nil
	}
	best := &remaining[0]
	for i := 1; i < len(remaining); i++ {
		if remaining[i].Version > best.Version {
			best = &remaining[i]
		}
	}
	return best
}

func poPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Vendor").
		Preload("TermsConditions").Preload("TermsConditions.Type").
		Preload("Products").
		Preload("Products.ProductVariant").Preload("Products.ProductVariant.ProductModel").
		Preload("Products.Item")
}

// computePOTotals fills the line amounts and header totals in place.
// PO rates are tax-exclusive.
func computePOTotals(po *models.PurchaseOrder) error {
	lines := make([]documents.Line, len(po.Products))
	for i, p := range po.Products {
		lines[i] = documents.Line{
			Section:    p.IsSection,
			Quantity:   p.Quantity,
			Rate:       p.Rate,
			GSTPercent: p.GSTPercent,
		}
	}
	totals, err := documents.Compute(lines, documents.GSTType(po.GSTType), documents.TaxExclusive,
		decimal.Zero, po.RoundingAdjustment)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	for i := range po.Products {
		po.Products[i].Amount = totals.Lines[i].Base
		po.Products[i].GSTAmount = totals.Lines[i].GSTAmount
		po.Products[i].TotalWithGST = totals.Lines[i].Total
	}
	po.Subtotal = totals.Subtotal
	po.CGSTAmount = totals.CGSTAmount
	po.SGSTAmount = totals.SGSTAmount
	po.IGSTAmount = totals.IGSTAmount
	po.GSTAmount = totals.GSTAmount
	po.GrandTotal = totals.GrandTotal
	return nil
}

func loadTerms(db *gorm.DB, ids []uint) ([]models.TermsCondition, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var terms []models.TermsCondition
	if err := db.Find(&terms, ids).Error; err != nil || len(terms) != len(ids) {
		return nil, fiber.NewError(fiber.StatusNotFound, "terms condition not found")
	}
	return terms, nil
}

// ListPurchaseOrders returns current versions only; superseded versions
// are reachable through the history endpoint.
func ListPurchaseOrders(c *fiber.Ctx) error {
	db := poPreloads(middlewares.Tx(c)).Where("purchase_orders.is_current = ?", true)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		db = db.Joins("JOIN vendors ON vendors.id = purchase_orders.vendor_id").
			Where("purchase_orders.purchase_order_no ILIKE ? OR vendors.name ILIKE ?", like, like)
	}
	if v := c.Query("vendor"); v != "" {
		db = db.Where("purchase_orders.vendor_id = ?", v)
	}

	var rows []models.PurchaseOrder
	if err := db.Order("purchase_orders.id DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list purchase orders")
	}
	return c.JSON(rows)
}

func GetPurchaseOrder(c *fiber.Ctx) error {
	var po models.PurchaseOrder
	if err := poPreloads(middlewares.Tx(c)).First(&po, "purchase_orders.id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(po)
}

// PurchaseOrderHistory lists every version sharing the given row's
// number, newest first.
func PurchaseOrderHistory(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var po models.PurchaseOrder
	if err := db.First(&po, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	var versions []models.PurchaseOrder
	if err := poPreloads(db).Where("purchase_order_no = ?", po.PurchaseOrderNo).
		Order("version DESC").Find(&versions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load history")
	}
	return c.JSON(versions)
}

// CreatePurchaseOrder creates version 1. The PO number embeds the fresh
// row id, so it is finalized right after the insert, inside the same
// transaction.
func CreatePurchaseOrder(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	var input purchaseOrderInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	db := middlewares.Tx(c)
	var vendor models.Vendor
	if err := db.First(&vendor, input.VendorID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "vendor not found")
	}
	terms, err := loadTerms(db, input.TermsConditionIDs)
	if err != nil {
		return err
	}

	if input.GSTType == "" {
		input.GSTType = string(documents.GSTSplitCGSTSGST)
	}
	po := models.PurchaseOrder{
		VendorID:           input.VendorID,
		Site:               input.Site,
		Branch:             input.Branch,
		BookNo:             strings.ToUpper(strings.TrimSpace(input.BookNo)),
		Version:            1,
		IsCurrent:          true,
		QuotationRefNo:     input.QuotationRefNo,
		QuotationDate:      input.QuotationDate,
		ContactName:        input.ContactName,
		ContactNo:          input.ContactNo,
		TermsConditions:    terms,
		GSTType:            input.GSTType,
		RoundingAdjustment: input.RoundingAdjustment,
		Products:           input.Products,
		CreatedByID:        &caller.ID,
	}
	if err := computePOTotals(&po); err != nil {
		return err
	}
	// placeholder until the id exists; the unique index tolerates it for
	// the duration of the transaction
	po.PurchaseOrderNo = "PENDING"
	if err := db.Create(&po).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create purchase order")
	}

	number := documents.Number(purchaseOrderSeries, po.BookNo, time.Now(), po.ID)
	if err := db.Model(&po).Update("purchase_order_no", number).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not assign purchase order number")
	}

	poPreloads(db).First(&po, po.ID)
	return c.Status(fiber.StatusCreated).JSON(po)
}

// UpdatePurchaseOrder never mutates the stored version: it inserts the
// next version with the same number and flips IsCurrent atomically.
// Fields the request omits carry forward from the current version.
func UpdatePurchaseOrder(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	db := middlewares.Tx(c)

	var current models.PurchaseOrder
	if err := poPreloads(db).First(&current, "purchase_orders.id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := ensureCurrentVersion(&current); err != nil {
		return err
	}

	var rev purchaseOrderRevision
	if err := c.BodyParser(&rev); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if rev.Products != nil && len(rev.Products) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "products cannot be empty")
	}
	if rev.VendorID != nil {
		var vendor models.Vendor
		if err := db.First(&vendor, *rev.VendorID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "vendor not found")
		}
	}

	var maxVersion int
	if err := db.Model(&models.PurchaseOrder{}).
		Where("purchase_order_no = ?", current.PurchaseOrderNo).
		Select("COALESCE(MAX(version), 0)").Scan(&maxVersion).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not determine next version")
	}

	next := nextPurchaseOrderVersion(current, rev, maxVersion+1)
	next.CreatedByID = &caller.ID
	if rev.TermsConditionIDs != nil {
		terms, err := loadTerms(db, *rev.TermsConditionIDs)
		if err != nil {
			return err
		}
		next.TermsConditions = terms
	}
	if err := computePOTotals(&next); err != nil {
		return err
	}

	// demote first so the partial unique index on is_current never sees
	// two current rows
	if err := db.Model(&current).Update("is_current", false).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not supersede current version")
	}
	if err := db.Create(&next).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create new version")
	}

	poPreloads(db).First(&next, next.ID)
	return c.JSON(next)
}

// DeletePurchaseOrderVersion removes one version; deleting the current
// version promotes the latest remaining one.
func DeletePurchaseOrderVersion(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var po models.PurchaseOrder
	if err := db.First(&po, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}

	if err := db.Model(&po).Association("TermsConditions").Clear(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete purchase order")
	}
	if err := db.Select("Products").Delete(&po).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete purchase order")
	}

	var remaining []models.PurchaseOrder
	if err := db.Where("purchase_order_no = ?", po.PurchaseOrderNo).Find(&remaining).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete purchase order")
	}
	if promote := poVersionToPromote(po, remaining); promote != nil {
		if err := db.Model(promote).Update("is_current", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not promote previous version")
		}
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
