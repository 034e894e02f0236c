package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hvac-backoffice/documents"
	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"
)

const quotationSeries = "KA"

// quotationFallbackBookCode is used when the quotation has no high-side
// item to derive an AC-type code from.
const quotationFallbackBookCode = "QT"

// quotationBookCode derives the number's book segment from the AC type
// of the first high-side item, e.g. "Split AC" -> "SPL".
func quotationBookCode(acTypeName string) string {
	name := strings.ToUpper(strings.TrimSpace(acTypeName))
	if name == "" {
		return quotationFallbackBookCode
	}
	if len(name) > 3 {
		return name[:3]
	}
	return name
}

// nextRevisionNumber derives the next revision counter from every label
// ever issued, so deleted revisions never cause a label collision.
func nextRevisionNumber(labels []string) int {
	maxRev := 0
	for _, label := range labels {
		if n, err := documents.ParseRevision(label); err == nil && n > maxRev {
			maxRev = n
		}
	}
	return maxRev + 1
}

// versionToPromote decides what happens after a version delete: when no
// versions remain the parent goes too; otherwise the newest remaining
// version is promoted, but only if the deleted one was active.
func versionToPromote(deleted models.QuotationVersion, remaining []models.QuotationVersion) (*models.QuotationVersion, bool) {
	if len(remaining) == 0 {
		return nil, true
	}
	if !deleted.IsActive {
		return nil, false
	}
	newest := &remaining[0]
	for i := 1; i < len(remaining); i++ {
		v := &remaining[i]
		if v.CreatedAt.After(newest.CreatedAt) ||
			(v.CreatedAt.Equal(newest.CreatedAt) && v.ID > newest.ID) {
			newest = v
		}
	}
	return newest, false
}

type quotationInput struct {
	CustomerID   uint   `json:"customer" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	SiteName     string `json:"site_name"`
	ThankYouNote string `json:"thank_you_note"`

	GSTType string `json:"gst_type"`

	HighSideItems []models.QuotationHighSideItem `json:"high_side_items"`
	LowSideItems  []models.QuotationLowSideItem  `json:"low_side_items"`
}

func quotationPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").
		Preload("Versions", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Versions.HighSideItems").
		Preload("Versions.HighSideItems.ProductVariant").
		Preload("Versions.HighSideItems.ProductVariant.ProductModel").
		Preload("Versions.HighSideItems.ProductVariant.ProductModel.Brand").
		Preload("Versions.LowSideItems").
		Preload("Versions.LowSideItems.Item")
}

func versionPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("HighSideItems").
		Preload("HighSideItems.ProductVariant").
		Preload("HighSideItems.ProductVariant.ProductModel").
		Preload("HighSideItems.ProductVariant.ProductModel.Brand").
		Preload("LowSideItems").
		Preload("LowSideItems.Item")
}

// computeQuotationTotals fills line amounts and version totals in place.
// GST applies to the base price only; mathadi and transportation charges
// stay outside the tax base.
func computeQuotationTotals(v *models.QuotationVersion) error {
	lines := make([]documents.Line, 0, len(v.HighSideItems)+len(v.LowSideItems))
	for _, it := range v.HighSideItems {
		lines = append(lines, documents.Line{
			Quantity:    it.Quantity,
			Rate:        it.UnitPrice,
			GSTPercent:  it.GSTPercent,
			FlatCharges: it.MathadiCharges.Add(it.TransportationCharges),
		})
	}
	for _, it := range v.LowSideItems {
		lines = append(lines, documents.Line{
			Quantity:    it.Quantity,
			Rate:        it.UnitPrice,
			GSTPercent:  it.GSTPercent,
			FlatCharges: it.MathadiCharges,
		})
	}

	totals, err := documents.Compute(lines, documents.GSTType(v.GSTType), documents.TaxExclusive,
		decimal.Zero, decimal.Zero)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	for i := range v.HighSideItems {
		v.HighSideItems[i].BaseAmount = totals.Lines[i].Base
		v.HighSideItems[i].GSTAmount = totals.Lines[i].GSTAmount
		v.HighSideItems[i].TotalWithGST = totals.Lines[i].Total
	}
	offset := len(v.HighSideItems)
	for i := range v.LowSideItems {
		v.LowSideItems[i].BaseAmount = totals.Lines[offset+i].Base
		v.LowSideItems[i].GSTAmount = totals.Lines[offset+i].GSTAmount
		v.LowSideItems[i].TotalWithGST = totals.Lines[offset+i].Total
	}

	v.Subtotal = totals.Subtotal
	v.CGSTAmount = totals.CGSTAmount
	v.SGSTAmount = totals.SGSTAmount
	v.IGSTAmount = totals.IGSTAmount
	v.GSTAmount = totals.GSTAmount
	v.TotalAmount = totals.Subtotal.Add(totals.GSTAmount)
	v.GrandTotal = totals.GrandTotal
	return nil
}

func ListQuotations(c *fiber.Ctx) error {
	db := quotationPreloads(middlewares.Tx(c))
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		db = db.Joins("JOIN customers ON customers.id = quotations.customer_id").
			Where("quotations.quotation_no ILIKE ? OR quotations.subject ILIKE ? OR customers.name ILIKE ?",
				like, like, like)
	}
	if v := c.Query("customer"); v != "" {
		db = db.Where("quotations.customer_id = ?", v)
	}
	var rows []models.Quotation
	if err := db.Order("quotations.id DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list quotations")
	}
	return c.JSON(rows)
}

func GetQuotation(c *fiber.Ctx) error {
	var q models.Quotation
	if err := quotationPreloads(middlewares.Tx(c)).First(&q, "quotations.id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(q)
}

// LatestQuotationVersion returns the single active version.
func LatestQuotationVersion(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var q models.Quotation
	if err := db.First(&q, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	var version models.QuotationVersion
	if err := versionPreloads(db).
		Where("quotation_id = ? AND is_active = ?", q.ID, true).
		First(&version).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "quotation has no active version")
	}
	return c.JSON(version)
}

// CreateQuotation creates the parent and its first version R1 in one
// transaction. The quotation number embeds the fresh row id, so it is
// finalized right after the insert; the version label derives from it.
func CreateQuotation(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	var input quotationInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	if len(input.HighSideItems) == 0 && len(input.LowSideItems) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one line item is required")
	}

	db := middlewares.Tx(c)
	var customer models.Customer
	if err := db.First(&customer, input.CustomerID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "customer not found")
	}

	if input.GSTType == "" {
		input.GSTType = string(documents.GSTSplitCGSTSGST)
	}
	q := models.Quotation{
		QuotationNo:  "PENDING",
		CustomerID:   input.CustomerID,
		Subject:      input.Subject,
		SiteName:     input.SiteName,
		ThankYouNote: input.ThankYouNote,
	}
	if err := db.Create(&q).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create quotation")
	}

	bookCode := quotationFallbackBookCode
	if len(input.HighSideItems) > 0 {
		var variant models.ProductVariant
		err := db.Preload("ProductModel.AcSubType.AcType").
			First(&variant, input.HighSideItems[0].ProductVariantID).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "product variant not found")
		}
		bookCode = quotationBookCode(variant.ProductModel.AcSubType.AcType.Name)
	}
	number := documents.Number(quotationSeries, bookCode, time.Now(), q.ID)
	if err := db.Model(&q).Update("quotation_no", number).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not assign quotation number")
	}

	version := models.QuotationVersion{
		QuotationID:   q.ID,
		VersionNo:     documents.RevisionLabel(number, 1),
		IsActive:      true,
		GSTType:       input.GSTType,
		HighSideItems: input.HighSideItems,
		LowSideItems:  input.LowSideItems,
		CreatedByID:   &caller.ID,
	}
	if err := computeQuotationTotals(&version); err != nil {
		return err
	}
	if err := db.Create(&version).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create quotation version")
	}

	quotationPreloads(db).First(&q, q.ID)
	return c.Status(fiber.StatusCreated).JSON(q)
}

// UpdateQuotation revises the quotation: the active version is
// superseded and a new version R(n+1) becomes active. A quotation left
// with no active version cannot be revised.
func UpdateQuotation(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	db := middlewares.Tx(c)

	var q models.Quotation
	if err := db.First(&q, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}

	var input quotationInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.HighSideItems) == 0 && len(input.LowSideItems) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one line item is required")
	}

	var active models.QuotationVersion
	if err := db.Where("quotation_id = ? AND is_active = ?", q.ID, true).First(&active).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "quotation has no active version to revise")
	}

	var labels []string
	if err := db.Model(&models.QuotationVersion{}).
		Where("quotation_id = ?", q.ID).Pluck("version_no", &labels).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not determine next revision")
	}
	nextRev := nextRevisionNumber(labels)

	// parent metadata follows the latest revision
	parentUpdates := map[string]any{}
	if input.Subject != "" {
		parentUpdates["subject"] = input.Subject
	}
	if input.SiteName != "" {
		parentUpdates["site_name"] = input.SiteName
	}
	if input.ThankYouNote != "" {
		parentUpdates["thank_you_note"] = input.ThankYouNote
	}
	if len(parentUpdates) > 0 {
		if err := db.Model(&q).Updates(parentUpdates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update quotation")
		}
	}

	if input.GSTType == "" {
		input.GSTType = active.GSTType
	}
	next := models.QuotationVersion{
		QuotationID:   q.ID,
		VersionNo:     documents.RevisionLabel(q.QuotationNo, nextRev),
		IsActive:      true,
		GSTType:       input.GSTType,
		HighSideItems: input.HighSideItems,
		LowSideItems:  input.LowSideItems,
		CreatedByID:   &caller.ID,
	}
	for i := range next.HighSideItems {
		next.HighSideItems[i].ID = 0
		next.HighSideItems[i].QuotationVersionID = 0
	}
	for i := range next.LowSideItems {
		next.LowSideItems[i].ID = 0
		next.LowSideItems[i].QuotationVersionID = 0
	}
	if err := computeQuotationTotals(&next); err != nil {
		return err
	}

	// demote first so the partial unique index on is_active never sees
	// two active rows
	if err := db.Model(&active).Update("is_active", false).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not supersede active version")
	}
	if err := db.Create(&next).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create quotation version")
	}

	quotationPreloads(db).First(&q, q.ID)
	return c.JSON(q)
}

// DeleteQuotationVersion removes one version. Deleting the active
// version promotes the newest remaining one; deleting the last version
// removes the quotation itself.
func DeleteQuotationVersion(c *fiber.Ctx) error {
	db := middlewares.Tx(c)

	var q models.Quotation
	if err := db.First(&q, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	var version models.QuotationVersion
	if err := db.Where("quotation_id = ?", q.ID).First(&version, "id = ?", c.Params("versionId")).Error; err != nil {
		return fiber.ErrNotFound
	}

	if err := db.Select("HighSideItems", "LowSideItems").Delete(&version).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete quotation version")
	}

	var remaining []models.QuotationVersion
	if err := db.Where("quotation_id = ?", q.ID).Find(&remaining).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete quotation version")
	}
	promote, deleteParent := versionToPromote(version, remaining)
	if deleteParent {
		if err := db.Delete(&q).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete quotation")
		}
		return c.JSON(fiber.Map{"message": "quotation deleted"})
	}
	if promote != nil {
		if err := db.Model(promote).Update("is_active", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not promote previous version")
		}
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// DeleteQuotation removes the quotation and all of its versions.
func DeleteQuotation(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var q models.Quotation
	if err := quotationPreloads(db).First(&q, "quotations.id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	for _, v := range q.Versions {
		if err := db.Select("HighSideItems", "LowSideItems").Delete(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete quotation")
		}
	}
	if err := db.Delete(&q).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete quotation")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
