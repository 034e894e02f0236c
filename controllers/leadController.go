package controllers

import (
	"strings"
	"time"

	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// leadScope narrows the visible leads for the caller: sales users only
// see leads assigned to them, everyone else sees all.
func leadScope(db *gorm.DB, caller *models.User) *gorm.DB {
	if models.IsSales(caller) {
		return db.Where("leads.assign_to_id = ?", caller.ID)
	}
	return db
}

func leadPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").
		Preload("AssignTo").Preload("AssignTo.Role").
		Preload("CreatedBy").Preload("ReferenceBy").
		Preload("Products").
		Preload("FollowUps", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("FollowUps.FAQAnswers").Preload("FollowUps.Products")
}

// ListLeads supports assign_to/status/date-range/overdue filters and
// orders by follow-up priority: overdue first, then nearest follow-up.
func ListLeads(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	db := leadScope(leadPreloads(middlewares.Tx(c)), caller)

	if v := c.Query("assign_to"); v != "" {
		db = db.Where("leads.assign_to_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		db = db.Where("leads.status = ?", v)
	}
	if v := c.Query("followup_date_from"); v != "" {
		db = db.Where("leads.followup_date >= ?", v)
	}
	if v := c.Query("followup_date_to"); v != "" {
		db = db.Where("leads.followup_date <= ?", v)
	}
	if v := c.Query("date_from"); v != "" {
		db = db.Where("leads.date >= ?", v)
	}
	if v := c.Query("date_to"); v != "" {
		db = db.Where("leads.date <= ?", v)
	}
	if c.Query("overdue") == "true" {
		db = db.Where("leads.followup_date < CURRENT_DATE AND leads.followup_date IS NOT NULL AND leads.status <> ?", models.LeadStatusClosed)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		db = db.Joins("JOIN customers ON customers.id = leads.customer_id").
			Where("customers.name ILIKE ? OR customers.contact_number ILIKE ?", like, like)
	}

	var rows []models.Lead
	err := db.Order("(leads.followup_date < CURRENT_DATE AND leads.followup_date IS NOT NULL AND leads.status <> 'closed') DESC").
		Order("leads.followup_date ASC NULLS LAST").
		Order("leads.id DESC").
		Find(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list leads")
	}
	return c.JSON(rows)
}

func GetLead(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	var lead models.Lead
	if err := leadScope(leadPreloads(middlewares.Tx(c)), caller).First(&lead, "leads.id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(lead)
}

// LatestLeadByPhone returns the newest lead whose customer matches the
// given phone number.
func LatestLeadByPhone(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone query parameter is required")
	}
	caller := middlewares.CurrentUser(c)

	var lead models.Lead
	err := leadScope(leadPreloads(middlewares.Tx(c)), caller).
		Joins("JOIN customers ON customers.id = leads.customer_id").
		Where("customers.contact_number = ?", phone).
		Order("leads.id DESC").
		First(&lead).Error
	if err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(lead)
}

func validateLeadDates(date, followup *datatypes.Date) error {
	if date == nil || followup == nil {
		return nil
	}
	if time.Time(*followup).Before(time.Time(*date)) {
		return fiber.NewError(fiber.StatusBadRequest, "followup_date cannot be before date")
	}
	return nil
}

// normalizeLeadSource maps free-form sources onto the fixed list: an
// unknown value is stored as "other" with the raw text preserved in
// lead_source_input.
func normalizeLeadSource(lead *models.Lead) error {
	source := strings.TrimSpace(strings.ToLower(lead.LeadSource))
	if source == "" {
		return fiber.NewError(fiber.StatusBadRequest, "lead_source is required")
	}
	for _, fixed := range models.FixedLeadSources {
		if source == fixed {
			lead.LeadSource = source
			return nil
		}
	}
	lead.LeadSourceInput = lead.LeadSource
	lead.LeadSource = "other"
	return nil
}

func CreateLead(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)

	var lead models.Lead
	if err := c.BodyParser(&lead); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := normalizeLeadSource(&lead); err != nil {
		return err
	}
	if err := validateLeadDates(lead.Date, lead.FollowupDate); err != nil {
		return err
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusOpen
	}

	db := middlewares.Tx(c)
	var customer models.Customer
	if err := db.First(&customer, lead.CustomerID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "customer not found")
	}

	lead.CreatedByID = &caller.ID
	lead.FollowUps = nil
	if err := db.Create(&lead).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create lead")
	}

	leadPreloads(db).First(&lead, lead.ID)
	return c.Status(fiber.StatusCreated).JSON(lead)
}

type leadUpdateInput struct {
	models.Lead
	DeletedProducts []uint `json:"deleted_products"`
}

func UpdateLead(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	db := middlewares.Tx(c)

	var lead models.Lead
	if err := leadScope(db, caller).First(&lead, "leads.id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}

	var input leadUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validateLeadDates(input.Date, input.FollowupDate); err != nil {
		return err
	}

	updates := map[string]any{}
	if input.RequirementsDetails != "" {
		updates["requirements_details"] = input.RequirementsDetails
	}
	if input.LeadSource != "" {
		updates["lead_source"] = input.LeadSource
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}
	if input.LeadType != "" {
		updates["lead_type"] = input.LeadType
	}
	if input.ProjectName != "" {
		updates["project_name"] = input.ProjectName
	}
	if input.ProjectAddress != "" {
		updates["project_address"] = input.ProjectAddress
	}
	if input.Remarks != "" {
		updates["remarks"] = input.Remarks
	}
	if input.AssignToID != nil {
		updates["assign_to_id"] = *input.AssignToID
	}
	if input.ReferenceByID != nil {
		updates["reference_by_id"] = *input.ReferenceByID
	}
	if input.Date != nil {
		updates["date"] = input.Date
	}
	if input.EnquiryDate != nil {
		updates["enquiry_date"] = input.EnquiryDate
	}
	if input.FollowupDate != nil {
		updates["followup_date"] = input.FollowupDate
	}
	if len(updates) > 0 {
		if err := db.Model(&lead).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update lead")
		}
	}

	if len(input.DeletedProducts) > 0 {
		if err := db.Where("lead_id = ? AND id IN ?", lead.ID, input.DeletedProducts).
			Delete(&models.LeadProduct{}).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not delete lead products")
		}
	}

	for _, product := range input.Products {
		if product.ID != 0 {
			if err := db.Model(&models.LeadProduct{}).
				Where("id = ? AND lead_id = ?", product.ID, lead.ID).
				Updates(map[string]any{
					"quantity":       product.Quantity,
					"expected_price": product.ExpectedPrice,
					"remarks":        product.Remarks,
				}).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "could not update lead product")
			}
			continue
		}
		// new rows need the full taxonomy chain
		if product.AcTypeID == nil || product.AcSubTypeID == nil || product.BrandID == nil ||
			product.ProductModelID == nil || product.VariantID == nil {
			continue
		}
		product.LeadID = lead.ID
		if err := db.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not create lead product")
		}
	}

	leadPreloads(db).First(&lead, lead.ID)
	return c.JSON(lead)
}

func DeleteLead(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	db := middlewares.Tx(c)
	var lead models.Lead
	if err := leadScope(db, caller).First(&lead, "leads.id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := db.Select("Products", "FollowUps").Delete(&lead).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "could not delete lead")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
