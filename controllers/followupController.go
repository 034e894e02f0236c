package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"
)

// Lead follow-up FAQs are a flat lookup table.
var faqResource = Resource[models.LeadFAQ]{
	SearchColumns: []string{"question"},
	OrderBy:       "sort_order, id",
}

func ListLeadFAQs(c *fiber.Ctx) error  { return faqResource.List(c) }
func GetLeadFAQ(c *fiber.Ctx) error    { return faqResource.Get(c) }
func CreateLeadFAQ(c *fiber.Ctx) error { return faqResource.Create(c) }
func UpdateLeadFAQ(c *fiber.Ctx) error { return faqResource.Update(c) }
func DeleteLeadFAQ(c *fiber.Ctx) error { return faqResource.Delete(c) }

type followUpInput struct {
	LeadID           uint                           `json:"lead"`
	FollowupDate     *datatypes.Date                `json:"followup_date"`
	NextFollowupDate *datatypes.Date                `json:"next_followup_date"`
	Remarks          string                         `json:"remarks"`
	Status           string                         `json:"status"`
	FAQAnswers       []models.LeadFollowUpFAQAnswer `json:"faq_answers"`
	Products         []models.LeadFollowUpProduct   `json:"product_details"`
}

func followUpPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("FAQAnswers").Preload("Products")
}

func ListFollowUps(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	db := followUpPreloads(middlewares.Tx(c))
	if v := c.Query("lead"); v != "" {
		db = db.Where("lead_id = ?", v)
	}
	if models.IsSales(caller) {
		db = db.Joins("JOIN leads ON leads.id = lead_follow_ups.lead_id").
			Where("leads.assign_to_id = ?", caller.ID)
	}
	var rows []models.LeadFollowUp
	if err := db.Order("lead_follow_ups.created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list follow-ups")
	}
	return c.JSON(rows)
}

func GetFollowUp(c *fiber.Ctx) error {
	var followUp models.LeadFollowUp
	if err := followUpPreloads(middlewares.Tx(c)).First(&followUp, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(followUp)
}

// CreateFollowUp records one follow-up against a lead: the FAQ answers
// and product interest given during the call are snapshotted on the
// follow-up, and the lead's current product set and next follow-up date
// are replaced to match.
func CreateFollowUp(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	db := middlewares.Tx(c)

	var input followUpInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var lead models.Lead
	if err := leadScope(db, caller).First(&lead, "leads.id = ?", input.LeadID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "lead not found")
	}
	if lead.Status == models.LeadStatusClosed {
		return fiber.NewError(fiber.StatusBadRequest, "cannot add a follow-up to a closed lead")
	}

	for _, ans := range input.FAQAnswers {
		var faq models.LeadFAQ
		if err := db.First(&faq, ans.FAQID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "faq not found")
		}
	}

	followUp := models.LeadFollowUp{
		LeadID:           lead.ID,
		FollowupDate:     input.FollowupDate,
		NextFollowupDate: input.NextFollowupDate,
		Remarks:          input.Remarks,
		Status:           input.Status,
		CreatedByID:      &caller.ID,
		FAQAnswers:       input.FAQAnswers,
		Products:         input.Products,
	}
	if err := db.Create(&followUp).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create follow-up")
	}

	if err := syncLeadAfterFollowUp(db, &lead, &followUp, input.Products); err != nil {
		return err
	}

	followUpPreloads(db).First(&followUp, followUp.ID)
	return c.Status(fiber.StatusCreated).JSON(followUp)
}

// syncLeadAfterFollowUp replaces the lead's current product set with the
// follow-up's snapshot and rolls the lead's follow-up date and status
// forward. Runs inside the request transaction.
func syncLeadAfterFollowUp(db *gorm.DB, lead *models.Lead, followUp *models.LeadFollowUp, products []models.LeadFollowUpProduct) error {
	if len(products) > 0 {
		if err := db.Where("lead_id = ?", lead.ID).Delete(&models.LeadProduct{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not sync lead products")
		}
		replacement := make([]models.LeadProduct, 0, len(products))
		for _, p := range products {
			replacement = append(replacement, models.LeadProduct{
				LeadID:         lead.ID,
				AcTypeID:       p.AcTypeID,
				AcSubTypeID:    p.AcSubTypeID,
				BrandID:        p.BrandID,
				ProductModelID: p.ProductModelID,
				VariantID:      p.VariantID,
				Quantity:       p.Quantity,
				ExpectedPrice:  p.ExpectedPrice,
				Remarks:        p.Remarks,
			})
		}
		if err := db.Create(&replacement).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not sync lead products")
		}
	}

	updates := map[string]any{}
	if followUp.NextFollowupDate != nil {
		updates["followup_date"] = followUp.NextFollowupDate
	}
	if followUp.Status != "" {
		updates["status"] = followUp.Status
	}
	if len(updates) > 0 {
		if err := db.Model(lead).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update lead")
		}
	}
	return nil
}

func UpdateFollowUp(c *fiber.Ctx) error {
	caller := middlewares.CurrentUser(c)
	db := middlewares.Tx(c)

	var followUp models.LeadFollowUp
	if err := followUpPreloads(db).First(&followUp, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	var lead models.Lead
	if err := leadScope(db, caller).First(&lead, "leads.id = ?", followUp.LeadID).Error; err != nil {
		return fiber.ErrNotFound
	}

	var input followUpInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if input.FollowupDate != nil {
		updates["followup_date"] = input.FollowupDate
	}
	if input.NextFollowupDate != nil {
		updates["next_followup_date"] = input.NextFollowupDate
	}
	if input.Remarks != "" {
		updates["remarks"] = input.Remarks
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}
	if len(updates) > 0 {
		if err := db.Model(&followUp).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update follow-up")
		}
	}
	if input.NextFollowupDate != nil {
		followUp.NextFollowupDate = input.NextFollowupDate
	}
	if input.Status != "" {
		followUp.Status = input.Status
	}

	if len(input.Products) > 0 {
		if err := db.Where("follow_up_id = ?", followUp.ID).Delete(&models.LeadFollowUpProduct{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update follow-up products")
		}
		for i := range input.Products {
			input.Products[i].ID = 0
			input.Products[i].FollowUpID = followUp.ID
		}
		if err := db.Create(&input.Products).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not update follow-up products")
		}
	}

	if err := syncLeadAfterFollowUp(db, &lead, &followUp, input.Products); err != nil {
		return err
	}

	followUpPreloads(db).First(&followUp, followUp.ID)
	return c.JSON(followUp)
}

func DeleteFollowUp(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var followUp models.LeadFollowUp
	if err := db.First(&followUp, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := db.Select("FAQAnswers", "Products").Delete(&followUp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete follow-up")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
