package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"
)

func ListVendors(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		db = db.Where("name ILIKE ? OR email ILIKE ? OR mobile ILIKE ? OR gst_details ILIKE ?", like, like, like, like)
	}
	if v := c.Query("is_active"); v != "" {
		db = db.Where("is_active = ?", v == "true")
	}
	var rows []models.Vendor
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list vendors")
	}
	return c.JSON(rows)
}

func GetVendor(c *fiber.Ctx) error {
	var vendor models.Vendor
	if err := middlewares.Tx(c).First(&vendor, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(vendor)
}

func CreateVendor(c *fiber.Ctx) error {
	var vendor models.Vendor
	if err := middlewares.BindAndValidate(c, &vendor); err != nil {
		return err
	}
	vendor.IsActive = true
	if err := middlewares.Tx(c).Create(&vendor).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create vendor")
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

func UpdateVendor(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var vendor models.Vendor
	if err := db.First(&vendor, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := c.BodyParser(&vendor); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := middlewares.ValidateStruct(&vendor); err != nil {
		return err
	}
	if err := db.Save(&vendor).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update vendor")
	}
	return c.JSON(vendor)
}

// DeleteVendor is blocked while purchase orders reference the vendor.
func DeleteVendor(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var vendor models.Vendor
	if err := db.First(&vendor, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := db.Delete(&vendor).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "vendor has purchase orders")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// Terms & conditions lookups.

var (
	termsTypeResource = Resource[models.TermsConditionType]{SearchColumns: []string{"name"}}
	termsResource     = Resource[models.TermsCondition]{
		SearchColumns: []string{"text"},
		Preloads:      []string{"Type"},
	}
)

func RegisterTermsRoutes(g fiber.Router) {
	termsTypeResource.Register(g, "terms-condition-types")
	termsResource.Register(g, "terms-conditions")
}
