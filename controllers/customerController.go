package controllers

import (
	"strings"

	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"

	"github.com/gofiber/fiber/v2"
)

func ListCustomers(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		db = db.Where("name ILIKE ? OR contact_number ILIKE ? OR email ILIKE ?", like, like, like)
	}
	var rows []models.Customer
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list customers")
	}
	return c.JSON(rows)
}

func GetCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := middlewares.Tx(c).First(&customer, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(customer.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	customer.SyncSiteAddress()

	if err := middlewares.Tx(c).Create(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func UpdateCustomer(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var customer models.Customer
	if err := db.First(&customer, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := c.BodyParser(&customer); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	customer.SyncSiteAddress()

	if err := db.Save(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update customer")
	}
	return c.JSON(customer)
}

// DeleteCustomer is blocked while the customer owns leads, quotations or
// invoices (RESTRICT foreign keys).
func DeleteCustomer(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var customer models.Customer
	if err := db.First(&customer, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := db.Delete(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "customer has leads, quotations or invoices")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
