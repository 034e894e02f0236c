package controllers

import (
	"strings"

	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"
	"hvac-backoffice/utils"

	"github.com/gofiber/fiber/v2"
)

// Roles CRUD — admin/sub-admin only (enforced on the route group).

var roleResource = Resource[models.Role]{SearchColumns: []string{"name"}}

func ListRoles(c *fiber.Ctx) error  { return roleResource.List(c) }
func CreateRole(c *fiber.Ctx) error { return roleResource.Create(c) }
func UpdateRole(c *fiber.Ctx) error { return roleResource.Update(c) }
func DeleteRole(c *fiber.Ctx) error { return roleResource.Delete(c) }

// Staff records are Users with is_staff set.

type staffInput struct {
	Email     string `json:"email"`
	MobileNo  string `json:"mobile_no"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8"`
	RoleID    *uint  `json:"role_id"`
}

func ListStaff(c *fiber.Ctx) error {
	db := middlewares.Tx(c).Preload("Role").Where("is_staff = ?", true)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		db = db.Joins("LEFT JOIN roles ON roles.id = users.role_id").
			Where("users.first_name ILIKE ? OR users.email = ? OR users.mobile_no ILIKE ? OR roles.name ILIKE ?",
				like, search, like, like)
	}
	if role := c.Query("role"); role != "" {
		db = db.Where("users.role_id = ?", role)
	}

	// keyset-free offset pagination, like the source
	limit := utils.ParseIntDefault(c.Query("limit"), 25)
	offset := utils.ParseIntDefault(c.Query("offset"), 0)

	var rows []models.User
	if err := db.Order("users.id").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list staff")
	}
	return c.JSON(rows)
}

// AllStaff returns the unpaginated staff list; any authenticated caller
// may read it (used to populate assignment dropdowns).
func AllStaff(c *fiber.Ctx) error {
	var rows []models.User
	if err := middlewares.Tx(c).Preload("Role").Where("is_staff = ?", true).Order("id").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list staff")
	}
	return c.JSON(rows)
}

func GetStaff(c *fiber.Ctx) error {
	var user models.User
	if err := middlewares.Tx(c).Preload("Role").Where("is_staff = ?", true).First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(user)
}

func CreateStaff(c *fiber.Ctx) error {
	var data staffInput
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}
	data.Email = strings.TrimSpace(data.Email)
	data.MobileNo = strings.TrimSpace(data.MobileNo)
	if data.Email == "" && data.MobileNo == "" {
		return fiber.NewError(fiber.StatusBadRequest, "either email or mobile_no is required")
	}

	user := models.User{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		RoleID:    data.RoleID,
		IsActive:  true,
		IsStaff:   true,
	}
	if data.Email != "" {
		user.Email = &data.Email
	}
	if data.MobileNo != "" {
		user.MobileNo = &data.MobileNo
	}
	user.SetPassword(data.Password)

	db := middlewares.Tx(c)
	if data.RoleID != nil {
		var role models.Role
		if err := db.First(&role, *data.RoleID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "role not found")
		}
	}
	if err := db.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "email or mobile number already registered")
	}
	db.Preload("Role").First(&user, user.ID)
	return c.Status(fiber.StatusCreated).JSON(user)
}

type staffPatch struct {
	Email     *string `json:"email"`
	MobileNo  *string `json:"mobile_no"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	RoleID    *uint   `json:"role_id"`
	IsActive  *bool   `json:"is_active"`
}

func UpdateStaff(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var user models.User
	if err := db.Where("is_staff = ?", true).First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}

	var patch staffPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	utils.NormalizePtrDTO(&patch)

	updates := utils.UpdatesFromPtrDTO(&patch, nil)
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}
	if patch.RoleID != nil {
		var role models.Role
		if err := db.First(&role, *patch.RoleID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "role not found")
		}
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update staff")
	}
	db.Preload("Role").First(&user, user.ID)
	return c.JSON(user)
}

// DeleteStaff is admin-like only: sub-admins may read and update staff
// but not delete them.
func DeleteStaff(c *fiber.Ctx) error {
	if !models.IsAdminLike(middlewares.CurrentUser(c)) {
		return fiber.NewError(fiber.StatusForbidden, "only admins can delete staff")
	}
	db := middlewares.Tx(c)
	var user models.User
	if err := db.Where("is_staff = ?", true).First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := db.Delete(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "staff member is referenced by other records")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
