package controllers

import (
	"net/mail"
	"strings"
	"time"

	"hvac-backoffice/database"
	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const passwordResetTTL = 30 * time.Minute

type registerInput struct {
	Email           string `json:"email"`
	MobileNo        string `json:"mobile_no"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm"`
}

func Register(c *fiber.Ctx) error {
	var data registerInput
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	data.Email = strings.TrimSpace(data.Email)
	data.MobileNo = strings.ReplaceAll(strings.TrimSpace(data.MobileNo), " ", "")
	if data.Email == "" && data.MobileNo == "" {
		return fiber.NewError(fiber.StatusBadRequest, "either email or mobile_no is required")
	}
	if data.Email != "" {
		if _, err := mail.ParseAddress(data.Email); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
		}
	}
	if data.Password != data.PasswordConfirm {
		return fiber.NewError(fiber.StatusBadRequest, "passwords do not match")
	}

	user := models.User{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		IsActive:  true,
	}
	if data.Email != "" {
		user.Email = &data.Email
	}
	if data.MobileNo != "" {
		user.MobileNo = &data.MobileNo
	}
	user.SetPassword(data.Password)

	if err := database.DB.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "email or mobile number already registered")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

type loginInput struct {
	EmailOrMobile string `json:"email_or_mobile" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

// Login authenticates by email or mobile number and returns a bearer token.
func Login(c *fiber.Ctx) error {
	var data loginInput
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	ident := strings.TrimSpace(data.EmailOrMobile)
	var user models.User
	q := database.DB.Preload("Role")
	var err error
	if strings.Contains(ident, "@") {
		err = q.Where("email = ?", ident).First(&user).Error
	} else {
		err = q.Where("mobile_no = ?", ident).First(&user).Error
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}
	if err := user.ComparePassword(data.Password); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "account disabled")
	}

	token, err := middlewares.GenerateJWT(&user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.FullName(),
			"email": user.Email,
			"role":  roleName,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	// Bearer tokens are stateless; nothing to revoke server side.
	return c.JSON(fiber.Map{"message": "success"})
}

// Me returns the authenticated caller.
func Me(c *fiber.Ctx) error {
	return c.JSON(middlewares.CurrentUser(c))
}

type passwordResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetRequest issues a single-use, time-boxed reset token.
// Email delivery is out of scope; the token is returned so the caller's
// frontend can build the reset link.
func PasswordResetRequest(c *fiber.Ctx) error {
	var data passwordResetRequestInput
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	var user models.User
	if err := database.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no account found with this email")
	}

	token := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(passwordResetTTL),
	}
	if err := database.DB.Create(&token).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create reset token")
	}

	return c.JSON(fiber.Map{
		"detail": "Password reset token issued.",
		"token":  token.Token,
	})
}

type passwordResetConfirmInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// PasswordResetConfirm consumes a reset token and sets the new password.
func PasswordResetConfirm(c *fiber.Ctx) error {
	var data passwordResetConfirmInput
	if err := middlewares.BindAndValidate(c, &data); err != nil {
		return err
	}

	var token models.PasswordResetToken
	if err := database.DB.Where("token = ?", data.Token).First(&token).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
	}
	if !token.Usable(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
	}

	var user models.User
	if err := database.DB.First(&user, token.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid or expired token")
	}
	user.SetPassword(data.NewPassword)

	now := time.Now()
	tx := database.DB.Begin()
	if err := tx.Model(&user).Update("password", user.Password).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "could not reset password")
	}
	if err := tx.Model(&token).Update("used_at", &now).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "could not reset password")
	}
	tx.Commit()

	return c.JSON(fiber.Map{"detail": "Password has been reset successfully."})
}
