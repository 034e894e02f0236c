package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"hvac-backoffice/database"
	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"
	"hvac-backoffice/pdfgen"
)

const invoiceShareTTL = 7 * 24 * time.Hour

func sendPDF(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

func pdfFilename(number string) string {
	return strings.ReplaceAll(number, "/", "-") + ".pdf"
}

func PurchaseOrderPDF(c *fiber.Ctx) error {
	var po models.PurchaseOrder
	if err := poPreloads(middlewares.Tx(c)).First(&po, "purchase_orders.id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	data, err := pdfgen.PurchaseOrder(&po)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render pdf")
	}
	return sendPDF(c, pdfFilename(po.PurchaseOrderNo), data)
}

// QuotationPDF renders the active version.
func QuotationPDF(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var q models.Quotation
	if err := db.Preload("Customer").First(&q, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	var version models.QuotationVersion
	if err := versionPreloads(db).
		Where("quotation_id = ? AND is_active = ?", q.ID, true).
		First(&version).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "quotation has no active version")
	}
	data, err := pdfgen.Quotation(&q, &version)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render pdf")
	}
	return sendPDF(c, pdfFilename(version.VersionNo), data)
}

// QuotationVersionPDF renders one specific (possibly superseded) version.
func QuotationVersionPDF(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var q models.Quotation
	if err := db.Preload("Customer").First(&q, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	var version models.QuotationVersion
	if err := versionPreloads(db).
		Where("quotation_id = ?", q.ID).
		First(&version, "id = ?", c.Params("versionId")).Error; err != nil {
		return fiber.ErrNotFound
	}
	data, err := pdfgen.Quotation(&q, &version)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render pdf")
	}
	return sendPDF(c, pdfFilename(version.VersionNo), data)
}

func InvoicePDF(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := invoicePreloads(middlewares.Tx(c)).First(&inv, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	data, err := pdfgen.Invoice(&inv)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render pdf")
	}
	return sendPDF(c, pdfFilename(inv.InvoiceNo), data)
}

// InvoiceShareLink issues a time-boxed token for the public invoice PDF
// endpoint, so the document can be handed to the buyer without an
// account.
func InvoiceShareLink(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := middlewares.Tx(c).First(&inv, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	token, err := middlewares.GenerateShareToken(fmt.Sprintf("invoice:%d", inv.ID), invoiceShareTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not issue share token")
	}
	return c.JSON(fiber.Map{
		"token": token,
		"url":   fmt.Sprintf("/api/public/invoice/%d/pdf?token=%s", inv.ID, token),
	})
}

// PublicInvoicePDF serves the invoice PDF without authentication; the
// query-string token must be valid and bound to this invoice id.
func PublicInvoicePDF(c *fiber.Ctx) error {
	raw := c.Query("token")
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}
	claims, err := middlewares.ParseToken(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
	}
	if claims.Subject != fmt.Sprintf("invoice:%s", c.Params("id")) {
		return fiber.NewError(fiber.StatusForbidden, "token does not match this invoice")
	}

	// public route runs outside the transaction middleware
	var inv models.Invoice
	if err := invoicePreloads(database.DB).First(&inv, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	data, err := pdfgen.Invoice(&inv)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render pdf")
	}
	return sendPDF(c, pdfFilename(inv.InvoiceNo), data)
}
