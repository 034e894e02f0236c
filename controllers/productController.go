package controllers

import (
	"github.com/gofiber/fiber/v2"

	"hvac-backoffice/documents"
	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"
)

// Flat taxonomy lookups share the generic resource handlers.

var (
	acTypeResource = Resource[models.AcType]{SearchColumns: []string{"name"}}
	acSubTypeResource = Resource[models.AcSubType]{
		SearchColumns: []string{"name"},
		Preloads:      []string{"AcType"},
	}
	brandResource = Resource[models.Brand]{SearchColumns: []string{"name"}}
)

func RegisterTaxonomyRoutes(g fiber.Router) {
	acTypeResource.Register(g, "ac-types")
	acSubTypeResource.Register(g, "ac-sub-types")
	brandResource.Register(g, "brands")
}

// Product models carry their taxonomy chain on reads.

var productModelResource = Resource[models.ProductModel]{
	SearchColumns: []string{"name", "model_no"},
	Preloads:      []string{"AcSubType", "AcSubType.AcType", "Brand"},
}

func ListProductModels(c *fiber.Ctx) error { return productModelResource.List(c) }
func GetProductModel(c *fiber.Ctx) error   { return productModelResource.Get(c) }

func CreateProductModel(c *fiber.Ctx) error {
	var model models.ProductModel
	if err := c.BodyParser(&model); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	db := middlewares.Tx(c)
	if err := db.First(&models.AcSubType{}, model.AcSubTypeID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "ac sub-type not found")
	}
	if err := db.First(&models.Brand{}, model.BrandID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "brand not found")
	}
	model.IsActive = true
	if err := db.Create(&model).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create product model")
	}
	db.Preload("AcSubType").Preload("AcSubType.AcType").Preload("Brand").First(&model, model.ID)
	return c.Status(fiber.StatusCreated).JSON(model)
}

func UpdateProductModel(c *fiber.Ctx) error { return productModelResource.Update(c) }
func DeleteProductModel(c *fiber.Ctx) error { return productModelResource.Delete(c) }

// Variants: the SKU is derived from the model number and the row id, so
// it is finalized right after the insert, inside the same transaction.

var productVariantResource = Resource[models.ProductVariant]{
	SearchColumns: []string{"sku", "capacity"},
	Preloads:      []string{"ProductModel", "ProductModel.Brand"},
}

func ListProductVariants(c *fiber.Ctx) error {
	db := middlewares.Tx(c).Preload("ProductModel").Preload("ProductModel.Brand")
	if v := c.Query("product_model"); v != "" {
		db = db.Where("product_model_id = ?", v)
	}
	var rows []models.ProductVariant
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list variants")
	}
	return c.JSON(rows)
}

func GetProductVariant(c *fiber.Ctx) error { return productVariantResource.Get(c) }

func CreateProductVariant(c *fiber.Ctx) error {
	var variant models.ProductVariant
	if err := c.BodyParser(&variant); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	db := middlewares.Tx(c)
	var model models.ProductModel
	if err := db.First(&model, variant.ProductModelID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product model not found")
	}
	variant.SKU = ""
	variant.IsActive = true
	if err := db.Create(&variant).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create variant")
	}
	sku := documents.ItemCode(model.ModelNo, variant.ID)
	if err := db.Model(&variant).Update("sku", sku).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not assign sku")
	}
	db.Preload("ProductModel").Preload("ProductModel.Brand").First(&variant, variant.ID)
	return c.Status(fiber.StatusCreated).JSON(variant)
}

func UpdateProductVariant(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var variant models.ProductVariant
	if err := db.First(&variant, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	sku := variant.SKU
	if err := c.BodyParser(&variant); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	variant.SKU = sku // SKUs are immutable once assigned
	if err := db.Save(&variant).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update variant")
	}
	return c.JSON(variant)
}

func DeleteProductVariant(c *fiber.Ctx) error { return productVariantResource.Delete(c) }

// Inventory units track individual serial numbers per variant.

var inventoryResource = Resource[models.ProductInventory]{
	SearchColumns: []string{"serial_no"},
	Preloads:      []string{"ProductVariant", "ProductVariant.ProductModel"},
}

func ListInventory(c *fiber.Ctx) error {
	db := middlewares.Tx(c).Preload("ProductVariant").Preload("ProductVariant.ProductModel")
	if v := c.Query("product_variant"); v != "" {
		db = db.Where("product_variant_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		db = db.Where("status = ?", v)
	}
	var rows []models.ProductInventory
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list inventory")
	}
	return c.JSON(rows)
}

func GetInventory(c *fiber.Ctx) error    { return inventoryResource.Get(c) }
func CreateInventory(c *fiber.Ctx) error { return inventoryResource.Create(c) }
func UpdateInventory(c *fiber.Ctx) error { return inventoryResource.Update(c) }
func DeleteInventory(c *fiber.Ctx) error { return inventoryResource.Delete(c) }
