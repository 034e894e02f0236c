package controllers

import (
	"github.com/gofiber/fiber/v2"

	"hvac-backoffice/documents"
	"hvac-backoffice/middlewares"
	"hvac-backoffice/models"
)

const itemCodePrefix = "ITM"

var (
	materialTypeResource = Resource[models.MaterialType]{SearchColumns: []string{"name"}}
	itemTypeResource     = Resource[models.ItemType]{SearchColumns: []string{"name"}}
	featureTypeResource  = Resource[models.FeatureType]{SearchColumns: []string{"name"}}
	itemClassResource    = Resource[models.ItemClass]{SearchColumns: []string{"name"}}
)

func RegisterPartsTaxonomyRoutes(g fiber.Router) {
	materialTypeResource.Register(g, "material-types")
	itemTypeResource.Register(g, "item-types")
	featureTypeResource.Register(g, "feature-types")
	itemClassResource.Register(g, "item-classes")
}

var itemResource = Resource[models.Item]{
	SearchColumns: []string{"name", "item_code", "hsn_sac"},
	Preloads:      []string{"MaterialType", "ItemType", "FeatureType", "ItemClass", "Brand"},
}

func ListItems(c *fiber.Ctx) error { return itemResource.List(c) }
func GetItem(c *fiber.Ctx) error   { return itemResource.Get(c) }

// CreateItem validates the four classification axes and assigns the
// item code from the fresh row id inside the request transaction.
func CreateItem(c *fiber.Ctx) error {
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	db := middlewares.Tx(c)
	if err := db.First(&models.MaterialType{}, item.MaterialTypeID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "material type not found")
	}
	if err := db.First(&models.ItemType{}, item.ItemTypeID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "item type not found")
	}
	if err := db.First(&models.FeatureType{}, item.FeatureTypeID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "feature type not found")
	}
	if err := db.First(&models.ItemClass{}, item.ItemClassID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "item class not found")
	}

	item.ItemCode = ""
	if item.Unit == "" {
		item.Unit = "NOS"
	}
	if err := db.Create(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create item")
	}
	if err := db.Model(&item).Update("item_code", documents.ItemCode(itemCodePrefix, item.ID)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not assign item code")
	}

	db.Preload("MaterialType").Preload("ItemType").Preload("FeatureType").
		Preload("ItemClass").Preload("Brand").First(&item, item.ID)
	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateItem(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var item models.Item
	if err := db.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	code := item.ItemCode
	if err := c.BodyParser(&item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	item.ItemCode = code // item codes are immutable once assigned
	if err := db.Save(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update item")
	}
	return c.JSON(item)
}

func DeleteItem(c *fiber.Ctx) error { return itemResource.Delete(c) }
