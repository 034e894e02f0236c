package controllers

import (
	"strings"

	"hvac-backoffice/middlewares"

	"github.com/gofiber/fiber/v2"
)

// Resource generates standard list/retrieve/create/update/delete handlers
// for flat lookup-style models (taxonomy types, terms, FAQs). The heavier
// aggregates (leads, documents) have hand-written controllers.
type Resource[T any] struct {
	// SearchColumns are matched with ILIKE against the ?search= query param.
	SearchColumns []string
	// Preloads to apply on reads.
	Preloads []string
	// OrderBy defaults to "id".
	OrderBy string
}

func (r Resource[T]) order() string {
	if r.OrderBy == "" {
		return "id"
	}
	return r.OrderBy
}

func (r Resource[T]) List(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	for _, p := range r.Preloads {
		db = db.Preload(p)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" && len(r.SearchColumns) > 0 {
		var conds []string
		var args []interface{}
		for _, col := range r.SearchColumns {
			conds = append(conds, col+" ILIKE ?")
			args = append(args, "%"+search+"%")
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}

	var rows []T
	if err := db.Order(r.order()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list records")
	}
	return c.JSON(rows)
}

func (r Resource[T]) Get(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	for _, p := range r.Preloads {
		db = db.Preload(p)
	}
	var row T
	if err := db.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	return c.JSON(row)
}

func (r Resource[T]) Create(c *fiber.Ctx) error {
	var row T
	if err := c.BodyParser(&row); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := middlewares.Tx(c).Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create record")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (r Resource[T]) Update(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var row T
	if err := db.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := c.BodyParser(&row); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := db.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update record")
	}
	return c.JSON(row)
}

func (r Resource[T]) Delete(c *fiber.Ctx) error {
	db := middlewares.Tx(c)
	var row T
	if err := db.First(&row, "id = ?", c.Params("id")).Error; err != nil {
		return fiber.ErrNotFound
	}
	if err := db.Delete(&row).Error; err != nil {
		// FK RESTRICT violations surface here
		return fiber.NewError(fiber.StatusConflict, "record is referenced by other records")
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// Register mounts the five standard routes on a router group.
func (r Resource[T]) Register(g fiber.Router, path string) {
	g.Get("/"+path, r.List)
	g.Post("/"+path, r.Create)
	g.Get("/"+path+"/:id", r.Get)
	g.Put("/"+path+"/:id", r.Update)
	g.Delete("/"+path+"/:id", r.Delete)
}
