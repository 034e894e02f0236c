package routes

import (
	"github.com/gofiber/fiber/v2"

	"hvac-backoffice/controllers"
	"hvac-backoffice/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/password-reset", controllers.PasswordResetRequest)
	api.Post("/password-reset-confirm", controllers.PasswordResetConfirm)
	api.Get("/public/invoice/:id/pdf", controllers.PublicInvoicePDF)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticated())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then the per-request transaction (commits/rolls back as a unit)
	protected.Use(middlewares.RequestTx())

	protected.Post("/logout", controllers.Logout)
	protected.Get("/me", controllers.Me)

	// Roles & staff — admin/sub-admin only; /staff/all stays open to any
	// authenticated caller (assignment dropdowns)
	protected.Get("/staff/all", controllers.AllStaff)

	adminish := protected.Group("", middlewares.RequireAdminOrSubAdmin())
	adminish.Get("/roles", controllers.ListRoles)
	adminish.Post("/roles", controllers.CreateRole)
	adminish.Put("/roles/:id", controllers.UpdateRole)
	adminish.Delete("/roles/:id", controllers.DeleteRole)

	adminish.Get("/staff", controllers.ListStaff)
	adminish.Post("/staff", controllers.CreateStaff)
	adminish.Get("/staff/:id", controllers.GetStaff)
	adminish.Put("/staff/:id", controllers.UpdateStaff)
	adminish.Delete("/staff/:id", controllers.DeleteStaff) // admin-only rule inside the handler

	// CRM
	protected.Get("/customers", controllers.ListCustomers)
	protected.Post("/customers", controllers.CreateCustomer)
	protected.Get("/customers/:id", controllers.GetCustomer)
	protected.Put("/customers/:id", controllers.UpdateCustomer)
	protected.Delete("/customers/:id", controllers.DeleteCustomer)

	protected.Get("/leads", controllers.ListLeads)
	protected.Get("/leads/latest-by-phone", controllers.LatestLeadByPhone)
	protected.Post("/leads", controllers.CreateLead)
	protected.Get("/leads/:id", controllers.GetLead)
	protected.Put("/leads/:id", controllers.UpdateLead)
	protected.Delete("/leads/:id", controllers.DeleteLead)

	protected.Get("/followups", controllers.ListFollowUps)
	protected.Post("/followups", controllers.CreateFollowUp)
	protected.Get("/followups/:id", controllers.GetFollowUp)
	protected.Put("/followups/:id", controllers.UpdateFollowUp)
	protected.Delete("/followups/:id", controllers.DeleteFollowUp)

	protected.Get("/faqs", controllers.ListLeadFAQs)
	protected.Post("/faqs", controllers.CreateLeadFAQ)
	protected.Get("/faqs/:id", controllers.GetLeadFAQ)
	protected.Put("/faqs/:id", controllers.UpdateLeadFAQ)
	protected.Delete("/faqs/:id", controllers.DeleteLeadFAQ)

	// Catalog — high side
	controllers.RegisterTaxonomyRoutes(protected)

	protected.Get("/product-models", controllers.ListProductModels)
	protected.Post("/product-models", controllers.CreateProductModel)
	protected.Get("/product-models/:id", controllers.GetProductModel)
	protected.Put("/product-models/:id", controllers.UpdateProductModel)
	protected.Delete("/product-models/:id", controllers.DeleteProductModel)

	protected.Get("/product-variants", controllers.ListProductVariants)
	protected.Post("/product-variants", controllers.CreateProductVariant)
	protected.Get("/product-variants/:id", controllers.GetProductVariant)
	protected.Put("/product-variants/:id", controllers.UpdateProductVariant)
	protected.Delete("/product-variants/:id", controllers.DeleteProductVariant)

	protected.Get("/product-inventory", controllers.ListInventory)
	protected.Post("/product-inventory", controllers.CreateInventory)
	protected.Get("/product-inventory/:id", controllers.GetInventory)
	protected.Put("/product-inventory/:id", controllers.UpdateInventory)
	protected.Delete("/product-inventory/:id", controllers.DeleteInventory)

	// Catalog — low side (parts)
	controllers.RegisterPartsTaxonomyRoutes(protected)

	protected.Get("/items", controllers.ListItems)
	protected.Post("/items", controllers.CreateItem)
	protected.Get("/items/:id", controllers.GetItem)
	protected.Put("/items/:id", controllers.UpdateItem)
	protected.Delete("/items/:id", controllers.DeleteItem)

	// Vendors & terms
	protected.Get("/vendors", controllers.ListVendors)
	protected.Post("/vendors", controllers.CreateVendor)
	protected.Get("/vendors/:id", controllers.GetVendor)
	protected.Put("/vendors/:id", controllers.UpdateVendor)
	protected.Delete("/vendors/:id", controllers.DeleteVendor)

	controllers.RegisterTermsRoutes(protected)

	// Purchase orders (versioned)
	protected.Get("/purchase-orders", controllers.ListPurchaseOrders)
	protected.Post("/purchase-orders", controllers.CreatePurchaseOrder)
	protected.Get("/purchase-orders/:id", controllers.GetPurchaseOrder)
	protected.Put("/purchase-orders/:id", controllers.UpdatePurchaseOrder)
	protected.Delete("/purchase-orders/:id", controllers.DeletePurchaseOrderVersion)
	protected.Get("/purchase-orders/:id/history", controllers.PurchaseOrderHistory)
	protected.Get("/purchase-orders/:id/pdf", controllers.PurchaseOrderPDF)

	// Quotations (versioned)
	protected.Get("/quotations", controllers.ListQuotations)
	protected.Post("/quotations", controllers.CreateQuotation)
	protected.Get("/quotations/:id", controllers.GetQuotation)
	protected.Put("/quotations/:id", controllers.UpdateQuotation)
	protected.Delete("/quotations/:id", controllers.DeleteQuotation)
	protected.Get("/quotations/:id/latest-version", controllers.LatestQuotationVersion)
	protected.Get("/quotations/:id/pdf", controllers.QuotationPDF)
	protected.Get("/quotations/:id/versions/:versionId/pdf", controllers.QuotationVersionPDF)
	protected.Delete("/quotations/:id/versions/:versionId", controllers.DeleteQuotationVersion)

	// Invoices
	protected.Get("/invoices", controllers.ListInvoices)
	protected.Post("/invoices", controllers.CreateInvoice)
	protected.Get("/invoices/:id", controllers.GetInvoice)
	protected.Put("/invoices/:id", controllers.UpdateInvoice)
	protected.Delete("/invoices/:id", controllers.DeleteInvoice)
	protected.Get("/invoices/:id/pdf", controllers.InvoicePDF)
	protected.Get("/invoices/:id/share-link", controllers.InvoiceShareLink)

	// Company profiles — seller identity and bank details, admins only
	controllers.RegisterCompanyProfileRoutes(protected.Group("", middlewares.RequireAdminLike()))
}
