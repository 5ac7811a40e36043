package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler the API exposes.
type Handlers struct {
	Purchase  *PurchaseHandler
	Catalog   *CatalogHandler
	Dashboard *DashboardHandler
}

// RegisterRoutes mounts the REST routes on api (usually the /api/v1 group).
func RegisterRoutes(api fiber.Router, h Handlers) {
	// Purchase Routes
	api.Get("/purchases", h.Purchase.GetPurchases)
	api.Post("/purchases", h.Purchase.CreatePurchase)
	api.Get("/purchases/:id", h.Purchase.GetPurchase)
	api.Put("/purchases/:id", h.Purchase.UpdatePurchase)
	api.Delete("/purchases/:id", h.Purchase.DeletePurchase)

	// Catalog Routes
	api.Get("/medications", h.Catalog.GetMedications)
	api.Post("/medications", h.Catalog.CreateMedication)
	api.Get("/medications/:id", h.Catalog.GetMedication)
	api.Put("/medications/:id", h.Catalog.UpdateMedication)

	api.Get("/clients", h.Catalog.GetClients)
	api.Post("/clients", h.Catalog.CreateClient)
	api.Get("/clients/:id", h.Catalog.GetClient)

	api.Get("/pets", h.Catalog.GetPets)
	api.Post("/pets", h.Catalog.CreatePet)

	// Dashboard Routes
	api.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
}
