package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-api/internal/application/analytics"
	"github.com/tu-usuario/warehouse-api/internal/application/inventory"
	"github.com/tu-usuario/warehouse-api/internal/application/purchasing"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	LocationUC  *usecase.LocationUseCase
	PurchaseUC  *purchasing.PurchaseUseCase
	TransferUC  *inventory.TransferUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Business locations
	locations := api.Group("/business_locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Patch("/:id/toggle_active", locationHandler.ToggleActive)
	locations.Delete("/:id", locationHandler.Delete)

	// Purchases y renglones
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	purchaseItems := api.Group("/purchase_items")
	purchaseItems.Get("/", purchaseHandler.ListItems)
	purchaseItems.Get("/:id", purchaseHandler.GetItem)
	purchaseItems.Put("/:id", purchaseHandler.UpdateItem)

	// Stock transfers y libro de deltas
	transfers := api.Group("/stock_transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Put("/:id", transferHandler.Update)
	transfers.Delete("/:id", transferHandler.Delete)

	api.Get("/stock_movements", transferHandler.ListMovements)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/movements", dashboardHandler.Movements)
}
