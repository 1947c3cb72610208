package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/shipment"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementHistory  *inventory.MovementHistoryUseCase
	StockSummary     *inventory.StockSummaryUseCase
	ShipmentDraft    *shipment.DraftUseCase
	ShipmentHistory  *shipment.HistoryUseCase
	ShipmentManifest *shipment.ManifestUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementHistory, deps.StockSummary)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/summary", inventoryHandler.Summary)

	shipments := protected.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentDraft, deps.ShipmentHistory, deps.ShipmentManifest)
	shipments.Get("/draft", shipmentHandler.GetDraft)
	shipments.Delete("/draft", shipmentHandler.ClearDraft)
	shipments.Post("/draft/items", shipmentHandler.AddDraftItem)
	shipments.Post("/", shipmentHandler.Finalize)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id/manifest", shipmentHandler.Manifest)
}
