package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	OrderUC     *orders.OrderUseCase
	FulfillUC   *orders.FulfillOrderUseCase
	DashboardUC *analytics.DashboardUseCase
	ActivityUC  *analytics.ActivityUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario: sistema primario y sistema pseudo (extraviado)
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/primary", inventoryHandler.AddPrimary)
	inv.Get("/primary", inventoryHandler.ListPrimary)
	inv.Post("/pseudo", inventoryHandler.AddPseudo)
	inv.Get("/pseudo", inventoryHandler.ListPseudo)

	// Órdenes
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.FulfillUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Post("/:id/fulfill", orderHandler.Fulfill)

	// Panel de control e historial
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	activityHandler := NewActivityHandler(deps.ActivityUC)
	api.Get("/activity", activityHandler.List)
}
