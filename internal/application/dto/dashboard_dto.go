package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los cuatro contadores del panel principal.
type DashboardSummaryDTO struct {
	TotalInventory decimal.Decimal `json:"total_inventory"` // unidades primarias + extraviadas
	MisplacedItems int             `json:"misplaced_items"` // registros pseudo activos
	PendingOrders  int             `json:"pending_orders"`  // órdenes aún sin procesar
	MaterialTypes  int             `json:"material_types"`  // materiales distintos en ambos sistemas
}
