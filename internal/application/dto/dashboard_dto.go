package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItemDTO producto resumido para los listados de stock bajo/agotado.
type StockItemDTO struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	SKU        string `json:"sku,omitempty"`
	StockLevel int64  `json:"stock_level"`
}

// SupplierSpendDTO entrada del ranking de gasto por proveedor.
type SupplierSpendDTO struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

// DashboardSummaryResponse respuesta de GET /api/dashboard/summary.
// Todo se calcula de forma síncrona por petición sobre el estado actual.
type DashboardSummaryResponse struct {
	TotalItems      int64 `json:"total_items"`
	TotalStock      int64 `json:"total_stock"`
	LowStockCount   int   `json:"low_stock_count"`
	OutOfStockCount int   `json:"out_of_stock_count"`

	LowStockItems   []StockItemDTO `json:"low_stock_items"`
	OutOfStockItems []StockItemDTO `json:"out_of_stock_items"`

	InventoryValue     decimal.Decimal `json:"inventory_value"`
	TotalPurchaseValue decimal.Decimal `json:"total_purchase_value"`

	TopSuppliers []SupplierSpendDTO `json:"top_suppliers"`
}

// ActivityEntryDTO evento normalizado del feed de actividad reciente.
type ActivityEntryDTO struct {
	ID                  string    `json:"id"`
	Date                time.Time `json:"date"`
	Type                string    `json:"type"` // purchase | IN | OUT
	Quantity            int64     `json:"quantity"`
	Notes               string    `json:"notes,omitempty"`
	SourceOrDestination string    `json:"source_or_destination"`
}

// DashboardMovementsResponse respuesta de GET /api/dashboard/movements:
// compras y traslados de los últimos 7 días, mezclados y ordenados por fecha
// descendente, máximo 10 entradas.
type DashboardMovementsResponse struct {
	Movements []ActivityEntryDTO `json:"movements"`
}
