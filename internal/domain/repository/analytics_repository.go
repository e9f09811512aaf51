package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockTotalsResult totales globales de productos no eliminados.
type StockTotalsResult struct {
	TotalItems int64
	TotalStock int64
}

// StockItemResult proyección mínima de un producto para los listados de stock bajo/agotado.
type StockItemResult struct {
	ProductID  string
	Name       string
	SKU        string
	StockLevel int64
}

// SupplierSpendResult gasto acumulado por proveedor (compras no eliminadas).
type SupplierSpendResult struct {
	SupplierID   string
	SupplierName string
	TotalSpent   decimal.Decimal
}

// ActivityResult evento normalizado para el feed de actividad reciente.
// Quantity es la suma de cantidades de los renglones del evento.
type ActivityResult struct {
	ID                  string
	Date                time.Time
	Type                string // "purchase", "IN" o "OUT"
	Quantity            int64
	Notes               string
	SourceOrDestination string // proveedor para compras, punto de negocio para traslados
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos) y operan siempre
// sobre el estado actual completo de las tablas, sin caché.
type AnalyticsRepository interface {
	// GetStockTotals devuelve conteo de productos y stock sumado (no eliminados).
	GetStockTotals(ctx context.Context) (StockTotalsResult, error)

	// ListLowStock devuelve productos con 0 < stock_level <= threshold.
	ListLowStock(ctx context.Context, threshold int64) ([]StockItemResult, error)

	// ListOutOfStock devuelve productos con stock_level == 0.
	ListOutOfStock(ctx context.Context) ([]StockItemResult, error)

	// GetInventoryValue valora el inventario: por producto, stock_level ×
	// unit_cost de su compra no eliminada más reciente (por purchase_date)
	// que contenga un renglón del producto. Sin historial de compras aporta cero.
	GetInventoryValue(ctx context.Context) (decimal.Decimal, error)

	// GetPurchaseTotal suma total_cost de todas las compras no eliminadas.
	GetPurchaseTotal(ctx context.Context) (decimal.Decimal, error)

	// GetTopSuppliers devuelve los `limit` proveedores con mayor gasto acumulado,
	// orden descendente.
	GetTopSuppliers(ctx context.Context, limit int) ([]SupplierSpendResult, error)

	// ListRecentPurchases devuelve las `limit` compras no eliminadas más
	// recientes desde `since`, normalizadas como actividad.
	ListRecentPurchases(ctx context.Context, since time.Time, limit int) ([]ActivityResult, error)

	// ListRecentTransfers ídem para traslados no eliminados.
	ListRecentTransfers(ctx context.Context, since time.Time, limit int) ([]ActivityResult, error)
}
