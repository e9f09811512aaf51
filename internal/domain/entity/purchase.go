package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra a un proveedor con sus renglones.
// TotalCost siempre se calcula en el servidor (Σ quantity × unit_cost);
// cualquier total enviado por el cliente se ignora.
type Purchase struct {
	ID           string
	SupplierID   string
	TotalCost    decimal.Decimal
	PurchaseDate time.Time
	Notes        string
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseItem renglón de una compra. Inmutable por la operación de compra;
// correcciones directas vía el endpoint de purchase_items (sin efecto en stock).
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int64
	UnitCost   decimal.Decimal
	CreatedAt  time.Time
}
