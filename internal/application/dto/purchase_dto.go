package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemInput renglón de una compra nueva.
type PurchaseItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseRequest cuerpo de POST /api/purchases. El total lo calcula el
// servidor; un campo total_cost enviado por el cliente se ignora.
type CreatePurchaseRequest struct {
	SupplierID string              `json:"supplier_id"`
	Items      []PurchaseItemInput `json:"items"`
	Notes      string              `json:"notes"`
}

// UpdatePurchaseRequest cuerpo de PUT /api/purchases/:id. Solo metadatos;
// los renglones no se editan por esta operación.
type UpdatePurchaseRequest struct {
	SupplierID *string `json:"supplier_id"`
	Notes      *string `json:"notes"`
}

// UpdatePurchaseItemRequest corrección directa de un renglón
// (PUT /api/purchase_items/:id). No tiene efectos sobre stock ni recalcula
// el total de la compra.
type UpdatePurchaseItemRequest struct {
	Quantity *int64           `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unit_cost"`
}

// PurchaseItemResponse renglón de compra con su producto anidado.
type PurchaseItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int64            `json:"quantity"`
	UnitCost  decimal.Decimal  `json:"unit_cost"`
}

// PurchaseResponse proyección JSON de una compra: proveedor y renglones anidados.
type PurchaseResponse struct {
	ID           string                 `json:"id"`
	SupplierID   string                 `json:"supplier_id"`
	Supplier     *SupplierResponse      `json:"supplier,omitempty"`
	TotalCost    decimal.Decimal        `json:"total_cost"`
	PurchaseDate time.Time              `json:"purchase_date"`
	Notes        string                 `json:"notes,omitempty"`
	Items        []PurchaseItemResponse `json:"items"`
}
