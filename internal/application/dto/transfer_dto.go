package dto

import "time"

// TransferItemInput renglón de un traslado nuevo.
type TransferItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateTransferRequest cuerpo de POST /api/stock_transfers.
type CreateTransferRequest struct {
	TransferType string              `json:"transfer_type"`
	Items        []TransferItemInput `json:"items"`
	LocationID   string              `json:"location_id"`
	Notes        string              `json:"notes"`
}

// UpdateTransferRequest cuerpo de PUT /api/stock_transfers/:id.
// Solo metadatos; nunca toca stock y no tiene límite de antigüedad.
type UpdateTransferRequest struct {
	LocationID *string `json:"location_id"`
	Notes      *string `json:"notes"`
}

// TransferItemResponse renglón de traslado con su producto anidado.
type TransferItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int64            `json:"quantity"`
}

// TransferResponse proyección JSON de un traslado: punto de negocio y renglones anidados.
type TransferResponse struct {
	ID           string                 `json:"id"`
	TransferType string                 `json:"transfer_type"`
	LocationID   string                 `json:"location_id,omitempty"`
	Location     *LocationResponse      `json:"location,omitempty"`
	Date         time.Time              `json:"date"`
	Notes        string                 `json:"notes,omitempty"`
	Items        []TransferItemResponse `json:"items"`
}

// StockMovementResponse fila del libro de deltas (GET /api/stock_movements).
type StockMovementResponse struct {
	ID         string    `json:"id"`
	TransferID string    `json:"transfer_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int64     `json:"quantity"`
	Reversal   bool      `json:"reversal"`
	CreatedAt  time.Time `json:"created_at"`
}
