package entity

import "time"

// Tipos de traslado de stock.
const (
	TransferTypeIN  = "IN"  // entrada al almacén
	TransferTypeOUT = "OUT" // salida hacia un punto de negocio
)

// StockTransfer representa un traslado de stock (IN aumenta, OUT disminuye).
// Es el único dueño del contador StockLevel de los productos.
type StockTransfer struct {
	ID           string
	TransferType string
	LocationID   string // vacío si no aplica
	Date         time.Time
	Notes        string
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockTransferItem renglón de un traslado.
type StockTransferItem struct {
	ID         string
	TransferID string
	ProductID  string
	Quantity   int64
	CreatedAt  time.Time
}
