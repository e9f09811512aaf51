package entity

import "time"

// Product representa un producto del almacén.
// StockLevel es propiedad exclusiva de los traslados de stock (StockTransfer);
// las compras registran historial de costos pero nunca mutan el contador.
type Product struct {
	ID          string
	Name        string // único entre no eliminados
	SKU         string // único entre no eliminados; opcional
	Unit        string
	Description string
	CategoryID  string
	StockLevel  int64
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
