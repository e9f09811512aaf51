package entity

import "time"

// Supplier representa un proveedor; dueño de cero o más compras.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Address   string
	Notes     string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
