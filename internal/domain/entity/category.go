package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID          string
	Name        string // único entre no eliminadas
	Description string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
