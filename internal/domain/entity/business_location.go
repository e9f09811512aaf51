package entity

import "time"

// BusinessLocation representa un punto de negocio origen/destino de traslados.
type BusinessLocation struct {
	ID            string
	Name          string // único entre no eliminadas
	Address       string
	ContactPerson string
	Phone         string
	Notes         string
	IsActive      bool
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
