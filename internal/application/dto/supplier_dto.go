package dto

import "time"

// CreateSupplierRequest cuerpo de POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateSupplierRequest cuerpo de PUT /api/suppliers/:id. Campos opcionales.
type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// SupplierResponse proyección JSON de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
