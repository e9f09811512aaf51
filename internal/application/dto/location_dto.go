package dto

import "time"

// CreateLocationRequest cuerpo de POST /api/business_locations.
type CreateLocationRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes"`
}

// UpdateLocationRequest cuerpo de PUT /api/business_locations/:id. Campos opcionales.
type UpdateLocationRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Notes         *string `json:"notes"`
}

// LocationResponse proyección JSON de un punto de negocio.
type LocationResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToggleActiveResponse respuesta de PATCH /api/business_locations/:id/toggle_active.
type ToggleActiveResponse struct {
	Message  string            `json:"message"`
	IsActive bool              `json:"is_active"`
	Location *LocationResponse `json:"location"`
}
