package dto

import "time"

// CreateProductRequest cuerpo de POST /api/products.
// StockLevel no es asignable por el cliente: nace en 0 y solo lo mueven los traslados.
type CreateProductRequest struct {
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
}

// UpdateProductRequest cuerpo de PUT /api/products/:id. Campos opcionales;
// nunca incluye stock_level.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	SKU         *string `json:"sku"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
}

// ProductResponse proyección JSON de un producto, con su categoría anidada.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	SKU         string            `json:"sku,omitempty"`
	Unit        string            `json:"unit,omitempty"`
	Description string            `json:"description,omitempty"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	StockLevel  int64             `json:"stock_level"`
	CreatedAt   time.Time         `json:"created_at"`
}
