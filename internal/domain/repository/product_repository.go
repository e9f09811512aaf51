package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// StockLevel solo se modifica vía UpdateStockLevel dentro de una transacción,
// después de bloquear la fila con GetForUpdate.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetActiveByName(name string) (*entity.Product, error)
	GetActiveBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	SoftDelete(id string) error
	List() ([]*entity.Product, error)

	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	UpdateStockLevel(id string, level int64) error
}
