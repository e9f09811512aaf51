package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	SoftDelete(id string) error
	List() ([]*entity.Supplier, error)
}
