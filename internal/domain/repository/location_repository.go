package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para BusinessLocation.
type LocationRepository interface {
	Create(location *entity.BusinessLocation) error
	GetByID(id string) (*entity.BusinessLocation, error)
	GetActiveByName(name string) (*entity.BusinessLocation, error)
	Update(location *entity.BusinessLocation) error
	SoftDelete(id string) error
	List() ([]*entity.BusinessLocation, error)
}
