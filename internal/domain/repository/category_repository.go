package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByName busca por nombre incluyendo eliminadas (para restaurar en vez de duplicar).
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// Restore revierte el soft-delete de una categoría.
	Restore(id string) error
	SoftDelete(id string) error
	List() ([]*entity.Category, error)
}
