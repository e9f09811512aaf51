package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías (soft-delete consciente).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Si ya existe una activa con el mismo nombre
// devuelve ErrDuplicate; si existe una eliminada con ese nombre, la restaura
// en vez de crear una fila duplicada.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.IsDeleted {
			return nil, domain.ErrDuplicate
		}
		// Restaurar la fila original; las referencias históricas siguen resolviendo.
		if err := uc.repo.Restore(existing.ID); err != nil {
			return nil, err
		}
		existing.IsDeleted = false
		if in.Description != "" {
			existing.Description = in.Description
			existing.UpdatedAt = time.Now()
			if err := uc.repo.Update(existing); err != nil {
				return nil, err
			}
		}
		return toCategoryResponse(existing), nil
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID (incluye eliminadas para vistas históricas).
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Update actualiza metadatos de una categoría no eliminada.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.IsDeleted {
		return nil, nil
	}
	if in.Name != nil && *in.Name != category.Name {
		other, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && !other.IsDeleted {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete marca la categoría como eliminada. Sus productos quedan ocultos de
// los listados por defecto pero las filas persisten.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil || category.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

// List lista categorías no eliminadas.
func (uc *CategoryUseCase) List() ([]*dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
