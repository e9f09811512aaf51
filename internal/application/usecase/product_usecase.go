package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// StockLevel no se edita aquí: solo lo mueven los traslados de stock.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto con stock en 0. Rechaza categorías inexistentes o
// eliminadas y nombres/SKU duplicados entre productos activos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.IsDeleted {
		return nil, domain.ErrDeletedReference
	}
	if existing, err := uc.repo.GetActiveByName(in.Name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.SKU != "" {
		if existing, err := uc.repo.GetActiveBySKU(in.SKU); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         in.SKU,
		Unit:        in.Unit,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		StockLevel:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto por ID con su categoría anidada.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product), nil
}

// Update actualiza metadatos (nombre, sku, unidad, descripción, categoría).
// Nunca toca stock_level ni recalcula cantidades derivadas.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.IsDeleted {
		return nil, nil
	}
	if in.Name != nil && *in.Name != product.Name {
		other, err := uc.repo.GetActiveByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		if *in.SKU != "" {
			other, err := uc.repo.GetActiveBySKU(*in.SKU)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != product.ID {
				return nil, domain.ErrDuplicate
			}
		}
		product.SKU = *in.SKU
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.IsDeleted {
			return nil, domain.ErrDeletedReference
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// Delete marca el producto como eliminado. El historial de compras y
// movimientos sigue referenciándolo.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

// List lista productos no eliminados con su categoría anidada.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, uc.toResponse(p))
	}
	return out, nil
}

// toResponse arma la proyección con la categoría anidada (un nivel, según contrato).
func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Unit:        p.Unit,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		StockLevel:  p.StockLevel,
		CreatedAt:   p.CreatedAt,
	}
	if category, err := uc.categoryRepo.GetByID(p.CategoryID); err == nil && category != nil {
		resp.Category = toCategoryResponse(category)
	}
	return resp
}
