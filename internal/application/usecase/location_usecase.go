package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para puntos de negocio, incluido el toggle de actividad.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea un punto de negocio activo. Nombre único entre no eliminados.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetActiveByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	location := &entity.BusinessLocation{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Address:       in.Address,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Notes:         in.Notes,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene un punto de negocio por ID (activo o no).
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza metadatos de un punto de negocio no eliminado.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil || location.IsDeleted {
		return nil, nil
	}
	if in.Name != nil && *in.Name != location.Name {
		other, err := uc.repo.GetActiveByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != location.ID {
			return nil, domain.ErrDuplicate
		}
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	if in.ContactPerson != nil {
		location.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		location.Phone = *in.Phone
	}
	if in.Notes != nil {
		location.Notes = *in.Notes
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// ToggleActive invierte el estado activo del punto de negocio.
func (uc *LocationUseCase) ToggleActive(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil || location.IsDeleted {
		return nil, nil
	}
	location.IsActive = !location.IsActive
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Delete marca el punto de negocio como eliminado; sus traslados persisten.
func (uc *LocationUseCase) Delete(id string) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil || location.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

// List lista puntos de negocio no eliminados.
func (uc *LocationUseCase) List() ([]*dto.LocationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLocationResponse(l))
	}
	return out, nil
}

func toLocationResponse(l *entity.BusinessLocation) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:            l.ID,
		Name:          l.Name,
		Address:       l.Address,
		ContactPerson: l.ContactPerson,
		Phone:         l.Phone,
		Notes:         l.Notes,
		IsActive:      l.IsActive,
		CreatedAt:     l.CreatedAt,
	}
}
