package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	ledger "github.com/tu-usuario/warehouse-api/internal/domain/inventory"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// TransferUseCase registra traslados de stock de forma transaccional con
// bloqueo de fila (SELECT FOR UPDATE) sobre cada producto afectado.
// Es el único componente que muta stock_level; cada ajuste deja además un
// delta con signo en el libro stock_movements.
type TransferUseCase struct {
	txRunner     TxRunner
	transferRepo repository.TransferRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	movementRepo repository.StockMovementRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.StockMovementRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:     txRunner,
		transferRepo: transferRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// Create valida todos los renglones y luego, en una sola transacción, aplica
// los ajustes: IN suma cantidades, OUT resta. Un OUT que dejaría cualquier
// producto en negativo aborta el traslado completo sin commit parcial.
func (uc *TransferUseCase) Create(ctx context.Context, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.TransferType != entity.TransferTypeIN && in.TransferType != entity.TransferTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.LocationID != "" {
		location, err := uc.locationRepo.GetByID(in.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil || location.IsDeleted {
			return nil, domain.ErrDeletedReference
		}
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.IsDeleted {
			return nil, domain.ErrDeletedReference
		}
	}

	now := time.Now()
	transfer := &entity.StockTransfer{
		ID:           uuid.New().String(),
		TransferType: in.TransferType,
		LocationID:   in.LocationID,
		Date:         now,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	items := make([]*entity.StockTransferItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, &entity.StockTransferItem{
			ID:         uuid.New().String(),
			TransferID: transfer.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			CreatedAt:  now,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if err := transferRepo.Create(transfer); err != nil {
			return err
		}
		for _, item := range items {
			if err := uc.applyItem(productRepo, movRepo, transfer, item, false); err != nil {
				return err
			}
			if err := transferRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(transfer, items), nil
}

// applyItem bloquea la fila del producto, aplica el delta del renglón y deja
// registro en el libro. reversal invierte el signo (reversa por eliminación).
// Renglones repetidos del mismo producto acumulan sobre la fila ya bloqueada.
func (uc *TransferUseCase) applyItem(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	transfer *entity.StockTransfer,
	item *entity.StockTransferItem,
	reversal bool,
) error {
	product, err := productRepo.GetForUpdate(item.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrDeletedReference
	}
	delta := ledger.Delta(transfer.TransferType, item.Quantity)
	if reversal {
		delta = -delta
	}
	next, ok := ledger.Apply(product.StockLevel, delta)
	if !ok {
		return domain.ErrInsufficientStock
	}
	if err := productRepo.UpdateStockLevel(product.ID, next); err != nil {
		return err
	}
	return movRepo.Create(&entity.StockMovement{
		ID:         uuid.New().String(),
		TransferID: transfer.ID,
		ProductID:  item.ProductID,
		Quantity:   delta,
		Reversal:   reversal,
		CreatedAt:  time.Now(),
	})
}

// GetByID obtiene un traslado con punto de negocio y renglones anidados.
func (uc *TransferUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil || transfer.IsDeleted {
		return nil, nil
	}
	items, err := uc.transferRepo.ListItems(transfer.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(transfer, items), nil
}

// List lista traslados no eliminados, más recientes primero.
func (uc *TransferUseCase) List() ([]*dto.TransferResponse, error) {
	transfers, err := uc.transferRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		items, err := uc.transferRepo.ListItems(t.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, uc.toResponse(t, items))
	}
	return out, nil
}

// Update edita metadatos (punto de negocio, notas). Nunca toca stock y no
// tiene restricción de antigüedad.
func (uc *TransferUseCase) Update(id string, in dto.UpdateTransferRequest) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil || transfer.IsDeleted {
		return nil, nil
	}
	if in.LocationID != nil && *in.LocationID != transfer.LocationID {
		if *in.LocationID != "" {
			location, err := uc.locationRepo.GetByID(*in.LocationID)
			if err != nil {
				return nil, err
			}
			if location == nil || location.IsDeleted {
				return nil, domain.ErrDeletedReference
			}
		}
		transfer.LocationID = *in.LocationID
	}
	if in.Notes != nil {
		transfer.Notes = *in.Notes
	}
	transfer.UpdatedAt = time.Now()
	if err := uc.transferRepo.Update(transfer); err != nil {
		return nil, err
	}
	items, err := uc.transferRepo.ListItems(transfer.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(transfer, items), nil
}

// Delete revierte el efecto del traslado sobre el stock y lo marca eliminado,
// todo en una transacción. La reversa de un IN resta las mismas cantidades y
// falla con ErrInsufficientStock si el stock restante no alcanza; la reversa
// de un OUT siempre devuelve las cantidades.
func (uc *TransferUseCase) Delete(ctx context.Context, id string) error {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return err
	}
	if transfer == nil || transfer.IsDeleted {
		return domain.ErrNotFound
	}
	items, err := uc.transferRepo.ListItems(transfer.ID)
	if err != nil {
		return err
	}

	return uc.txRunner.Run(ctx, func(
		transferRepo repository.TransferRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		for _, item := range items {
			if err := uc.applyItem(productRepo, movRepo, transfer, item, true); err != nil {
				return err
			}
		}
		return transferRepo.SoftDelete(transfer.ID)
	})
}

// ListMovements lista el libro de deltas (GET /api/stock_movements).
func (uc *TransferUseCase) ListMovements(limit, offset int) ([]*dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, &dto.StockMovementResponse{
			ID:         m.ID,
			TransferID: m.TransferID,
			ProductID:  m.ProductID,
			Quantity:   m.Quantity,
			Reversal:   m.Reversal,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out, nil
}

// toResponse arma la proyección anidada: traslado → punto de negocio + renglones → producto.
func (uc *TransferUseCase) toResponse(t *entity.StockTransfer, items []*entity.StockTransferItem) *dto.TransferResponse {
	resp := &dto.TransferResponse{
		ID:           t.ID,
		TransferType: t.TransferType,
		LocationID:   t.LocationID,
		Date:         t.Date,
		Notes:        t.Notes,
		Items:        make([]dto.TransferItemResponse, 0, len(items)),
	}
	if t.LocationID != "" {
		if location, err := uc.locationRepo.GetByID(t.LocationID); err == nil && location != nil {
			resp.Location = &dto.LocationResponse{
				ID:            location.ID,
				Name:          location.Name,
				Address:       location.Address,
				ContactPerson: location.ContactPerson,
				Phone:         location.Phone,
				Notes:         location.Notes,
				IsActive:      location.IsActive,
				CreatedAt:     location.CreatedAt,
			}
		}
	}
	for _, it := range items {
		itemResp := dto.TransferItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
		if product, err := uc.productRepo.GetByID(it.ProductID); err == nil && product != nil {
			itemResp.Product = &dto.ProductResponse{
				ID:         product.ID,
				Name:       product.Name,
				SKU:        product.SKU,
				Unit:       product.Unit,
				CategoryID: product.CategoryID,
				StockLevel: product.StockLevel,
				CreatedAt:  product.CreatedAt,
			}
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}
