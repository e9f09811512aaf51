package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/inventory"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// editWindow ventana de edición de una compra desde purchase_date.
// Pasada la ventana la compra es un registro inmutable.
const editWindow = 30 * 24 * time.Hour

// PurchaseUseCase registra compras con sus renglones de forma transaccional.
// Las compras son un libro histórico de costos: nunca mutan stock_level,
// ni al crearse ni al eliminarse.
type PurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// Create valida proveedor y todos los renglones, y solo entonces persiste
// compra + renglones en una transacción. total_cost se calcula en el servidor
// (Σ quantity × unit_cost); cualquier total del cliente se ignora.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.IsDeleted {
		return nil, domain.ErrDeletedReference
	}

	// Validar todos los renglones antes de tocar la base: o entra todo o no entra nada.
	now := time.Now()
	purchaseID := uuid.New().String()
	items := make([]*entity.PurchaseItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.IsDeleted {
			return nil, domain.ErrDeletedReference
		}
		items = append(items, &entity.PurchaseItem{
			ID:         uuid.New().String(),
			PurchaseID: purchaseID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitCost:   it.UnitCost,
			CreatedAt:  now,
		})
	}

	purchase := &entity.Purchase{
		ID:           purchaseID,
		SupplierID:   in.SupplierID,
		TotalCost:    inventory.PurchaseTotal(items),
		PurchaseDate: now,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunPurchase(ctx, func(purchaseRepo repository.PurchaseRepository) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, item := range items {
			if err := purchaseRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(purchase, items), nil
}

// GetByID obtiene una compra con proveedor y renglones anidados.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.IsDeleted {
		return nil, nil
	}
	items, err := uc.purchaseRepo.ListItems(purchase.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(purchase, items), nil
}

// List lista compras no eliminadas, más recientes primero.
func (uc *PurchaseUseCase) List() ([]*dto.PurchaseResponse, error) {
	purchases, err := uc.purchaseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		items, err := uc.purchaseRepo.ListItems(p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, uc.toResponse(p, items))
	}
	return out, nil
}

// Update edita metadatos (proveedor, notas) dentro de la ventana de 30 días.
// Compras más antiguas devuelven ErrImmutable. Los renglones no se editan aquí.
func (uc *PurchaseUseCase) Update(id string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.IsDeleted {
		return nil, nil
	}
	if time.Since(purchase.PurchaseDate) > editWindow {
		return nil, domain.ErrImmutable
	}
	if in.SupplierID != nil && *in.SupplierID != purchase.SupplierID {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || supplier.IsDeleted {
			return nil, domain.ErrDeletedReference
		}
		purchase.SupplierID = *in.SupplierID
	}
	if in.Notes != nil {
		purchase.Notes = *in.Notes
	}
	purchase.UpdatedAt = time.Now()
	if err := uc.purchaseRepo.Update(purchase); err != nil {
		return nil, err
	}
	items, err := uc.purchaseRepo.ListItems(purchase.ID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(purchase, items), nil
}

// Delete marca la compra como eliminada. No hay reversa de stock porque la
// creación nunca lo tocó; los renglones persisten para el historial.
func (uc *PurchaseUseCase) Delete(id string) error {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if purchase == nil || purchase.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.purchaseRepo.SoftDelete(id)
}

// ListItems lista todos los renglones de compra (GET /api/purchase_items).
func (uc *PurchaseUseCase) ListItems() ([]*dto.PurchaseItemResponse, error) {
	items, err := uc.purchaseRepo.ListAllItems()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, uc.toItemResponse(it))
	}
	return out, nil
}

// GetItem obtiene un renglón por ID.
func (uc *PurchaseUseCase) GetItem(id string) (*dto.PurchaseItemResponse, error) {
	item, err := uc.purchaseRepo.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toItemResponse(item), nil
}

// UpdateItem corrige cantidad/costo de un renglón directamente.
// Sin efectos sobre stock y sin recalcular el total de la compra:
// es una corrección del registro histórico, no un evento de inventario.
func (uc *PurchaseUseCase) UpdateItem(id string, in dto.UpdatePurchaseItemRequest) (*dto.PurchaseItemResponse, error) {
	item, err := uc.purchaseRepo.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.UnitCost != nil {
		if in.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitCost = *in.UnitCost
	}
	if err := uc.purchaseRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return uc.toItemResponse(item), nil
}

// toResponse arma la proyección anidada: compra → proveedor + renglones → producto.
func (uc *PurchaseUseCase) toResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:           p.ID,
		SupplierID:   p.SupplierID,
		TotalCost:    p.TotalCost,
		PurchaseDate: p.PurchaseDate,
		Notes:        p.Notes,
		Items:        make([]dto.PurchaseItemResponse, 0, len(items)),
	}
	if supplier, err := uc.supplierRepo.GetByID(p.SupplierID); err == nil && supplier != nil {
		resp.Supplier = &dto.SupplierResponse{
			ID:        supplier.ID,
			Name:      supplier.Name,
			Contact:   supplier.Contact,
			Address:   supplier.Address,
			Notes:     supplier.Notes,
			CreatedAt: supplier.CreatedAt,
		}
	}
	for _, it := range items {
		resp.Items = append(resp.Items, *uc.toItemResponse(it))
	}
	return resp
}

func (uc *PurchaseUseCase) toItemResponse(it *entity.PurchaseItem) *dto.PurchaseItemResponse {
	resp := &dto.PurchaseItemResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitCost:  it.UnitCost,
	}
	if product, err := uc.productRepo.GetByID(it.ProductID); err == nil && product != nil {
		resp.Product = &dto.ProductResponse{
			ID:         product.ID,
			Name:       product.Name,
			SKU:        product.SKU,
			Unit:       product.Unit,
			CategoryID: product.CategoryID,
			StockLevel: product.StockLevel,
			CreatedAt:  product.CreatedAt,
		}
	}
	return resp
}
