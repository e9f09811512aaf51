package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/purchasing"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
	items     map[string]*entity.PurchaseItem
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{
		purchases: map[string]*entity.Purchase{},
		items:     map[string]*entity.PurchaseItem{},
	}
}

func (f *fakePurchaseRepo) Create(p *entity.Purchase) error { f.purchases[p.ID] = p; return nil }
func (f *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return f.purchases[id], nil
}
func (f *fakePurchaseRepo) Update(p *entity.Purchase) error { f.purchases[p.ID] = p; return nil }
func (f *fakePurchaseRepo) SoftDelete(id string) error {
	f.purchases[id].IsDeleted = true
	return nil
}
func (f *fakePurchaseRepo) List() ([]*entity.Purchase, error) { return nil, nil }
func (f *fakePurchaseRepo) CreateItem(it *entity.PurchaseItem) error {
	f.items[it.ID] = it
	return nil
}
func (f *fakePurchaseRepo) GetItemByID(id string) (*entity.PurchaseItem, error) {
	return f.items[id], nil
}
func (f *fakePurchaseRepo) UpdateItem(it *entity.PurchaseItem) error { f.items[it.ID] = it; return nil }
func (f *fakePurchaseRepo) ListItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, it := range f.items {
		if it.PurchaseID == purchaseID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakePurchaseRepo) ListAllItems() ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

// fakeProductRepo registra si alguien intenta mutar stock: las compras jamás deben hacerlo.
type fakeProductRepo struct {
	products     map[string]*entity.Product
	stockTouched bool
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetActiveByName(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) GetActiveBySKU(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) SoftDelete(string) error { return nil }
func (f *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) UpdateStockLevel(string, int64) error {
	f.stockTouched = true
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) Update(*entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) SoftDelete(string) error { return nil }
func (f *fakeSupplierRepo) List() ([]*entity.Supplier, error) { return nil, nil }

type fakeTxRunner struct {
	purchaseRepo repository.PurchaseRepository
}

func (f *fakeTxRunner) RunPurchase(_ context.Context, fn func(repository.PurchaseRepository) error) error {
	return fn(f.purchaseRepo)
}

type harness struct {
	uc        *purchasing.PurchaseUseCase
	purchases *fakePurchaseRepo
	products  *fakeProductRepo
}

func newHarness() *harness {
	purchaseRepo := newFakePurchaseRepo()
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Tornillos", StockLevel: 100},
		"p2": {ID: "p2", Name: "Tuercas", StockLevel: 50},
	}}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "Ferretería Central"},
	}}
	txRunner := &fakeTxRunner{purchaseRepo: purchaseRepo}
	return &harness{
		uc:        purchasing.NewPurchaseUseCase(txRunner, purchaseRepo, productRepo, supplierRepo),
		purchases: purchaseRepo,
		products:  productRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CalculaTotalEnServidor(t *testing.T) {
	h := newHarness()

	out, err := h.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: "s1",
		Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 2, UnitCost: decimal.RequireFromString("10.50")},
			{ProductID: "p2", Quantity: 5, UnitCost: decimal.RequireFromString("7.00")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, decimal.RequireFromString("56.00").Equal(out.TotalCost),
		"el total debe ser 2×10.50 + 5×7.00 = 56.00, obtuvo %s", out.TotalCost)
	assert.Len(t, out.Items, 2)
}

func TestCreate_NoTocaStock(t *testing.T) {
	h := newHarness()

	_, err := h.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: "s1",
		Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 10, UnitCost: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)

	assert.False(t, h.products.stockTouched,
		"registrar una compra jamás debe mutar stock_level")
	assert.Equal(t, int64(100), h.products.products["p1"].StockLevel)
}

func TestCreate_ProveedorEliminadoRechazado(t *testing.T) {
	h := newHarness()
	h.uc = purchasing.NewPurchaseUseCase(
		&fakeTxRunner{purchaseRepo: h.purchases},
		h.purchases,
		h.products,
		&fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
			"s1": {ID: "s1", IsDeleted: true},
		}},
	)

	_, err := h.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: "s1",
		Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 1, UnitCost: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDeletedReference)
}

func TestCreate_RenglonInvalidoRechazaTodo(t *testing.T) {
	h := newHarness()

	_, err := h.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: "s1",
		Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 2, UnitCost: decimal.NewFromInt(10)},
			{ProductID: "p2", Quantity: 0, UnitCost: decimal.NewFromInt(5)}, // inválido
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, h.purchases.purchases, "nada debe persistirse si un renglón es inválido")
	assert.Empty(t, h.purchases.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — ventana de edición de 30 días
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_DentroDeVentanaPermitido(t *testing.T) {
	h := newHarness()
	h.purchases.purchases["c1"] = &entity.Purchase{
		ID:           "c1",
		SupplierID:   "s1",
		PurchaseDate: time.Now().Add(-10 * 24 * time.Hour),
	}

	notas := "entregado en bodega"
	out, err := h.uc.Update("c1", dto.UpdatePurchaseRequest{Notes: &notas})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, notas, out.Notes)
}

func TestUpdate_FueraDeVentanaInmutable(t *testing.T) {
	h := newHarness()
	h.purchases.purchases["c1"] = &entity.Purchase{
		ID:           "c1",
		SupplierID:   "s1",
		PurchaseDate: time.Now().Add(-31 * 24 * time.Hour),
	}

	notas := "tarde"
	_, err := h.uc.Update("c1", dto.UpdatePurchaseRequest{Notes: &notas})
	assert.ErrorIs(t, err, domain.ErrImmutable,
		"una compra de más de 30 días no debe ser editable")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — soft delete sin efecto en stock
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_SoftDeleteSinReversaDeStock(t *testing.T) {
	h := newHarness()

	out, err := h.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: "s1",
		Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 10, UnitCost: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, h.uc.Delete(out.ID))

	assert.True(t, h.purchases.purchases[out.ID].IsDeleted)
	assert.False(t, h.products.stockTouched,
		"eliminar una compra no debe tocar stock_level")
	assert.Len(t, h.purchases.items, 1, "los renglones persisten para el historial")
}

// ──────────────────────────────────────────────────────────────────────────────
// Correcciones de renglón
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateItem_CorrigeSinRecalcularTotal(t *testing.T) {
	h := newHarness()

	out, err := h.uc.Create(context.Background(), dto.CreatePurchaseRequest{
		SupplierID: "s1",
		Items: []dto.PurchaseItemInput{
			{ProductID: "p1", Quantity: 2, UnitCost: decimal.RequireFromString("10.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	nuevaCantidad := int64(3)
	item, err := h.uc.UpdateItem(out.Items[0].ID, dto.UpdatePurchaseItemRequest{
		Quantity: &nuevaCantidad,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), item.Quantity)

	compra, err := h.uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("20.00").Equal(compra.TotalCost),
		"la corrección de un renglón no recalcula el total de la compra")
	assert.False(t, h.products.stockTouched)
}
