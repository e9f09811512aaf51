package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/inventory"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetActiveByName(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) GetActiveBySKU(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakeProductRepo) SoftDelete(id string) error {
	f.products[id].IsDeleted = true
	return nil
}
func (f *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) UpdateStockLevel(id string, level int64) error {
	f.products[id].StockLevel = level
	return nil
}

type fakeTransferRepo struct {
	transfers map[string]*entity.StockTransfer
	items     map[string][]*entity.StockTransferItem
}

func (f *fakeTransferRepo) Create(t *entity.StockTransfer) error { f.transfers[t.ID] = t; return nil }
func (f *fakeTransferRepo) GetByID(id string) (*entity.StockTransfer, error) {
	return f.transfers[id], nil
}
func (f *fakeTransferRepo) Update(t *entity.StockTransfer) error { return nil }
func (f *fakeTransferRepo) SoftDelete(id string) error {
	f.transfers[id].IsDeleted = true
	return nil
}
func (f *fakeTransferRepo) List() ([]*entity.StockTransfer, error) { return nil, nil }
func (f *fakeTransferRepo) CreateItem(it *entity.StockTransferItem) error {
	f.items[it.TransferID] = append(f.items[it.TransferID], it)
	return nil
}
func (f *fakeTransferRepo) ListItems(transferID string) ([]*entity.StockTransferItem, error) {
	return f.items[transferID], nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) ListByProduct(string, int, int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}
func (f *fakeMovementRepo) List(int, int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.BusinessLocation
}

func (f *fakeLocationRepo) Create(l *entity.BusinessLocation) error { return nil }
func (f *fakeLocationRepo) GetByID(id string) (*entity.BusinessLocation, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) GetActiveByName(string) (*entity.BusinessLocation, error) {
	return nil, nil
}
func (f *fakeLocationRepo) Update(*entity.BusinessLocation) error { return nil }
func (f *fakeLocationRepo) SoftDelete(string) error { return nil }
func (f *fakeLocationRepo) List() ([]*entity.BusinessLocation, error) { return nil, nil }

// fakeTxRunner ejecuta el callback directamente con los fakes (sin tx real).
type fakeTxRunner struct {
	transferRepo repository.TransferRepository
	productRepo  repository.ProductRepository
	movRepo      repository.StockMovementRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.TransferRepository,
	repository.ProductRepository,
	repository.StockMovementRepository,
) error) error {
	return fn(f.transferRepo, f.productRepo, f.movRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Arnés
// ──────────────────────────────────────────────────────────────────────────────

type harness struct {
	uc        *inventory.TransferUseCase
	products  *fakeProductRepo
	transfers *fakeTransferRepo
	movements *fakeMovementRepo
}

func newHarness(products ...*entity.Product) *harness {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	transferRepo := &fakeTransferRepo{
		transfers: map[string]*entity.StockTransfer{},
		items:     map[string][]*entity.StockTransferItem{},
	}
	movementRepo := &fakeMovementRepo{}
	locationRepo := &fakeLocationRepo{locations: map[string]*entity.BusinessLocation{}}
	txRunner := &fakeTxRunner{transferRepo: transferRepo, productRepo: productRepo, movRepo: movementRepo}
	return &harness{
		uc:        inventory.NewTransferUseCase(txRunner, transferRepo, productRepo, locationRepo, movementRepo),
		products:  productRepo,
		transfers: transferRepo,
		movements: movementRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_INSumaStockYDejaDelta(t *testing.T) {
	h := newHarness(&entity.Product{ID: "p1", Name: "Tornillos", StockLevel: 0})

	out, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeIN,
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 5}},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(5), h.products.products["p1"].StockLevel,
		"un IN de 5 sobre stock 0 debe dejar 5")
	require.Len(t, h.movements.movements, 1)
	assert.Equal(t, int64(5), h.movements.movements[0].Quantity,
		"el delta del libro debe ser +5")
	assert.False(t, h.movements.movements[0].Reversal)
}

func TestCreate_OUTRestaStock(t *testing.T) {
	h := newHarness(&entity.Product{ID: "p1", StockLevel: 10})

	_, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeOUT,
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), h.products.products["p1"].StockLevel)
	require.Len(t, h.movements.movements, 1)
	assert.Equal(t, int64(-4), h.movements.movements[0].Quantity,
		"el delta de un OUT lleva signo negativo")
}

func TestCreate_OUTInsuficienteRechazado(t *testing.T) {
	h := newHarness(&entity.Product{ID: "p1", StockLevel: 3})

	_, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeOUT,
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 4}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(3), h.products.products["p1"].StockLevel,
		"el stock no debe cambiar cuando el OUT se rechaza")
	assert.Empty(t, h.movements.movements, "no debe quedar delta en el libro")
}

func TestCreate_RenglonesRepetidosAcumulan(t *testing.T) {
	h := newHarness(&entity.Product{ID: "p1", StockLevel: 0})

	_, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeIN,
		Items: []dto.TransferItemInput{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p1", Quantity: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), h.products.products["p1"].StockLevel,
		"dos renglones del mismo producto deben acumular 3+4=7")
	assert.Len(t, h.movements.movements, 2, "cada renglón deja su propio delta")
}

func TestCreate_TipoInvalidoRechazado(t *testing.T) {
	h := newHarness()
	_, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: "ADJUST",
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ProductoEliminadoRechazado(t *testing.T) {
	h := newHarness(&entity.Product{ID: "p1", StockLevel: 10, IsDeleted: true})
	_, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeIN,
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrDeletedReference)
}

func TestCreate_SinRenglonesRechazado(t *testing.T) {
	h := newHarness()
	_, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeIN,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — reversa del efecto sobre stock
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_ReversaDeINRestaStock(t *testing.T) {
	h := newHarness(&entity.Product{ID: "p1", StockLevel: 0})

	out, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeIN,
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 5}},
	})
	require.NoError(t, err)

	require.NoError(t, h.uc.Delete(context.Background(), out.ID))

	assert.Equal(t, int64(0), h.products.products["p1"].StockLevel,
		"eliminar el IN debe devolver el stock a 0")
	assert.True(t, h.transfers.transfers[out.ID].IsDeleted)

	require.Len(t, h.movements.movements, 2, "la reversa deja su propio delta, no borra el original")
	reversa := h.movements.movements[1]
	assert.Equal(t, int64(-5), reversa.Quantity)
	assert.True(t, reversa.Reversal, "el delta compensatorio debe marcarse como reversa")
}

func TestDelete_ReversaDeOUTDevuelveStock(t *testing.T) {
	h := newHarness(&entity.Product{ID: "p1", StockLevel: 10})

	out, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeOUT,
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), h.products.products["p1"].StockLevel)

	require.NoError(t, h.uc.Delete(context.Background(), out.ID))
	assert.Equal(t, int64(10), h.products.products["p1"].StockLevel,
		"eliminar el OUT debe devolver las cantidades")
}

func TestDelete_ReversaDeINConStockConsumidoRechazada(t *testing.T) {
	h := newHarness(&entity.Product{ID: "p1", StockLevel: 0})

	in, err := h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeIN,
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 5}},
	})
	require.NoError(t, err)

	// Un OUT posterior consume parte de lo ingresado.
	_, err = h.uc.Create(context.Background(), dto.CreateTransferRequest{
		TransferType: entity.TransferTypeOUT,
		Items:        []dto.TransferItemInput{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)

	err = h.uc.Delete(context.Background(), in.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"revertir un IN de 5 con solo 2 disponibles debe rechazarse")
	assert.False(t, h.transfers.transfers[in.ID].IsDeleted,
		"el traslado no debe quedar eliminado si la reversa falla")
}

func TestDelete_TrasladoInexistente(t *testing.T) {
	h := newHarness()
	err := h.uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
