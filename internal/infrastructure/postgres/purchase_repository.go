package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
// Las escrituras compra+renglones deben ejecutarse con un Querier transaccional.
type PurchaseRepo struct {
	q Querier
}

func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, supplier_id, total_cost, purchase_date, notes, is_deleted, created_at, updated_at`
const purchaseItemColumns = `id, purchase_id, product_id, quantity, unit_cost, created_at`

func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, supplier_id, total_cost, purchase_date, notes, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.SupplierID, purchase.TotalCost, purchase.PurchaseDate,
		purchase.Notes, purchase.IsDeleted, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	if err := scanPurchase(r.q.QueryRow(context.Background(), query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

func (r *PurchaseRepo) Update(purchase *entity.Purchase) error {
	query := `
		UPDATE purchases
		SET supplier_id = $2, total_cost = $3, purchase_date = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.SupplierID, purchase.TotalCost, purchase.PurchaseDate,
		purchase.Notes, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// SoftDelete marca la compra como eliminada. Los renglones permanecen (historial).
func (r *PurchaseRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET is_deleted = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete purchase: %w", err)
	}
	return nil
}

// List lista compras no eliminadas, más reciente primero.
func (r *PurchaseRepo) List() ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE NOT is_deleted ORDER BY purchase_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := scanPurchase(rows, &p); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PurchaseRepo) CreateItem(item *entity.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (id, purchase_id, product_id, quantity, unit_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PurchaseID, item.ProductID, item.Quantity, item.UnitCost, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) GetItemByID(id string) (*entity.PurchaseItem, error) {
	query := `SELECT ` + purchaseItemColumns + ` FROM purchase_items WHERE id = $1`
	var it entity.PurchaseItem
	if err := scanPurchaseItem(r.q.QueryRow(context.Background(), query, id), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase item: %w", err)
	}
	return &it, nil
}

// UpdateItem corrige un renglón (cantidad, costo o producto). No toca stock ni
// el total de la compra: es una corrección de historial.
func (r *PurchaseRepo) UpdateItem(item *entity.PurchaseItem) error {
	query := `
		UPDATE purchase_items SET product_id = $2, quantity = $3, unit_cost = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductID, item.Quantity, item.UnitCost,
	)
	if err != nil {
		return fmt.Errorf("update purchase item: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) ListItems(purchaseID string) ([]*entity.PurchaseItem, error) {
	query := `SELECT ` + purchaseItemColumns + ` FROM purchase_items WHERE purchase_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	return collectPurchaseItems(rows)
}

func (r *PurchaseRepo) ListAllItems() ([]*entity.PurchaseItem, error) {
	query := `SELECT ` + purchaseItemColumns + ` FROM purchase_items ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all purchase items: %w", err)
	}
	defer rows.Close()
	return collectPurchaseItems(rows)
}

func collectPurchaseItems(rows pgx.Rows) ([]*entity.PurchaseItem, error) {
	var list []*entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := scanPurchaseItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func scanPurchase(row pgx.Row, p *entity.Purchase) error {
	return row.Scan(&p.ID, &p.SupplierID, &p.TotalCost, &p.PurchaseDate, &p.Notes,
		&p.IsDeleted, &p.CreatedAt, &p.UpdatedAt)
}

func scanPurchaseItem(row pgx.Row, it *entity.PurchaseItem) error {
	return row.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.UnitCost, &it.CreatedAt)
}
