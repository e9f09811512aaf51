package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL.
// Las escrituras traslado+renglones+stock deben ejecutarse con un Querier transaccional.
type TransferRepo struct {
	q Querier
}

func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferItemColumns = `id, transfer_id, product_id, quantity, created_at`

func (r *TransferRepo) Create(transfer *entity.StockTransfer) error {
	query := `
		INSERT INTO stock_transfers (id, transfer_type, location_id, date, notes, is_deleted, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.TransferType, transfer.LocationID, transfer.Date,
		transfer.Notes, transfer.IsDeleted, transfer.CreatedAt, transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) GetByID(id string) (*entity.StockTransfer, error) {
	query := `SELECT ` + transferSelectColumns + ` FROM stock_transfers WHERE id = $1`
	var t entity.StockTransfer
	if err := scanTransfer(r.q.QueryRow(context.Background(), query, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// Update persiste solo metadatos (fecha, notas, destino). El tipo y los
// renglones son inmutables después de crear el traslado.
func (r *TransferRepo) Update(transfer *entity.StockTransfer) error {
	query := `
		UPDATE stock_transfers
		SET location_id = NULLIF($2, '')::uuid, date = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.LocationID, transfer.Date, transfer.Notes, transfer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stock_transfers SET is_deleted = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete transfer: %w", err)
	}
	return nil
}

// List lista traslados no eliminados, más reciente primero.
func (r *TransferRepo) List() ([]*entity.StockTransfer, error) {
	query := `SELECT ` + transferSelectColumns + ` FROM stock_transfers WHERE NOT is_deleted ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransfer
	for rows.Next() {
		var t entity.StockTransfer
		if err := scanTransfer(rows, &t); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TransferRepo) CreateItem(item *entity.StockTransferItem) error {
	query := `
		INSERT INTO stock_transfer_items (id, transfer_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransferID, item.ProductID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer item: %w", err)
	}
	return nil
}

func (r *TransferRepo) ListItems(transferID string) ([]*entity.StockTransferItem, error) {
	query := `SELECT ` + transferItemColumns + ` FROM stock_transfer_items WHERE transfer_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransferItem
	for rows.Next() {
		var it entity.StockTransferItem
		if err := rows.Scan(&it.ID, &it.TransferID, &it.ProductID, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// location_id es NULL cuando no aplica; se normaliza a cadena vacía en la entidad.
const transferSelectColumns = `id, transfer_type, COALESCE(location_id::text, ''), date, notes, is_deleted, created_at, updated_at`

func scanTransfer(row pgx.Row, t *entity.StockTransfer) error {
	return row.Scan(&t.ID, &t.TransferType, &t.LocationID, &t.Date, &t.Notes,
		&t.IsDeleted, &t.CreatedAt, &t.UpdatedAt)
}
