package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura para el dashboard. Siempre agrega sobre el
// estado actual completo de las tablas, sin caché ni materializaciones.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) GetStockTotals(ctx context.Context) (repository.StockTotalsResult, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(stock_level), 0)::bigint
		FROM products WHERE NOT is_deleted`
	var res repository.StockTotalsResult
	if err := r.q.QueryRow(ctx, query).Scan(&res.TotalItems, &res.TotalStock); err != nil {
		return repository.StockTotalsResult{}, fmt.Errorf("stock totals: %w", err)
	}
	return res, nil
}

func (r *AnalyticsRepo) ListLowStock(ctx context.Context, threshold int64) ([]repository.StockItemResult, error) {
	query := `
		SELECT id, name, sku, stock_level
		FROM products
		WHERE NOT is_deleted AND stock_level > 0 AND stock_level <= $1
		ORDER BY stock_level, name`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.StockItemResult
	for rows.Next() {
		var it repository.StockItemResult
		if err := rows.Scan(&it.ProductID, &it.Name, &it.SKU, &it.StockLevel); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) ListOutOfStock(ctx context.Context) ([]repository.StockItemResult, error) {
	query := `
		SELECT id, name, sku, stock_level
		FROM products
		WHERE NOT is_deleted AND stock_level = 0
		ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("out of stock: %w", err)
	}
	defer rows.Close()
	var list []repository.StockItemResult
	for rows.Next() {
		var it repository.StockItemResult
		if err := rows.Scan(&it.ProductID, &it.Name, &it.SKU, &it.StockLevel); err != nil {
			return nil, fmt.Errorf("scan out of stock: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// GetInventoryValue valora el inventario producto a producto con el unit_cost
// del renglón de la compra no eliminada más reciente que lo contiene. Los
// productos sin historial de compras aportan cero.
func (r *AnalyticsRepo) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.stock_level * lc.unit_cost), 0)
		FROM products p
		JOIN LATERAL (
			SELECT pi.unit_cost
			FROM purchase_items pi
			JOIN purchases pu ON pu.id = pi.purchase_id AND NOT pu.is_deleted
			WHERE pi.product_id = p.id
			ORDER BY pu.purchase_date DESC, pi.created_at DESC
			LIMIT 1
		) lc ON TRUE
		WHERE NOT p.is_deleted`
	var value decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&value); err != nil {
		return decimal.Zero, fmt.Errorf("inventory value: %w", err)
	}
	return value, nil
}

func (r *AnalyticsRepo) GetPurchaseTotal(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_cost), 0) FROM purchases WHERE NOT is_deleted`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("purchase total: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepo) GetTopSuppliers(ctx context.Context, limit int) ([]repository.SupplierSpendResult, error) {
	query := `
		SELECT s.id, s.name, COALESCE(SUM(pu.total_cost), 0) AS total_spent
		FROM suppliers s
		JOIN purchases pu ON pu.supplier_id = s.id AND NOT pu.is_deleted
		GROUP BY s.id, s.name
		ORDER BY total_spent DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top suppliers: %w", err)
	}
	defer rows.Close()
	var list []repository.SupplierSpendResult
	for rows.Next() {
		var s repository.SupplierSpendResult
		if err := rows.Scan(&s.SupplierID, &s.SupplierName, &s.TotalSpent); err != nil {
			return nil, fmt.Errorf("scan top supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) ListRecentPurchases(ctx context.Context, since time.Time, limit int) ([]repository.ActivityResult, error) {
	query := `
		SELECT pu.id, pu.purchase_date, pu.notes,
		       COALESCE((SELECT SUM(pi.quantity) FROM purchase_items pi WHERE pi.purchase_id = pu.id), 0)::bigint,
		       COALESCE(s.name, '')
		FROM purchases pu
		LEFT JOIN suppliers s ON s.id = pu.supplier_id
		WHERE NOT pu.is_deleted AND pu.purchase_date >= $1
		ORDER BY pu.purchase_date DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("recent purchases: %w", err)
	}
	defer rows.Close()
	var list []repository.ActivityResult
	for rows.Next() {
		var a repository.ActivityResult
		a.Type = "purchase"
		if err := rows.Scan(&a.ID, &a.Date, &a.Notes, &a.Quantity, &a.SourceOrDestination); err != nil {
			return nil, fmt.Errorf("scan recent purchase: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) ListRecentTransfers(ctx context.Context, since time.Time, limit int) ([]repository.ActivityResult, error) {
	query := `
		SELECT t.id, t.date, t.transfer_type, t.notes,
		       COALESCE((SELECT SUM(ti.quantity) FROM stock_transfer_items ti WHERE ti.transfer_id = t.id), 0)::bigint,
		       COALESCE(bl.name, '')
		FROM stock_transfers t
		LEFT JOIN business_locations bl ON bl.id = t.location_id
		WHERE NOT t.is_deleted AND t.date >= $1
		ORDER BY t.date DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("recent transfers: %w", err)
	}
	defer rows.Close()
	var list []repository.ActivityResult
	for rows.Next() {
		var a repository.ActivityResult
		if err := rows.Scan(&a.ID, &a.Date, &a.Type, &a.Notes, &a.Quantity, &a.SourceOrDestination); err != nil {
			return nil, fmt.Errorf("scan recent transfer: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
