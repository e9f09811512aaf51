package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, sku, unit, description, category_id, stock_level, is_deleted, created_at, updated_at`

// Create persiste un producto nuevo. StockLevel inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, unit, description, category_id, stock_level, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Unit, product.Description,
		product.CategoryID, product.StockLevel, product.IsDeleted, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (incluye eliminados, para vistas históricas).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetActiveByName obtiene un producto no eliminado por nombre.
func (r *ProductRepo) GetActiveByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 AND NOT is_deleted`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get product by name")
}

// GetActiveBySKU obtiene un producto no eliminado por SKU.
func (r *ProductRepo) GetActiveBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 AND NOT is_deleted`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku), "get product by sku")
}

// Update actualiza metadatos del producto. No toca stock_level (eso es del libro de stock).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, sku = $3, unit = $4, description = $5, category_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Unit, product.Description,
		product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como eliminado.
func (r *ProductRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_deleted = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// List lista productos no eliminados por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE NOT is_deleted ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE) para
// evitar condiciones de carrera al ajustar stock. Solo dentro de una tx.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// UpdateStockLevel fija el nuevo nivel de stock (usado por el libro de traslados).
func (r *ProductRepo) UpdateStockLevel(id string, level int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_level = $2, updated_at = now() WHERE id = $1`,
		id, level,
	)
	if err != nil {
		return fmt.Errorf("update stock level: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Unit, &p.Description, &p.CategoryID,
		&p.StockLevel, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt,
	)
}
