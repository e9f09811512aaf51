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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, name, description, is_deleted, created_at, updated_at`

func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description,
		category.IsDeleted, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get category")
}

// GetByName busca por nombre incluyendo eliminadas: el caso de uso decide si
// restaurar una eliminada o rechazar por duplicado.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get category by name")
}

func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Restore revierte el soft-delete (re-creación de una categoría con el mismo nombre).
func (r *CategoryRepo) Restore(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET is_deleted = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET is_deleted = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE NOT is_deleted ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) scanOne(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	if err := scanCategory(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func scanCategory(row pgx.Row, c *entity.Category) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
}
