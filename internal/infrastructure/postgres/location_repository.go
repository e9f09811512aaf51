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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, name, address, contact_person, phone, notes, is_active, is_deleted, created_at, updated_at`

func (r *LocationRepo) Create(location *entity.BusinessLocation) error {
	query := `
		INSERT INTO business_locations (id, name, address, contact_person, phone, notes, is_active, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.ContactPerson,
		location.Phone, location.Notes, location.IsActive, location.IsDeleted,
		location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(id string) (*entity.BusinessLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM business_locations WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get location")
}

func (r *LocationRepo) GetActiveByName(name string) (*entity.BusinessLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM business_locations WHERE name = $1 AND NOT is_deleted`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get location by name")
}

// Update persiste metadatos y el flag is_active (usado también por toggle_active).
func (r *LocationRepo) Update(location *entity.BusinessLocation) error {
	query := `
		UPDATE business_locations
		SET name = $2, address = $3, contact_person = $4, phone = $5, notes = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Address, location.ContactPerson,
		location.Phone, location.Notes, location.IsActive, location.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// SoftDelete marca el punto como eliminado; los traslados históricos lo siguen referenciando.
func (r *LocationRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE business_locations SET is_deleted = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete location: %w", err)
	}
	return nil
}

func (r *LocationRepo) List() ([]*entity.BusinessLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM business_locations WHERE NOT is_deleted ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.BusinessLocation
	for rows.Next() {
		var l entity.BusinessLocation
		if err := scanLocation(rows, &l); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LocationRepo) scanOne(row pgx.Row, op string) (*entity.BusinessLocation, error) {
	var l entity.BusinessLocation
	if err := scanLocation(row, &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &l, nil
}

func scanLocation(row pgx.Row, l *entity.BusinessLocation) error {
	return row.Scan(&l.ID, &l.Name, &l.Address, &l.ContactPerson, &l.Phone, &l.Notes,
		&l.IsActive, &l.IsDeleted, &l.CreatedAt, &l.UpdatedAt)
}
