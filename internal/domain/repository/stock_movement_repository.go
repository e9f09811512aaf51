package repository

import "github.com/tu-usuario/warehouse-api/internal/domain/entity"

// StockMovementRepository define el puerto del libro de deltas de stock.
// Es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
}
