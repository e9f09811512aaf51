package inventory

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del libro de stock:
// o se aplican todas las validaciones y todos los ajustes, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		transferRepo repository.TransferRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
