package purchasing

import (
	"context"

	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que compra y renglones se
// persistan como una unidad atómica.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
