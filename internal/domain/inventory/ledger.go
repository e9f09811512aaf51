// Package inventory contiene los servicios de dominio del libro de stock.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// Delta devuelve el delta con signo que un renglón de traslado aplica al stock:
// positivo para IN, negativo para OUT. Para un tipo desconocido devuelve 0.
func Delta(transferType string, quantity int64) int64 {
	switch transferType {
	case entity.TransferTypeIN:
		return quantity
	case entity.TransferTypeOUT:
		return -quantity
	}
	return 0
}

// Apply aplica un delta sobre el nivel actual. ok=false si el resultado
// quedaría negativo; en ese caso el nivel devuelto es el original.
func Apply(level, delta int64) (int64, bool) {
	next := level + delta
	if next < 0 {
		return level, false
	}
	return next, true
}

// PurchaseTotal calcula el total de una compra: Σ quantity × unit_cost.
func PurchaseTotal(items []*entity.PurchaseItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromInt(it.Quantity).Mul(it.UnitCost))
	}
	return total
}
