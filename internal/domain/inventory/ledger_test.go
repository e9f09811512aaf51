package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	"github.com/tu-usuario/warehouse-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Delta — signo del ajuste según el tipo de traslado
// ──────────────────────────────────────────────────────────────────────────────

func TestDelta_INEsPositivo(t *testing.T) {
	assert.Equal(t, int64(7), inventory.Delta(entity.TransferTypeIN, 7),
		"un IN debe producir un delta positivo")
}

func TestDelta_OUTEsNegativo(t *testing.T) {
	assert.Equal(t, int64(-7), inventory.Delta(entity.TransferTypeOUT, 7),
		"un OUT debe producir un delta negativo")
}

func TestDelta_TipoDesconocidoEsCero(t *testing.T) {
	assert.Equal(t, int64(0), inventory.Delta("ADJUST", 7))
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply — el stock nunca queda negativo
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SumaYResta(t *testing.T) {
	next, ok := inventory.Apply(10, 5)
	assert.True(t, ok)
	assert.Equal(t, int64(15), next)

	next, ok = inventory.Apply(10, -10)
	assert.True(t, ok)
	assert.Equal(t, int64(0), next, "vaciar el stock exacto es válido")
}

func TestApply_RechazaNegativo(t *testing.T) {
	next, ok := inventory.Apply(3, -4)
	assert.False(t, ok, "un delta que deja el stock negativo debe rechazarse")
	assert.Equal(t, int64(3), next, "el nivel original no debe cambiar")
}

// ──────────────────────────────────────────────────────────────────────────────
// PurchaseTotal — Σ quantity × unit_cost
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseTotal_SumaRenglones(t *testing.T) {
	items := []*entity.PurchaseItem{
		{Quantity: 2, UnitCost: decimal.RequireFromString("10.50")},
		{Quantity: 5, UnitCost: decimal.RequireFromString("7.00")},
	}
	total := inventory.PurchaseTotal(items)
	assert.True(t, decimal.RequireFromString("56.00").Equal(total),
		"2×10.50 + 5×7.00 debe sumar 56.00, obtuvo %s", total)
}

func TestPurchaseTotal_SinRenglonesEsCero(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(inventory.PurchaseTotal(nil)))
}
