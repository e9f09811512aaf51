// Package analytics contiene los casos de uso de solo lectura del dashboard.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain/repository"
)

const (
	lowStockThreshold = 5 // stock_level <= 5 cuenta como stock bajo (0 es agotado)
	topSuppliersLimit = 5 // entradas del ranking de gasto por proveedor
	recentPerSource   = 5 // compras y traslados recientes por fuente
	recentWindow      = 7 * 24 * time.Hour
	recentFeedLimit   = 10 // tamaño máximo del feed mezclado
)

// DashboardUseCase genera los agregados del dashboard. Componente puro de
// lectura: cada petición recalcula sobre el contenido actual completo de las
// tablas, sin caché ni mantenimiento incremental.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye la respuesta de GET /api/dashboard/summary.
// Las consultas se lanzan en paralelo; cada una es read-only e independiente.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	type totalsResult struct {
		totals repository.StockTotalsResult
		err    error
	}
	type itemsResult struct {
		items []repository.StockItemResult
		err   error
	}
	type valueResult struct {
		value decimal.Decimal
		err   error
	}
	type suppliersResult struct {
		suppliers []repository.SupplierSpendResult
		err       error
	}

	totalsCh := make(chan totalsResult, 1)
	lowCh := make(chan itemsResult, 1)
	outCh := make(chan itemsResult, 1)
	invValueCh := make(chan valueResult, 1)
	purchaseCh := make(chan valueResult, 1)
	suppliersCh := make(chan suppliersResult, 1)

	go func() {
		totals, err := uc.analyticsRepo.GetStockTotals(ctx)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		items, err := uc.analyticsRepo.ListLowStock(ctx, lowStockThreshold)
		lowCh <- itemsResult{items, err}
	}()
	go func() {
		items, err := uc.analyticsRepo.ListOutOfStock(ctx)
		outCh <- itemsResult{items, err}
	}()
	go func() {
		value, err := uc.analyticsRepo.GetInventoryValue(ctx)
		invValueCh <- valueResult{value, err}
	}()
	go func() {
		value, err := uc.analyticsRepo.GetPurchaseTotal(ctx)
		purchaseCh <- valueResult{value, err}
	}()
	go func() {
		suppliers, err := uc.analyticsRepo.GetTopSuppliers(ctx, topSuppliersLimit)
		suppliersCh <- suppliersResult{suppliers, err}
	}()

	totals := <-totalsCh
	low := <-lowCh
	out := <-outCh
	invValue := <-invValueCh
	purchase := <-purchaseCh
	suppliers := <-suppliersCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de stock: %w", totals.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if out.err != nil {
		return nil, fmt.Errorf("dashboard: stock agotado: %w", out.err)
	}
	if invValue.err != nil {
		return nil, fmt.Errorf("dashboard: valoración de inventario: %w", invValue.err)
	}
	if purchase.err != nil {
		return nil, fmt.Errorf("dashboard: total de compras: %w", purchase.err)
	}
	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: ranking de proveedores: %w", suppliers.err)
	}

	return &dto.DashboardSummaryResponse{
		TotalItems:         totals.totals.TotalItems,
		TotalStock:         totals.totals.TotalStock,
		LowStockCount:      len(low.items),
		OutOfStockCount:    len(out.items),
		LowStockItems:      toStockItems(low.items),
		OutOfStockItems:    toStockItems(out.items),
		InventoryValue:     invValue.value.Round(2),
		TotalPurchaseValue: purchase.value.Round(2),
		TopSuppliers:       toSupplierSpend(suppliers.suppliers),
	}, nil
}

// GetMovements construye el feed de actividad reciente: las 5 compras y los 5
// traslados no eliminados más recientes de los últimos 7 días, normalizados,
// mezclados, orden descendente por fecha y truncados a 10.
func (uc *DashboardUseCase) GetMovements(ctx context.Context) (*dto.DashboardMovementsResponse, error) {
	since := time.Now().Add(-recentWindow)

	type feedResult struct {
		entries []repository.ActivityResult
		err     error
	}
	purchasesCh := make(chan feedResult, 1)
	transfersCh := make(chan feedResult, 1)

	go func() {
		entries, err := uc.analyticsRepo.ListRecentPurchases(ctx, since, recentPerSource)
		purchasesCh <- feedResult{entries, err}
	}()
	go func() {
		entries, err := uc.analyticsRepo.ListRecentTransfers(ctx, since, recentPerSource)
		transfersCh <- feedResult{entries, err}
	}()

	purchases := <-purchasesCh
	transfers := <-transfersCh

	if purchases.err != nil {
		return nil, fmt.Errorf("dashboard: compras recientes: %w", purchases.err)
	}
	if transfers.err != nil {
		return nil, fmt.Errorf("dashboard: traslados recientes: %w", transfers.err)
	}

	merged := append(purchases.entries, transfers.entries...)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	if len(merged) > recentFeedLimit {
		merged = merged[:recentFeedLimit]
	}

	entries := make([]dto.ActivityEntryDTO, 0, len(merged))
	for _, e := range merged {
		entries = append(entries, dto.ActivityEntryDTO{
			ID:                  e.ID,
			Date:                e.Date,
			Type:                e.Type,
			Quantity:            e.Quantity,
			Notes:               e.Notes,
			SourceOrDestination: e.SourceOrDestination,
		})
	}
	return &dto.DashboardMovementsResponse{Movements: entries}, nil
}

func toStockItems(items []repository.StockItemResult) []dto.StockItemDTO {
	out := make([]dto.StockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockItemDTO{
			ProductID:  it.ProductID,
			Name:       it.Name,
			SKU:        it.SKU,
			StockLevel: it.StockLevel,
		})
	}
	return out
}

func toSupplierSpend(suppliers []repository.SupplierSpendResult) []dto.SupplierSpendDTO {
	out := make([]dto.SupplierSpendDTO, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierSpendDTO{
			SupplierID:   s.SupplierID,
			SupplierName: s.SupplierName,
			TotalSpent:   s.TotalSpent.Round(2),
		})
	}
	return out
}
