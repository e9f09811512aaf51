package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-api/internal/application/analytics"
)

// DashboardHandler maneja las peticiones HTTP del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard (totales, stock bajo/agotado, valoración, top proveedores)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Actividad reciente: compras y traslados de los últimos 7 días (máx. 10)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardMovementsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/movements [get]
func (h *DashboardHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.GetMovements(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
