package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/inventory"
)

// TransferHandler maneja las peticiones HTTP para StockTransfer y el libro de deltas.
type TransferHandler struct {
	uc *inventory.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *inventory.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar traslado de stock (IN suma, OUT resta)
// @Tags         stock_transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Traslado con renglones"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock_transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener traslado por ID (con punto de negocio y renglones anidados)
// @Tags         stock_transfers
// @Produce      json
// @Param        id   path  string  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock_transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "traslado no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar traslados (no eliminados, más reciente primero)
// @Tags         stock_transfers
// @Produce      json
// @Success      200  {array}  dto.TransferResponse
// @Router       /api/stock_transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar metadatos de un traslado (nunca toca stock)
// @Tags         stock_transfers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del traslado"
// @Param        body  body  dto.UpdateTransferRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TransferResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock_transfers/{id} [put]
func (h *TransferHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "traslado no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar traslado (soft delete y reversión de stock)
// @Tags         stock_transfers
// @Produce      json
// @Param        id   path  string  true  "ID del traslado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock_transfers/{id} [delete]
func (h *TransferHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "traslado eliminado"})
}

// ListMovements godoc
// @Summary      Listar el libro de deltas de stock (más reciente primero)
// @Tags         stock_movements
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.StockMovementResponse
// @Router       /api/stock_movements [get]
func (h *TransferHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.ListMovements(limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
