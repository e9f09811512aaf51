package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/purchasing"
)

// PurchaseHandler maneja las peticiones HTTP para Purchase y sus renglones.
type PurchaseHandler struct {
	uc *purchasing.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchasing.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra con renglones (no afecta stock)
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Compra con renglones"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
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
// @Summary      Obtener compra por ID (con proveedor y renglones anidados)
// @Tags         purchases
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "compra no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compras (no eliminadas, más reciente primero)
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar metadatos de una compra (ventana de 30 días)
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la compra"
// @Param        body  body  dto.UpdatePurchaseRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [put]
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "compra no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar compra (soft delete; el stock no se revierte)
// @Tags         purchases
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "compra eliminada"})
}

// ListItems godoc
// @Summary      Listar todos los renglones de compra
// @Tags         purchase_items
// @Produce      json
// @Success      200  {array}  dto.PurchaseItemResponse
// @Router       /api/purchase_items [get]
func (h *PurchaseHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetItem godoc
// @Summary      Obtener renglón de compra por ID
// @Tags         purchase_items
// @Produce      json
// @Param        id   path  string  true  "ID del renglón"
// @Success      200  {object}  dto.PurchaseItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase_items/{id} [get]
func (h *PurchaseHandler) GetItem(c *fiber.Ctx) error {
	out, err := h.uc.GetItem(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "renglón de compra no encontrado")
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Corregir renglón de compra (sin efecto en stock ni en el total)
// @Tags         purchase_items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del renglón"
// @Param        body  body  dto.UpdatePurchaseItemRequest  true  "Corrección"
// @Success      200   {object}  dto.PurchaseItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase_items/{id} [put]
func (h *PurchaseHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateItem(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "renglón de compra no encontrado")
	}
	return c.JSON(out)
}
