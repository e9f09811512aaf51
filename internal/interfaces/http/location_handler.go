package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
)

// LocationHandler maneja las peticiones HTTP para BusinessLocation.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear punto de negocio
// @Tags         business_locations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "Datos del punto"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/business_locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener punto de negocio por ID
// @Tags         business_locations
// @Produce      json
// @Param        id   path  string  true  "ID del punto"
// @Success      200  {object}  dto.LocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business_locations/{id} [get]
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "punto de negocio no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar puntos de negocio (no eliminados)
// @Tags         business_locations
// @Produce      json
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/business_locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar punto de negocio
// @Tags         business_locations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del punto"
// @Param        body  body  dto.UpdateLocationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.LocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/business_locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "punto de negocio no encontrado")
	}
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Alternar estado activo del punto de negocio
// @Tags         business_locations
// @Produce      json
// @Param        id   path  string  true  "ID del punto"
// @Success      200  {object}  dto.ToggleActiveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business_locations/{id}/toggle_active [patch]
func (h *LocationHandler) ToggleActive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "punto de negocio no encontrado")
	}
	msg := "punto de negocio desactivado"
	if out.IsActive {
		msg = "punto de negocio activado"
	}
	return c.JSON(dto.ToggleActiveResponse{Message: msg, IsActive: out.IsActive, Location: out})
}

// Delete godoc
// @Summary      Eliminar punto de negocio (soft delete)
// @Tags         business_locations
// @Produce      json
// @Param        id   path  string  true  "ID del punto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business_locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "punto de negocio eliminado"})
}
