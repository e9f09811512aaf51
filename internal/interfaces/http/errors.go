package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/domain"
)

// fail mapea errores de dominio a códigos HTTP. El cuerpo de error es siempre
// {"error": "..."} en toda la API.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDeletedReference):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrImmutable):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInsufficientStock):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msg})
}
