package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// fail traduce un error de dominio a la respuesta HTTP con su código estable.
func fail(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrMissingField):
		status, code = fiber.StatusBadRequest, "MISSING_FIELD"
	case errors.Is(err, domain.ErrInvalidLocationFormat):
		status, code = fiber.StatusBadRequest, "INVALID_LOCATION_FORMAT"
	case errors.Is(err, domain.ErrSameLocation):
		status, code = fiber.StatusBadRequest, "SAME_LOCATION"
	case errors.Is(err, domain.ErrLocationMismatch):
		status, code = fiber.StatusBadRequest, "LOCATION_MISMATCH"
	case errors.Is(err, domain.ErrInvalidQuantity):
		status, code = fiber.StatusBadRequest, "INVALID_QUANTITY"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidState):
		status, code = fiber.StatusConflict, "INVALID_STATE"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
