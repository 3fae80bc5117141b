package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de stock primario y extraviado.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AddPrimary godoc
// @Summary      Registrar stock en el sistema primario
// @Description  Fusiona por (material, ubicación). El material designado con una
//
//	ubicación distinta a la primaria se registra como stock extraviado.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPrimaryRequest  true  "location (opcional para el material designado), material, quantity"
// @Success      201   {object}  dto.AddPrimaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/primary [post]
func (h *InventoryHandler) AddPrimary(c *fiber.Ctx) error {
	var in dto.AddPrimaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddPrimary(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPrimary godoc
// @Summary      Listar stock primario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.PrimaryListResponse
// @Router       /api/inventory/primary [get]
func (h *InventoryHandler) ListPrimary(c *fiber.Ctx) error {
	out, err := h.uc.ListPrimary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddPseudo godoc
// @Summary      Registrar stock extraviado
// @Description  Valida campos, ubicación primaria del material designado,
//
//	ubicaciones distintas, formato de código y cantidad entera positiva.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPseudoRequest  true  "expected_location, actual_location, material, quantity"
// @Success      201   {object}  dto.AddPseudoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/pseudo [post]
func (h *InventoryHandler) AddPseudo(c *fiber.Ctx) error {
	var in dto.AddPseudoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddPseudo(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPseudo godoc
// @Summary      Listar stock extraviado
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.PseudoListResponse
// @Router       /api/inventory/pseudo [get]
func (h *InventoryHandler) ListPseudo(c *fiber.Ctx) error {
	out, err := h.uc.ListPseudo()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
