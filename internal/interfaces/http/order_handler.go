package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP del libro de órdenes.
type OrderHandler struct {
	uc      *orders.OrderUseCase
	fulfill *orders.FulfillOrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase, fulfill *orders.FulfillOrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, fulfill: fulfill}
}

// Create godoc
// @Summary      Crear una orden
// @Description  Genera un ID numérico de 8 dígitos único. Las órdenes del
//
//	material designado se procesan automáticamente al crearse.
//
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "material, quantity, destination_location"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Consultar una orden
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "ID de la orden (8 dígitos)"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Fulfill godoc
// @Summary      Procesar una orden pendiente
// @Description  Drena primero el stock extraviado del material (más antiguo
//
//	primero) y después la ubicación primaria. Una orden ya procesada
//	devuelve 409 sin mutar inventario.
//
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "ID de la orden (8 dígitos)"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/fulfill [post]
func (h *OrderHandler) Fulfill(c *fiber.Ctx) error {
	out, err := h.fulfill.Fulfill(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
