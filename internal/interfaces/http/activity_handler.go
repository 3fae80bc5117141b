package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/analytics"
)

// ActivityHandler expone el historial de actividad (solo lectura).
type ActivityHandler struct {
	uc *analytics.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *analytics.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Historial de actividad
// @Tags         activity
// @Produce      json
// @Success      200  {object}  dto.ActivityListResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
