package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// CompraHandler maneja compras a proveedores (protegido).
type CompraHandler struct {
	uc *usecase.CompraUseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *usecase.CompraUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra a proveedor (suma stock a la variante)
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompraRequest  true  "proveedor_id, variante_id, cantidad, costo"
// @Success      201   {object}  dto.CompraResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *CompraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompraRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista compras.
func (h *CompraHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
