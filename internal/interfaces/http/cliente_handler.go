package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// ClienteHandler maneja clientes de la tienda (protegido).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create crea un cliente.
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un cliente por id.
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// GetByNIT godoc
// @Summary      Obtener cliente por NIT
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        nit  path  string  true  "NIT del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/nit/{nit} [get]
func (h *ClienteHandler) GetByNIT(c *fiber.Ctx) error {
	nit := c.Params("nit")
	if nit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_INVALIDO", Message: "nit requerido"})
	}
	out, err := h.uc.GetByNIT(c.Context(), nit)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "cliente no encontrado"})
	}
	return c.JSON(out)
}

// List lista clientes.
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un cliente.
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	var in dto.UpdateClienteRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un cliente.
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
