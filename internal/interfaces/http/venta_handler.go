package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// VentaHandler maneja ventas de la tienda (protegido).
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta (descuenta stock bajo bloqueo de fila)
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "cliente_id opcional + líneas"
// @Success      201   {object}  dto.VentaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Anular godoc
// @Summary      Anular venta y restaurar stock
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/anular [put]
func (h *VentaHandler) Anular(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.Anular(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// EnviarRecibo godoc
// @Summary      Enviar el recibo PDF de la venta por correo
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Param        id    path  int  true  "ID de la venta"
// @Param        body  body  dto.EnviarReciboRequest  true  "email destino"
// @Success      202
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/recibo [post]
func (h *VentaHandler) EnviarRecibo(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	var in dto.EnviarReciboRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	if err := h.uc.EnviarRecibo(c.Context(), id, in.Email); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// GetByID obtiene la venta con sus líneas.
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List lista ventas.
func (h *VentaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
