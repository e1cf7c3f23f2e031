package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academiaskate/academia-api/internal/application/dto"
	"github.com/academiaskate/academia-api/internal/application/usecase"
)

// EnvioHandler maneja campañas de correo masivo (protegido).
type EnvioHandler struct {
	uc *usecase.EnvioUseCase
}

// NewEnvioHandler construye el handler.
func NewEnvioHandler(uc *usecase.EnvioUseCase) *EnvioHandler {
	return &EnvioHandler{uc: uc}
}

// Create godoc
// @Summary      Crear campaña de correo; el worker despacha los pendientes
// @Tags         envios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEnvioRequest  true  "asunto, cuerpo_html, destinatarios"
// @Success      202   {object}  dto.EnvioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/envios [post]
func (h *EnvioHandler) Create(c *fiber.Ctx) error {
	id := GetIdentidad(c)
	if id == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_FALTANTE", Message: "no autenticado"})
	}
	var in dto.CreateEnvioRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), id.UsuarioID, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// GetByID obtiene la campaña con el estado de cada destinatario.
func (h *EnvioHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return nil
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ENCONTRADO", Message: "envío no encontrado"})
	}
	return c.JSON(out)
}

// List lista campañas.
func (h *EnvioHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
